// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"context"

	"github.com/bootstack/juju-exporter/pkg/inventory"
	"github.com/bootstack/juju-exporter/pkg/labels"
)

// Gauge exported for every identified host.
const (
	MachineStateGauge = "juju_machine_state"
	MachineStateHelp  = "Running status of juju machines"
)

// Credentials authenticate a controller session.
type Credentials struct {
	Username string
	Password string
}

// Session is a logged-in connection to the controller.
type Session interface {
	// ListModels returns the visible models keyed by name.
	ListModels(ctx context.Context) (map[string]string, error)

	// FetchStatus returns the full status tree of the model.
	FetchStatus(ctx context.Context, modelUUID string) (*inventory.StatusTree, error)

	// ServerVersion returns the version the controller reported.
	ServerVersion() string

	Close() error
}

// DialFunc opens a Session to one controller endpoint.
type DialFunc func(ctx context.Context, endpoint string, creds Credentials) (Session, error)

// Sink receives the gauge operations produced by a cycle.
type Sink interface {
	// EnsureGauge creates the gauge if it does not exist yet.
	EnsureGauge(name, help string, labelNames []string) error
	Set(name string, ls labels.LabelSet, value float64) error
	Remove(name string, ls labels.LabelSet) bool
}

// State is the step a cycle is currently in.
type State string

const (
	StateIdle        State = "idle"
	StateConnecting  State = "connecting"
	StateEnumerating State = "enumerating_models"
	StateWalking     State = "walking_model"
	StateDiffing     State = "diffing"
	StateEmitting    State = "emitting"
	StateSleeping    State = "sleeping"
)

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

package inventory

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/bootstack/juju-exporter/pkg/errors"
)

// Walker flattens a model's status tree into host records.
type Walker struct {
	classifier *Classifier
}

// NewWalker returns a walker classifying machines with c.
func NewWalker(c *Classifier) *Walker {
	return &Walker{classifier: c}
}

// Walk returns the identified machines and containers of one model, machines
// first, each followed by its containers. Machines without an identity are
// skipped but their containers are still visited. A tree lacking the machines
// section or an agent status fails the whole model.
func (w *Walker) Walk(modelName string, tree *StatusTree) ([]HostRecord, error) {
	if tree == nil || tree.Machines == nil {
		return nil, errors.NewWithContext(errors.ErrCodeMalformedData,
			"status has no machines section", map[string]any{"model": modelName})
	}

	var records []HostRecord
	for _, id := range sortedIDs(tree.Machines) {
		machine := tree.Machines[id]
		if machine.AgentStatus == nil {
			return nil, malformedHost(modelName, id)
		}

		if hostID := machine.HostID(); hostID != Unidentified {
			records = append(records, HostRecord{
				HostID:    hostID,
				ModelName: modelName,
				Kind:      w.classifier.Classify(machine.NetworkInterfaces),
				Running:   machine.running(),
			})
		} else {
			slog.Debug("skipping unidentified machine", "model", modelName, "machine", id)
		}

		for _, cid := range sortedIDs(machine.Containers) {
			container := machine.Containers[cid]
			if container.AgentStatus == nil {
				return nil, malformedHost(modelName, cid)
			}
			hostID := container.HostID()
			if hostID == Unidentified {
				slog.Debug("skipping unidentified container", "model", modelName, "container", cid)
				continue
			}
			records = append(records, HostRecord{
				HostID:    hostID,
				ModelName: modelName,
				Kind:      KindLXD,
				Running:   container.running(),
			})
		}
	}

	return records, nil
}

func malformedHost(model, id string) error {
	return errors.NewWithContext(errors.ErrCodeMalformedData,
		"host status has no agent-status", map[string]any{"model": model, "host": id})
}

// sortedIDs orders machine ids such as "2", "10" and "0/lxd/1" by their
// numeric segments.
func sortedIDs(m map[string]MachineStatus) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return lessMachineID(ids[i], ids[j])
	})
	return ids
}

func lessMachineID(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			return an < bn
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}

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

package juju

import (
	"encoding/json"
	"slices"

	"github.com/bootstack/juju-exporter/pkg/errors"
)

// Facade names used by the client.
const (
	facadeAdmin        = "Admin"
	facadeModelManager = "ModelManager"
	facadeClient       = "Client"

	adminFacadeVersion = 3
)

// Facade versions the client can speak, oldest first. ListModels and
// FullStatus kept their wire shape across these versions.
var (
	modelManagerFacadeVersions = []int{5, 6, 7, 8, 9, 10}
	clientFacadeVersions       = []int{6, 7, 8}
)

// DefaultServerName is the name every controller certificate is issued for.
const DefaultServerName = "juju-apiserver"

// ClientVersion is reported to the controller at login.
const ClientVersion = "2.9.42"

// errCodeUnauthorized is the error code returned for rejected logins.
const errCodeUnauthorized = "unauthorized access"

type request struct {
	RequestID uint64 `json:"request-id"`
	Type      string `json:"type"`
	Version   int    `json:"version"`
	ID        string `json:"id,omitempty"`
	Request   string `json:"request"`
	Params    any    `json:"params"`
}

type response struct {
	RequestID uint64          `json:"request-id"`
	Error     string          `json:"error,omitempty"`
	ErrorCode string          `json:"error-code,omitempty"`
	Response  json.RawMessage `json:"response,omitempty"`
}

type loginRequest struct {
	AuthTag       string `json:"auth-tag"`
	Credentials   string `json:"credentials"`
	ClientVersion string `json:"client-version"`
}

type loginResult struct {
	ServerVersion string           `json:"server-version"`
	ControllerTag string           `json:"controller-tag,omitempty"`
	ModelTag      string           `json:"model-tag,omitempty"`
	Facades       []facadeVersions `json:"facades,omitempty"`
}

type facadeVersions struct {
	Name     string `json:"name"`
	Versions []int  `json:"versions"`
}

// bestFacadeVersion returns the newest version of facade offered by the
// controller that the client supports. Without a facade list the oldest
// supported version is used.
func bestFacadeVersion(offered []facadeVersions, facade string, supported []int) (int, error) {
	if len(offered) == 0 {
		return supported[0], nil
	}
	for _, f := range offered {
		if f.Name != facade {
			continue
		}
		for i := len(supported) - 1; i >= 0; i-- {
			if slices.Contains(f.Versions, supported[i]) {
				return supported[i], nil
			}
		}
		return 0, errors.NewWithContext(errors.ErrCodeUnavailable, "no supported facade version offered",
			map[string]any{"facade": facade, "offered": f.Versions, "supported": supported})
	}
	return 0, errors.NewWithContext(errors.ErrCodeUnavailable, "facade not offered by controller",
		map[string]any{"facade": facade})
}

type entity struct {
	Tag string `json:"tag"`
}

type userModelList struct {
	UserModels []userModel `json:"user-models"`
}

type userModel struct {
	Model modelSummary `json:"model"`
}

type modelSummary struct {
	Name     string `json:"name"`
	UUID     string `json:"uuid"`
	OwnerTag string `json:"owner-tag,omitempty"`
}

type statusParams struct {
	Patterns []string `json:"patterns"`
}

func userTag(name string) string {
	return "user-" + name
}

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

const (
	// Unidentified is returned when no stable identity can be derived.
	Unidentified = "unidentified"

	// placeholderNone is how an unset field is rendered by some clients.
	placeholderNone = "None"

	// placeholderPending marks an identity the controller has not assigned yet.
	placeholderPending = "pending"
)

// ResolveHostID returns the first usable candidate, examined in priority order.
// Candidates that are nil, empty or "None" are skipped. If the first usable
// candidate is "pending" the host is unidentified; lower priority candidates
// are not consulted in that case.
func ResolveHostID(candidates ...*string) string {
	for _, c := range candidates {
		if c == nil || *c == "" || *c == placeholderNone {
			continue
		}
		if *c == placeholderPending {
			return Unidentified
		}
		return *c
	}
	return Unidentified
}

// HostID resolves the identity of a machine or container from its hostname,
// falling back to its instance id.
func (m *MachineStatus) HostID() string {
	return ResolveHostID(m.Hostname, m.InstanceID)
}

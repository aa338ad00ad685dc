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

// MachineKind is the hardware or virtualization category of a host.
type MachineKind string

const (
	// KindMetal is a bare-metal machine.
	KindMetal MachineKind = "metal"
	// KindKVM is a virtual machine detected by its MAC address prefix.
	KindKVM MachineKind = "kvm"
	// KindLXD is a container hosted on a machine.
	KindLXD MachineKind = "lxd"
)

// String returns the label value of the kind.
func (k MachineKind) String() string {
	return string(k)
}

// StatusStarted is the agent status of a running host.
const StatusStarted = "started"

// HostRecord is one classified host discovered during a collection cycle.
type HostRecord struct {
	HostID    string      `json:"hostId" yaml:"hostId"`
	ModelName string      `json:"model" yaml:"model"`
	Kind      MachineKind `json:"type" yaml:"type"`
	Running   bool        `json:"running" yaml:"running"`
}

// StatusTree is the part of a model's full status the exporter consumes.
// Field names follow the controller's FullStatus payload.
type StatusTree struct {
	Model    *ModelInfo               `json:"model,omitempty"`
	Machines map[string]MachineStatus `json:"machines"`
}

// ModelInfo describes the model a status tree belongs to.
type ModelInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Version string `json:"version,omitempty"`
}

// MachineStatus is the status of a machine or of a container on a machine.
// Hostname and InstanceID are pointers because the controller reports
// them as null before provisioning completes.
type MachineStatus struct {
	AgentStatus       *DetailedStatus             `json:"agent-status"`
	InstanceStatus    *DetailedStatus             `json:"instance-status,omitempty"`
	Hostname          *string                     `json:"hostname,omitempty"`
	InstanceID        *string                     `json:"instance-id,omitempty"`
	DNSName           string                      `json:"dns-name,omitempty"`
	Series            string                      `json:"series,omitempty"`
	NetworkInterfaces map[string]NetworkInterface `json:"network-interfaces,omitempty"`
	Containers        map[string]MachineStatus    `json:"containers,omitempty"`
}

// DetailedStatus is an agent or instance status entry.
type DetailedStatus struct {
	Status  string `json:"status"`
	Info    string `json:"info,omitempty"`
	Version string `json:"version,omitempty"`
}

// NetworkInterface is one interface of a machine.
type NetworkInterface struct {
	IPAddresses []string `json:"ip-addresses,omitempty"`
	MACAddress  string   `json:"mac-address"`
	Gateway     string   `json:"gateway,omitempty"`
	Space       string   `json:"space,omitempty"`
	IsUp        bool     `json:"is-up,omitempty"`
}

// running reports whether the host's agent reports the started status.
func (m *MachineStatus) running() bool {
	return m.AgentStatus != nil && m.AgentStatus.Status == StatusStarted
}

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

package labels

import (
	"github.com/bootstack/juju-exporter/pkg/inventory"
)

// Label names, in the order they appear on the exported gauge.
const (
	LabelJob       = "job"
	LabelHostname  = "hostname"
	LabelCustomer  = "customer"
	LabelCloudName = "cloud_name"
	LabelModel     = "model"
	LabelType      = "type"
)

// DefaultJob is the value of the job label.
const DefaultJob = "prometheus-juju-exporter"

// Names returns the label names of a LabelSet in order.
func Names() []string {
	return []string{LabelJob, LabelHostname, LabelCustomer, LabelCloudName, LabelModel, LabelType}
}

// LabelSet identifies one exported time series. Two sets are equal when
// every value is equal, so LabelSet is comparable with ==.
type LabelSet struct {
	Job       string `json:"job" yaml:"job"`
	Hostname  string `json:"hostname" yaml:"hostname"`
	Customer  string `json:"customer" yaml:"customer"`
	CloudName string `json:"cloud_name" yaml:"cloud_name"`
	Model     string `json:"model" yaml:"model"`
	Type      string `json:"type" yaml:"type"`
}

// Values returns the label values in the order of Names.
func (l LabelSet) Values() []string {
	return []string{l.Job, l.Hostname, l.Customer, l.CloudName, l.Model, l.Type}
}

// Map returns the set as a name to value map.
func (l LabelSet) Map() map[string]string {
	names, values := Names(), l.Values()
	m := make(map[string]string, len(names))
	for i, n := range names {
		m[n] = values[i]
	}
	return m
}

// Builder derives label sets from host records and the static customer
// settings.
type Builder struct {
	Job       string
	Customer  string
	CloudName string
}

// NewBuilder returns a builder using DefaultJob.
func NewBuilder(customer, cloudName string) Builder {
	return Builder{Job: DefaultJob, Customer: customer, CloudName: cloudName}
}

// Build returns the label set of rec.
func (b Builder) Build(rec inventory.HostRecord) LabelSet {
	return LabelSet{
		Job:       b.Job,
		Hostname:  rec.HostID,
		Customer:  b.Customer,
		CloudName: b.CloudName,
		Model:     rec.ModelName,
		Type:      rec.Kind.String(),
	}
}

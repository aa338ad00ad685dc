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
	"sort"
	"strconv"

	"github.com/bootstack/juju-exporter/pkg/inventory"
)

// Update is one series to upsert on the gauge.
type Update struct {
	Labels LabelSet `json:"labels" yaml:"labels"`
	Value  float64  `json:"value" yaml:"value"`
}

// CycleResult is the set of gauge operations produced by one cycle.
type CycleResult struct {
	Updates  []Update   `json:"updates" yaml:"updates"`
	Removals []LabelSet `json:"removals" yaml:"removals"`
}

// Header returns the column names used when printing the result as a table.
func (r CycleResult) Header() []string {
	return []string{"OP", "HOSTNAME", "MODEL", "TYPE", "VALUE"}
}

// Rows returns one row per update followed by one row per removal.
func (r CycleResult) Rows() [][]string {
	rows := make([][]string, 0, len(r.Updates)+len(r.Removals))
	for _, u := range r.Updates {
		rows = append(rows, []string{"set", u.Labels.Hostname, u.Labels.Model, u.Labels.Type,
			strconv.FormatFloat(u.Value, 'f', -1, 64)})
	}
	for _, ls := range r.Removals {
		rows = append(rows, []string{"remove", ls.Hostname, ls.Model, ls.Type, "-"})
	}
	return rows
}

type entry struct {
	labels LabelSet
	value  float64
}

// Cache remembers the label sets exported by the previous cycle and
// collects the ones of the current cycle. It is not safe for concurrent use;
// a single cycle owns it between BeginCycle and FinishCycle.
type Cache struct {
	previous map[string]entry
	current  map[string]entry
	order    []string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		previous: map[string]entry{},
		current:  map[string]entry{},
	}
}

// BeginCycle makes the current entries the previous ones and starts an
// empty current set.
func (c *Cache) BeginCycle() {
	c.previous = c.current
	c.current = make(map[string]entry, len(c.previous))
	c.order = c.order[:0]
}

// Record stores the label set of rec for this cycle. Recording the same host
// id again replaces its labels and value but keeps its original position.
func (c *Cache) Record(rec inventory.HostRecord, ls LabelSet) {
	if _, ok := c.current[rec.HostID]; !ok {
		c.order = append(c.order, rec.HostID)
	}
	c.current[rec.HostID] = entry{labels: ls, value: gaugeValue(rec.Running)}
}

// FinishCycle returns every entry recorded this cycle as an update, in
// recording order, and every previous entry whose host id was not recorded
// as a removal, ordered by host id.
func (c *Cache) FinishCycle() CycleResult {
	res := CycleResult{
		Updates:  make([]Update, 0, len(c.order)),
		Removals: []LabelSet{},
	}
	for _, id := range c.order {
		e := c.current[id]
		res.Updates = append(res.Updates, Update{Labels: e.labels, Value: e.value})
	}

	stale := make([]string, 0)
	for id := range c.previous {
		if _, ok := c.current[id]; !ok {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	for _, id := range stale {
		res.Removals = append(res.Removals, c.previous[id].labels)
	}

	return res
}

// Len returns the number of entries recorded this cycle.
func (c *Cache) Len() int {
	return len(c.current)
}

func gaugeValue(running bool) float64 {
	if running {
		return 1
	}
	return 0
}

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

package metrics

import (
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/labels"
)

// GaugeSink applies label-set updates and removals to gauge vectors.
type GaugeSink struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	gauges   map[string]*gauge
}

type gauge struct {
	vec        *prometheus.GaugeVec
	labelNames []string

	// exported holds the label set last exported for each hostname.
	exported map[string]labels.LabelSet
}

// NewGaugeSink returns a sink backed by an empty registry.
func NewGaugeSink() *GaugeSink {
	return &GaugeSink{
		registry: prometheus.NewRegistry(),
		gauges:   make(map[string]*gauge),
	}
}

// EnsureGauge registers the gauge vector the first time name is seen.
// Calling it again with the same label names is a no-op.
func (s *GaugeSink) EnsureGauge(name, help string, labelNames []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.gauges[name]; ok {
		if !slices.Equal(g.labelNames, labelNames) {
			return errors.NewWithContext(errors.ErrCodeInternal, "gauge already registered with other labels",
				map[string]any{"gauge": name, "labels": g.labelNames})
		}
		return nil
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labelNames)
	if err := s.registry.Register(vec); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to register gauge", err,
			map[string]any{"gauge": name})
	}

	s.gauges[name] = &gauge{
		vec:        vec,
		labelNames: slices.Clone(labelNames),
		exported:   make(map[string]labels.LabelSet),
	}
	return nil
}

// Set upserts the series for ls. A series previously exported for the same
// hostname under different labels is deleted first.
func (s *GaugeSink) Set(name string, ls labels.LabelSet, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(name)
	if err != nil {
		return err
	}

	if prev, ok := g.exported[ls.Hostname]; ok && prev != ls {
		g.vec.Delete(g.promLabels(prev))
	}

	m, err := g.vec.GetMetricWith(g.promLabels(ls))
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to resolve series", err,
			map[string]any{"gauge": name, "hostname": ls.Hostname})
	}
	m.Set(value)
	g.exported[ls.Hostname] = ls
	return nil
}

// Remove deletes the series exported under ls and reports whether it existed.
func (s *GaugeSink) Remove(name string, ls labels.LabelSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(name)
	if err != nil {
		return false
	}

	if prev, ok := g.exported[ls.Hostname]; ok && prev == ls {
		delete(g.exported, ls.Hostname)
	}
	return g.vec.Delete(g.promLabels(ls))
}

// Len returns the number of series currently exported by the gauge.
func (s *GaugeSink) Len(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.gauges[name]; ok {
		return len(g.exported)
	}
	return 0
}

// Gatherer exposes the sink registry to a scrape handler.
func (s *GaugeSink) Gatherer() prometheus.Gatherer {
	return s.registry
}

func (s *GaugeSink) lookup(name string) (*gauge, error) {
	g, ok := s.gauges[name]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "gauge is not registered",
			map[string]any{"gauge": name})
	}
	return g, nil
}

func (g *gauge) promLabels(ls labels.LabelSet) prometheus.Labels {
	all := ls.Map()
	out := make(prometheus.Labels, len(g.labelNames))
	for _, n := range g.labelNames {
		out[n] = all[n]
	}
	return out
}

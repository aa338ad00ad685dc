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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle outcome label values.
const (
	cycleStatusSuccess = "success"
	cycleStatusFailed  = "failed"
)

var (
	cycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "juju_exporter_cycle_duration_seconds",
			Help:    "Duration of a collection cycle in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 12),
		},
	)

	cyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juju_exporter_cycles_total",
			Help: "Total number of collection cycles by outcome",
		},
		[]string{"status"},
	)

	modelErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "juju_exporter_model_errors_total",
			Help: "Total number of models skipped because their status could not be fetched or walked",
		},
		[]string{"model"},
	)

	hostsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "juju_exporter_hosts",
			Help: "Number of hosts exported by the last cycle by machine type",
		},
		[]string{"type"},
	)

	removedSeriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "juju_exporter_removed_series_total",
			Help: "Total number of stale machine series removed",
		},
	)

	controllerInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "juju_exporter_controller_info",
			Help: "Controller endpoint and version used by the last cycle",
		},
		[]string{"endpoint", "version"},
	)
)

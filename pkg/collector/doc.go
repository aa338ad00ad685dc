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

// Package collector runs the reconciliation cycle that turns the machine
// inventory of a Juju controller into juju_machine_state series.
//
// # Cycle
//
// Every cycle walks the same states:
//
//	idle -> connecting -> enumerating_models -> walking_model -> diffing -> emitting -> sleeping
//
// Connecting tries each configured endpoint in order, each attempt bounded
// by defaults.ControllerConnectTimeout. When every endpoint fails the cycle
// returns an UNAVAILABLE error and Run stops: no model can be listed without
// a session. A model whose status cannot be fetched or walked is logged,
// counted in juju_exporter_model_errors_total and contributes no hosts for
// that cycle only.
//
// All host records are gathered before the label cache is diffed, so a
// cancelled cycle never touches the cache.
//
// # Usage
//
//	c, err := collector.New(cfg, dial, sink, collector.WithCycleHook(onCycle))
//	if err != nil {
//	    return err
//	}
//	return c.Run(ctx) // nil once ctx is cancelled
//
// Collect runs a single cycle without touching the sink, which is what the
// collect command prints. Emit applies a result: updates first, then
// removals.
//
// # Concurrency
//
// Cycles never overlap and the label cache is owned by the running cycle.
// With exporter.model_concurrency greater than one, model statuses are
// fetched through an errgroup with that limit; results are still recorded
// in model name order.
package collector

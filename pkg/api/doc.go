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

// Package api wires the collection loop to the scrape server.
//
// An Exporter owns one metrics.GaugeSink. The collector emits every cycle
// into it and the server exposes it on /metrics together with the process
// metrics of the default Prometheus registry.
//
//	cfg, err := config.Load("/etc/juju-exporter/config.yaml")
//	if err != nil {
//	    return err
//	}
//	e, err := api.New(cfg, api.WithVersion(version))
//	if err != nil {
//	    return err
//	}
//	return e.Run(ctx)
//
// # Endpoints
//
//   - GET /metrics - juju_machine_state and exporter self metrics
//   - GET /health  - liveness probe
//   - GET /ready   - 200 once the first cycle was emitted, 503 before
//   - GET /        - name, version and routes
//
// When started by systemd with Type=notify, READY=1 is sent after the first
// emitted cycle and STOPPING=1 on exit.
package api

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

// Package server serves the exporter's HTTP surface:
//
//	GET /metrics   inventory gauges and process metrics (Prometheus text format)
//	GET /health    liveness, always 200 while the process runs
//	GET /ready     200 once the first collection cycle has been emitted
//	GET /          name, version, readiness and routes as JSON
//
// Routes other than /health and /ready run behind a middleware chain:
// request metrics, request ids (X-Request-Id, UUID), panic recovery, a
// token bucket rate limiter (golang.org/x/time/rate) and debug request
// logging. Errors are written as ErrorResponse JSON with a status derived
// from the pkg/errors code.
//
// # Usage
//
//	srv := server.New(
//	    server.WithName("juju-exporter"),
//	    server.WithVersion(version),
//	    server.WithMetrics(sink.Gatherer(), prometheus.DefaultGatherer),
//	)
//	go func() { _ = srv.Start(ctx) }()
//	// later, after the first cycle
//	srv.SetReady(true)
//
// Start returns nil after a graceful shutdown triggered by ctx, bounded by
// Config.ShutdownTimeout (SHUTDOWN_TIMEOUT_SECONDS overrides the default).
package server

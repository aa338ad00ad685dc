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
package defaults

import "time"

// Controller timeouts for Juju API operations.
const (
	// ControllerConnectTimeout bounds one endpoint's dial and login.
	// The next configured endpoint is tried when it expires.
	ControllerConnectTimeout = 30 * time.Second

	// ControllerRequestTimeout bounds a single RPC when the caller's
	// context carries no earlier deadline.
	ControllerRequestTimeout = 60 * time.Second

	// ControllerHandshakeTimeout is the timeout for the websocket upgrade.
	ControllerHandshakeTimeout = 15 * time.Second

	// ControllerCloseTimeout bounds sending the websocket close frame.
	ControllerCloseTimeout = 2 * time.Second
)

// Collection cycle defaults.
const (
	// CollectInterval is the default wait between two collection cycles.
	CollectInterval = 15 * time.Minute

	// ModelConcurrency is the default number of models fetched at once.
	ModelConcurrency = 1
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Scrape endpoint defaults.
const (
	// ServerPort is the default listen port of the scrape endpoint.
	ServerPort = 5000

	// ServerRateLimit is the sustained request rate accepted on /metrics.
	ServerRateLimit = 20

	// ServerRateLimitBurst is the request burst accepted on /metrics.
	ServerRateLimitBurst = 40
)

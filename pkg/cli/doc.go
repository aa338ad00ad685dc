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

// Package cli implements the juju-exporter command-line interface.
//
// # Commands
//
// serve - Run the exporter (default):
//
//	juju-exporter --config /etc/juju-exporter/config.yaml serve [--once]
//
// Starts the scrape endpoint on the configured port and refreshes the
// juju_machine_state gauge every collect interval. With --once a single
// cycle runs and its result is served until the process is interrupted.
//
// collect - Run one cycle and print it:
//
//	juju-exporter collect [--format yaml|json|table] [--output FILE]
//
// Prints the gauge updates and removals of one cycle without serving them.
//
// # Global Flags
//
//	--config, -c   Configuration file (env JUJU_EXPORTER_CONFIG, default config.yaml)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Setting debug: true in the configuration file raises the log level to
// debug unless --log-level is given.
//
// # Exit Codes
//
//	0  clean shutdown
//	1  runtime failure, e.g. no controller endpoint reachable
//	2  invalid configuration
package cli

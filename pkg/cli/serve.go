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

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bootstack/juju-exporter/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve juju_machine_state and refresh it every collect interval",
		Description: `Start the scrape endpoint and the collection loop.

Each cycle logs into the first reachable controller endpoint, walks the
status of every model and updates the juju_machine_state gauge. Series of
hosts that disappeared since the previous cycle are removed.

The readiness route answers 200 once the first cycle has been emitted.

Examples:
  juju-exporter --config /etc/juju-exporter/config.yaml serve
  juju-exporter serve --once`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "once",
				Usage: "run a single collection cycle, then keep serving its result",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			dial, err := newDialFunc(cfg)
			if err != nil {
				return err
			}

			e, err := api.New(cfg,
				api.WithVersion(version),
				api.WithDialFunc(dial),
				api.WithOnce(cmd.Bool("once")),
			)
			if err != nil {
				return err
			}

			slog.Info("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return e.Run(ctx)
		},
	}
}

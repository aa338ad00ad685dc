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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bootstack/juju-exporter/pkg/collector"
	"github.com/bootstack/juju-exporter/pkg/metrics"
	"github.com/bootstack/juju-exporter/pkg/serializer"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:  "collect",
		Usage: "Run one collection cycle and print the gauge operations",
		Description: `Connect to the controller, walk every model once and write the
resulting gauge updates without starting the scrape endpoint.

Examples:
  juju-exporter collect
  juju-exporter collect --format table
  juju-exporter collect --format json --output cycle.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "output format: json, yaml, table",
				Value:   "yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := serializer.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			dial, err := newDialFunc(cfg)
			if err != nil {
				return err
			}

			c, err := collector.New(cfg, dial, metrics.NewGaugeSink())
			if err != nil {
				return err
			}

			res, err := c.Collect(ctx)
			if err != nil {
				return fmt.Errorf("collection failed: %w", err)
			}

			w, err := serializer.NewFileWriter(format, cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if cerr := w.Close(); cerr != nil {
					slog.Warn("failed to close output", "error", cerr)
				}
			}()

			return w.Serialize(ctx, res)
		},
	}
}

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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/bootstack/juju-exporter/pkg/api"
	"github.com/bootstack/juju-exporter/pkg/config"
	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/logging"
)

const (
	name           = "juju-exporter"
	versionDefault = "dev"

	defaultConfigPath = "config.yaml"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	// newDialFunc builds the controller dialer; replaced in tests.
	newDialFunc = api.NewDialFunc
)

// Execute runs the root command with the process arguments and exits with a
// non-zero code on failure. SIGINT and SIGTERM cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Export the running state of Juju machines to Prometheus",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		DefaultCommand:        "serve",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Sources: cli.EnvVars("JUJU_EXPORTER_CONFIG"),
				Value:   defaultConfigPath,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			collectCmd(),
		},
	}
}

// loadConfig loads the file named by --config. The debug setting of the
// file raises the log level unless --log-level was given explicitly.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cfg.Debug && !cmd.IsSet("log-level") {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, "debug")
		slog.Debug("debug logging enabled by configuration")
	}
	return cfg, nil
}

// exitCode maps configuration errors to 2 and every other failure to 1.
func exitCode(err error) int {
	if errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		return 2
	}
	return 1
}

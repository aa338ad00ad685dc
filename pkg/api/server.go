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

package api

import (
	"context"
	"log/slog"
	"net"
	"sync"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/bootstack/juju-exporter/pkg/collector"
	"github.com/bootstack/juju-exporter/pkg/config"
	"github.com/bootstack/juju-exporter/pkg/juju"
	"github.com/bootstack/juju-exporter/pkg/labels"
	"github.com/bootstack/juju-exporter/pkg/metrics"
	"github.com/bootstack/juju-exporter/pkg/server"
)

const (
	name           = "juju-exporter"
	versionDefault = "dev"
)

// Exporter runs the collection loop and serves its gauge.
type Exporter struct {
	cfg       *config.Config
	version   string
	dial      collector.DialFunc
	listener  net.Listener
	notify    func(state string)
	once      bool
	sink      *metrics.GaugeSink
	server    *server.Server
	collector *collector.Collector
	readyOnce sync.Once
}

// Option is a functional option for configuring Exporter instances.
type Option func(*Exporter)

// WithVersion sets the version reported in logs and on the root route.
func WithVersion(version string) Option {
	return func(e *Exporter) {
		e.version = version
	}
}

// WithDialFunc replaces the controller dialer built from the configuration.
func WithDialFunc(dial collector.DialFunc) Option {
	return func(e *Exporter) {
		e.dial = dial
	}
}

// WithListener serves on ln instead of the configured port.
func WithListener(ln net.Listener) Option {
	return func(e *Exporter) {
		e.listener = ln
	}
}

// WithOnce runs a single collection cycle and keeps serving its result.
func WithOnce(once bool) Option {
	return func(e *Exporter) {
		e.once = once
	}
}

// WithNotifier replaces the systemd notification function.
func WithNotifier(fn func(state string)) Option {
	return func(e *Exporter) {
		e.notify = fn
	}
}

// NewDialFunc returns a collector.DialFunc logging into the controller with
// the CA certificate of cfg.
func NewDialFunc(cfg *config.Config) (collector.DialFunc, error) {
	d, err := juju.NewDialer(cfg.Juju.ControllerCACert)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, endpoint string, creds collector.Credentials) (collector.Session, error) {
		return d.Dial(ctx, endpoint, creds.Username, creds.Password)
	}, nil
}

// New builds an exporter from a validated configuration.
func New(cfg *config.Config, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg:     cfg,
		version: versionDefault,
		notify:  sdNotify,
		sink:    metrics.NewGaugeSink(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.dial == nil {
		dial, err := NewDialFunc(cfg)
		if err != nil {
			return nil, err
		}
		e.dial = dial
	}

	srvCfg := server.NewConfig()
	srvCfg.Port = cfg.Exporter.Port
	e.server = server.New(
		server.WithConfig(srvCfg),
		server.WithName(name),
		server.WithVersion(e.version),
		server.WithMetrics(e.sink.Gatherer(), prometheus.DefaultGatherer),
	)

	c, err := collector.New(cfg, e.dial, e.sink, collector.WithCycleHook(e.onCycle))
	if err != nil {
		return nil, err
	}
	e.collector = c
	return e, nil
}

// Server returns the scrape server.
func (e *Exporter) Server() *server.Server {
	return e.server
}

// Collector returns the collection loop.
func (e *Exporter) Collector() *collector.Collector {
	return e.collector
}

// Run serves the scrape endpoint and loops collection cycles until ctx is
// cancelled or either side fails. A fatal collection error stops the server.
func (e *Exporter) Run(ctx context.Context) error {
	slog.Info("starting exporter", "name", name, "version", e.version, "config", e.cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if e.listener != nil {
			return e.server.Serve(gctx, e.listener)
		}
		return e.server.Start(gctx)
	})
	g.Go(func() error {
		if !e.once {
			return e.collector.Run(gctx)
		}
		if _, err := e.collector.RunOnce(gctx); err != nil && gctx.Err() == nil {
			return err
		}
		return nil
	})

	err := g.Wait()
	e.notify(daemon.SdNotifyStopping)
	if err != nil {
		slog.Error("exporter exited with error", "error", err)
		return err
	}
	return nil
}

// onCycle marks the server ready after the first emitted cycle.
func (e *Exporter) onCycle(res *labels.CycleResult) {
	e.readyOnce.Do(func() {
		e.server.SetReady(true)
		e.notify(daemon.SdNotifyReady)
		slog.Info("first collection cycle emitted", "updates", len(res.Updates))
	})
}

func sdNotify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("failed to notify systemd", "state", state, "error", err)
		return
	}
	slog.Debug("systemd notification", "state", state, "sent", sent)
}

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
	"context"
	stderrors "errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bootstack/juju-exporter/pkg/config"
	"github.com/bootstack/juju-exporter/pkg/defaults"
	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/inventory"
	"github.com/bootstack/juju-exporter/pkg/labels"
)

// Collector runs reconciliation cycles against one controller and applies
// their result to a Sink. Cycles never overlap.
type Collector struct {
	endpoints      []string
	creds          Credentials
	interval       time.Duration
	concurrency    int
	connectTimeout time.Duration

	dial    DialFunc
	sink    Sink
	walker  *inventory.Walker
	builder labels.Builder
	cache   *labels.Cache

	onCycle func(*labels.CycleResult)
	state   atomic.Value
}

// Option is a functional option for configuring Collector instances.
type Option func(*Collector)

// WithCycleHook sets a function called after every emitted cycle.
func WithCycleHook(fn func(*labels.CycleResult)) Option {
	return func(c *Collector) {
		c.onCycle = fn
	}
}

// WithInterval overrides the wait between two cycles.
func WithInterval(interval time.Duration) Option {
	return func(c *Collector) {
		c.interval = interval
	}
}

// WithConnectTimeout overrides the per-endpoint connect timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Collector) {
		c.connectTimeout = timeout
	}
}

// New creates a Collector from the configuration.
func New(cfg *config.Config, dial DialFunc, sink Sink, opts ...Option) (*Collector, error) {
	if dial == nil || sink == nil {
		return nil, errors.New(errors.ErrCodeInternal, "collector requires a dial function and a sink")
	}

	classifier, err := inventory.NewClassifier(cfg.Detection.VirtMACPrefixes, cfg.Detection.SkipInterfaces)
	if err != nil {
		return nil, err
	}

	c := &Collector{
		endpoints:      append([]string(nil), cfg.Juju.ControllerEndpoints...),
		creds:          Credentials{Username: cfg.Juju.Username, Password: cfg.Juju.Password},
		interval:       cfg.Interval(),
		concurrency:    cfg.Exporter.ModelConcurrency,
		connectTimeout: defaults.ControllerConnectTimeout,
		dial:           dial,
		sink:           sink,
		walker:         inventory.NewWalker(classifier),
		builder:        labels.NewBuilder(cfg.Customer.Name, cfg.Customer.CloudName),
		cache:          labels.NewCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.setState(StateIdle)
	return c, nil
}

// State returns the step the collector is currently in.
func (c *Collector) State() State {
	return c.state.Load().(State)
}

func (c *Collector) setState(s State) {
	c.state.Store(s)
}

// Run loops Collect, Emit and a cancellable sleep until ctx is cancelled.
// It returns nil on cancellation and the fatal error otherwise.
func (c *Collector) Run(ctx context.Context) error {
	slog.Info("starting collection loop", "interval", c.interval.String(), "endpoints", c.endpoints)

	for {
		if _, err := c.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				slog.Info("collection loop stopped")
				return nil
			}
			return err
		}

		c.setState(StateSleeping)
		timer := time.NewTimer(c.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.setState(StateIdle)
			slog.Info("collection loop stopped")
			return nil
		case <-timer.C:
		}
	}
}

// RunOnce runs one cycle and emits its result.
func (c *Collector) RunOnce(ctx context.Context) (*labels.CycleResult, error) {
	res, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Emit(res); err != nil {
		return nil, err
	}
	if c.onCycle != nil {
		c.onCycle(res)
	}
	return res, nil
}

// Collect runs one cycle without emitting. It fails only when no session
// could be established or the models could not be listed; a model whose
// status cannot be fetched or walked contributes no hosts.
func (c *Collector) Collect(ctx context.Context) (*labels.CycleResult, error) {
	start := time.Now()
	log := slog.With("cycle", uuid.New().String())
	defer c.setState(StateIdle)

	res, err := c.collect(ctx, log)
	cycleDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		cyclesTotal.WithLabelValues(cycleStatusFailed).Inc()
		if ctx.Err() != nil {
			log.Info("collection cycle cancelled")
		} else {
			log.Error("collection cycle failed", "error", err)
		}
		return nil, err
	}

	cyclesTotal.WithLabelValues(cycleStatusSuccess).Inc()
	log.Info("collection cycle complete",
		"updates", len(res.Updates),
		"removals", len(res.Removals),
		"duration", time.Since(start).String())
	return res, nil
}

func (c *Collector) collect(ctx context.Context, log *slog.Logger) (*labels.CycleResult, error) {
	session, endpoint, models, err := c.connect(ctx, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn("failed to close controller session", "endpoint", endpoint, "error", cerr)
		}
	}()

	controllerInfo.Reset()
	controllerInfo.WithLabelValues(endpoint, session.ServerVersion()).Set(1)
	log.Debug("listed models", "count", len(models))

	c.setState(StateWalking)
	perModel := c.walkModels(ctx, session, models, log)

	// a cancelled cycle must not be diffed: every host would look removed
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.setState(StateDiffing)
	c.cache.BeginCycle()
	for _, records := range perModel {
		for _, rec := range records {
			c.cache.Record(rec, c.builder.Build(rec))
		}
	}
	res := c.cache.FinishCycle()
	return &res, nil
}

// connect tries every endpoint in order and returns the first session that
// could list its models. An endpoint failing to list models is closed and
// the next one is tried.
func (c *Collector) connect(ctx context.Context, log *slog.Logger) (Session, string, map[string]string, error) {
	var errs []error
	for _, endpoint := range c.endpoints {
		c.setState(StateConnecting)
		attemptCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
		session, err := c.dial(attemptCtx, endpoint, c.creds)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", nil, ctx.Err()
			}
			log.Warn("failed to connect to controller endpoint", "endpoint", endpoint, "error", err)
			errs = append(errs, err)
			continue
		}
		log.Debug("connected to controller", "endpoint", endpoint, "version", session.ServerVersion())

		c.setState(StateEnumerating)
		models, err := session.ListModels(ctx)
		if err == nil {
			return session, endpoint, models, nil
		}
		if cerr := session.Close(); cerr != nil {
			log.Warn("failed to close controller session", "endpoint", endpoint, "error", cerr)
		}
		if ctx.Err() != nil {
			return nil, "", nil, ctx.Err()
		}
		log.Warn("failed to list models", "endpoint", endpoint, "error", err)
		errs = append(errs, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to list models", err,
			map[string]any{"endpoint": endpoint}))
	}

	return nil, "", nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
		"no controller endpoint reachable", stderrors.Join(errs...),
		map[string]any{"endpoints": c.endpoints})
}

// walkModels returns the host records of every model, in model name order.
// Failed models yield a nil slice.
func (c *Collector) walkModels(ctx context.Context, session Session, models map[string]string, log *slog.Logger) [][]inventory.HostRecord {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	perModel := make([][]inventory.HostRecord, len(names))
	walk := func(ctx context.Context, i int) {
		name := names[i]
		records, err := c.walkModel(ctx, session, name, models[name])
		if err != nil {
			if ctx.Err() == nil {
				modelErrorsTotal.WithLabelValues(name).Inc()
				log.Warn("skipping model", "model", name, "error", err)
			}
			return
		}
		log.Debug("walked model", "model", name, "hosts", len(records))
		perModel[i] = records
	}

	if c.concurrency <= 1 {
		for i := range names {
			walk(ctx, i)
		}
		return perModel
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range names {
		g.Go(func() error {
			walk(gctx, i)
			return nil
		})
	}
	_ = g.Wait()
	return perModel
}

func (c *Collector) walkModel(ctx context.Context, session Session, name, modelUUID string) ([]inventory.HostRecord, error) {
	tree, err := session.FetchStatus(ctx, modelUUID)
	if err != nil {
		return nil, err
	}
	return c.walker.Walk(name, tree)
}

// Emit applies a cycle result to the sink: updates first, then removals.
func (c *Collector) Emit(res *labels.CycleResult) error {
	c.setState(StateEmitting)
	defer c.setState(StateIdle)

	if err := c.sink.EnsureGauge(MachineStateGauge, MachineStateHelp, labels.Names()); err != nil {
		return err
	}

	counts := map[string]int{
		inventory.KindMetal.String(): 0,
		inventory.KindKVM.String():   0,
		inventory.KindLXD.String():   0,
	}
	for _, u := range res.Updates {
		if err := c.sink.Set(MachineStateGauge, u.Labels, u.Value); err != nil {
			slog.Error("failed to set machine state", "hostname", u.Labels.Hostname, "error", err)
			continue
		}
		counts[u.Labels.Type]++
	}
	for _, ls := range res.Removals {
		if c.sink.Remove(MachineStateGauge, ls) {
			removedSeriesTotal.Inc()
			slog.Debug("removed stale machine series", "hostname", ls.Hostname, "model", ls.Model)
		}
	}

	for kind, n := range counts {
		hostsGauge.WithLabelValues(kind).Set(float64(n))
	}
	return nil
}

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

package juju

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bootstack/juju-exporter/pkg/defaults"
	"github.com/bootstack/juju-exporter/pkg/errors"
	"github.com/bootstack/juju-exporter/pkg/inventory"
	"github.com/bootstack/juju-exporter/pkg/version"
)

// Dialer opens sessions to controller endpoints that present a certificate
// signed by the configured CA.
type Dialer struct {
	serverName       string
	roots            *x509.CertPool
	handshakeTimeout time.Duration
}

// Option is a functional option for configuring Dialer instances.
type Option func(*Dialer)

// WithServerName overrides the TLS server name verified against the
// controller certificate.
func WithServerName(name string) Option {
	return func(d *Dialer) {
		d.serverName = name
	}
}

// WithHandshakeTimeout sets the websocket handshake timeout.
func WithHandshakeTimeout(timeout time.Duration) Option {
	return func(d *Dialer) {
		d.handshakeTimeout = timeout
	}
}

// NewDialer builds a Dialer trusting the PEM encoded CA certificate.
func NewDialer(caPEM string, opts ...Option) (*Dialer, error) {
	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM([]byte(caPEM)) {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"controller CA certificate contains no valid PEM certificate")
	}

	d := &Dialer{
		serverName:       DefaultServerName,
		roots:            roots,
		handshakeTimeout: defaults.ControllerHandshakeTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dial connects to the controller API at endpoint (host:port) and logs in.
func (d *Dialer) Dial(ctx context.Context, endpoint, username, password string) (*Session, error) {
	c, res, err := d.open(ctx, endpoint, "/api", username, password)
	if err != nil {
		return nil, err
	}

	s := &Session{
		dialer:        d,
		endpoint:      endpoint,
		username:      username,
		password:      password,
		controller:    c,
		serverVersion: res.ServerVersion,
		facades:       res.Facades,
	}

	v, err := version.ParseVersion(res.ServerVersion)
	switch {
	case err != nil:
		slog.Warn("controller reported an unparsable version",
			"endpoint", endpoint, "version", res.ServerVersion, "error", err)
	case !v.Supported():
		slog.Warn("controller is older than the minimum supported version",
			"endpoint", endpoint, "version", v.String(), "minimum", version.MinimumController.String())
	default:
		slog.Debug("connected to controller", "endpoint", endpoint, "version", v.String())
	}

	return s, nil
}

func (d *Dialer) open(ctx context.Context, endpoint, path, username, password string) (*conn, *loginResult, error) {
	u := url.URL{Scheme: "wss", Host: endpoint, Path: path}

	wd := websocket.Dialer{
		HandshakeTimeout: d.handshakeTimeout,
		TLSClientConfig: &tls.Config{
			RootCAs:    d.roots,
			ServerName: d.serverName,
			MinVersion: tls.VersionTLS12,
		},
	}

	ws, _, err := wd.DialContext(ctx, u.String(), nil)
	if err != nil {
		code := errors.ErrCodeUnavailable
		if ctx.Err() != nil {
			code = errors.ErrCodeTimeout
		}
		return nil, nil, errors.WrapWithContext(code, "failed to connect to controller", err,
			map[string]any{"endpoint": endpoint, "path": path})
	}

	c := newConn(ws, endpoint)
	var res loginResult
	err = c.call(ctx, facadeAdmin, adminFacadeVersion, "Login", loginRequest{
		AuthTag:       userTag(username),
		Credentials:   password,
		ClientVersion: ClientVersion,
	}, &res)
	if err != nil {
		_ = c.close()
		return nil, nil, err
	}
	return c, &res, nil
}

// Session is a logged-in controller connection.
type Session struct {
	dialer             *Dialer
	endpoint           string
	username, password string
	controller         *conn
	serverVersion      string
	facades            []facadeVersions
}

// Endpoint returns the host:port this session is connected to.
func (s *Session) Endpoint() string {
	return s.endpoint
}

// ServerVersion returns the version the controller reported at login.
func (s *Session) ServerVersion() string {
	return s.serverVersion
}

// ListModels returns the models visible to the user, keyed by name.
func (s *Session) ListModels(ctx context.Context) (map[string]string, error) {
	v, err := bestFacadeVersion(s.facades, facadeModelManager, modelManagerFacadeVersions)
	if err != nil {
		return nil, err
	}

	var res userModelList
	err = s.controller.call(ctx, facadeModelManager, v, "ListModels",
		entity{Tag: userTag(s.username)}, &res)
	if err != nil {
		return nil, err
	}

	models := make(map[string]string, len(res.UserModels))
	for _, um := range res.UserModels {
		if um.Model.Name == "" || um.Model.UUID == "" {
			continue
		}
		models[um.Model.Name] = um.Model.UUID
	}
	return models, nil
}

// FetchStatus opens a connection to the model, requests its full status and
// closes the model connection again.
func (s *Session) FetchStatus(ctx context.Context, modelUUID string) (*inventory.StatusTree, error) {
	if modelUUID == "" {
		return nil, errors.New(errors.ErrCodeNotFound, "model uuid is empty")
	}

	c, login, err := s.dialer.open(ctx, s.endpoint, "/model/"+modelUUID+"/api", s.username, s.password)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := c.close(); cerr != nil {
			slog.Debug("failed to close model connection", "model", modelUUID, "error", cerr)
		}
	}()

	v, err := bestFacadeVersion(login.Facades, facadeClient, clientFacadeVersions)
	if err != nil {
		return nil, err
	}

	var tree inventory.StatusTree
	if err := c.call(ctx, facadeClient, v, "FullStatus", statusParams{Patterns: []string{}}, &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}

// Close logs out by closing the controller connection. It is safe to call
// more than once.
func (s *Session) Close() error {
	return s.controller.close()
}

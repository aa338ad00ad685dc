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
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bootstack/juju-exporter/pkg/defaults"
	"github.com/bootstack/juju-exporter/pkg/errors"
)

// conn is one logged-in websocket connection. Calls are serialized.
type conn struct {
	ws       *websocket.Conn
	endpoint string

	mu     sync.Mutex
	nextID uint64
	closed bool
}

func newConn(ws *websocket.Conn, endpoint string) *conn {
	return &conn{ws: ws, endpoint: endpoint}
}

// call sends one request and waits for the response carrying the same
// request id. The call is bounded by the context deadline, or by
// defaults.ControllerRequestTimeout when the context has none.
func (c *conn) call(ctx context.Context, facade string, version int, method string, params, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New(errors.ErrCodeUnavailable, "connection is closed")
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaults.ControllerRequestTimeout)
		defer cancel()
	}
	deadline, _ := ctx.Deadline()
	_ = c.ws.SetWriteDeadline(deadline)
	_ = c.ws.SetReadDeadline(deadline)

	// unblock a pending read as soon as the caller gives up
	stop := context.AfterFunc(ctx, func() {
		_ = c.ws.SetReadDeadline(time.Now())
	})
	defer stop()

	c.nextID++
	req := request{
		RequestID: c.nextID,
		Type:      facade,
		Version:   version,
		Request:   method,
		Params:    params,
	}

	if err := c.ws.WriteJSON(req); err != nil {
		return c.transportError(ctx, req, err)
	}

	for {
		var resp response
		if err := c.ws.ReadJSON(&resp); err != nil {
			return c.transportError(ctx, req, err)
		}
		if resp.RequestID != req.RequestID {
			slog.Debug("ignoring response for another request",
				"endpoint", c.endpoint, "expected", req.RequestID, "got", resp.RequestID)
			continue
		}
		if resp.Error != "" {
			return rpcError(req, resp)
		}
		if result == nil || len(resp.Response) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.Response, result); err != nil {
			return errors.WrapWithContext(errors.ErrCodeMalformedData,
				"failed to decode response", err, callContext(c.endpoint, req))
		}
		return nil
	}
}

func (c *conn) transportError(ctx context.Context, req request, err error) error {
	code := errors.ErrCodeUnavailable
	var ne net.Error
	if ctx.Err() != nil || (stderrors.As(err, &ne) && ne.Timeout()) {
		code = errors.ErrCodeTimeout
	}
	return errors.WrapWithContext(code, "controller call failed", err, callContext(c.endpoint, req))
}

func (c *conn) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(defaults.ControllerCloseTimeout))
	return c.ws.Close()
}

func rpcError(req request, resp response) error {
	details := map[string]any{
		"facade":  req.Type,
		"request": req.Request,
	}
	if resp.ErrorCode != "" {
		details["errorCode"] = resp.ErrorCode
	}

	code := errors.ErrCodeInternal
	switch resp.ErrorCode {
	case errCodeUnauthorized:
		code = errors.ErrCodeUnauthorized
	case "not found":
		code = errors.ErrCodeNotFound
	}
	return errors.NewWithContext(code, resp.Error, details)
}

func callContext(endpoint string, req request) map[string]any {
	return map[string]any{
		"endpoint": endpoint,
		"facade":   req.Type,
		"request":  req.Request,
	}
}

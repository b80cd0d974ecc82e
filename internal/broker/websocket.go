// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

const (
	handshakeTimeout = 10 * time.Second
	writeWait        = 5 * time.Second
)

type wsDialer struct {
	endpoint string
	dialer   *websocket.Dialer
	logger   *logger.Logger
}

// NewWebSocketDialer returns a [Dialer] for endpoint, a ws:// or wss:// URL
// that already carries the app_id query parameter.
func NewWebSocketDialer(endpoint string, log *logger.Logger) Dialer {
	return &wsDialer{
		endpoint: endpoint,
		dialer: &websocket.Dialer{
			Proxy:            websocket.DefaultDialer.Proxy,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: log,
	}
}

func (d *wsDialer) Dial(ctx context.Context) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, d.endpoint, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
			resp.Body.Close()
		}
		d.logger.Err(err).Str("func", "*wsDialer.Dial").Int("status", status).Msg("error dialing broker")
		return nil, fmt.Errorf("error dialing broker: %w", err)
	}
	d.logger.Debug().Str("func", "*wsDialer.Dial").Msg("broker connection opened")

	return &wsConn{conn: conn}, nil
}

type wsConn struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func (c *wsConn) Send(req Request) error {
	if c.closed.Load() {
		return ErrConnectionClosed
	}

	data, err := Encode(req)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err = c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("error setting write deadline: %w", err)
	}
	if err = c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("error writing broker request: %w", err)
	}
	return nil
}

func (c *wsConn) Receive() (Response, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		if c.closed.Load() {
			return nil, ErrConnectionClosed
		}
		return nil, fmt.Errorf("error reading broker message: %w", err)
	}

	return Decode(data)
}

// Close sends a normal-closure frame and releases the socket. It is safe to
// call more than once.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)

		c.writeMu.Lock()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		c.writeMu.Unlock()

		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

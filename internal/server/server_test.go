// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/handler"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/service"
	"github.com/MKhiriev/go-trade-dash/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionStub struct{}

func (versionStub) GetAppVersion(context.Context) string { return "9.9.9" }

type spyWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (w *spyWorker) Start(context.Context) { w.started.Store(true) }
func (w *spyWorker) Stop()                 { w.stopped.Store(true) }

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: versionStub{}}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	w := &spyWorker{}
	srv, err := NewServer(handlers, workers.NewWorkers(w), cfg, logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.(*server).listener = ln

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "9.9.9", string(body))
	assert.True(t, w.started.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, w.stopped.Load())
}

func TestServer_ListenErrorIsReturned(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := config.Server{HTTPAddress: occupied.Addr().String()}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}

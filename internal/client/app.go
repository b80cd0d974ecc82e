// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/adapter"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

var ErrNilDependency = errors.New("client: nil dependency")

const versionCheckTimeout = 5 * time.Second

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	version, err := a.adapter.Version(checkCtx)
	cancel()
	if err != nil {
		// the TUI reports the outage itself and lets the user retry
		a.logger.Warn().Err(err).Msg("dashboard service unreachable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to dashboard service")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-trade-dash/internal/adapter"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoAdapter = errors.New("tui: server adapter is nil")

type TUI struct {
	adapter   adapter.ServerAdapter
	clipboard Clipboard
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}
	return &TUI{adapter: serverAdapter, clipboard: systemClipboard{}, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.adapter, t.clipboard, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

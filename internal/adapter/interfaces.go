// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the terminal client's connection to the dashboard
// service.
//
// [ServerAdapter] hides the transport from the TUI. The only implementation is
// the REST one ([NewHTTPServerAdapter]). Non-2xx responses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrBadGateway] when the broker failed).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-trade-dash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the dashboard HTTP API.
type ServerAdapter interface {
	// Version returns the service version string.
	Version(ctx context.Context) (string, error)

	// LoginURL returns the broker OAuth URL the user has to open in a browser.
	LoginURL(ctx context.Context) (string, error)

	// Session reports whether a broker session exists and, if so, who it
	// belongs to.
	Session(ctx context.Context) (models.SessionState, error)

	// Logout clears the session on the service.
	Logout(ctx context.Context) error

	// Accounts returns the accounts cached by the service.
	Accounts(ctx context.Context) (models.Accounts, error)

	// Sync asks the service to refresh accounts and balances from the broker
	// and returns the result.
	Sync(ctx context.Context) (models.Accounts, error)
}

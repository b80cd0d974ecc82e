// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the dashboard service.
type Server interface {
	// RunServer starts serving and blocks until SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the HTTP server and the workers.
	Shutdown()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing background workers.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has returned.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) { ... }
//	func (w *MyWorker) Stop()                     { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

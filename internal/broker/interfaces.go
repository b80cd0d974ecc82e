// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import "context"

// Dialer opens broker connections.
type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// Conn is a single broker socket. Send and Receive may be called from
// different goroutines; Close unblocks a pending Receive.
type Conn interface {
	Send(req Request) error
	Receive() (Response, error)
	Close() error
}

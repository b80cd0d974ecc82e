// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages shared by the terminal
// client screens.
package app

const (
	// MsgSessionRejected is shown when the service answers 401: the broker
	// token is missing, expired or was rejected by authorize.
	MsgSessionRejected = "Session expired or rejected by the broker, log in again"

	// MsgBrokerUnavailable prefixes errors caused by the broker socket.
	MsgBrokerUnavailable = "Broker unavailable"

	// MsgBrokerTimeout is shown when a sync ran out of time.
	MsgBrokerTimeout = "Broker did not answer in time"

	// MsgServiceUnavailable is shown when the dashboard service cannot be
	// reached at all.
	MsgServiceUnavailable = "No network or dashboard service unavailable"

	// MsgClipboardUnavailable prefixes clipboard failures.
	MsgClipboardUnavailable = "Clipboard unavailable"

	// MsgNotLoggedIn introduces the login URL.
	MsgNotLoggedIn = "Not logged in. Open this URL in a browser to connect your broker account:"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-trade-dash/internal/adapter"
	"github.com/MKhiriev/go-trade-dash/internal/app"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionRejected
	case errors.Is(err, adapter.ErrBadGateway):
		return app.MsgBrokerUnavailable + ": " + err.Error()
	case errors.Is(err, adapter.ErrGatewayTimeout):
		return app.MsgBrokerTimeout
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServiceUnavailable
	}

	return err.Error()
}

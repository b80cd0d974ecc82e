// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/handler/http"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metrics may be
// nil, in which case /metrics is not served.
func NewHandlers(services *service.Services, metrics nethttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, cfg, logger),
	}, nil
}

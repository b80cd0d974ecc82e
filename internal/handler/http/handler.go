// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves /metrics; the route is not registered when nil.
	metrics http.Handler

	// loginLimiter throttles admin login attempts per client IP. Nil disables
	// the limit.
	loginLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      metrics,
		loginLimiter: newIPRateLimiter(cfg.LoginRatePerMinute),
		logger:       logger,
	}
}

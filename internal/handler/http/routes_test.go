// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersEveryRoute(t *testing.T) {
	router, _ := newTestRouter(http.NotFoundHandler(), 0)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/auth/login-url"},
		{http.MethodGet, "/auth/callback?token=x"},
		{http.MethodGet, "/api/session"},
		{http.MethodPost, "/api/session/logout"},
		{http.MethodGet, "/api/accounts"},
		{http.MethodPost, "/api/accounts/sync"},
		{http.MethodPost, "/api/admin/login"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPost, "/api/admin/users"},
		{http.MethodPost, "/api/admin/users/42/toggle"},
		{http.MethodDelete, "/api/admin/users/42"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}")))
			assert.NotEqual(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestInit_UnknownRouteAndMethod(t *testing.T) {
	router, _ := newTestRouter(nil, 0)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rr.Body.String())

	rr = serve(router, httptest.NewRequest(http.MethodDelete, "/api/version", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInit_AdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(nil, 0)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	rr = serve(router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.RecordBalanceMerged()

	router, _ := newTestRouter(metrics.Handler(reg), 0)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "trade_dash_balances_merged_total 1")

	router, _ = newTestRouter(nil, 0)
	rr = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	services, _ := newTestServices()
	services.AppInfoService = nil
	router := NewHandler(services, nil, config.Server{}, logger.Nop()).Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

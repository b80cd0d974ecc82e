// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/utils"
	"github.com/MKhiriev/go-trade-dash/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

type loginURLResponse struct {
	URL string `json:"url"`
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may be a full URL or a bare host:port, in which case
// http is assumed.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) LoginURL(ctx context.Context) (string, error) {
	var body loginURLResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/auth/login-url")
	if err != nil {
		return "", fmt.Errorf("login url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.URL, nil
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionState, error) {
	var state models.SessionState

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&state).
		Get("/api/session")
	if err != nil {
		return models.SessionState{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionState{}, err
	}

	return state, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/session/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Accounts(ctx context.Context) (models.Accounts, error) {
	return h.accounts(ctx, "GET", "/api/accounts")
}

func (h *httpServerAdapter) Sync(ctx context.Context) (models.Accounts, error) {
	h.logger.Debug().Msg("requesting account sync")
	return h.accounts(ctx, "POST", "/api/accounts/sync")
}

func (h *httpServerAdapter) accounts(ctx context.Context, method, path string) (models.Accounts, error) {
	var accounts models.Accounts

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if accounts == nil {
		accounts = models.Accounts{}
	}
	return accounts, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/service"
	"github.com/MKhiriev/go-trade-dash/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,
	ErrTooManyRequests:            http.StatusTooManyRequests,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoTokenInCallback:   http.StatusBadRequest,
	service.ErrNoSessionToken:      http.StatusUnauthorized,
	service.ErrAuthorizeRejected:   http.StatusUnauthorized,
	service.ErrAccountListRejected: http.StatusBadGateway,
	service.ErrBrokerTransport:     http.StatusBadGateway,
	service.ErrAdminLoginDisabled:  http.StatusForbidden,
	service.ErrWrongCredentials:    http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrUserAlreadyExists:   http.StatusConflict,

	broker.ErrMalformedMessage:  http.StatusBadGateway,
	broker.ErrUnexpectedMessage: http.StatusBadGateway,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with the mapped status. Internal errors are
// reported by status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusGatewayTimeout {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the admin auth middleware
	// when the request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrRouteNotFound     = errors.New("route not found")
	ErrMethodNotAllowed  = errors.New("method not allowed")
)

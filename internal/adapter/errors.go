// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrInvalidAddress      = errors.New("address must include host and scheme")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("broker unavailable")
	ErrGatewayTimeout      = errors.New("broker timeout")
	ErrInternalServerError = errors.New("internal server error")
)

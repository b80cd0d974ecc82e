// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMessage is returned for frames that are not valid JSON or
	// whose payload does not match the announced msg_type.
	ErrMalformedMessage = errors.New("malformed broker message")

	// ErrUnexpectedMessage is returned for an unknown msg_type or a response
	// that carries neither a payload nor an error.
	ErrUnexpectedMessage = errors.New("unexpected broker message")

	// ErrConnectionClosed is returned by Send and Receive after Close.
	ErrConnectionClosed = errors.New("broker connection closed")
)

// APIError is the error object the broker attaches to a rejected request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("broker error %s: %s", e.Code, e.Message)
}

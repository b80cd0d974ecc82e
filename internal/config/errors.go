// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a config view is incomplete.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBrokerConfigs indicates missing broker endpoint, app id or
	// OAuth parameters.
	ErrInvalidBrokerConfigs = errors.New("invalid broker configuration")
	// ErrInvalidStorageConfigs indicates an empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates admin login enabled without a token
	// signing key, or a non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates a missing service address or timeout
	// on the client side.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

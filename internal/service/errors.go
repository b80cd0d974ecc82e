// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// account sync
	ErrNoSessionToken      = errors.New("no session token stored")
	ErrBrokerTransport     = errors.New("broker transport failure")
	ErrAuthorizeRejected   = errors.New("broker rejected authorize request")
	ErrAccountListRejected = errors.New("broker rejected account list request")
	ErrSessionNotStored    = errors.New("session could not be stored")

	// OAuth
	ErrNoTokenInCallback = errors.New("no token in OAuth callback")

	// admin
	ErrAdminLoginDisabled = errors.New("admin login is disabled")
	ErrWrongCredentials   = errors.New("wrong admin credentials")
	ErrInvalidToken       = errors.New("invalid admin token")
	ErrTokenIsExpired     = errors.New("token is expired")

	// user registry
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this e-mail already exists")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// context keys, JSON responses, client IP extraction, the resty HTTP client,
// admin JWT generation and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AdminEmailCtxKey stores the e-mail of the authenticated admin. It is set by
// the admin auth middleware.
var AdminEmailCtxKey = contextKey("adminEmail")

// WithAdminEmail returns a copy of ctx carrying email.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AdminEmailCtxKey, email)
}

// GetAdminEmailFromContext returns the admin e-mail and whether it was set.
func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailCtxKey).(string)
	return email, ok && email != ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-trade-dash/internal/store"
)

type sessionGuard struct {
	session store.SessionRepository
}

func NewSessionGuard(session store.SessionRepository) SessionGuard {
	return &sessionGuard{session: session}
}

// IsAuthenticated reports whether a non-empty broker token is stored.
func (g *sessionGuard) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := g.session.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// IsAdmin reports whether a non-empty admin session flag is stored.
func (g *sessionGuard) IsAdmin(ctx context.Context) (bool, error) {
	flag, err := g.session.AdminSession(ctx)
	if err != nil {
		return false, err
	}
	return flag != "", nil
}

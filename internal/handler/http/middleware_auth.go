// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-dash/internal/utils"
)

// adminAuth enforces admin JWT authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// with [service.AdminService.ParseToken] and stores the admin e-mail in the
// request context under [utils.AdminEmailCtxKey].
//
// The request is rejected with 401 when:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]);
//   - the token is expired, invalid or not the current admin session.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AdminService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAdminEmail(ctx, token.Email())))
	})
}

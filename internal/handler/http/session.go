// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-dash/internal/utils"
)

type loginURLResponse struct {
	URL string `json:"url"`
}

func (h *Handler) getLoginURL(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, loginURLResponse{URL: h.services.AuthService.LoginURL()}, http.StatusOK)
}

// authCallback is the OAuth redirect target. It stores the token from the
// query string, runs the initial sync and answers with the resulting session.
func (h *Handler) authCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AuthService.HandleCallback(ctx, r.URL.Query().Get("token")); err != nil {
		writeError(w, r, err)
		return
	}

	state, err := h.services.AuthService.Session(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.services.AuthService.Session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/utils"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/go-chi/chi/v5"
)

type adminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var credentials models.AdminCredentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	token, err := h.services.AdminService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := adminLoginResponse{Token: token.String()}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// listUsers supports the q, page and per_page query parameters.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, err := intQueryParam(params.Get("page"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	perPage, err := intQueryParam(params.Get("per_page"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UserService.List(r.Context(), models.UserQuery{
		Search:  params.Get("q"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.ManagedUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.UserService.Create(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) toggleUserStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// intQueryParam parses an optional integer parameter; empty means zero.
func intQueryParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQueryParam, raw)
	}
	return v, nil
}

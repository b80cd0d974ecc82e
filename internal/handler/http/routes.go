// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/auth/callback", h.authCallback)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/version", h.getServerVersion)
		r.Get("/auth/login-url", h.getLoginURL)

		r.Get("/session", h.getSession)
		r.Post("/session/logout", h.logout)

		r.Get("/accounts", h.getAccounts)
		r.Post("/accounts/sync", h.syncAccounts)

		r.With(h.withLoginRateLimit).Post("/admin/login", h.adminLogin)

		// admin routes require a bearer JWT
		r.Group(func(r chi.Router) {
			r.Use(h.adminAuth)
			r.Get("/admin/users", h.listUsers)
			r.Post("/admin/users", h.createUser)
			r.Post("/admin/users/{id}/toggle", h.toggleUserStatus)
			r.Delete("/admin/users/{id}", h.deleteUser)
		})
	})

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}

// methodNotAllowed answers 405 for a known path used with an unsupported
// method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

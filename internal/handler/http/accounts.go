// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trade-dash/internal/utils"
)

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountSyncService.Accounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, accounts, http.StatusOK)
}

// syncAccounts runs a sync with the stored token and returns the refreshed
// collection.
func (h *Handler) syncAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AccountSyncService.SyncStored(ctx); err != nil {
		writeError(w, r, err)
		return
	}

	accounts, err := h.services.AccountSyncService.Accounts(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, accounts, http.StatusOK)
}

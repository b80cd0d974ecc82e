// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/charmbracelet/bubbles/table"
)

// unknownBalance is shown until the broker reported a balance.
const unknownBalance = "—"

var accountColumns = []table.Column{
	{Title: "Login ID", Width: 14},
	{Title: "Type", Width: 6},
	{Title: "Currency", Width: 8},
	{Title: "Balance", Width: 16},
}

func formatBalance(a models.Account) string {
	if !a.HasBalance() {
		return unknownBalance
	}
	return a.Balance.Decimal.StringFixed(2)
}

func accountRows(accounts models.Accounts) []table.Row {
	rows := make([]table.Row, 0, len(accounts))
	for _, a := range accounts {
		currency := a.Currency
		if currency == "" {
			currency = "-"
		}
		rows = append(rows, table.Row{a.LoginID, string(a.Kind), currency, formatBalance(a)})
	}
	return rows
}

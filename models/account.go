// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind tells demo (virtual money) accounts apart from real ones.
type AccountKind string

const (
	AccountKindDemo AccountKind = "demo"
	AccountKindReal AccountKind = "real"
)

// AccountKindFromVirtual maps the broker's is_virtual flag to an [AccountKind].
func AccountKindFromVirtual(isVirtual int) AccountKind {
	if isVirtual != 0 {
		return AccountKindDemo
	}
	return AccountKindReal
}

// Account is the locally cached view of one broker trading account.
//
// Balance stays invalid (JSON null) until the broker has answered at least one
// balance request for LoginID. Consumers must treat an invalid balance as
// unknown, never as zero.
type Account struct {
	// LoginID is the broker account identifier (e.g. "CR123456", "VRTC654321").
	LoginID string `json:"loginid"`

	// Kind is demo or real.
	Kind AccountKind `json:"kind"`

	// Currency is the ISO currency code reported by the broker. It may be empty
	// for accounts that have no currency set yet.
	Currency string `json:"currency"`

	// Balance is the last reported balance.
	Balance decimal.NullDecimal `json:"balance"`
}

// HasBalance reports whether a balance response was merged into the account.
func (a Account) HasBalance() bool {
	return a.Balance.Valid
}

// Accounts is the collection of cached accounts, keyed by LoginID.
type Accounts []Account

// Index returns the position of the account with loginID, or -1.
func (a Accounts) Index(loginID string) int {
	for i := range a {
		if a[i].LoginID == loginID {
			return i
		}
	}
	return -1
}

// MergeBalance sets balance and currency on the account identified by
// loginID. It never creates a new record: false is returned when no account
// matches.
func (a Accounts) MergeBalance(loginID string, balance decimal.Decimal, currency string) bool {
	i := a.Index(loginID)
	if i < 0 {
		return false
	}

	a[i].Balance = decimal.NewNullDecimal(balance)
	if currency != "" {
		a[i].Currency = currency
	}
	return true
}

// Clone returns a copy that can be mutated without touching the receiver.
func (a Accounts) Clone() Accounts {
	if a == nil {
		return nil
	}
	out := make(Accounts, len(a))
	copy(out, a)
	return out
}

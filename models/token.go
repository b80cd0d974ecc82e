// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminToken wraps the JWT issued to an administrator after a successful
// password login.
//
// It embeds [jwt.RegisteredClaims] so it can be passed straight to
// jwt.ParseWithClaims; the subject claim carries the admin e-mail.
type AdminToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
}

// Email returns the admin e-mail stored in the subject claim.
func (t *AdminToken) Email() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
func (t *AdminToken) String() string {
	return t.SignedString
}

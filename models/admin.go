// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdminCredentials is the body of an admin login request.
type AdminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

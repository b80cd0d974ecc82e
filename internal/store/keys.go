// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Fixed storage keys.
const (
	KeyToken        = "deriv_token"
	KeyAccounts     = "deriv_accounts"
	KeyUserInfo     = "deriv_user_info"
	KeyAdminSession = "admin_session"
	KeyManagedUsers = "admin_users"
)

// sessionKeys are removed together on logout.
var sessionKeys = []string{KeyToken, KeyAccounts, KeyUserInfo, KeyAdminSession}

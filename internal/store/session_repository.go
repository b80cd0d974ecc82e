// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/models"
)

// sessionRepository maps the broker session onto fixed storage keys.
//
// Reads tolerate absent keys (zero values, nil error) and malformed JSON,
// which is logged and treated as absent. Only storage failures are returned.
type sessionRepository struct {
	storage Storage
	logger  *logger.Logger
}

func NewSessionRepository(storage Storage, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		storage: storage,
		logger:  logger,
	}
}

// Token returns the stored broker token or "" when there is none.
func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	return r.getString(ctx, KeyToken)
}

func (r *sessionRepository) SetToken(ctx context.Context, token string) error {
	return r.storage.Set(ctx, KeyToken, token)
}

// Accounts returns the stored collection, or an empty one when the key is
// absent or holds malformed JSON.
func (r *sessionRepository) Accounts(ctx context.Context) (models.Accounts, error) {
	raw, err := r.getString(ctx, KeyAccounts)
	if err != nil {
		return models.Accounts{}, err
	}
	if raw == "" {
		return models.Accounts{}, nil
	}

	var accounts models.Accounts
	if err = json.Unmarshal([]byte(raw), &accounts); err != nil {
		r.logger.Warn().Err(err).Str("func", "*sessionRepository.Accounts").Msg("stored accounts are malformed, treating as empty")
		return models.Accounts{}, nil
	}
	if accounts == nil {
		accounts = models.Accounts{}
	}

	return accounts, nil
}

// SaveAccounts replaces the whole stored collection.
func (r *sessionRepository) SaveAccounts(ctx context.Context, accounts models.Accounts) error {
	if accounts == nil {
		accounts = models.Accounts{}
	}

	payload, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("error encoding accounts: %w", err)
	}

	return r.storage.Set(ctx, KeyAccounts, string(payload))
}

// UserInfo returns nil when nothing (or nothing parseable) is stored.
func (r *sessionRepository) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	raw, err := r.getString(ctx, KeyUserInfo)
	if err != nil || raw == "" {
		return nil, err
	}

	var info models.UserInfo
	if err = json.Unmarshal([]byte(raw), &info); err != nil {
		r.logger.Warn().Err(err).Str("func", "*sessionRepository.UserInfo").Msg("stored user info is malformed, treating as absent")
		return nil, nil
	}

	return &info, nil
}

func (r *sessionRepository) SaveUserInfo(ctx context.Context, info models.UserInfo) error {
	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("error encoding user info: %w", err)
	}

	return r.storage.Set(ctx, KeyUserInfo, string(payload))
}

// AdminSession returns the stored admin token or "" when there is none.
func (r *sessionRepository) AdminSession(ctx context.Context) (string, error) {
	return r.getString(ctx, KeyAdminSession)
}

func (r *sessionRepository) SetAdminSession(ctx context.Context, token string) error {
	return r.storage.Set(ctx, KeyAdminSession, token)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.storage.Remove(ctx, sessionKeys...)
}

func (r *sessionRepository) getString(ctx context.Context, key string) (string, error) {
	value, err := r.storage.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", key, err)
	}
	return value, nil
}

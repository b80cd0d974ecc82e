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

type managedUserRepository struct {
	storage Storage
	logger  *logger.Logger
}

func NewManagedUserRepository(storage Storage, logger *logger.Logger) ManagedUserRepository {
	return &managedUserRepository{
		storage: storage,
		logger:  logger,
	}
}

// ManagedUsers returns the stored registry; absent or malformed state reads
// as an empty registry.
func (r *managedUserRepository) ManagedUsers(ctx context.Context) ([]models.ManagedUser, error) {
	raw, err := r.storage.Get(ctx, KeyManagedUsers)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.ManagedUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", KeyManagedUsers, err)
	}

	var users []models.ManagedUser
	if err = json.Unmarshal([]byte(raw), &users); err != nil {
		r.logger.Warn().Err(err).Str("func", "*managedUserRepository.ManagedUsers").Msg("stored users are malformed, treating as empty")
		return []models.ManagedUser{}, nil
	}
	if users == nil {
		users = []models.ManagedUser{}
	}

	return users, nil
}

func (r *managedUserRepository) SaveManagedUsers(ctx context.Context, users []models.ManagedUser) error {
	if users == nil {
		users = []models.ManagedUser{}
	}

	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("error encoding users: %w", err)
	}

	return r.storage.Set(ctx, KeyManagedUsers, string(payload))
}

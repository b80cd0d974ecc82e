// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/models"
)

const (
	defaultUsersPerPage = 10
	maxUsersPerPage     = 100
)

// userService manages the admin user registry. Every mutation is a
// read-modify-write of the whole collection under mu.
type userService struct {
	repository store.ManagedUserRepository
	ids        IDGenerator
	now        func() time.Time

	mu sync.Mutex

	logger *logger.Logger
}

func NewUserService(repository store.ManagedUserRepository, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// List filters users by name or e-mail and returns the requested page.
// Page numbers start at 1; a page past the end is empty.
func (s *userService) List(ctx context.Context, query models.UserQuery) (models.UserPage, error) {
	users, err := s.repository.ManagedUsers(ctx)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("error reading users: %w", err)
	}

	page, perPage := query.Page, query.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultUsersPerPage
	}
	if perPage > maxUsersPerPage {
		perPage = maxUsersPerPage
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]models.ManagedUser, 0, len(users))
	for _, u := range users {
		if search == "" ||
			strings.Contains(strings.ToLower(u.Name), search) ||
			strings.Contains(strings.ToLower(u.Email), search) {
			filtered = append(filtered, u)
		}
	}

	total := len(filtered)
	from, to := total, total
	// compare before multiplying: (page-1)*perPage overflows for huge pages
	if page-1 < (total+perPage-1)/perPage {
		from = (page - 1) * perPage
		to = min(from+perPage, total)
	}

	return models.UserPage{
		Users:   filtered[from:to],
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   (total + perPage - 1) / perPage,
	}, nil
}

// Create adds a user. Name and a plausible e-mail are required; e-mails are
// unique case-insensitively. Status defaults to active, account type to demo.
func (s *userService) Create(ctx context.Context, user models.ManagedUser) (models.ManagedUser, error) {
	log := logger.FromContext(ctx)

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" || !strings.Contains(user.Email, "@") {
		log.Error().Str("name", user.Name).Str("email", user.Email).Msg("invalid user data provided")
		return models.ManagedUser{}, ErrInvalidDataProvided
	}

	switch user.Status {
	case "":
		user.Status = models.UserStatusActive
	case models.UserStatusActive, models.UserStatusInactive, models.UserStatusSuspended:
	default:
		return models.ManagedUser{}, ErrInvalidDataProvided
	}

	switch user.AccountType {
	case "":
		user.AccountType = models.UserAccountDemo
	case models.UserAccountReal, models.UserAccountDemo, models.UserAccountBoth:
	default:
		return models.ManagedUser{}, ErrInvalidDataProvided
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repository.ManagedUsers(ctx)
	if err != nil {
		return models.ManagedUser{}, fmt.Errorf("error reading users: %w", err)
	}

	if slices.ContainsFunc(users, func(u models.ManagedUser) bool { return strings.EqualFold(u.Email, user.Email) }) {
		return models.ManagedUser{}, ErrUserAlreadyExists
	}

	user.ID = s.ids.Generate()
	user.RegisteredAt = s.now().UTC()
	user.LastLoginAt = nil

	if err = s.repository.SaveManagedUsers(ctx, append(users, user)); err != nil {
		log.Err(err).Msg("error saving users")
		return models.ManagedUser{}, fmt.Errorf("error saving users: %w", err)
	}

	return user, nil
}

// ToggleStatus flips active to suspended; any other status becomes active.
func (s *userService) ToggleStatus(ctx context.Context, id string) (models.ManagedUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repository.ManagedUsers(ctx)
	if err != nil {
		return models.ManagedUser{}, fmt.Errorf("error reading users: %w", err)
	}

	i := slices.IndexFunc(users, func(u models.ManagedUser) bool { return u.ID == id })
	if i < 0 {
		return models.ManagedUser{}, ErrUserNotFound
	}

	if users[i].Status == models.UserStatusActive {
		users[i].Status = models.UserStatusSuspended
	} else {
		users[i].Status = models.UserStatusActive
	}

	if err = s.repository.SaveManagedUsers(ctx, users); err != nil {
		return models.ManagedUser{}, fmt.Errorf("error saving users: %w", err)
	}

	return users[i], nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repository.ManagedUsers(ctx)
	if err != nil {
		return fmt.Errorf("error reading users: %w", err)
	}

	i := slices.IndexFunc(users, func(u models.ManagedUser) bool { return u.ID == id })
	if i < 0 {
		return ErrUserNotFound
	}

	if err = s.repository.SaveManagedUsers(ctx, slices.Delete(users, i, i+1)); err != nil {
		return fmt.Errorf("error saving users: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/internal/utils"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// adminService is the concrete implementation of AdminService.
// It checks the single configured admin account and manages the admin JWT.
type adminService struct {
	session store.SessionRepository
	metrics metrics.Recorder

	// email and passwordHash identify the only admin account. An empty
	// email disables admin login.
	email        string
	passwordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAdminService(session store.SessionRepository, recorder metrics.Recorder, cfg config.App, logger *logger.Logger) AdminService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &adminService{
		session:       session,
		metrics:       recorder,
		email:         cfg.AdminEmail,
		passwordHash:  []byte(cfg.AdminPasswordHash),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login checks credentials against the configured admin e-mail
// (case-insensitive) and bcrypt hash, issues a JWT and stores it as the
// admin session flag.
//
// Returns:
//   - ErrAdminLoginDisabled if no admin e-mail is configured.
//   - ErrInvalidDataProvided if e-mail or password is empty.
//   - ErrWrongCredentials if either does not match.
func (a *adminService) Login(ctx context.Context, credentials models.AdminCredentials) (models.AdminToken, error) {
	log := logger.FromContext(ctx)

	if a.email == "" {
		return models.AdminToken{}, ErrAdminLoginDisabled
	}

	if credentials.Email == "" || credentials.Password == "" {
		return models.AdminToken{}, ErrInvalidDataProvided
	}

	if !strings.EqualFold(strings.TrimSpace(credentials.Email), a.email) {
		log.Warn().Str("email", credentials.Email).Msg("admin login with unknown e-mail")
		a.metrics.RecordAdminLogin(false)
		return models.AdminToken{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(credentials.Password)); err != nil {
		log.Warn().Str("email", credentials.Email).Msg("admin login with wrong password")
		a.metrics.RecordAdminLogin(false)
		return models.AdminToken{}, ErrWrongCredentials
	}

	token, err := utils.GenerateAdminToken(a.tokenIssuer, a.email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating admin token")
		return models.AdminToken{}, fmt.Errorf("error generating admin token: %w", err)
	}

	if err = a.session.SetAdminSession(ctx, token.String()); err != nil {
		log.Err(err).Msg("error storing admin session")
		return models.AdminToken{}, fmt.Errorf("error storing admin session: %w", err)
	}

	a.metrics.RecordAdminLogin(true)
	return token, nil
}

// ParseToken validates tokenString and checks it is the admin session
// currently stored; a token from before a logout or a newer login is
// rejected.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.AdminToken, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseAdminToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AdminToken{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("admin token rejected")
		return models.AdminToken{}, ErrInvalidToken
	}

	stored, err := a.session.AdminSession(ctx)
	if err != nil {
		log.Err(err).Msg("error reading admin session")
		return models.AdminToken{}, fmt.Errorf("error reading admin session: %w", err)
	}
	if stored != tokenString {
		return models.AdminToken{}, ErrInvalidToken
	}

	return token, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-trade-dash/models"
)

// GenerateAdminToken creates an HMAC-SHA256 signed JWT for the admin e-mail.
//
// The token carries the standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the admin e-mail
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateAdminToken("go-trade-dash", "admin@example.com", time.Hour, "secret")
func GenerateAdminToken(issuer, email string, tokenDuration time.Duration, signKey string) (models.AdminToken, error) {
	if issuer == "" || email == "" || tokenDuration <= 0 || signKey == "" {
		return models.AdminToken{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.AdminToken{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseAdminToken verifies the signature, issuer and expiry of
// tokenString and returns its claims. Only HS256 is accepted.
//
// Expired tokens fail with an error wrapping jwt.ErrTokenExpired.
func ValidateAndParseAdminToken(tokenString, tokenSignKey, tokenIssuer string) (models.AdminToken, error) {
	parsed := &models.AdminToken{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.AdminToken{}, errors.New("empty subject error")
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

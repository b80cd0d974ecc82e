// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

// Backend identifies a [Storage] implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

// Storages groups the raw key-value storage and the typed repositories built
// on top of it.
type Storages struct {
	Storage      Storage
	Session      SessionRepository
	ManagedUsers ManagedUserRepository
}

// NewStorages opens the backend selected by cfg.DSN and wires the
// repositories over it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storage, err := NewStorage(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	return newStorages(storage, log), nil
}

func newStorages(storage Storage, log *logger.Logger) *Storages {
	return &Storages{
		Storage:      storage,
		Session:      NewSessionRepository(storage, log),
		ManagedUsers: NewManagedUserRepository(storage, log),
	}
}

// Close releases the underlying backend.
func (s *Storages) Close() error {
	return s.Storage.Close()
}

// NewStorage opens the backend for dsn. SQL backends are migrated before
// being returned.
func NewStorage(ctx context.Context, dsn string, log *logger.Logger) (Storage, error) {
	backend, target, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("func", "NewStorage").Str("backend", string(backend)).Msg("opening session storage")

	switch backend {
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendFile:
		return NewFileStorage(target)
	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, target, log)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, target, log)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	case BackendRedis:
		return NewRedisStorage(ctx, target, log)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)
}

func migrated(db *DB) (Storage, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQLStorage(db), nil
}

// ParseDSN returns the backend for dsn and the backend-specific target: a
// file path for file and sqlite, the DSN itself for postgres and redis.
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case lower == "" || lower == "memory" || lower == "memory://" || lower == ":memory:":
		return BackendMemory, "", nil
	case strings.HasPrefix(lower, "file://"):
		return BackendFile, dsn[len("file://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		return BackendSQLite, dsn[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(lower, "redis://"), strings.HasPrefix(lower, "rediss://"):
		return BackendRedis, dsn, nil
	case strings.HasSuffix(lower, ".json"):
		return BackendFile, dsn, nil
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return BackendSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)
}

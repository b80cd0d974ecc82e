// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrKeyNotFound is returned by [Storage.Get] when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedDSN is returned when a storage DSN matches no backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrStorageClosed is returned by operations on a closed storage.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a value row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan kv row")
)

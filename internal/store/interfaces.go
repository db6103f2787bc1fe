// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/search-visuals/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned UserID.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SearchHistoryRepository is the append-only log of searches.
type SearchHistoryRepository interface {
	// RecordSearch appends one entry. SearchTime is assigned by the database.
	RecordSearch(ctx context.Context, entry models.SearchHistoryEntry) error

	// ListHistory returns every entry of userID, newest first. The result
	// is empty, never nil, when nothing was recorded.
	ListHistory(ctx context.Context, userID int64) ([]models.SearchHistoryEntry, error)
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

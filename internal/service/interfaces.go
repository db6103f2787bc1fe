// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of search-visuals: account
// signup and login, media search with history recording, and the health
// report. Handlers talk to it only through the interfaces declared here.
package service

import (
	"context"

	"github.com/MKhiriev/search-visuals/models"
)

type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.Credentials, error)

	// ResolveUserID returns the user identifier the presented credential
	// stands for, as the decimal string the search and history requests carry.
	ResolveUserID(ctx context.Context, presented models.PresentedCredentials) (string, error)
}

// CredentialIssuer decides what a client receives after login and how the
// client proves its identity afterwards.
type CredentialIssuer interface {
	Issue(ctx context.Context, user models.User) (models.Credentials, error)
	Resolve(ctx context.Context, presented models.PresentedCredentials) (string, error)
}

type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error)
}

type HistoryService interface {
	ListHistory(ctx context.Context, req models.HistoryRequest) ([]models.SearchHistoryEntry, error)
}

type AppInfoService interface {
	Health(ctx context.Context) (models.HealthResponse, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SearchRequest carries the query parameters of GET /search.
//
// MediaType is only checked for presence here. Whether it names a known
// provider is decided after the search has been written to history.
type SearchRequest struct {
	Query     string    `json:"query" validate:"required"`
	MediaType MediaType `json:"media_type" validate:"required"`
	UserID    string    `json:"user_id" validate:"required,integer"`
}

// HistoryRequest carries the query parameters of GET /search-history.
type HistoryRequest struct {
	UserID string `json:"user_id" validate:"required,integer"`
}

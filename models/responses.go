// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a plain success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token,omitempty"`
}

// SearchResponse wraps normalized provider results.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// HistoryResponse lists a user's searches, newest first.
type HistoryResponse struct {
	History []SearchHistoryEntry `json:"history"`
}

// ErrorResponse is the body of every failed request.
// Details is only filled for storage failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string       `json:"status"`
	Build  AppBuildInfo `json:"build"`
}

// StatusResponse acknowledges a request that carries no other data.
type StatusResponse struct {
	Status string `json:"status"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/search-visuals/internal/adapter"
	"github.com/MKhiriev/search-visuals/internal/service"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_PassesQueryParameters(t *testing.T) {
	services := newTestServices()
	link, title, noLink := "https://cdn/cat.jpg", "Cat", "No link"
	services.SearchService = &stubSearchService{
		searchFn: func(_ context.Context, req models.SearchRequest) ([]models.SearchResult, error) {
			assert.Equal(t, models.SearchRequest{Query: "black cat", MediaType: models.Images, UserID: "4"}, req)
			return []models.SearchResult{{URL: &link, Title: &title}, {Title: &noLink}}, nil
		},
	}

	rr := doRequest(t, newTestRouter(t, services), http.MethodGet, "/search?query=black+cat&media_type=images&user_id=4", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"results":[{"url":"https://cdn/cat.jpg","title":"Cat"},{"url":null,"title":"No link"}]}`, rr.Body.String())
}

func TestSearch_EmptyResultsIsList(t *testing.T) {
	rr := doRequest(t, newTestRouter(t, newTestServices()), http.MethodGet, "/search?query=x&media_type=audio&user_id=1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"results":[]}`, rr.Body.String())
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   models.ErrorResponse
	}{
		{"missing params", service.ErrSearchParamsRequired, http.StatusBadRequest,
			models.ErrorResponse{Error: "Missing query, media_type or user_id"}},
		{"invalid media type", service.ErrInvalidMediaType, http.StatusBadRequest,
			models.ErrorResponse{Error: "Invalid media type"}},
		{"invalid user id", service.ErrInvalidUserID, http.StatusBadRequest,
			models.ErrorResponse{Error: "Invalid user_id"}},
		{"history write failed", &service.StorageError{Err: errors.New("locked")}, http.StatusInternalServerError,
			models.ErrorResponse{Error: "Database error", Details: "locked"}},
		{"openverse down", &adapter.UpstreamError{Provider: "Openverse", Err: adapter.ErrUnexpectedStatus}, http.StatusInternalServerError,
			models.ErrorResponse{Error: "Failed to fetch from Openverse"}},
		{"pexels down wrapped", wrapSearchFailed(&adapter.UpstreamError{Provider: "Pexels", Err: adapter.ErrRequestFailed}), http.StatusInternalServerError,
			models.ErrorResponse{Error: "Failed to fetch from Pexels"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.SearchService = &stubSearchService{
				searchFn: func(context.Context, models.SearchRequest) ([]models.SearchResult, error) {
					return nil, tt.err
				},
			}

			rr := doRequest(t, newTestRouter(t, services), http.MethodGet, "/search", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, decodeBody[models.ErrorResponse](t, rr))
		})
	}
}

func wrapSearchFailed(err error) error {
	return fmt.Errorf("search failed: %w", err)
}

func TestSearch_CredentialRejected(t *testing.T) {
	services := newTestServices()
	services.AuthService = &stubAuthService{
		resolveFn: func(context.Context, models.PresentedCredentials) (string, error) {
			return "", service.ErrTokenIsExpiredOrInvalid
		},
	}
	services.SearchService = &stubSearchService{
		searchFn: func(context.Context, models.SearchRequest) ([]models.SearchResult, error) {
			t.Fatal("search must not run without a credential")
			return nil, nil
		},
	}

	rr := doRequest(t, newTestRouter(t, services), http.MethodGet, "/search?query=x&media_type=images", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token is expired or invalid.", decodeBody[models.ErrorResponse](t, rr).Error)
}

func TestSearch_BearerTokenIsPresented(t *testing.T) {
	services := newTestServices()
	services.AuthService = &stubAuthService{
		resolveFn: func(_ context.Context, p models.PresentedCredentials) (string, error) {
			assert.Equal(t, "abc.def.ghi", p.BearerToken)
			assert.Equal(t, "", p.UserID)
			return "8", nil
		},
	}
	services.SearchService = &stubSearchService{
		searchFn: func(_ context.Context, req models.SearchRequest) ([]models.SearchResult, error) {
			assert.Equal(t, "8", req.UserID)
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/search?query=x&media_type=videos", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rr := serve(newTestRouter(t, services), req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSearchHistory(t *testing.T) {
	services := newTestServices()
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	services.HistoryService = &stubHistoryService{
		listFn: func(_ context.Context, req models.HistoryRequest) ([]models.SearchHistoryEntry, error) {
			assert.Equal(t, "2", req.UserID)
			return []models.SearchHistoryEntry{{ID: 9, UserID: 2, Query: "cat", MediaType: models.Images, SearchTime: ts}}, nil
		},
	}

	rr := doRequest(t, newTestRouter(t, services), http.MethodGet, "/search-history?user_id=2", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"history":[{"query":"cat","media_type":"images","search_time":"2026-03-01T10:00:00Z"}]}`, rr.Body.String())
}

func TestSearchHistory_Empty(t *testing.T) {
	rr := doRequest(t, newTestRouter(t, newTestServices()), http.MethodGet, "/search-history?user_id=404", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"history":[]}`, rr.Body.String())
}

func TestSearchHistory_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing user id", service.ErrHistoryUserIDRequired, http.StatusBadRequest, "Missing user_id"},
		{"invalid user id", service.ErrInvalidUserID, http.StatusBadRequest, "Invalid user_id"},
		{"storage", &service.StorageError{Err: errors.New("gone")}, http.StatusInternalServerError, "Database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.HistoryService = &stubHistoryService{
				listFn: func(context.Context, models.HistoryRequest) ([]models.SearchHistoryEntry, error) {
					return nil, tt.err
				},
			}

			rr := doRequest(t, newTestRouter(t, services), http.MethodGet, "/search-history", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rr).Error)
		})
	}
}

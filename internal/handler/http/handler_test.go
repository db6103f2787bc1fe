// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/service"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Stub services
// ─────────────────────────────────────────────

type stubAuthService struct {
	signupFn  func(ctx context.Context, req models.SignupRequest) error
	loginFn   func(ctx context.Context, req models.LoginRequest) (models.Credentials, error)
	resolveFn func(ctx context.Context, presented models.PresentedCredentials) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if s.signupFn != nil {
		return s.signupFn(ctx, req)
	}
	return nil
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Credentials, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return models.Credentials{}, nil
}

func (s *stubAuthService) ResolveUserID(ctx context.Context, presented models.PresentedCredentials) (string, error) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, presented)
	}
	return presented.UserID, nil
}

type stubSearchService struct {
	searchFn func(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error)
}

func (s *stubSearchService) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, req)
	}
	return nil, nil
}

type stubHistoryService struct {
	listFn func(ctx context.Context, req models.HistoryRequest) ([]models.SearchHistoryEntry, error)
}

func (s *stubHistoryService) ListHistory(ctx context.Context, req models.HistoryRequest) ([]models.SearchHistoryEntry, error) {
	if s.listFn != nil {
		return s.listFn(ctx, req)
	}
	return nil, nil
}

type stubAppInfoService struct {
	err error
}

func (s *stubAppInfoService) Health(context.Context) (models.HealthResponse, error) {
	if s.err != nil {
		return models.HealthResponse{Status: service.StatusUnavailable}, s.err
	}
	return models.HealthResponse{Status: service.StatusOK}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const allowedOrigin = "https://madegun1537.github.io"

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &stubAuthService{},
		SearchService:  &stubSearchService{},
		HistoryService: &stubHistoryService{},
		AppInfoService: &stubAppInfoService{},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	cfg := config.Server{AllowedOrigins: []string{allowedOrigin, "http://localhost:8080"}}
	return NewHandler(services, cfg, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(router, req)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

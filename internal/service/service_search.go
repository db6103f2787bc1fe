// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/search-visuals/internal/adapter"
	"github.com/MKhiriev/search-visuals/internal/events"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/internal/validators"
	"github.com/MKhiriev/search-visuals/models"
)

type searchService struct {
	historyRepository store.SearchHistoryRepository
	providers         adapter.MediaProviders
	publisher         events.Publisher
	validator         validators.Validator

	logger *logger.Logger
}

func NewSearchService(historyRepository store.SearchHistoryRepository, providers adapter.MediaProviders,
	publisher events.Publisher, validator validators.Validator, logger *logger.Logger) SearchService {
	return &searchService{
		historyRepository: historyRepository,
		providers:         providers,
		publisher:         publisher,
		validator:         validator,
		logger:            logger,
	}
}

// Search records the request in history and then queries the provider
// responsible for req.MediaType.
//
// The history row is written before the media type is checked, so an
// unknown media type is still recorded and then rejected with
// ErrInvalidMediaType. A failed history write aborts the search with a
// [*StorageError] and no provider is called.
func (s *searchService) Search(ctx context.Context, req models.SearchRequest) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	userID, err := validateUserID(ctx, s.validator, req, ErrSearchParamsRequired)
	if err != nil {
		log.Debug().Err(err).Any("request", req).Msg("invalid search request")
		return nil, err
	}

	entry := models.SearchHistoryEntry{
		UserID:    userID,
		Query:     req.Query,
		MediaType: req.MediaType,
	}
	if err = s.historyRepository.RecordSearch(ctx, entry); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error recording search")
		return nil, storageError(err)
	}

	s.publisher.Publish(ctx, models.SearchEvent{
		UserID:     userID,
		Query:      req.Query,
		MediaType:  req.MediaType,
		OccurredAt: time.Now().UTC(),
	})

	provider, ok := s.providers.ForMediaType(req.MediaType)
	if !ok {
		log.Debug().Str("media_type", req.MediaType.String()).Msg("no provider for media type")
		return nil, ErrInvalidMediaType
	}

	results, err := provider.Search(ctx, req.Query, req.MediaType)
	if err != nil {
		log.Err(err).Str("provider", provider.Name()).Msg("provider search failed")
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return results, nil
}

// validateUserID validates req and parses its numeric user id. A missing
// field is reported as missing; a non-numeric or out of range id as
// ErrInvalidUserID.
func validateUserID(ctx context.Context, v validators.Validator, req any, missing error) (int64, error) {
	var raw string
	switch r := req.(type) {
	case models.SearchRequest:
		raw = r.UserID
	case models.HistoryRequest:
		raw = r.UserID
	}

	if err := v.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrInvalidNumber) {
			return 0, ErrInvalidUserID
		}
		return 0, missing
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidUserID
	}

	return userID, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/internal/validators"
	"github.com/MKhiriev/search-visuals/models"
)

type historyService struct {
	historyRepository store.SearchHistoryRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewHistoryService(historyRepository store.SearchHistoryRepository, validator validators.Validator, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListHistory returns the searches of req.UserID, newest first. A user
// without history, including one that does not exist, gets an empty list.
func (h *historyService) ListHistory(ctx context.Context, req models.HistoryRequest) ([]models.SearchHistoryEntry, error) {
	log := logger.FromContext(ctx)

	userID, err := validateUserID(ctx, h.validator, req, ErrHistoryUserIDRequired)
	if err != nil {
		log.Debug().Err(err).Str("user_id", req.UserID).Msg("invalid history request")
		return nil, err
	}

	history, err := h.historyRepository.ListHistory(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing search history")
		return nil, storageError(err)
	}

	return history, nil
}

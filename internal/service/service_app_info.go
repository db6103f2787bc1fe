// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/models"
)

const (
	StatusOK          = "OK"
	StatusUnavailable = "UNAVAILABLE"
)

type appInfoService struct {
	db        store.Pinger
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(db store.Pinger, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		db:        db,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Health pings the database. The returned response is always filled; the
// error is non-nil when the database is unreachable.
func (s *appInfoService) Health(ctx context.Context) (models.HealthResponse, error) {
	resp := models.HealthResponse{Status: StatusOK, Build: s.buildInfo}

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		resp.Status = StatusUnavailable
		return resp, fmt.Errorf("database ping failed: %w", err)
	}

	return resp, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/search-visuals/internal/adapter"
	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/events"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/internal/validators"
	"github.com/MKhiriev/search-visuals/models"
)

type Services struct {
	AuthService    AuthService
	SearchService  SearchService
	HistoryService HistoryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, providers adapter.MediaProviders, publisher events.Publisher,
	cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	credentials, err := NewCredentialIssuer(cfg)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, credentials, validator, logger),
		SearchService:  NewSearchService(storages.SearchHistoryRepository, providers, publisher, validator, logger),
		HistoryService: NewHistoryService(storages.SearchHistoryRepository, validator, logger),
		AppInfoService: NewAppInfoService(storages, buildInfo, logger),
	}, nil
}

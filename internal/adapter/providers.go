// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
)

// Providers maps each supported media type to its [MediaProvider].
type Providers struct {
	byMediaType map[models.MediaType]MediaProvider
}

// NewProviders builds the Openverse and Pexels clients from cfg. Images and
// audio are served by Openverse, videos by Pexels. Each provider gets its own
// HTTP client so base URLs and headers never leak between them.
func NewProviders(cfg config.Adapter, log *logger.Logger) (*Providers, error) {
	openverse, err := NewOpenverseProvider(utils.NewHTTPClient(cfg.RequestTimeout), cfg.OpenverseBaseURL, log)
	if err != nil {
		return nil, err
	}

	pexels, err := NewPexelsProvider(utils.NewHTTPClient(cfg.RequestTimeout), cfg.PexelsVideoURL, cfg.PexelsAPIKey, log)
	if err != nil {
		return nil, err
	}

	return &Providers{
		byMediaType: map[models.MediaType]MediaProvider{
			models.Images: openverse,
			models.Audio:  openverse,
			models.Videos: pexels,
		},
	}, nil
}

// ForMediaType implements [MediaProviders]. Lookup is case-sensitive.
func (p *Providers) ForMediaType(mediaType models.MediaType) (MediaProvider, bool) {
	provider, ok := p.byMediaType[mediaType]
	return provider, ok
}

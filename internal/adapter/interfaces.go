// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients for the third-party media
// catalogues the search endpoint fans out to.
//
// Every catalogue is hidden behind [MediaProvider], which turns a free-text
// query into normalized [models.SearchResult] values. The package ships an
// Openverse implementation (images and audio) and a Pexels implementation
// (videos); [NewProviders] wires them to their media types.
//
// Failures are reported as [*UpstreamError] values that carry the provider
// name and wrap [ErrUpstream] so callers can use [errors.Is] without knowing
// which catalogue failed.
package adapter

import (
	"context"

	"github.com/MKhiriev/search-visuals/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaProvider queries one external catalogue.
type MediaProvider interface {
	// Name is the human-readable catalogue name used in error messages
	// (e.g. "Openverse").
	Name() string

	// Search runs query against the catalogue section for mediaType.
	// Any non-200 response or undecodable payload yields an [*UpstreamError].
	Search(ctx context.Context, query string, mediaType models.MediaType) ([]models.SearchResult, error)
}

// MediaProviders resolves the provider responsible for a media type.
type MediaProviders interface {
	ForMediaType(mediaType models.MediaType) (MediaProvider, bool)
}

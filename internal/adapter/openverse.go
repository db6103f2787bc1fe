// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/tidwall/gjson"
)

const (
	openverseName     = "Openverse"
	openversePageSize = 10
)

type openverseProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewOpenverseProvider returns a [MediaProvider] for the Openverse API
// rooted at baseURL (e.g. "https://api.openverse.engineering/v1").
// The media type is appended as the last path segment.
func NewOpenverseProvider(client *utils.HTTPClient, baseURL string, log *logger.Logger) (MediaProvider, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid openverse base url: %w", err)
	}

	client.SetBaseURL(base)
	return &openverseProvider{client: client, logger: log}, nil
}

func (p *openverseProvider) Name() string {
	return openverseName
}

func (p *openverseProvider) Search(ctx context.Context, query string, mediaType models.MediaType) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":         query,
			"page_size": strconv.Itoa(openversePageSize),
		}).
		Get("/" + mediaType.String())
	if err != nil {
		log.Err(err).Str("func", "*openverseProvider.Search").Msg("openverse request failed")
		return nil, upstreamError(openverseName, fmt.Errorf("%w: %w", ErrRequestFailed, err))
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*openverseProvider.Search").Msg("openverse returned an error")
		return nil, upstreamError(openverseName, err)
	}

	results, err := parseOpenverse(resp.Body())
	if err != nil {
		log.Err(err).Str("func", "*openverseProvider.Search").Msg("error mapping openverse response")
		return nil, upstreamError(openverseName, err)
	}

	return results, nil
}

// parseOpenverse maps "results[*].{url,title}". A missing "results" array
// means no hits; an element without url or title is malformed.
func parseOpenverse(body []byte) ([]models.SearchResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}

	items := gjson.GetBytes(body, "results")
	if items.Exists() && !items.IsArray() {
		return nil, fmt.Errorf("%w: results is not a list", ErrMalformedResponse)
	}

	results := make([]models.SearchResult, 0, len(items.Array()))
	for i, item := range items.Array() {
		url, title := item.Get("url"), item.Get("title")
		if !url.Exists() || !title.Exists() {
			return nil, fmt.Errorf("%w: result %d lacks url or title", ErrMalformedResponse, i)
		}

		results = append(results, models.SearchResult{
			URL:   nullableString(url),
			Title: nullableString(title),
		})
	}

	return results, nil
}

func nullableString(r gjson.Result) *string {
	if r.Type == gjson.Null {
		return nil
	}

	s := r.String()
	return &s
}

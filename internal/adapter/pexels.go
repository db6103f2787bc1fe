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
	pexelsName         = "Pexels"
	pexelsPageSize     = 5
	pexelsDefaultTitle = "Pexels Video"
)

type pexelsProvider struct {
	client   *utils.HTTPClient
	videoURL string
	logger   *logger.Logger
}

// NewPexelsProvider returns a [MediaProvider] for the Pexels video search
// endpoint. apiKey is sent verbatim in the Authorization header.
func NewPexelsProvider(client *utils.HTTPClient, videoURL, apiKey string, log *logger.Logger) (MediaProvider, error) {
	endpoint, err := normalizeBaseURL(videoURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pexels video url: %w", err)
	}

	if apiKey == "" {
		log.Warn().Str("func", "NewPexelsProvider").Msg("pexels api key is empty, video searches will be rejected upstream")
	}

	client.SetHeader("Authorization", apiKey)
	return &pexelsProvider{client: client, videoURL: endpoint, logger: log}, nil
}

func (p *pexelsProvider) Name() string {
	return pexelsName
}

// Search ignores mediaType: the endpoint only serves videos.
func (p *pexelsProvider) Search(ctx context.Context, query string, _ models.MediaType) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    query,
			"per_page": strconv.Itoa(pexelsPageSize),
		}).
		Get(p.videoURL)
	if err != nil {
		log.Err(err).Str("func", "*pexelsProvider.Search").Msg("pexels request failed")
		return nil, upstreamError(pexelsName, fmt.Errorf("%w: %w", ErrRequestFailed, err))
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*pexelsProvider.Search").Msg("pexels returned an error")
		return nil, upstreamError(pexelsName, err)
	}

	results, err := parsePexels(resp.Body())
	if err != nil {
		log.Err(err).Str("func", "*pexelsProvider.Search").Msg("error mapping pexels response")
		return nil, upstreamError(pexelsName, err)
	}

	return results, nil
}

// parsePexels maps "videos[*]" to {first video file link or null, uploader
// name or [pexelsDefaultTitle]}. An explicit null name stays null. A video without a video_files key is
// malformed; an empty list yields a null url.
func parsePexels(body []byte) ([]models.SearchResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedResponse)
	}

	videos := gjson.GetBytes(body, "videos")
	if videos.Exists() && !videos.IsArray() {
		return nil, fmt.Errorf("%w: videos is not a list", ErrMalformedResponse)
	}

	results := make([]models.SearchResult, 0, len(videos.Array()))
	for i, video := range videos.Array() {
		files := video.Get("video_files")
		if !files.Exists() {
			return nil, fmt.Errorf("%w: video %d lacks video_files", ErrMalformedResponse, i)
		}

		var url *string
		if len(files.Array()) > 0 {
			link := files.Get("0.link")
			if !link.Exists() {
				return nil, fmt.Errorf("%w: video %d file lacks link", ErrMalformedResponse, i)
			}
			url = nullableString(link)
		}

		name := video.Get("user.name")
		title := nullableString(name)
		if !name.Exists() {
			fallback := pexelsDefaultTitle
			title = &fallback
		}

		results = append(results, models.SearchResult{URL: url, Title: title})
	}

	return results, nil
}

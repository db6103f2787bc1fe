// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := h.services.AuthService.ResolveUserID(ctx, presentedCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	req := models.SearchRequest{
		Query:     query.Get("query"),
		MediaType: models.MediaType(query.Get("media_type")),
		UserID:    userID,
	}

	results, err := h.services.SearchService.Search(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int("results", len(results)).Str("media_type", req.MediaType.String()).Msg("search served")

	if results == nil {
		results = []models.SearchResult{}
	}
	utils.WriteJSON(w, models.SearchResponse{Results: results}, http.StatusOK)
}

func (h *Handler) searchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := h.services.AuthService.ResolveUserID(ctx, presentedCredentials(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	history, err := h.services.HistoryService.ListHistory(ctx, models.HistoryRequest{UserID: userID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if history == nil {
		history = []models.SearchHistoryEntry{}
	}
	utils.WriteJSON(w, models.HistoryResponse{History: history}, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/search-visuals/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.AppInfoService.Health(r.Context())
	if err != nil {
		utils.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

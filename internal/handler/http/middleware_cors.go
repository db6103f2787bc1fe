// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/go-chi/cors"
)

// withCORS applies one cross-origin policy to every route. Only origins from
// the configured allow-list are echoed back; credentials are allowed.
// A preflight is answered here with 200 {"status":"OK"} and never reaches
// the routes.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	policy := cors.Handler(cors.Options{
		AllowedOrigins:     h.allowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization", traceIDHeader},
		ExposedHeaders:     []string{"Authorization", traceIDHeader},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	})

	return func(next http.Handler) http.Handler {
		return policy(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPreflight(r) {
				utils.WriteJSON(w, models.StatusResponse{Status: "OK"}, http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

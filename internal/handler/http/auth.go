// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/search-visuals/internal/app"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Signup(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", req.Email).Msg("user signed up")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignupSuccessful}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	creds, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", creds.UserID).Msg("user successfully logged in")

	if creds.Token != "" {
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", creds.Token))
	}
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		UserID:  creds.UserID,
		Token:   creds.Token,
	}, http.StatusOK)
}

// presentedCredentials collects both places a client may put its identity.
func presentedCredentials(r *http.Request) models.PresentedCredentials {
	presented := models.PresentedCredentials{UserID: r.URL.Query().Get("user_id")}
	if token, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		presented.BearerToken = token
	}
	return presented
}

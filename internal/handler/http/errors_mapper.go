// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/search-visuals/internal/adapter"
	"github.com/MKhiriev/search-visuals/internal/app"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/service"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	utils.ErrInvalidJSON: {http.StatusBadRequest, app.MsgInvalidJSON},

	service.ErrSignupFieldsRequired: {http.StatusBadRequest, app.MsgAllFieldsRequired},
	service.ErrPasswordsDoNotMatch:  {http.StatusBadRequest, app.MsgPasswordsDoNotMatch},
	service.ErrPasswordTooLong:      {http.StatusBadRequest, app.MsgPasswordTooLong},
	service.ErrEmailAlreadyExists:   {http.StatusConflict, app.MsgEmailAlreadyExists},

	service.ErrLoginFieldsRequired:     {http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	service.ErrSearchParamsRequired:  {http.StatusBadRequest, app.MsgMissingSearchParams},
	service.ErrInvalidMediaType:      {http.StatusBadRequest, app.MsgInvalidMediaType},
	service.ErrHistoryUserIDRequired: {http.StatusBadRequest, app.MsgMissingUserID},
	service.ErrInvalidUserID:         {http.StatusBadRequest, app.MsgInvalidUserID},
}

// errorBody maps err to its status code and JSON body. Storage failures
// carry the underlying error text in Details.
func errorBody(err error) (int, models.ErrorResponse) {
	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   app.MsgDatabaseError,
			Details: storageErr.Err.Error(),
		}
	}

	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf(app.MsgFailedToFetchFrom, upstreamErr.Provider),
		}
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, models.ErrorResponse{Error: resp.message}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: app.MsgInternalServerError}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorBody(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}

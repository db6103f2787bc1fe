// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/models"
)

// NewCredentialIssuer returns the issuer selected by cfg.Credentials.
// An empty value selects the plain scheme.
func NewCredentialIssuer(cfg config.App) (CredentialIssuer, error) {
	switch cfg.Credentials {
	case "", config.CredentialsPlain:
		return plainCredentials{}, nil
	case config.CredentialsJWT:
		return &jwtCredentials{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			duration: cfg.TokenDuration,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCredentialScheme, cfg.Credentials)
	}
}

// plainCredentials hands out the numeric user id and trusts whatever
// user_id the client sends back.
type plainCredentials struct{}

func (plainCredentials) Issue(_ context.Context, user models.User) (models.Credentials, error) {
	return models.Credentials{UserID: user.UserID}, nil
}

func (plainCredentials) Resolve(_ context.Context, presented models.PresentedCredentials) (string, error) {
	return presented.UserID, nil
}

// jwtCredentials signs the user id into an HS256 token. Requests must
// present it as a bearer token; the user_id query parameter is ignored.
type jwtCredentials struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func (j *jwtCredentials) Issue(_ context.Context, user models.User) (models.Credentials, error) {
	token, err := utils.GenerateJWTToken(j.issuer, user.UserID, j.duration, j.signKey)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Credentials{UserID: user.UserID, Token: token.String()}, nil
}

func (j *jwtCredentials) Resolve(_ context.Context, presented models.PresentedCredentials) (string, error) {
	if presented.BearerToken == "" {
		return "", ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(presented.BearerToken, j.signKey, j.issuer)
	if err != nil {
		return "", ErrTokenIsExpiredOrInvalid
	}

	return strconv.FormatInt(token.UserID, 10), nil
}

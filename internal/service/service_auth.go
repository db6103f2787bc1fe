// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/internal/utils"
	"github.com/MKhiriev/search-visuals/internal/validators"
	"github.com/MKhiriev/search-visuals/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt digests; what the client gets back on login
// is decided by the configured CredentialIssuer.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentials issues and resolves client credentials.
	credentials CredentialIssuer

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and CredentialIssuer.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, credentials CredentialIssuer, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		validator:      validator,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Returns nil on success or:
//   - ErrSignupFieldsRequired if any of the four fields is empty.
//   - ErrPasswordsDoNotMatch if the confirmation differs from the password.
//   - ErrPasswordTooLong if bcrypt cannot hash the password.
//   - ErrEmailAlreadyExists if the email is taken.
//   - a [*StorageError] for any other repository failure.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid signup data provided")
		switch {
		case errors.Is(err, validators.ErrFieldsMismatch):
			return ErrPasswordsDoNotMatch
		default:
			return ErrSignupFieldsRequired
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed")
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", req.Email).Msg("email already exists")
		return ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return storageError(err)
	}

	return nil
}

// Login authenticates an existing user and issues its credential.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Missing fields yield ErrLoginFieldsRequired; repository failures other
// than "not found" yield a [*StorageError].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.Credentials{}, ErrLoginFieldsRequired
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("no user with such email")
		return models.Credentials{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Credentials{}, storageError(err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		log.Debug().Int64("id", user.UserID).Msg("wrong password")
		return models.Credentials{}, ErrInvalidCredentials
	}

	return a.credentials.Issue(ctx, user)
}

// ResolveUserID delegates to the configured CredentialIssuer.
func (a *authService) ResolveUserID(ctx context.Context, presented models.PresentedCredentials) (string, error) {
	return a.credentials.Resolve(ctx, presented)
}

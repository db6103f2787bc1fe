// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrSignupFieldsRequired = errors.New("all signup fields are required")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")
	ErrPasswordTooLong      = errors.New("password is too long")
	ErrEmailAlreadyExists   = errors.New("email already exists")

	ErrLoginFieldsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnknownCredentialScheme = errors.New("unknown credential scheme")

	ErrSearchParamsRequired = errors.New("query, media_type and user_id are required")
	ErrInvalidMediaType     = errors.New("invalid media type")

	ErrHistoryUserIDRequired = errors.New("user_id is required")
	ErrInvalidUserID         = errors.New("user_id must be an integer")

	// ErrStorage is wrapped by every [*StorageError].
	ErrStorage = errors.New("storage failure")
)

// StorageError reports a persistence failure. Err is the repository error
// and is exposed to clients as the failure details.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%v: %v", ErrStorage, e.Err)
}

// Unwrap exposes both [ErrStorage] and the underlying cause.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func storageError(err error) error {
	return &StorageError{Err: err}
}

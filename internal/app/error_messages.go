// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// search-visuals HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAllFieldsRequired is returned by signup when any of username, email,
	// password or confirm_password is empty.
	MsgAllFieldsRequired = "All fields are required."

	// MsgPasswordsDoNotMatch is returned by signup when password and
	// confirm_password differ.
	MsgPasswordsDoNotMatch = "Passwords do not match."

	// MsgPasswordTooLong is returned by signup when the password exceeds what
	// bcrypt can hash.
	MsgPasswordTooLong = "Password is too long."

	// MsgEmailAlreadyExists is returned when signing up with a taken email.
	MsgEmailAlreadyExists = "Email already exists."

	MsgSignupSuccessful = "Signup successful!"

	// MsgEmailAndPasswordRequired is returned by login when a field is empty.
	MsgEmailAndPasswordRequired = "Email and password are required."

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials."

	MsgLoginSuccessful = "Login successful!"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is required
	// but missing, expired or not verifiable.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid."

	MsgMissingSearchParams = "Missing query, media_type or user_id"
	MsgInvalidMediaType    = "Invalid media type"
	MsgMissingUserID       = "Missing user_id"
	MsgInvalidUserID       = "Invalid user_id"

	// MsgFailedToFetchFrom is formatted with the provider name.
	MsgFailedToFetchFrom = "Failed to fetch from %s"

	// MsgDatabaseError accompanies every storage failure; the underlying
	// error text goes into the "details" field.
	MsgDatabaseError = "Database error"

	MsgNotFound            = "Not found"
	MsgInternalServerError = "Internal server error"
)

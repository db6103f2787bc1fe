// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is what a successful login hands back to the client.
//
// UserID is always set. Token is only set when a signed credential scheme is
// configured.
type Credentials struct {
	UserID int64
	Token  string
}

// PresentedCredentials collects every place a client may put its credential
// on an incoming request. The configured scheme decides which one it reads.
type PresentedCredentials struct {
	// UserID is the raw "user_id" query parameter.
	UserID string

	// BearerToken is the token part of an "Authorization: Bearer" header.
	BearerToken string
}

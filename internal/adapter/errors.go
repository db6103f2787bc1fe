// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream is wrapped by every error a provider returns.
	ErrUpstream = errors.New("upstream provider error")

	// ErrRequestFailed means the HTTP request could not be completed
	// (DNS, connection refused, timeout, cancelled context).
	ErrRequestFailed = errors.New("upstream request failed")

	// ErrUnexpectedStatus means the provider answered with a status other
	// than 200 OK.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")

	// ErrMalformedResponse means a 200 response could not be mapped to
	// search results.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError reports a failure of a named provider.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

// Unwrap exposes both [ErrUpstream] and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.Err}
}

func upstreamError(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrRequiredField means at least one mandatory field is missing or empty.
	ErrRequiredField = errors.New("required field is missing")

	// ErrFieldsMismatch means two fields that must be equal differ
	// (e.g. password and its confirmation).
	ErrFieldsMismatch = errors.New("fields do not match")

	// ErrInvalidNumber means a field that must hold an integer does not.
	ErrInvalidNumber = errors.New("field is not a valid number")

	// ErrInvalidField covers every other rule violation.
	ErrInvalidField = errors.New("invalid field")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates HTTP request models against their
// `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface. Besides the built-in tags it understands "integer":
// a signed base-10 number that fits in an int64.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// the tag name is fixed and the func is non-nil, so registration cannot fail
	_ = validate.RegisterValidation("integer", isInteger)

	return &RequestValidator{validate: validate}
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil
}

// Validate checks obj (a struct or pointer to struct). When fields are
// given, only those struct fields are checked.
//
// Failures are reported in priority order: a missing required field wins
// over a mismatch, which wins over a malformed number. The returned error
// wraps one of [ErrRequiredField], [ErrFieldsMismatch], [ErrInvalidNumber]
// or [ErrInvalidField].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	return translate(fieldErrs)
}

func translate(fieldErrs validator.ValidationErrors) error {
	var mismatch, number, other validator.FieldError
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
		case "eqfield":
			if mismatch == nil {
				mismatch = fe
			}
		case "number", "integer":
			if number == nil {
				number = fe
			}
		default:
			if other == nil {
				other = fe
			}
		}
	}

	switch {
	case mismatch != nil:
		return fmt.Errorf("%w: %s must equal %s", ErrFieldsMismatch, mismatch.Field(), mismatch.Param())
	case number != nil:
		return fmt.Errorf("%w: %s", ErrInvalidNumber, number.Field())
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidField, other.Field(), other.Tag())
	}
}

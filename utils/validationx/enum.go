// File: enum.go
// Title: Enumeration and Normalization Validators
// Description: Validates membership in a fixed set of allowed values
//              with trimmed case-insensitive matching, and adapts
//              string normalization into validator chains.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial implementation

package validationx

import (
	"fmt"
	"strings"

	"github.com/msto63/dkit/core/validation"
	"github.com/msto63/dkit/utils/slicex"
	"github.com/msto63/dkit/utils/stringx"
)

// EnumValues renders a typed enum list as plain strings for EnumOf
func EnumValues[E ~string](vals ...E) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// EnumOf validates that a string value is one of the allowed values.
// Matching trims surrounding whitespace and ignores case. An empty or
// blank value is rejected; membership is never assumed for it.
func EnumOf(allowed ...string) validation.Validator {
	return validation.ValidatorFunc(func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		return ValidateEnum(str, allowed)
	})
}

// ValidateEnum checks a single value against the allowed set. A failed
// result carries the allowed values in Expected so callers can report
// what would have been accepted.
func ValidateEnum(value string, allowed []string) validation.ValidationResult {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return validation.NewValidationError(validation.CodeRequired,
			"enum value must not be empty")
	}

	if slicex.ContainsFold(allowed, trimmed) {
		return validation.NewValidationResult()
	}

	return validation.ValidationResult{
		Valid: false,
		Errors: []validation.ValidationError{
			{
				Code:     validation.CodeEnum,
				Message:  fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
				Value:    value,
				Expected: allowed,
			},
		},
	}
}

// NormalizedTo normalizes string input before delegating to the wrapped
// validator. Non-string values pass through unchanged. With EmptyToNull
// set, a value that normalizes to the empty string is delegated as nil,
// so Required rejects it and Optional skips it.
func NormalizedTo(opts stringx.NormalizeOptions, inner validation.Validator) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return inner.Validate(value)
		}

		normalized := stringx.Normalize(str, opts)
		if opts.EmptyToNull && normalized == "" {
			return inner.Validate(nil)
		}

		return inner.Validate(normalized)
	}
}

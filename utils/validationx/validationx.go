// File: validationx.go
// Title: General Validation Utilities
// Description: Provides general-purpose validators built on the core
//              validation framework: presence, length, substring,
//              character class, pattern, numeric range, and membership
//              checks with chainable composition.
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
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/dkit/core/validation"
)

// Compiled patterns are cached so repeated use of the same Pattern
// validator does not recompile
var regexCache sync.Map

func compiledRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := regexCache.LoadOrStore(pattern, regex)
	return actual.(*regexp.Regexp), nil
}

// Aliases to the core framework types so callers can work with this
// package alone
type (
	// ValidationResult is an alias to the core validation result type
	ValidationResult = validation.ValidationResult
	// ValidationError is an alias to the core validation error type
	ValidationError = validation.ValidationError
	// ValidatorChain is an alias to the core validator chain type
	ValidatorChain = validation.ValidatorChain
)

// NewValidatorChain creates a validator chain using the core framework
func NewValidatorChain(name ...string) *ValidatorChain {
	return validation.NewValidatorChain(name...)
}

// stringValidator adapts a string check into a ValidatorFunc, rejecting
// non-string values with a type error
func stringValidator(check func(string) validation.ValidationResult) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(validation.CodeType, "value must be a string")
		}
		return check(str)
	}
}

// ===============================
// Presence Validators
// ===============================

// Required validates that a value is not nil, empty, or blank
var Required validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if validation.IsNilOrEmpty(value) {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}

	if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}

	return validation.NewValidationResult()
}

// Optional wraps a validator so that nil and blank values pass without
// running it
func Optional(validator validation.Validator) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if validation.IsNilOrEmpty(value) {
			return validation.NewValidationResult()
		}

		if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
			return validation.NewValidationResult()
		}

		return validator.Validate(value)
	}
}

// ===============================
// Length Validators
// ===============================

// MinLength validates minimum string length in runes
func MinLength(min int) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if utf8.RuneCountInString(str) < min {
			return validation.NewValidationError(validation.CodeLength,
				fmt.Sprintf("must be at least %d characters long", min))
		}
		return validation.NewValidationResult()
	})
}

// MaxLength validates maximum string length in runes
func MaxLength(max int) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if utf8.RuneCountInString(str) > max {
			return validation.NewValidationError(validation.CodeLength,
				fmt.Sprintf("must be at most %d characters long", max))
		}
		return validation.NewValidationResult()
	})
}

// Length validates exact string length in runes
func Length(length int) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if utf8.RuneCountInString(str) != length {
			return validation.NewValidationError(validation.CodeLength,
				fmt.Sprintf("must be exactly %d characters long", length))
		}
		return validation.NewValidationResult()
	})
}

// ===============================
// Substring Validators
// ===============================

// Contains validates that a string contains a substring
func Contains(substring string) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if !strings.Contains(str, substring) {
			return validation.NewValidationError(validation.CodePattern,
				fmt.Sprintf("must contain '%s'", substring))
		}
		return validation.NewValidationResult()
	})
}

// StartsWith validates that a string starts with a prefix
func StartsWith(prefix string) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if !strings.HasPrefix(str, prefix) {
			return validation.NewValidationError(validation.CodePattern,
				fmt.Sprintf("must start with '%s'", prefix))
		}
		return validation.NewValidationResult()
	})
}

// EndsWith validates that a string ends with a suffix
func EndsWith(suffix string) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		if !strings.HasSuffix(str, suffix) {
			return validation.NewValidationError(validation.CodePattern,
				fmt.Sprintf("must end with '%s'", suffix))
		}
		return validation.NewValidationResult()
	})
}

// ===============================
// Character Class Validators
// ===============================

// AlphaOnly validates that a string contains only letters
var AlphaOnly = stringValidator(func(str string) validation.ValidationResult {
	for _, r := range str {
		if !unicode.IsLetter(r) {
			return validation.NewValidationError(validation.CodePattern,
				"must contain only alphabetic characters")
		}
	}
	return validation.NewValidationResult()
})

// AlphaNumeric validates that a string contains only letters and digits
var AlphaNumeric = stringValidator(func(str string) validation.ValidationResult {
	for _, r := range str {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return validation.NewValidationError(validation.CodePattern,
				"must contain only alphanumeric characters")
		}
	}
	return validation.NewValidationResult()
})

// NumericOnly validates that a string contains only digits
var NumericOnly = stringValidator(func(str string) validation.ValidationResult {
	for _, r := range str {
		if !unicode.IsNumber(r) {
			return validation.NewValidationError(validation.CodePattern,
				"must contain only numeric characters")
		}
	}
	return validation.NewValidationResult()
})

// Pattern validates that a string matches a regular expression
func Pattern(pattern string) validation.ValidatorFunc {
	return stringValidator(func(str string) validation.ValidationResult {
		regex, err := compiledRegex(pattern)
		if err != nil {
			return validation.NewValidationError(validation.CodePattern,
				fmt.Sprintf("invalid pattern: %v", err))
		}
		if !regex.MatchString(str) {
			return validation.NewValidationError(validation.CodePattern,
				"does not match required pattern")
		}
		return validation.NewValidationResult()
	})
}

// ===============================
// Numeric Range Validators
// ===============================

// Min validates a minimum numeric value
func Min(min float64) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		num, err := validation.ConvertToFloat64(value)
		if err != nil {
			return validation.NewValidationError(validation.CodeType, "must be a valid number")
		}

		if num < min {
			return validation.NewValidationError(validation.CodeRange,
				fmt.Sprintf("must be at least %g", min))
		}

		return validation.NewValidationResult()
	}
}

// Max validates a maximum numeric value
func Max(max float64) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		num, err := validation.ConvertToFloat64(value)
		if err != nil {
			return validation.NewValidationError(validation.CodeType, "must be a valid number")
		}

		if num > max {
			return validation.NewValidationError(validation.CodeRange,
				fmt.Sprintf("must be at most %g", max))
		}

		return validation.NewValidationResult()
	}
}

// Range validates that a numeric value lies within [min, max]
func Range(min, max float64) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		num, err := validation.ConvertToFloat64(value)
		if err != nil {
			return validation.NewValidationError(validation.CodeType, "must be a valid number")
		}

		if num < min || num > max {
			return validation.NewValidationError(validation.CodeRange,
				fmt.Sprintf("must be between %g and %g", min, max))
		}

		return validation.NewValidationResult()
	}
}

// ===============================
// Membership Validators
// ===============================

// In validates that a value equals one of the allowed values
func In(allowed ...interface{}) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		for _, item := range allowed {
			if value == item {
				return validation.NewValidationResult()
			}
		}

		return validation.NewValidationError(validation.CodeCustom,
			fmt.Sprintf("must be one of: %v", allowed))
	}
}

// NotIn validates that a value equals none of the forbidden values
func NotIn(forbidden ...interface{}) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		for _, item := range forbidden {
			if value == item {
				return validation.NewValidationError(validation.CodeCustom,
					fmt.Sprintf("must not be one of: %v", forbidden))
			}
		}

		return validation.NewValidationResult()
	}
}

// ===============================
// Custom Validators
// ===============================

// Custom adapts a predicate returning (ok, message) into a validator
func Custom(fn func(interface{}) (bool, string)) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		valid, message := fn(value)
		if !valid {
			return validation.NewValidationError(validation.CodeCustom, message)
		}

		return validation.NewValidationResult()
	}
}

// File: doc.go
// Title: validationx Package Documentation
// Description: Package overview for the concrete validators built on
//              the core validation framework.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial documentation

// Package validationx provides concrete validators built on the core
// validation framework: presence, length, substring, character class,
// pattern, numeric range, membership, and enum checks, composable
// through validator chains.
//
// All validators implement validation.ValidatorFunc and return
// validation.ValidationResult values carrying standardized error codes.
// Type aliases for ValidationResult, ValidationError, and
// ValidatorChain are re-exported so most callers need only this
// package.
//
// # Composition
//
// Validators combine through chains; by default a chain runs every
// validator and collects all failures:
//
//	chain := validationx.NewValidatorChain("username").
//		AddFunc(validationx.Required).
//		AddFunc(validationx.MinLength(3)).
//		AddFunc(validationx.AlphaNumeric)
//
//	result := chain.Validate(input)
//
// Optional wraps a validator so nil and blank values pass without
// running it, which keeps a chain usable for fields that may be
// omitted.
//
// # Enum Validation
//
// EnumOf and ValidateEnum check membership in a fixed set of allowed
// values. Matching trims surrounding whitespace and ignores case. An
// empty or blank candidate is always rejected, and a miss returns a
// failed result carrying the allowed values in Expected:
//
//	result := validationx.ValidateEnum(input, []string{"ACTIVE", "INACTIVE"})
//	if !result.Valid {
//		log.Info("rejected", "expected", result.FirstError().Expected)
//	}
//
// EnumValues converts typed string enums for use with EnumOf:
//
//	validator := validationx.EnumOf(validationx.EnumValues(StatusActive, StatusClosed)...)
//
// # Normalization
//
// NormalizedTo applies stringx.Normalize to string input before
// delegating to the wrapped validator, so trimming and case mapping
// happen once in the chain instead of in every caller. With
// EmptyToNull set, a value that normalizes to the empty string is
// delegated as nil.
//
// # Pattern Caching
//
// Pattern compiles regular expressions once and caches them, so a
// validator built from the same pattern string in a hot path carries
// no recompilation cost.
//
// # See Also
//
// Package core/validation for the framework types, package stringx for
// normalization options, and package slicex for the case-folded
// membership primitive.
package validationx

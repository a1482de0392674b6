// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Provides unified validation interfaces, error types, and utilities
//              for consistent validation across all dkit modules.
//              Establishes standard patterns for validation functions, error
//              handling, and result composition.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial validation framework implementation

/*
Package validation provides the core validation framework infrastructure for dkit.

Package: validation
Title: Core Validation Framework Infrastructure
Description: Provides the foundational interfaces, types, error codes, and orchestration
             utilities for building validation systems. This package contains NO concrete
             validators - only the framework components that enable consistent validation
             patterns across all dkit modules.
Author: msto63
Version: v0.1.0
Created: 2025-03-04
Modified: 2025-03-04

Change History:
- 2025-03-04 v0.1.0: Initial validation framework infrastructure

Core Framework Components:
  - Validator interface and ValidatorFunc type for implementing validators
  - ValidationResult and ValidationError types for structured error reporting
  - Standardized error codes for consistent error handling across modules
  - ValidatorChain for composing multiple validators into complex validation logic
  - ConditionalValidator and ParallelValidator for advanced orchestration patterns
  - Context-aware validation support with tracing metadata
  - Utility functions for common validation framework operations
  - Integration with dkit error handling and logging systems

# Framework Architecture

This package provides the foundational infrastructure for validation systems:

## Core Interfaces

	// Validator defines the standard interface all validators must implement
	type Validator interface {
		Validate(value interface{}) ValidationResult
		ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
	}

	// ValidatorFunc allows functions to implement the Validator interface
	type ValidatorFunc func(value interface{}) ValidationResult

## Result Types

	// ValidationResult provides structured validation results
	type ValidationResult struct {
		Valid   bool                    // Overall validation status
		Errors  []ValidationError       // Detailed error information
		Context map[string]interface{}  // Additional validation context
	}

	// ValidationError provides rich error information
	type ValidationError struct {
		Code     string                 // Standardized error code
		Field    string                 // Field name being validated
		Message  string                 // Human-readable error message
		Value    interface{}           // Actual value that failed validation
		Context  map[string]interface{} // Additional error context
		Expected interface{}           // Expected value or format
	}

## Error Code Standards

Standardized error codes ensure consistent error handling across modules:

	// Core validation failure types
	CODE_REQUIRED     = "VALIDATION_REQUIRED"     // Field is required but missing
	CODE_FORMAT       = "VALIDATION_FORMAT"       // Invalid format
	CODE_LENGTH       = "VALIDATION_LENGTH"       // Length validation
	CODE_RANGE        = "VALIDATION_RANGE"        // Numeric range validation
	CODE_TYPE         = "VALIDATION_TYPE"         // Type validation
	CODE_PATTERN      = "VALIDATION_PATTERN"      // Regex pattern validation
	CODE_CUSTOM       = "VALIDATION_CUSTOM"       // Custom validation rules

	// Specific format validation codes
	CODE_EMAIL        = "VALIDATION_EMAIL"        // Email address format
	CODE_URL          = "VALIDATION_URL"          // URL format validation
	CODE_PHONE_NUMBER = "VALIDATION_PHONE"        // Phone number format
	CODE_NUMERIC      = "VALIDATION_NUMERIC"      // Numeric value validation
	CODE_ENUM         = "VALIDATION_ENUM"         // Enumeration membership

	// Additional specialized codes for files, dates, etc.

# Framework Usage Patterns

This package provides the infrastructure for building validation systems:

	import "github.com/msto63/dkit/core/validation"

## Implementing Custom Validators

	// Function-based validator
	func ValidateEmail(value interface{}) validation.ValidationResult {
		str, ok := value.(string)
		if !ok {
			return validation.NewValidationError(
				validation.CodeType, "email must be a string")
		}

		if !emailRegex.MatchString(str) {
			return validation.NewValidationError(
				validation.CodeEmail, "invalid email format")
		}

		return validation.NewValidationResult()
	}

	// Struct-based validator
	type EmailValidator struct{}

	func (v EmailValidator) Validate(value interface{}) validation.ValidationResult {
		return ValidateEmail(value)
	}

	func (v EmailValidator) ValidateWithContext(ctx context.Context, value interface{}) validation.ValidationResult {
		// Add context-aware logic here
		return v.Validate(value)
	}

## Working with ValidationResult

	// Creating validation results
	successResult := validation.NewValidationResult()

	errorResult := validation.NewValidationError(
		validation.CodeRequired, "value is required")

	fieldErrorResult := validation.NewValidationErrorWithField(
		validation.CodeEmail, "email", "invalid email format", "invalid@")

	// Processing validation results
	result := someValidator.Validate(value)
	if !result.Valid {
		for _, err := range result.Errors {
			log.Printf("Validation error:")
			log.Printf("  Code: %s", err.Code)
			log.Printf("  Message: %s", err.Message)
			log.Printf("  Field: %s", err.Field)
			log.Printf("  Value: %v", err.Value)
		}

		// Convert to standard error if needed
		return result.ToError()
	}

	// Combining multiple validation results
	result1 := validator1.Validate(value1)
	result2 := validator2.Validate(value2)
	combined := validation.Combine(result1, result2)

# Validator Chains

Build complex validation logic by composing validators:

	// Create a validator chain
	chain := validation.NewValidatorChain("email-validation").
		Add(validation.ValidatorFunc(ValidateRequired)).
		Add(validation.ValidatorFunc(ValidateEmail)).
		Add(validation.ValidatorFunc(ValidateLength(5, 254)))

	// Execute the chain
	result := chain.Validate("user@example.com")
	if !result.Valid {
		for _, err := range result.Errors {
			fmt.Printf("Validation failed: %s\n", err.Message)
		}
	}

	// Chain with context
	ctx := context.WithValue(context.Background(), "source", "config-loader")
	result = chain.ValidateWithContext(ctx, "user@example.com")

	// Conditional validation
	conditional := validation.NewConditionalValidator(
		func(value interface{}) bool {
			// Only validate if value contains '@'
			if str, ok := value.(string); ok {
				return strings.Contains(str, "@")
			}
			return false
		},
		validation.ValidatorFunc(ValidateEmail),
		"conditional-email",
	)

	// Parallel validation
	parallel := validation.NewParallelValidator("parallel-validation").
		Add(validation.ValidatorFunc(ValidateRequired)).
		Add(validation.ValidatorFunc(ValidateLength(5, 50))).
		Add(validation.ValidatorFunc(ValidateEmail))

## Context-Aware Validation

The framework supports context-aware validation for tracing and metadata:

	import "context"

	// Create context with metadata
	ctx := context.WithValue(context.Background(), "source", "cli")
	ctx = context.WithValue(ctx, "operation", "load_config")

	// Validators can access context information
	func ValidateWithRules(ctx context.Context, value interface{}) validation.ValidationResult {
		source := ctx.Value("source")

		// Perform validation with context
		result := validation.NewValidationResult()
		if !isAllowedValue(value) {
			result = validation.NewValidationError(
				validation.CodeCustom, "value not allowed")

			// Add context to result
			result.WithContext("source", source)
		}

		return result
	}

	// Use with validator chains
	chain := validation.NewValidatorChain("config-validation").
		WithContext("source", "config_file")

	result := chain.ValidateWithContext(ctx, value)

## Framework Utilities

The framework provides utility functions for common operations:

	// Utility functions for validation logic
	length := validation.GetValueLength("hello")      // Returns 5
	length = validation.GetValueLength([]int{1, 2, 3}) // Returns 3

	num, err := validation.ConvertToFloat64("123.45")  // Returns 123.45, nil
	num, err = validation.ConvertToFloat64(42)         // Returns 42.0, nil

	isEmpty := validation.IsNilOrEmpty(nil)           // Returns true
	isEmpty = validation.IsNilOrEmpty("")             // Returns true
	isEmpty = validation.IsNilOrEmpty("hello")        // Returns false

## Error Code Usage

	// Using standardized error codes
	result := validation.NewValidationError(
		validation.CodeRequired, "field is required")

	if result.HasError(validation.CodeRequired) {
		fmt.Println("Required field validation failed")
	}

	// Check specific error types
	errorCodes := result.ErrorCodes()
	errorMessages := result.ErrorMessages()

	// Convert to standard error
	if err := result.ToError(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

## Integration with dkit

This framework integrates seamlessly with other dkit modules:

	import (
		"github.com/msto63/dkit/core/validation"
		"github.com/msto63/dkit/core/log"
		"github.com/msto63/dkit/core/error"
	)

	// Error integration
	func handleValidationError(result validation.ValidationResult) error {
		if result.Valid {
			return nil
		}

		// Convert to dkit error
		return result.ToError()
	}

	// Logging integration
	func logValidationResult(logger log.Logger, result validation.ValidationResult) {
		if !result.Valid {
			logger.Warn("Validation failed", log.Fields{
				"errorCount": len(result.Errors),
				"errors": result.ErrorMessages(),
			})
		} else {
			logger.Debug("Validation passed")
		}
	}

## Complete Error Code Reference

Standardized error codes for consistent validation across modules:

	// Core validation failures
	CODE_REQUIRED      = "VALIDATION_REQUIRED"      // Field is required but missing
	CODE_FORMAT        = "VALIDATION_FORMAT"        // Invalid format
	CODE_LENGTH        = "VALIDATION_LENGTH"        // Length validation failed
	CODE_RANGE         = "VALIDATION_RANGE"         // Numeric range validation
	CODE_TYPE          = "VALIDATION_TYPE"          // Type validation failed
	CODE_PATTERN       = "VALIDATION_PATTERN"       // Regex pattern validation
	CODE_CUSTOM        = "VALIDATION_CUSTOM"        // Custom validation rules

	// Format-specific codes
	CODE_EMAIL         = "VALIDATION_EMAIL"         // Email address format
	CODE_URL           = "VALIDATION_URL"           // URL format validation
	CODE_PHONE_NUMBER  = "VALIDATION_PHONE"         // Phone number format
	CODE_NUMERIC       = "VALIDATION_NUMERIC"       // Numeric value validation
	CODE_DATE          = "VALIDATION_DATE"          // Date format validation
	CODE_TIME          = "VALIDATION_TIME"          // Time format validation
	CODE_JSON          = "VALIDATION_JSON"          // JSON format validation
	CODE_ENUM          = "VALIDATION_ENUM"          // Enumeration membership

	// File and system codes
	CODE_PATH          = "VALIDATION_PATH"          // File path validation
	CODE_FILE_EXISTS   = "VALIDATION_FILE_EXISTS"   // File existence check
	CODE_FILE_TYPE     = "VALIDATION_FILE_TYPE"     // File type validation
	CODE_PERMISSION    = "VALIDATION_PERMISSION"    // Permission validation

## Performance and Thread Safety

The validation framework is designed for high-performance, concurrent applications:

### Thread Safety

- All framework types are immutable after creation
- ValidatorChain is safe for concurrent use
- ValidationResult objects are safe to share across goroutines
- No shared mutable state in framework components
- Context handling is thread-safe

### Best Practices

- Create validator chains once and reuse them
- Use context for request-scoped data, not global state
- Prefer composition over inheritance for complex validators
- Keep validation logic stateless for better concurrency
- Use error codes consistently across your application

For concrete validator implementations, see:
  - utils/validationx - General purpose validators
  - utils/stringx - Normalization helpers used in validation pipelines

For additional examples and integration patterns, see the validation framework tests and module documentation.
*/
package validation

// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code functionality including validation
//              and categorization.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with comprehensive code tests

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeCopyFailed, "COPY_FAILED"},
		{CodeNotFound, "NOT_FOUND"},
		{CodeDivisionByZero, "DIVISION_BY_ZERO"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeCopyFailed, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
		{"arithmetic code", CodeDivisionByZero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeDivisionByZero, "arithmetic"},
		{CodeOverflow, "arithmetic"},
		{CodeReadFailed, "filesystem"},
		{CodeWriteFailed, "filesystem"},
		{CodeCopyFailed, "filesystem"},
		{CodeMoveFailed, "filesystem"},
		{CodeDeleteFailed, "filesystem"},
		{CodeAccessDenied, "filesystem"},
		{CodeParseFailed, "encoding"},
		{CodeEncodeFailed, "encoding"},
		{CodeDecodeFailed, "encoding"},
		{CodeConfigError, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeRequiredField, "validation"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestAllDefinedCodesAreValid(t *testing.T) {
	// Test that all defined codes are considered valid
	codes := []Code{
		// Generic codes
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,

		// Arithmetic
		CodeDivisionByZero, CodeOverflow,

		// Filesystem operations
		CodeReadFailed, CodeWriteFailed, CodeCopyFailed, CodeMoveFailed,
		CodeDeleteFailed, CodeCreateFailed, CodeAccessDenied,

		// Encoding and parsing
		CodeParseFailed, CodeEncodeFailed, CodeDecodeFailed, CodeInvalidFormat,

		// Configuration and environment
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,

		// Validation
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidLength,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			if !code.IsValid() {
				t.Errorf("Code %v should be valid", code)
			}
		})
	}
}

func TestCodeCategoryCoverage(t *testing.T) {
	// Ensure all categories are covered
	expectedCategories := map[string]bool{
		"arithmetic":    false,
		"filesystem":    false,
		"encoding":      false,
		"configuration": false,
		"validation":    false,
		"generic":       false,
	}

	// Test a representative sample from each category
	testCodes := []Code{
		CodeDivisionByZero,   // arithmetic
		CodeCopyFailed,       // filesystem
		CodeParseFailed,      // encoding
		CodeConfigError,      // configuration
		CodeValidationFailed, // validation
		CodeUnknown,          // generic
	}

	for _, code := range testCodes {
		category := code.Category()
		if _, exists := expectedCategories[category]; !exists {
			t.Errorf("Unexpected category %q for code %v", category, code)
		} else {
			expectedCategories[category] = true
		}
	}

	// Ensure all categories were covered
	for category, covered := range expectedCategories {
		if !covered {
			t.Errorf("Category %q was not covered by test codes", category)
		}
	}
}

// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the dkit library. These codes enable structured error handling,
//              programmatic error inspection, and error reporting in consuming tools.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the dkit library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeOverflow       Code = "OVERFLOW"

	// Filesystem operations
	CodeReadFailed   Code = "READ_FAILED"
	CodeWriteFailed  Code = "WRITE_FAILED"
	CodeCopyFailed   Code = "COPY_FAILED"
	CodeMoveFailed   Code = "MOVE_FAILED"
	CodeDeleteFailed Code = "DELETE_FAILED"
	CodeCreateFailed Code = "CREATE_FAILED"
	CodeAccessDenied Code = "ACCESS_DENIED"

	// Encoding and parsing
	CodeParseFailed   Code = "PARSE_FAILED"
	CodeEncodeFailed  Code = "ENCODE_FAILED"
	CodeDecodeFailed  Code = "DECODE_FAILED"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDivisionByZero, CodeOverflow,
		CodeReadFailed, CodeWriteFailed, CodeCopyFailed, CodeMoveFailed, CodeDeleteFailed, CodeCreateFailed, CodeAccessDenied,
		CodeParseFailed, CodeEncodeFailed, CodeDecodeFailed, CodeInvalidFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeOverflow:
		return "arithmetic"
	case CodeReadFailed, CodeWriteFailed, CodeCopyFailed, CodeMoveFailed, CodeDeleteFailed, CodeCreateFailed, CodeAccessDenied:
		return "filesystem"
	case CodeParseFailed, CodeEncodeFailed, CodeDecodeFailed, CodeInvalidFormat:
		return "encoding"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

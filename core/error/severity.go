// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels help consuming applications
//              respond appropriately to different types of errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid arguments, parse failures, missing optional values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a failed file operation the caller can retry, a config reload failure
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: internal invariant violations, partially completed batch operations
	SeverityHigh

	// SeverityCritical indicates a critical error that makes continued operation unsafe
	// Examples: inconsistent on-disk state that manual intervention must resolve
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeReadFailed, CodeWriteFailed, CodeCopyFailed, CodeMoveFailed,
		CodeDeleteFailed, CodeCreateFailed, CodeAccessDenied,
		CodeEncodeFailed, CodeDecodeFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeParseFailed, CodeInvalidFormat,
		CodeDivisionByZero, CodeOverflow,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

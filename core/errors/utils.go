// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error handling utilities that can be used
//              across all dkit modules for consistent error patterns.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-03
// Modified: 2025-04-18
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation of shared error utilities
// - 2025-04-18 v0.1.1: Added convx, jsonx, and patchx convenience helpers

package errors

import (
	"fmt"
	"reflect"
	"strings"

	dkiterror "github.com/msto63/dkit/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  dkiterror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: dkiterror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity dkiterror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *dkiterror.Error {
	// Auto-generate code if not set
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	// Auto-generate message if not set
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	// Add module and operation to details
	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	// Create the error
	var err *dkiterror.Error
	if eb.cause != nil {
		err = dkiterror.Wrap(eb.cause, eb.message)
	} else {
		err = dkiterror.New(eb.message)
	}

	return err.
		WithCode(dkiterror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL dkit MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all dkit modules. Use these instead of fmt.Errorf() or errors.New()

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *dkiterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(dkiterror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *dkiterror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(dkiterror.SeverityMedium).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *dkiterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(getOperationErrorCode(module)).
		Severity(dkiterror.SeverityHigh).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *dkiterror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(dkiterror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *dkiterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(dkiterror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *dkiterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(dkiterror.SeverityMedium).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a dkit error
func ExtractDetails(err error) map[string]interface{} {
	if dkitErr, ok := err.(*dkiterror.Error); ok {
		return dkitErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// ValidateRequired validates that a value is not nil/empty using reflection
func ValidateRequired(module, field string, value interface{}) error {
	if value == nil {
		return ValidationFailed(module, field, value, "cannot be nil")
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Slice, reflect.Map, reflect.Array:
		if v.Len() == 0 {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ValidationFailed(module, field, value, "cannot be nil")
		}
	}

	return nil
}

// ValidateRange validates that a numeric value is within range
func ValidateRange(module, field string, value, min, max interface{}) error {
	// Convert to float64 for comparison
	val, err := toFloat64(value)
	if err != nil {
		return InvalidInput(module, "validate_range", value, "numeric value")
	}

	minVal, err := toFloat64(min)
	if err != nil {
		return InvalidInput(module, "validate_range", min, "numeric min value")
	}

	maxVal, err := toFloat64(max)
	if err != nil {
		return InvalidInput(module, "validate_range", max, "numeric max value")
	}

	if val < minVal || val > maxVal {
		return OutOfRange(module, "validate_range", value, min, max)
	}

	return nil
}

// toFloat64 converts various numeric types to float64
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================
// These functions provide direct, easy-to-use error creation for common
// scenarios in each dkit module

// StringX convenience functions
func StringxValidationError(operation, input, expected string) *dkiterror.Error {
	return ValidationFailed("stringx", operation, input, expected)
}

func StringxInvalidInput(operation string, input interface{}) *dkiterror.Error {
	return InvalidInput("stringx", operation, input, "valid string")
}

func StringxFormatError(input, expectedFormat string) *dkiterror.Error {
	return InvalidFormat("stringx", input, expectedFormat)
}

// ConvX convenience functions
func ConvxParseError(operation, input, targetType string) *dkiterror.Error {
	return NewErrorBuilder("convx").
		Operation(operation).
		Message(fmt.Sprintf("cannot parse %q as %s", input, targetType)).
		Code(CodeConvxParseFailed).
		Detail("input", input).
		Detail("target_type", targetType).
		Severity(dkiterror.SeverityLow).
		Build()
}

func ConvxUnsupportedType(operation string, value interface{}) *dkiterror.Error {
	return NewErrorBuilder("convx").
		Operation(operation).
		Messagef("unsupported type %T", value).
		Code(CodeConvxUnsupportedType).
		Detail("value", value).
		Severity(dkiterror.SeverityLow).
		Build()
}

// MathX convenience functions
func MathxDivisionByZero(operation string) *dkiterror.Error {
	return NewErrorBuilder("mathx").
		Operation(operation).
		Message("division by zero").
		Code(CodeMathxDivisionByZero).
		Severity(dkiterror.SeverityHigh).
		Build()
}

func MathxOverflow(operation string, value interface{}) *dkiterror.Error {
	return NewErrorBuilder("mathx").
		Operation(operation).
		Message("arithmetic overflow").
		Code(CodeMathxOverflow).
		Detail("value", value).
		Severity(dkiterror.SeverityHigh).
		Build()
}

// SliceX convenience functions
func SlicexIndexOutOfRange(operation string, index, length int) *dkiterror.Error {
	return OutOfRange("slicex", operation, index, 0, length-1)
}

func SlicexEmptySlice(operation string) *dkiterror.Error {
	return InvalidInput("slicex", operation, "empty slice", "non-empty slice")
}

// MapX convenience functions
func MapxKeyNotFound(operation, key string) *dkiterror.Error {
	return NewErrorBuilder("mapx").
		Operation(operation).
		Message(fmt.Sprintf("key '%s' not found", key)).
		Code(CodeMapxKeyNotFound).
		Detail("key", key).
		Severity(dkiterror.SeverityLow).
		Build()
}

func MapxEmptyMap(operation string) *dkiterror.Error {
	return InvalidInput("mapx", operation, "empty map", "non-empty map")
}

// TimeX convenience functions
func TimexParseError(input, expectedFormat string) *dkiterror.Error {
	return InvalidFormat("timex", input, expectedFormat)
}

func TimexInvalidTimezone(timezone string) *dkiterror.Error {
	return InvalidInput("timex", "load_location", timezone, "valid timezone")
}

func TimexInvalidLayout(layout string) *dkiterror.Error {
	return NewErrorBuilder("timex").
		Operation("layout").
		Messagef("invalid time layout: %s", layout).
		Code(CodeTimexInvalidFormat).
		Detail("layout", layout).
		Severity(dkiterror.SeverityLow).
		Build()
}

// ValidationX convenience functions
func ValidationxRuleFailed(rule, field string, value interface{}, message string) *dkiterror.Error {
	return ValidationFailed("validationx", field, value, fmt.Sprintf("rule '%s': %s", rule, message))
}

// FileX convenience functions
func FilexNotFound(path string) *dkiterror.Error {
	return NewErrorBuilder("filex").
		Operation("access").
		Message(fmt.Sprintf("file not found: %s", path)).
		Code(CodeFilexNotFound).
		Detail("path", path).
		Severity(dkiterror.SeverityMedium).
		Build()
}

func FilexPermissionDenied(path, operation string) *dkiterror.Error {
	return NewErrorBuilder("filex").
		Operation(operation).
		Message(fmt.Sprintf("permission denied: %s", path)).
		Code(CodeFilexPermissionDenied).
		Detail("path", path).
		Detail("operation", operation).
		Severity(dkiterror.SeverityHigh).
		Build()
}

func FilexIOError(operation, path string, cause error) *dkiterror.Error {
	return NewErrorBuilder("filex").
		Operation(operation).
		Messagef("%s failed for %s", operation, path).
		Cause(cause).
		Code(getFilexErrorCode(operation)).
		Detail("path", path).
		Severity(dkiterror.SeverityMedium).
		Build()
}

// JsonX convenience functions
func JsonxEncodeError(operation string, cause error) *dkiterror.Error {
	return NewErrorBuilder("jsonx").
		Operation(operation).
		Message("json encoding failed").
		Cause(cause).
		Code(CodeJsonxEncodeFailed).
		Severity(dkiterror.SeverityLow).
		Build()
}

func JsonxDecodeError(operation string, cause error) *dkiterror.Error {
	return NewErrorBuilder("jsonx").
		Operation(operation).
		Message("json decoding failed").
		Cause(cause).
		Code(CodeJsonxDecodeFailed).
		Severity(dkiterror.SeverityLow).
		Build()
}

func JsonxInvalidLayout(layout string) *dkiterror.Error {
	return NewErrorBuilder("jsonx").
		Operation("layout").
		Message(fmt.Sprintf("invalid time layout: %s", layout)).
		Code(CodeJsonxInvalidLayout).
		Detail("layout", layout).
		Severity(dkiterror.SeverityLow).
		Build()
}

// PatchX convenience functions
func PatchxInvalidTarget(operation string, target interface{}) *dkiterror.Error {
	return NewErrorBuilder("patchx").
		Operation(operation).
		Messagef("invalid patch target of type %T", target).
		Code(CodePatchxInvalidTarget).
		Detail("target_type", fmt.Sprintf("%T", target)).
		Severity(dkiterror.SeverityLow).
		Build()
}

func PatchxUnknownField(operation, field string) *dkiterror.Error {
	return NewErrorBuilder("patchx").
		Operation(operation).
		Message(fmt.Sprintf("unknown field '%s'", field)).
		Code(CodePatchxUnknownField).
		Detail("field", field).
		Severity(dkiterror.SeverityLow).
		Build()
}

func PatchxTypeMismatch(operation, field, expected, actual string) *dkiterror.Error {
	return NewErrorBuilder("patchx").
		Operation(operation).
		Messagef("field '%s' expects %s, got %s", field, expected, actual).
		Code(CodePatchxTypeMismatch).
		Detail("field", field).
		Detail("expected_type", expected).
		Detail("actual_type", actual).
		Severity(dkiterror.SeverityLow).
		Build()
}

// File: standards.go
// Title: Error Standards for dkit
// Description: Provides standardized error handling patterns and codes for all
//              dkit modules to ensure consistency and integration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-03
// Modified: 2025-03-03
//
// Change History:
// - 2025-03-03 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	dkiterror "github.com/msto63/dkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleConvx       = "convx"
	ModuleMathx       = "mathx"
	ModuleMapx        = "mapx"
	ModuleSlicex      = "slicex"
	ModuleTimex       = "timex"
	ModuleValidationx = "validationx"
	ModuleFilex       = "filex"
	ModuleJsonx       = "jsonx"
	ModulePatchx      = "patchx"
	ModuleTaskx       = "taskx"
	ModuleConfig      = "config"
	ModuleLog         = "log"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeOperationFailed  = "OPERATION_FAILED"

	// Module-specific error codes - stringx
	CodeStringxInvalidFormat  = "STRINGX_INVALID_FORMAT"
	CodeStringxLengthExceeded = "STRINGX_LENGTH_EXCEEDED"
	CodeStringxEncodingError  = "STRINGX_ENCODING_ERROR"
	CodeStringxInvalidPattern = "STRINGX_INVALID_PATTERN"

	// Module-specific error codes - convx
	CodeConvxParseFailed     = "CONVX_PARSE_FAILED"
	CodeConvxUnsupportedType = "CONVX_UNSUPPORTED_TYPE"
	CodeConvxOperationFailed = "CONVX_OPERATION_FAILED"

	// Module-specific error codes - mathx
	CodeMathxDivisionByZero  = "MATHX_DIVISION_BY_ZERO"
	CodeMathxOverflow        = "MATHX_OVERFLOW"
	CodeMathxUnderflow       = "MATHX_UNDERFLOW"
	CodeMathxOperationFailed = "MATHX_OPERATION_FAILED"

	// Module-specific error codes - mapx
	CodeMapxKeyNotFound     = "MAPX_KEY_NOT_FOUND"
	CodeMapxInvalidType     = "MAPX_INVALID_TYPE"
	CodeMapxOperationFailed = "MAPX_OPERATION_FAILED"

	// Module-specific error codes - slicex
	CodeSlicexIndexOutOfRange = "SLICEX_INDEX_OUT_OF_RANGE"
	CodeSlicexInvalidFunction = "SLICEX_INVALID_FUNCTION"
	CodeSlicexOperationFailed = "SLICEX_OPERATION_FAILED"

	// Module-specific error codes - timex
	CodeTimexInvalidFormat    = "TIMEX_INVALID_FORMAT"
	CodeTimexInvalidTimeZone  = "TIMEX_INVALID_TIMEZONE"
	CodeTimexParseError       = "TIMEX_PARSE_ERROR"
	CodeTimexCalculationError = "TIMEX_CALCULATION_ERROR"
	CodeTimexOperationFailed  = "TIMEX_OPERATION_FAILED"

	// Module-specific error codes - validationx
	CodeValidationxRuleFailed  = "VALIDATIONX_RULE_FAILED"
	CodeValidationxChainFailed = "VALIDATIONX_CHAIN_FAILED"
	CodeValidationxInvalidRule = "VALIDATIONX_INVALID_RULE"

	// Module-specific error codes - filex
	CodeFilexNotFound         = "FILEX_NOT_FOUND"
	CodeFilexPermissionDenied = "FILEX_PERMISSION_DENIED"
	CodeFilexOperationFailed  = "FILEX_OPERATION_FAILED"
	CodeFilexInvalidPath      = "FILEX_INVALID_PATH"
	CodeFilexReadFailed       = "FILEX_READ_FAILED"
	CodeFilexWriteFailed      = "FILEX_WRITE_FAILED"
	CodeFilexCopyFailed       = "FILEX_COPY_FAILED"
	CodeFilexMoveFailed       = "FILEX_MOVE_FAILED"
	CodeFilexDeleteFailed     = "FILEX_DELETE_FAILED"
	CodeFilexCreateFailed     = "FILEX_CREATE_FAILED"

	// Module-specific error codes - jsonx
	CodeJsonxEncodeFailed    = "JSONX_ENCODE_FAILED"
	CodeJsonxDecodeFailed    = "JSONX_DECODE_FAILED"
	CodeJsonxInvalidLayout   = "JSONX_INVALID_LAYOUT"
	CodeJsonxOperationFailed = "JSONX_OPERATION_FAILED"

	// Module-specific error codes - patchx
	CodePatchxInvalidTarget   = "PATCHX_INVALID_TARGET"
	CodePatchxUnknownField    = "PATCHX_UNKNOWN_FIELD"
	CodePatchxTypeMismatch    = "PATCHX_TYPE_MISMATCH"
	CodePatchxOperationFailed = "PATCHX_OPERATION_FAILED"

	// Module-specific error codes - taskx
	CodeTaskxOperationFailed = "TASKX_OPERATION_FAILED"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *dkiterror.Error {
	return dkiterror.New(message).
		WithCode(dkiterror.Code(getModuleErrorCode(module, operation))).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(dkiterror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *dkiterror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := dkiterror.Code(getModuleErrorCode(module, operation))
	severity := getSeverityFromError(cause)

	if cause != nil {
		return dkiterror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithDetails(details).
			WithSeverity(severity)
	}

	return dkiterror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithDetails(details).
		WithSeverity(severity)
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *dkiterror.Error {
	return dkiterror.New(message).
		WithCode(dkiterror.Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module)))).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(dkiterror.SeverityLow)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *dkiterror.Error {
	return dkiterror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(dkiterror.Code(CodeInvalidInput)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(dkiterror.SeverityMedium)
}

// FormatError creates a standardized format error
func FormatError(module string, input interface{}, expectedFormat string) *dkiterror.Error {
	return dkiterror.New(fmt.Sprintf("invalid format in %s", module)).
		WithCode(dkiterror.Code(getFormatErrorCode(module))).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		}).
		WithSeverity(dkiterror.SeverityMedium)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *dkiterror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return dkiterror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(dkiterror.Code(getOperationErrorCode(module))).
		WithDetails(context).
		WithSeverity(dkiterror.SeverityHigh)
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		return getStringxErrorCode(operation)
	case ModuleConvx:
		return getConvxErrorCode(operation)
	case ModuleMathx:
		return getMathxErrorCode(operation)
	case ModuleMapx:
		return getMapxErrorCode(operation)
	case ModuleSlicex:
		return getSlicexErrorCode(operation)
	case ModuleTimex:
		return getTimexErrorCode(operation)
	case ModuleValidationx:
		return getValidationxErrorCode(operation)
	case ModuleFilex:
		return getFilexErrorCode(operation)
	case ModuleJsonx:
		return getJsonxErrorCode(operation)
	case ModulePatchx:
		return getPatchxErrorCode(operation)
	default:
		return CodeOperationFailed
	}
}

// Module-specific error code getters
func getStringxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "format"):
		return CodeStringxInvalidFormat
	case strings.Contains(operation, "length"):
		return CodeStringxLengthExceeded
	case strings.Contains(operation, "encoding"):
		return CodeStringxEncodingError
	case strings.Contains(operation, "pattern"):
		return CodeStringxInvalidPattern
	default:
		return CodeInvalidInput
	}
}

func getConvxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "parse"):
		return CodeConvxParseFailed
	case strings.Contains(operation, "type"):
		return CodeConvxUnsupportedType
	default:
		return CodeConvxOperationFailed
	}
}

func getMathxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "divide") || strings.Contains(operation, "div") || strings.Contains(operation, "mod"):
		return CodeMathxDivisionByZero
	case strings.Contains(operation, "overflow"):
		return CodeMathxOverflow
	case strings.Contains(operation, "underflow"):
		return CodeMathxUnderflow
	default:
		return CodeInvalidInput
	}
}

func getMapxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "key") || strings.Contains(operation, "get"):
		return CodeMapxKeyNotFound
	case strings.Contains(operation, "type"):
		return CodeMapxInvalidType
	default:
		return CodeMapxOperationFailed
	}
}

func getSlicexErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "index") || strings.Contains(operation, "range"):
		return CodeSlicexIndexOutOfRange
	case strings.Contains(operation, "function") || strings.Contains(operation, "func"):
		return CodeSlicexInvalidFunction
	default:
		return CodeSlicexOperationFailed
	}
}

func getTimexErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "parse"):
		return CodeTimexParseError
	case strings.Contains(operation, "format"):
		return CodeTimexInvalidFormat
	case strings.Contains(operation, "timezone") || strings.Contains(operation, "tz"):
		return CodeTimexInvalidTimeZone
	case strings.Contains(operation, "calc") || strings.Contains(operation, "compute"):
		return CodeTimexCalculationError
	default:
		return CodeInvalidInput
	}
}

func getValidationxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "rule"):
		return CodeValidationxRuleFailed
	case strings.Contains(operation, "chain"):
		return CodeValidationxChainFailed
	default:
		return CodeValidationxInvalidRule
	}
}

func getFilexErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "read"):
		return CodeFilexReadFailed
	case strings.Contains(operation, "write"):
		return CodeFilexWriteFailed
	case strings.Contains(operation, "copy"):
		return CodeFilexCopyFailed
	case strings.Contains(operation, "move"):
		return CodeFilexMoveFailed
	case strings.Contains(operation, "delete") || strings.Contains(operation, "remove"):
		return CodeFilexDeleteFailed
	case strings.Contains(operation, "create") || strings.Contains(operation, "mkdir") || strings.Contains(operation, "touch"):
		return CodeFilexCreateFailed
	case strings.Contains(operation, "permission"):
		return CodeFilexPermissionDenied
	case strings.Contains(operation, "path"):
		return CodeFilexInvalidPath
	case strings.Contains(operation, "find") || strings.Contains(operation, "exist"):
		return CodeFilexNotFound
	default:
		return CodeFilexOperationFailed
	}
}

func getJsonxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "marshal") && !strings.Contains(operation, "unmarshal"):
		return CodeJsonxEncodeFailed
	case strings.Contains(operation, "unmarshal") || strings.Contains(operation, "decode"):
		return CodeJsonxDecodeFailed
	case strings.Contains(operation, "layout"):
		return CodeJsonxInvalidLayout
	default:
		return CodeJsonxOperationFailed
	}
}

func getPatchxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "target"):
		return CodePatchxInvalidTarget
	case strings.Contains(operation, "field"):
		return CodePatchxUnknownField
	case strings.Contains(operation, "type"):
		return CodePatchxTypeMismatch
	default:
		return CodePatchxOperationFailed
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleStringx:
		return CodeStringxInvalidFormat
	case ModuleTimex:
		return CodeTimexInvalidFormat
	case ModuleJsonx:
		return CodeJsonxInvalidLayout
	case ModuleConvx:
		return CodeConvxParseFailed
	default:
		return CodeInvalidFormat
	}
}

func getOperationErrorCode(module string) string {
	switch module {
	case ModuleConvx:
		return CodeConvxOperationFailed
	case ModuleMathx:
		return CodeMathxOperationFailed
	case ModuleMapx:
		return CodeMapxOperationFailed
	case ModuleSlicex:
		return CodeSlicexOperationFailed
	case ModuleTimex:
		return CodeTimexOperationFailed
	case ModuleFilex:
		return CodeFilexOperationFailed
	case ModuleJsonx:
		return CodeJsonxOperationFailed
	case ModulePatchx:
		return CodePatchxOperationFailed
	case ModuleTaskx:
		return CodeTaskxOperationFailed
	default:
		return CodeOperationFailed
	}
}

// getSeverityFromError determines appropriate severity based on error type
func getSeverityFromError(cause error) dkiterror.Severity {
	if cause == nil {
		return dkiterror.SeverityLow
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission") || strings.Contains(errStr, "access"):
		return dkiterror.SeverityHigh
	case strings.Contains(errStr, "not found") || strings.Contains(errStr, "missing"):
		return dkiterror.SeverityMedium
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "format"):
		return dkiterror.SeverityLow
	case strings.Contains(errStr, "overflow") || strings.Contains(errStr, "underflow"):
		return dkiterror.SeverityHigh
	case strings.Contains(errStr, "divide") || strings.Contains(errStr, "zero"):
		return dkiterror.SeverityHigh
	default:
		return dkiterror.SeverityMedium
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if dkitErr, ok := err.(*dkiterror.Error); ok {
		if details := dkitErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if dkitErr, ok := err.(*dkiterror.Error); ok {
		if details := dkitErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if dkitErr, ok := err.(*dkiterror.Error); ok {
		if details := dkitErr.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}

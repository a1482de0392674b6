// File: error_test.go
// Title: Error Module Tests
// Description: Comprehensive tests for the error module covering all functionality
//              including error creation, wrapping, codes, severity, and metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with comprehensive test coverage

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap dkit error",
			err:     New("original dkit error").WithCode(CodeCopyFailed),
			message: "wrapper message",
			wantMsg: "wrapper message: original dkit error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Test that dkit error properties are preserved
			if dkitErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != dkitErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), dkitErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	// Test error messages
	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	// Test unwrapping
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	// Test root cause
	rootCause := top.RootCause()
	if rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeCopyFailed)

	if err.Code() != CodeCopyFailed {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeCopyFailed)
	}

	// Should auto-set severity based on code
	expectedSeverity := GetSeverityFromCode(CodeCopyFailed)
	if err.Severity() != expectedSeverity {
		t.Errorf("Severity() = %v, want %v", err.Severity(), expectedSeverity)
	}
}

func TestWithSeverity(t *testing.T) {
	err := New("test error").WithSeverity(SeverityCritical)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("key1", "value1").
		WithDetail("key2", 42)

	details := err.Details()

	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}

	if details["key1"] != "value1" {
		t.Errorf("Details()[\"key1\"] = %v, want \"value1\"", details["key1"])
	}

	if details["key2"] != 42 {
		t.Errorf("Details()[\"key2\"] = %v, want 42", details["key2"])
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	}

	err := New("test error").WithDetails(details)

	errDetails := err.Details()
	if len(errDetails) != 3 {
		t.Errorf("Details() length = %d, want 3", len(errDetails))
	}

	for k, v := range details {
		if errDetails[k] != v {
			t.Errorf("Details()[%q] = %v, want %v", k, errDetails[k], v)
		}
	}
}

func TestWithContext(t *testing.T) {
	context := "filex.CopyFile"
	err := New("test error").WithContext(context)

	if err.Context() != context {
		t.Errorf("Context() = %q, want %q", err.Context(), context)
	}
}

func TestWithOperation(t *testing.T) {
	operation := "copy /data/in.bin"
	err := New("test error").WithOperation(operation)

	if err.Operation() != operation {
		t.Errorf("Operation() = %q, want %q", err.Operation(), operation)
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "dkit error with matching code",
			err:  New("test").WithCode(CodeCopyFailed),
			code: CodeCopyFailed,
			want: true,
		},
		{
			name: "dkit error with different code",
			err:  New("test").WithCode(CodeCopyFailed),
			code: CodeNotFound,
			want: false,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			code: CodeCopyFailed,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "dkit error",
			err:  New("test").WithCode(CodeCopyFailed),
			want: CodeCopyFailed,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{
			name: "dkit error",
			err:  New("test").WithSeverity(SeverityCritical),
			want: SeverityCritical,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	err := New("test error").
		WithCode(CodeCopyFailed).
		WithSeverity(SeverityHigh).
		WithContext("filex").
		WithOperation("CopyFile").
		WithDetail("source", "/data/in.bin")

	str := err.String()

	// Check that all information is included
	expectedParts := []string{
		"Error: test error",
		"Code: COPY_FAILED",
		"Severity: high",
		"Context: filex",
		"Operation: CopyFile",
		"Details: {source=/data/in.bin}",
	}

	for _, part := range expectedParts {
		if !strings.Contains(str, part) {
			t.Errorf("String() should contain %q, got:\n%s", part, str)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("test error").
		WithCode(CodeCopyFailed).
		WithSeverity(SeverityHigh).
		WithContext("filex").
		WithDetail("source", "/data/in.bin")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	// Check required fields
	if result["message"] != "test error" {
		t.Errorf("JSON message = %v, want \"test error\"", result["message"])
	}

	if result["code"] != "COPY_FAILED" {
		t.Errorf("JSON code = %v, want \"COPY_FAILED\"", result["code"])
	}

	if result["severity"] != "high" {
		t.Errorf("JSON severity = %v, want \"high\"", result["severity"])
	}

	if result["context"] != "filex" {
		t.Errorf("JSON context = %v, want \"filex\"", result["context"])
	}

	// Check details
	details, ok := result["details"].(map[string]interface{})
	if !ok {
		t.Fatal("JSON details should be a map")
	}

	if details["source"] != "/data/in.bin" {
		t.Errorf("JSON details.source = %v, want \"/data/in.bin\"", details["source"])
	}
}

func TestStackTrace(t *testing.T) {
	err := New("test error")

	stackTrace := err.StackTrace()
	if len(stackTrace) == 0 {
		t.Error("StackTrace() should not be empty")
	}

	// Check that the first frame contains this test function
	if !strings.Contains(stackTrace[0].Function, "TestStackTrace") {
		t.Errorf("First stack frame should contain TestStackTrace, got %s", stackTrace[0].Function)
	}

	if stackTrace[0].Line == 0 {
		t.Error("Stack frame line should not be 0")
	}

	if stackTrace[0].File == "" {
		t.Error("Stack frame file should not be empty")
	}
}

// Benchmark tests
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapStandardError(b *testing.B) {
	stdErr := errors.New("standard error")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Wrap(stdErr, "wrapped error")
	}
}

func BenchmarkWrapDkitError(b *testing.B) {
	dkitErr := New("original error").WithCode(CodeCopyFailed)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Wrap(dkitErr, "wrapped error")
	}
}

func BenchmarkWithDetails(b *testing.B) {
	details := map[string]interface{}{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error").WithDetails(details)
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	err := New("benchmark error").
		WithCode(CodeCopyFailed).
		WithSeverity(SeverityHigh).
		WithContext("benchmark").
		WithDetail("iteration", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(err)
	}
}

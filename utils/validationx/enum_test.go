// File: enum_test.go
// Title: Enumeration and Normalization Validator Tests
// Description: Tests for enum membership validation and the
//              normalization adapter.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-18
// Modified: 2025-03-18
//
// Change History:
// - 2025-03-18 v0.1.0: Initial test implementation

package validationx

import (
	"reflect"
	"testing"

	"github.com/msto63/dkit/core/validation"
	"github.com/msto63/dkit/utils/stringx"
)

func TestValidateEnum(t *testing.T) {
	allowed := []string{"ACTIVE", "INACTIVE", "PENDING"}

	testCases := []struct {
		name     string
		value    string
		isValid  bool
		wantCode string
	}{
		{"exact match", "ACTIVE", true, ""},
		{"lowercase match", "active", true, ""},
		{"mixed case match", "pEnDiNg", true, ""},
		{"padded match", "  INACTIVE  ", true, ""},
		{"miss", "DELETED", false, validation.CodeEnum},
		{"empty", "", false, validation.CodeRequired},
		{"blank", "   ", false, validation.CodeRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateEnum(tc.value, allowed)
			if result.Valid != tc.isValid {
				t.Errorf("ValidateEnum(%q) = %v, want %v", tc.value, result.Valid, tc.isValid)
			}
			if tc.wantCode != "" && !result.HasError(tc.wantCode) {
				t.Errorf("ValidateEnum(%q) codes = %v, want %s",
					tc.value, result.ErrorCodes(), tc.wantCode)
			}
		})
	}
}

func TestValidateEnumExpected(t *testing.T) {
	allowed := []string{"red", "green"}

	result := ValidateEnum("blue", allowed)
	if result.Valid {
		t.Fatal("ValidateEnum accepted a value outside the set")
	}

	first := result.FirstError()
	if first == nil {
		t.Fatal("expected an error entry")
	}
	if first.Value != "blue" {
		t.Errorf("Value = %v, want blue", first.Value)
	}
	expected, ok := first.Expected.([]string)
	if !ok || !reflect.DeepEqual(expected, allowed) {
		t.Errorf("Expected = %v, want %v", first.Expected, allowed)
	}
}

func TestEnumOf(t *testing.T) {
	validator := EnumOf("json", "yaml", "toml")

	if result := validator.Validate("YAML"); !result.Valid {
		t.Errorf("EnumOf rejected YAML: %s", result.String())
	}
	if result := validator.Validate("xml"); result.Valid {
		t.Error("EnumOf accepted xml")
	}
	if result := validator.Validate(""); result.Valid {
		t.Error("EnumOf accepted the empty string")
	}

	result := validator.Validate(42)
	if result.Valid {
		t.Fatal("EnumOf accepted a non-string")
	}
	if !result.HasError(validation.CodeType) {
		t.Errorf("codes = %v, want %s", result.ErrorCodes(), validation.CodeType)
	}
}

func TestEnumOfInChain(t *testing.T) {
	chain := NewValidatorChain("format").
		Add(EnumOf("csv", "tsv"))

	if result := chain.Validate(" csv "); !result.Valid {
		t.Errorf("chain rejected padded csv: %s", result.String())
	}
	if result := chain.Validate("psv"); result.Valid {
		t.Error("chain accepted psv")
	}
}

type weekday string

const (
	monday  weekday = "monday"
	tuesday weekday = "tuesday"
)

func TestEnumValues(t *testing.T) {
	values := EnumValues(monday, tuesday)
	if !reflect.DeepEqual(values, []string{"monday", "tuesday"}) {
		t.Errorf("EnumValues = %v", values)
	}

	validator := EnumOf(EnumValues(monday, tuesday)...)
	if result := validator.Validate("Tuesday"); !result.Valid {
		t.Errorf("typed enum rejected Tuesday: %s", result.String())
	}
	if result := validator.Validate("sunday"); result.Valid {
		t.Error("typed enum accepted sunday")
	}

	if got := EnumValues[weekday](); got == nil || len(got) != 0 {
		// an empty call still returns an empty non-nil slice
		t.Errorf("EnumValues() = %v", got)
	}
}

func TestNormalizedTo(t *testing.T) {
	opts := stringx.NormalizeOptions{Trim: true, Case: stringx.CaseUpper}
	validator := NormalizedTo(opts, In("ALPHA", "BETA"))

	if result := validator.Validate("  alpha  "); !result.Valid {
		t.Errorf("NormalizedTo rejected padded alpha: %s", result.String())
	}
	if result := validator.Validate("gamma"); result.Valid {
		t.Error("NormalizedTo accepted gamma")
	}
}

func TestNormalizedToEmptyCollapse(t *testing.T) {
	opts := stringx.NormalizeOptions{Trim: true, EmptyToNull: true}

	required := NormalizedTo(opts, Required)
	if result := required.Validate("   "); result.Valid {
		t.Error("blank input should collapse to nil and fail Required")
	}

	optional := NormalizedTo(opts, Optional(MinLength(3)))
	if result := optional.Validate("   "); !result.Valid {
		t.Errorf("blank input should collapse to nil and pass Optional: %s", result.String())
	}
}

func TestNormalizedToNonString(t *testing.T) {
	// Non-string values bypass normalization entirely
	validator := NormalizedTo(stringx.DefaultNormalizeOptions(), Min(10))
	if result := validator.Validate(15); !result.Valid {
		t.Errorf("NormalizedTo rejected 15: %s", result.String())
	}
	if result := validator.Validate(5); result.Valid {
		t.Error("NormalizedTo accepted 5")
	}
}

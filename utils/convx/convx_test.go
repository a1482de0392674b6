// File: convx_test.go
// Title: Unit Tests for Core Type Conversion Utilities
// Description: Comprehensive unit tests for string rendering and generic
//              numeric conversions. Tests cover formatting fidelity, null
//              rendering, and cast truncation semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial test implementation

package convx

import (
	"math"
	"testing"
)

func TestFormatInt(t *testing.T) {
	if got := FormatInt(42); got != "42" {
		t.Errorf("FormatInt(42) = %q; want %q", got, "42")
	}
	if got := FormatInt(int8(-128)); got != "-128" {
		t.Errorf("FormatInt(int8(-128)) = %q; want %q", got, "-128")
	}
	if got := FormatInt(int16(0)); got != "0" {
		t.Errorf("FormatInt(int16(0)) = %q; want %q", got, "0")
	}
	if got := FormatInt(int64(math.MaxInt64)); got != "9223372036854775807" {
		t.Errorf("FormatInt(MaxInt64) = %q; want %q", got, "9223372036854775807")
	}
}

func TestFormatUint(t *testing.T) {
	if got := FormatUint(uint(42)); got != "42" {
		t.Errorf("FormatUint(42) = %q; want %q", got, "42")
	}
	if got := FormatUint(uint8(255)); got != "255" {
		t.Errorf("FormatUint(uint8(255)) = %q; want %q", got, "255")
	}
	if got := FormatUint(uint64(math.MaxUint64)); got != "18446744073709551615" {
		t.Errorf("FormatUint(MaxUint64) = %q; want %q", got, "18446744073709551615")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"simple float64", FormatFloat(1.5), "1.5"},
		{"simple float32", FormatFloat(float32(1.5)), "1.5"},
		{"shortest round trip", FormatFloat(0.1), "0.1"},
		{"whole number", FormatFloat(3.0), "3"},
		{"negative", FormatFloat(-2.25), "-2.25"},
		{"large magnitude", FormatFloat(1e21), "1e+21"},
		{"not a number", FormatFloat(math.NaN()), "NaN"},
		{"positive infinity", FormatFloat(math.Inf(1)), "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("FormatFloat = %q; want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestFormatBool(t *testing.T) {
	if got := FormatBool(true); got != "true" {
		t.Errorf("FormatBool(true) = %q; want %q", got, "true")
	}
	if got := FormatBool(false); got != "false" {
		t.Errorf("FormatBool(false) = %q; want %q", got, "false")
	}
}

func TestFormatRune(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected string
	}{
		{"ascii letter", 'A', "A"},
		{"digit", '1', "1"},
		{"unicode", '世', "世"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRune(tt.input); got != tt.expected {
				t.Errorf("FormatRune(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

type stringerValue struct{}

func (stringerValue) String() string { return "custom" }

func TestToString(t *testing.T) {
	five := 5
	fivePtr := &five

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil interface", nil, "null"},
		{"int", 42, "42"},
		{"string", "hello", "hello"},
		{"bool", true, "true"},
		{"float", 3.14, "3.14"},
		{"typed nil pointer", (*int)(nil), "null"},
		{"nil slice", []int(nil), "null"},
		{"nil map", map[string]int(nil), "null"},
		{"pointer renders pointee", fivePtr, "5"},
		{"double pointer renders pointee", &fivePtr, "5"},
		{"stringer", stringerValue{}, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.expected {
				t.Errorf("ToString(%v) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSliceString(t *testing.T) {
	five := 5

	t.Run("nil slice", func(t *testing.T) {
		if got := SliceString[int](nil); got != "null" {
			t.Errorf("SliceString(nil) = %q; want %q", got, "null")
		}
	})

	t.Run("empty slice", func(t *testing.T) {
		if got := SliceString([]int{}); got != "[]" {
			t.Errorf("SliceString([]) = %q; want %q", got, "[]")
		}
	})

	t.Run("int slice", func(t *testing.T) {
		if got := SliceString([]int{1, 2, 3}); got != "[1, 2, 3]" {
			t.Errorf("SliceString = %q; want %q", got, "[1, 2, 3]")
		}
	})

	t.Run("string slice", func(t *testing.T) {
		if got := SliceString([]string{"a", "b"}); got != "[a, b]" {
			t.Errorf("SliceString = %q; want %q", got, "[a, b]")
		}
	})

	t.Run("bool slice", func(t *testing.T) {
		if got := SliceString([]bool{true, false}); got != "[true, false]" {
			t.Errorf("SliceString = %q; want %q", got, "[true, false]")
		}
	})

	t.Run("nil elements render as null", func(t *testing.T) {
		if got := SliceString([]*int{nil, &five}); got != "[null, 5]" {
			t.Errorf("SliceString = %q; want %q", got, "[null, 5]")
		}
	})
}

func TestMapString(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		if got := MapString[string, int](nil); got != "null" {
			t.Errorf("MapString(nil) = %q; want %q", got, "null")
		}
	})

	t.Run("empty map", func(t *testing.T) {
		if got := MapString(map[string]int{}); got != "{}" {
			t.Errorf("MapString({}) = %q; want %q", got, "{}")
		}
	})

	t.Run("entries sorted by key", func(t *testing.T) {
		m := map[string]int{"b": 2, "a": 1, "c": 3}
		if got := MapString(m); got != "{a=1, b=2, c=3}" {
			t.Errorf("MapString = %q; want %q", got, "{a=1, b=2, c=3}")
		}
	})

	t.Run("int keys", func(t *testing.T) {
		m := map[int]string{2: "b", 1: "a"}
		if got := MapString(m); got != "{1=a, 2=b}" {
			t.Errorf("MapString = %q; want %q", got, "{1=a, 2=b}")
		}
	})
}

func TestNumTo(t *testing.T) {
	t.Run("int to int8 truncates", func(t *testing.T) {
		if got := NumTo[int8](300); got != 44 {
			t.Errorf("NumTo[int8](300) = %d; want 44", got)
		}
	})

	t.Run("negative wraps", func(t *testing.T) {
		if got := NumTo[int8](int16(-129)); got != 127 {
			t.Errorf("NumTo[int8](-129) = %d; want 127", got)
		}
	})

	t.Run("float to int discards fraction", func(t *testing.T) {
		if got := NumTo[int](3.9); got != 3 {
			t.Errorf("NumTo[int](3.9) = %d; want 3", got)
		}
		if got := NumTo[int](-3.9); got != -3 {
			t.Errorf("NumTo[int](-3.9) = %d; want -3", got)
		}
	})

	t.Run("int to float widens", func(t *testing.T) {
		if got := NumTo[float64](42); got != 42.0 {
			t.Errorf("NumTo[float64](42) = %v; want 42", got)
		}
	})

	t.Run("int to uint8 wraps", func(t *testing.T) {
		if got := NumTo[uint8](int16(260)); got != 4 {
			t.Errorf("NumTo[uint8](260) = %d; want 4", got)
		}
	})

	t.Run("int64 to int32 keeps low bits", func(t *testing.T) {
		if got := NumTo[int32](int64(1) << 40); got != 0 {
			t.Errorf("NumTo[int32](1<<40) = %d; want 0", got)
		}
	})

	t.Run("identity conversion", func(t *testing.T) {
		if got := NumTo[int](7); got != 7 {
			t.Errorf("NumTo[int](7) = %d; want 7", got)
		}
	})
}

// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Test suite for the slicex utility functions covering
//              membership checks, emptiness predicates, transformation,
//              and edge cases with nil and empty slices.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial test implementation

package slicex

import (
	"slices"
	"strconv"
	"testing"
)

// ===============================
// Validation Tests
// ===============================

func TestIsEmpty(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		var input []int
		if !IsEmpty(input) {
			t.Error("IsEmpty() = false, want true")
		}
	})

	t.Run("non-empty slice", func(t *testing.T) {
		input := []int{1}
		if IsEmpty(input) {
			t.Error("IsEmpty() = true, want false")
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		if !IsEmpty(([]int)(nil)) {
			t.Error("IsEmpty() = false, want true")
		}
	})
}

func TestIsNotEmpty(t *testing.T) {
	if !IsNotEmpty([]int{1}) {
		t.Error("IsNotEmpty() = false, want true")
	}
	if IsNotEmpty([]int{}) {
		t.Error("IsNotEmpty() = true, want false")
	}
	if IsNotEmpty(([]string)(nil)) {
		t.Error("IsNotEmpty(nil) = true, want false")
	}
}

// ===============================
// Search Tests
// ===============================

func TestContains(t *testing.T) {
	t.Run("contains existing element", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		if !Contains(input, 3) {
			t.Error("Contains() = false, want true")
		}
	})

	t.Run("contains non-existing element", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		if Contains(input, 6) {
			t.Error("Contains() = true, want false")
		}
	})

	t.Run("contains in empty slice", func(t *testing.T) {
		var input []int
		if Contains(input, 1) {
			t.Error("Contains() = true, want false")
		}
	})
}

func TestContainsFunc(t *testing.T) {
	t.Run("contains by predicate", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		if !ContainsFunc(input, func(x int) bool { return x > 4 }) {
			t.Error("ContainsFunc() = false, want true")
		}
	})

	t.Run("not contains by predicate", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5}
		if ContainsFunc(input, func(x int) bool { return x > 10 }) {
			t.Error("ContainsFunc() = true, want false")
		}
	})

	t.Run("nil predicate", func(t *testing.T) {
		input := []int{1, 2, 3}
		if ContainsFunc(input, nil) {
			t.Error("ContainsFunc(nil predicate) = true, want false")
		}
	})
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		element  string
		expected bool
	}{
		{"exact match", []string{"alpha", "beta"}, "alpha", true},
		{"case-insensitive match", []string{"alpha", "beta"}, "ALPHA", true},
		{"mixed case match", []string{"Alpha", "Beta"}, "bEtA", true},
		{"no match", []string{"alpha", "beta"}, "gamma", false},
		{"empty slice", []string{}, "alpha", false},
		{"nil slice", nil, "alpha", false},
		{"unicode fold", []string{"STRASSE"}, "strasse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.slice, tt.element); got != tt.expected {
				t.Errorf("ContainsFold(%v, %q) = %v, want %v", tt.slice, tt.element, got, tt.expected)
			}
		})
	}
}

func TestNotContains(t *testing.T) {
	input := []int{1, 2, 3}
	if NotContains(input, 2) {
		t.Error("NotContains() = true, want false")
	}
	if !NotContains(input, 9) {
		t.Error("NotContains() = false, want true")
	}
}

func TestNotContainsFunc(t *testing.T) {
	input := []string{"a", "bb", "ccc"}
	if NotContainsFunc(input, func(s string) bool { return len(s) == 2 }) {
		t.Error("NotContainsFunc() = true, want false")
	}
	if !NotContainsFunc(input, func(s string) bool { return len(s) > 3 }) {
		t.Error("NotContainsFunc() = false, want true")
	}
}

func TestNotContainsFold(t *testing.T) {
	input := []string{"alpha", "beta"}
	if NotContainsFold(input, "ALPHA") {
		t.Error("NotContainsFold() = true, want false")
	}
	if !NotContainsFold(input, "gamma") {
		t.Error("NotContainsFold() = false, want true")
	}
}

func TestIndexOf(t *testing.T) {
	t.Run("index of existing element", func(t *testing.T) {
		input := []string{"a", "b", "c", "b"}
		result := IndexOf(input, "b")
		expected := 1 // first occurrence

		if result != expected {
			t.Errorf("IndexOf() = %v, want %v", result, expected)
		}
	})

	t.Run("index of non-existing element", func(t *testing.T) {
		input := []string{"a", "b", "c"}
		result := IndexOf(input, "d")
		expected := -1

		if result != expected {
			t.Errorf("IndexOf() = %v, want %v", result, expected)
		}
	})
}

func TestFirstNonZero(t *testing.T) {
	t.Run("first non-zero int", func(t *testing.T) {
		if got := FirstNonZero(0, 0, 3, 5); got != 3 {
			t.Errorf("FirstNonZero() = %v, want 3", got)
		}
	})

	t.Run("first non-empty string", func(t *testing.T) {
		if got := FirstNonZero("", "fallback", "other"); got != "fallback" {
			t.Errorf("FirstNonZero() = %q, want %q", got, "fallback")
		}
	})

	t.Run("all zero", func(t *testing.T) {
		if got := FirstNonZero(0, 0, 0); got != 0 {
			t.Errorf("FirstNonZero() = %v, want 0", got)
		}
	})

	t.Run("no values", func(t *testing.T) {
		if got := FirstNonZero[int](); got != 0 {
			t.Errorf("FirstNonZero() = %v, want 0", got)
		}
	})

	t.Run("first value wins", func(t *testing.T) {
		if got := FirstNonZero(7, 3); got != 7 {
			t.Errorf("FirstNonZero() = %v, want 7", got)
		}
	})
}

// ===============================
// Transformation Tests
// ===============================

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		input := []int{1, 2, 3, 4, 5, 6}
		result := Filter(input, func(x int) bool { return x%2 == 0 })
		expected := []int{2, 4, 6}

		if !slices.Equal(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("filter strings by length", func(t *testing.T) {
		input := []string{"a", "ab", "abc", "abcd"}
		result := Filter(input, func(s string) bool { return len(s) > 2 })
		expected := []string{"abc", "abcd"}

		if !slices.Equal(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("filter nil slice", func(t *testing.T) {
		result := Filter(nil, func(x int) bool { return x > 0 })

		if result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("map int to string", func(t *testing.T) {
		input := []int{1, 2, 3}
		result := Map(input, strconv.Itoa)
		expected := []string{"1", "2", "3"}

		if !slices.Equal(result, expected) {
			t.Errorf("Map() = %v, want %v", result, expected)
		}
	})

	t.Run("map double values", func(t *testing.T) {
		input := []int{1, 2, 3}
		result := Map(input, func(x int) int { return x * 2 })
		expected := []int{2, 4, 6}

		if !slices.Equal(result, expected) {
			t.Errorf("Map() = %v, want %v", result, expected)
		}
	})

	t.Run("map nil slice", func(t *testing.T) {
		result := Map(nil, func(x int) string { return "" })

		if result != nil {
			t.Errorf("Map() = %v, want nil", result)
		}
	})
}

func TestUnique(t *testing.T) {
	t.Run("unique with duplicates", func(t *testing.T) {
		input := []int{1, 2, 2, 3, 1, 4}
		result := Unique(input)
		expected := []int{1, 2, 3, 4}

		if !slices.Equal(result, expected) {
			t.Errorf("Unique() = %v, want %v", result, expected)
		}
	})

	t.Run("unique no duplicates", func(t *testing.T) {
		input := []int{1, 2, 3, 4}
		result := Unique(input)
		expected := []int{1, 2, 3, 4}

		if !slices.Equal(result, expected) {
			t.Errorf("Unique() = %v, want %v", result, expected)
		}
	})

	t.Run("unique strings", func(t *testing.T) {
		input := []string{"a", "b", "a", "c", "b"}
		result := Unique(input)
		expected := []string{"a", "b", "c"}

		if !slices.Equal(result, expected) {
			t.Errorf("Unique() = %v, want %v", result, expected)
		}
	})

	t.Run("unique nil slice", func(t *testing.T) {
		if result := Unique[int](nil); result != nil {
			t.Errorf("Unique(nil) = %v, want nil", result)
		}
	})
}

// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice utility functions including membership
//              checks with negated and case-insensitive variants, emptiness
//              predicates, transformation, and first-value selection with
//              generic type support.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with core slice utilities

package slicex

import (
	"strings"
)

// ===============================
// Validation Functions
// ===============================

// IsEmpty checks if the slice is empty or nil
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// IsNotEmpty checks if the slice contains at least one element
func IsNotEmpty[T any](slice []T) bool {
	return len(slice) > 0
}

// ===============================
// Search Functions
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// ContainsFunc checks if the slice contains an element matching the predicate
func ContainsFunc[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}

	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// ContainsFold checks if the string slice contains the element under
// Unicode case folding
func ContainsFold(slice []string, element string) bool {
	for _, item := range slice {
		if strings.EqualFold(item, element) {
			return true
		}
	}
	return false
}

// NotContains checks if the slice does not contain the specified element
func NotContains[T comparable](slice []T, element T) bool {
	return !Contains(slice, element)
}

// NotContainsFunc checks if no element in the slice matches the predicate
func NotContainsFunc[T any](slice []T, predicate func(T) bool) bool {
	return !ContainsFunc(slice, predicate)
}

// NotContainsFold checks if the string slice does not contain the element
// under Unicode case folding
func NotContainsFold(slice []string, element string) bool {
	return !ContainsFold(slice, element)
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// FirstNonZero returns the first value that is not the zero value of its
// type, or the zero value if all values are zero
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ===============================
// Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool)
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

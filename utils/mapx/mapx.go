// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map utility functions including key and value
//              membership checks with negated variants, emptiness
//              predicates, extraction, and merging operations for Go maps.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with core map utilities

package mapx

// ===============================
// Validation Functions
// ===============================

// IsEmpty checks if the map is empty or nil
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsNotEmpty checks if the map contains at least one entry
func IsNotEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// ContainsKey checks if the map contains the specified key
func ContainsKey[K comparable, V any](m map[K]V, key K) bool {
	_, exists := m[key]
	return exists
}

// ContainsValue checks if the map contains the specified value
func ContainsValue[K comparable, V comparable](m map[K]V, value V) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

// NotContainsKey checks if the map does not contain the specified key
func NotContainsKey[K comparable, V any](m map[K]V, key K) bool {
	return !ContainsKey(m, key)
}

// NotContainsValue checks if the map does not contain the specified value
func NotContainsValue[K comparable, V comparable](m map[K]V, value V) bool {
	return !ContainsValue(m, value)
}

// ===============================
// Extraction Functions
// ===============================

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a slice of all values from the map
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// ===============================
// Manipulation Functions
// ===============================

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

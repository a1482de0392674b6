// File: parse.go
// Title: Lenient String Parsing
// Description: Implements zero-on-failure parsing of numeric strings and
//              first-rune extraction. These helpers never return errors;
//              callers that need to distinguish failures should use strconv
//              directly.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with lenient parsers

package convx

import (
	"strconv"
	"unicode/utf8"
)

// ParseIntOr0 parses a decimal integer, returning 0 when the string is not
// a valid int.
func ParseIntOr0(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ParseInt8Or0 parses a decimal integer, returning 0 when the string is
// not a valid int8. Values outside the int8 range count as invalid.
func ParseInt8Or0(s string) int8 {
	n, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0
	}
	return int8(n)
}

// ParseInt16Or0 parses a decimal integer, returning 0 when the string is
// not a valid int16. Values outside the int16 range count as invalid.
func ParseInt16Or0(s string) int16 {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0
	}
	return int16(n)
}

// ParseInt64Or0 parses a decimal integer, returning 0 when the string is
// not a valid int64.
func ParseInt64Or0(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseFloat32Or0 parses a floating-point number, returning 0 when the
// string is not a valid float32.
func ParseFloat32Or0(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// ParseFloat64Or0 parses a floating-point number, returning 0 when the
// string is not a valid float64.
func ParseFloat64Or0(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FirstRune returns the first rune of s, or the NUL rune for an empty
// string.
func FirstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// FirstRunePtr returns a pointer to the first rune of s, or nil for an
// empty string. The pointer form distinguishes "no rune" from a literal
// NUL in the input.
func FirstRunePtr(s string) *rune {
	if s == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return &r
}

// File: bool.go
// Title: Boolean Conversion Bridges
// Description: Implements conversions between booleans and numeric, rune,
//              and string values. String truthiness follows a fixed list of
//              accepted spellings rather than strconv.ParseBool.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with boolean bridges

package convx

import "strings"

// trueStrings is the list of spellings StringToBool accepts as true.
var trueStrings = []string{"1", "true", "t", "yes", "y", "on"}

// BoolToInt converts a boolean to a numeric 1 or 0.
func BoolToInt[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}

// NumToBool converts a numeric value to a boolean. Only the exact value 1
// is true; everything else, including other non-zero values, is false.
func NumToBool[T Number](v T) bool {
	return v == 1
}

// RuneToBool converts a rune to a boolean. The runes '1', 'T', 't', 'Y',
// and 'y' are true; everything else is false.
func RuneToBool(r rune) bool {
	switch r {
	case '1', 'T', 't', 'Y', 'y':
		return true
	}
	return false
}

// StringToBool converts a string to a boolean. Exactly the spellings "1",
// "true", "t", "yes", "y", and "on" are true; everything else, including
// uppercase variants, is false.
func StringToBool(s string) bool {
	for _, t := range trueStrings {
		if s == t {
			return true
		}
	}
	return false
}

// StringToBoolFold is StringToBool with case-insensitive matching, so
// "TRUE", "Yes", and "ON" are also true.
func StringToBoolFold(s string) bool {
	for _, t := range trueStrings {
		if strings.EqualFold(s, t) {
			return true
		}
	}
	return false
}

// File: normalize.go
// Title: String Normalization
// Description: Implements configurable string normalization combining
//              trimming, capitalization, and case conversion behind an
//              explicit options struct. Used standalone and by the jsonx
//              post-decode normalization hook.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with NormalizeOptions

package stringx

import "strings"

// CaseMode selects the case conversion applied by Normalize.
type CaseMode int

const (
	// CaseNone leaves the case of the string unchanged.
	CaseNone CaseMode = iota

	// CaseUpper converts the entire string to uppercase.
	CaseUpper

	// CaseLower converts the entire string to lowercase.
	CaseLower
)

// String returns the string representation of the case mode.
func (m CaseMode) String() string {
	switch m {
	case CaseNone:
		return "none"
	case CaseUpper:
		return "upper"
	case CaseLower:
		return "lower"
	default:
		return "unknown"
	}
}

// NormalizeOptions configures Normalize. The zero value applies nothing;
// DefaultNormalizeOptions enables trimming only.
type NormalizeOptions struct {
	// Trim removes leading and trailing whitespace.
	Trim bool

	// EmptyToNull collapses empty strings to an absent value where the
	// surrounding container can express absence. Normalize itself
	// returns strings and cannot express null; this option is honored
	// by jsonx.UnmarshalNormalized for optional fields.
	EmptyToNull bool

	// Case selects an optional whole-string case conversion, applied last.
	Case CaseMode

	// Capitalize applies Capitalize to the value before case conversion.
	Capitalize bool
}

// DefaultNormalizeOptions returns the default normalization settings:
// trimming enabled, everything else off.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{Trim: true}
}

// Normalize applies the configured operations to s in a fixed order:
// trim, then capitalize, then case conversion.
func Normalize(s string, opts NormalizeOptions) string {
	if opts.Trim {
		s = strings.TrimSpace(s)
	}

	if opts.Capitalize {
		s = Capitalize(s)
	}

	switch opts.Case {
	case CaseUpper:
		s = strings.ToUpper(s)
	case CaseLower:
		s = strings.ToLower(s)
	}

	return s
}

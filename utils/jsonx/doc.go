// File: doc.go
// Title: jsonx Package Documentation
// Description: Package overview for the JSON encoding and decoding
//              utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-16
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-16 v0.1.0: Initial documentation
// - 2025-03-17 v0.1.0: Normalization section

// Package jsonx provides JSON encoding and decoding with configurable
// time layouts, generic typed decoding, and an optional post-decode
// string normalization pass.
//
// # Options
//
// All entry points either use DefaultOptions or accept an explicit
// Options value. Options is a plain immutable value: two goroutines
// calling MarshalWith with different TimeLayout values never observe
// each other's configuration, because no codec state is shared between
// calls.
//
//	opts := jsonx.DefaultOptions()
//	opts.TimeLayout = "2006-01-02"
//	data, err := jsonx.MarshalWith(event, opts)
//
// A TimeLayout that does not survive a format/parse round trip is
// rejected with JSONX_INVALID_LAYOUT before any encoding or decoding
// happens.
//
// # Time Handling
//
// time.Time and timex.Moment values are rendered with the configured
// layout wherever they appear: top level, struct fields, slices,
// arrays, maps, and pointers. The default layout is timex.LayoutDefault.
//
// On decode, a time string is parsed with the configured layout first.
// Input that does not match the layout falls back to the common layouts
// known to timex.Parse, so RFC 3339 timestamps decode even when a
// custom layout is configured. A JSON null or an absent field leaves
// the time at its zero value.
//
// Types that define their own MarshalJSON, UnmarshalJSON, or MarshalText
// keep their own wire form and ignore TimeLayout. The same applies to
// times inside embedded structs, interface-typed fields, and map keys.
//
// # Generic Decoding
//
// Unmarshal and its variants are generic and return the target type
// directly instead of filling a pointer:
//
//	cfg, err := jsonx.Unmarshal[Config](data)
//	items, err := jsonx.UnmarshalList[Item](data)
//	meta, err := jsonx.UnmarshalStringMap(data)
//
// Empty or whitespace-only input decodes to the zero value without
// error, mirroring Marshal, which renders a nil value as the empty
// string.
//
// # Normalization
//
// UnmarshalNormalized decodes and then applies stringx.Normalize to
// every reachable string: plain fields, slice and array elements,
// nested structs, and valued patchx.Field[string] fields. With
// EmptyToNull set, a presence-tracked string that normalizes to the
// empty string collapses to an explicit null, so downstream patch
// application clears the target instead of writing an empty value.
// Fields that are absent or already null are left untouched.
//
// # Error Handling
//
// Encoding failures carry JSONX_ENCODE_FAILED, decoding failures
// JSONX_DECODE_FAILED, and bad layouts JSONX_INVALID_LAYOUT. All errors
// are structured core/error values with operation context attached.
//
// # See Also
//
// Package timex for layouts and Moment, package patchx for
// presence-tracked fields, and package stringx for the normalization
// options.
package jsonx

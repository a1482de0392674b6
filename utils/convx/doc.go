// File: doc.go
// Title: Package Documentation for convx
// Description: Package convx provides type conversion utilities for Go,
//              offering string rendering with null semantics, boolean
//              conversions, lenient parsing, and generic numeric casts.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with core conversion utilities

// Package convx provides type conversion utilities for Go.
//
// Package: convx
// Title: Type Conversion Utilities for Go
// Description: This package provides a consistent set of conversions between
//              strings, booleans, runes, and numeric types. It renders nil
//              values as the literal "null", maps booleans onto the 1/0
//              convention, parses numbers leniently with zero fallbacks, and
//              exposes generic numeric casts with explicit truncation
//              semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Overview
//
// The convx package centralizes the small conversions that otherwise get
// reimplemented ad hoc across a codebase: turning arbitrary values into
// display strings, deciding which strings and characters count as "true",
// parsing user input that may or may not be a number, and narrowing numeric
// types without sprinkling raw casts through business code.
//
// Rendering follows one rule throughout: absent values become the literal
// string "null". A nil interface, a typed nil pointer, a nil slice, and a
// nil map all render identically, so log lines and protocol fields never
// show Go-specific artifacts like "<nil>" or an empty string where a value
// was simply missing.
//
// Key capabilities include:
//   - String rendering: ToString() for any value, SliceString() and
//     MapString() for collections in "[a, b, c]" and "{k=v}" notation
//   - Formatting: FormatInt(), FormatUint(), FormatFloat(), FormatBool(),
//     FormatRune() over generic numeric constraints
//   - Boolean conversions: StringToBool(), RuneToBool(), NumToBool() with
//     a fixed truthy vocabulary, BoolToInt() for the reverse direction
//   - Lenient parsing: ParseIntOr0() and friends return the zero value on
//     malformed or out-of-range input instead of an error
//   - Numeric casts: NumTo() converts between any two numeric types with
//     Go's native truncation and wrapping behavior
//
// Architecture
//
// The package is organized into three files:
//
//   - convx.go: Numeric constraints, string rendering, and NumTo()
//   - bool.go: Conversions to and from bool
//   - parse.go: Zero-on-failure parsers and rune extraction
//
// The numeric constraints Signed, Unsigned, Float, and Number are defined
// locally so callers can reuse them for their own generic helpers without
// pulling in an extra dependency.
//
// Usage Examples
//
// Rendering values:
//
//	convx.ToString(42)                        // "42"
//	convx.ToString(nil)                       // "null"
//	convx.SliceString([]int{1, 2, 3})         // "[1, 2, 3]"
//	convx.MapString(map[string]int{"a": 1})   // "{a=1}"
//
// Boolean conversions:
//
//	convx.StringToBool("yes")      // true
//	convx.StringToBoolFold("YES")  // true
//	convx.RuneToBool('Y')          // true
//	convx.NumToBool(1)             // true
//	convx.BoolToInt[int](true)     // 1
//
// Lenient parsing:
//
//	convx.ParseIntOr0("42")     // 42
//	convx.ParseIntOr0("oops")   // 0
//	convx.ParseFloat64Or0("x")  // 0
//
// Numeric casts:
//
//	convx.NumTo[int8](300)      // 44
//	convx.NumTo[int](3.9)       // 3
//
// Best Practices
//
//  1. Use the lenient parsers only where a missing or malformed value
//     legitimately means zero, such as optional form fields. Where failure
//     must be surfaced, use strconv directly and handle the error.
//
//  2. NumTo() truncates and wraps exactly like a plain Go conversion. When
//     the input may exceed the target range and that matters, validate the
//     range first with mathx.
//
//  3. Prefer StringToBool() for protocol values with a fixed vocabulary and
//     StringToBoolFold() for human input where casing varies.
//
// Integration with dkit
//
// The convx package sits at the bottom of the utils layer and is imported
// by jsonx for rendering scalar values and by the CLI for formatting
// command output. It depends only on the standard library.
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
//
// See Also
//
//   - stringx: String inspection and manipulation utilities
//   - mathx: Checked arithmetic with explicit overflow errors
package convx

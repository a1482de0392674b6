// File: convx.go
// Title: Core Type Conversion Utilities
// Description: Implements string rendering for numeric, boolean, and
//              composite values plus generic numeric conversions. Collapses
//              the usual per-type conversion boilerplate into a small
//              generic surface.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with generic conversions

package convx

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// nullString is the rendering of absent values in ToString, SliceString,
// and MapString.
const nullString = "null"

// Signed is the constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint for floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the constraint for all built-in numeric types.
type Number interface {
	Signed | Unsigned | Float
}

// FormatInt returns the decimal string representation of any signed
// integer value.
func FormatInt[T Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// FormatUint returns the decimal string representation of any unsigned
// integer value.
func FormatUint[T Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// FormatFloat returns the shortest string representation of a
// floating-point value that parses back to the same value.
func FormatFloat[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, reflect.TypeOf(v).Bits())
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatRune returns the string containing the single rune r.
func FormatRune(r rune) string {
	return string(r)
}

// ToString renders an arbitrary value as a string. Nil values, including
// typed nil pointers, maps, and slices, render as "null". Values
// implementing fmt.Stringer render via String(); non-nil pointers render
// their pointee rather than an address.
func ToString(v any) string {
	if v == nil {
		return nullString
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return nullString
		}
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	if rv.Kind() == reflect.Ptr {
		return ToString(rv.Elem().Interface())
	}

	return fmt.Sprintf("%v", v)
}

// SliceString renders a slice as "[e1, e2, ...]". A nil slice renders as
// "null", an empty slice as "[]", and nil elements as "null".
func SliceString[T any](slice []T) string {
	if slice == nil {
		return nullString
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range slice {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ToString(v))
	}
	b.WriteByte(']')
	return b.String()
}

// MapString renders a map as "{k1=v1, k2=v2, ...}" with entries sorted by
// their rendered key so the output is deterministic. A nil map renders as
// "null" and an empty map as "{}".
func MapString[K comparable, V any](m map[K]V) string {
	if m == nil {
		return nullString
	}

	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, ToString(k)+"="+ToString(v))
	}
	sort.Strings(pairs)

	return "{" + strings.Join(pairs, ", ") + "}"
}

// NumTo converts a numeric value to another numeric type using Go's
// conversion semantics: integer conversions truncate to the target width
// and float to integer conversions discard the fraction. The target type
// is given explicitly, the source type is inferred:
//
//	b := convx.NumTo[int8](300)   // 44
//	i := convx.NumTo[int](3.9)    // 3
func NumTo[U, T Number](v T) U {
	return U(v)
}

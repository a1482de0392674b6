// File: jsonx.go
// Title: JSON Encoding and Decoding Utilities
// Description: Implements the Options-driven JSON codec with generic
//              unmarshalling helpers, layout-aware time handling, and
//              null-in/null-out semantics for empty input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-16
// Modified: 2025-03-16
//
// Change History:
// - 2025-03-16 v0.1.0: Initial implementation

package jsonx

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/msto63/dkit/core/errors"
	"github.com/msto63/dkit/utils/timex"
)

// defaultIndent is the indentation used when Options does not name one
const defaultIndent = "  "

// ===============================
// Options
// ===============================

// Options configures one encoding or decoding call. Options is an
// immutable value; there is no shared codec state, so two goroutines
// with different Options never influence each other.
type Options struct {
	// TimeLayout renders and parses time.Time and timex.Moment values.
	// Empty means timex.LayoutDefault; anything else must satisfy
	// timex.ValidLayout.
	TimeLayout string

	// Pretty selects indented output.
	Pretty bool

	// Indent is the indentation unit for pretty output. Empty means
	// two spaces.
	Indent string
}

// DefaultOptions returns the default codec settings: the toolkit time
// layout, compact output, two-space indentation.
func DefaultOptions() Options {
	return Options{
		TimeLayout: timex.LayoutDefault,
		Pretty:     false,
		Indent:     defaultIndent,
	}
}

// resolveOptions normalizes opts and rejects unusable layouts before
// any coding work happens
func resolveOptions(opts Options) (Options, error) {
	if opts.TimeLayout == "" {
		opts.TimeLayout = timex.LayoutDefault
	} else if !timex.ValidLayout(opts.TimeLayout) {
		return opts, errors.JsonxInvalidLayout(opts.TimeLayout)
	}
	if opts.Indent == "" {
		opts.Indent = defaultIndent
	}
	return opts, nil
}

// ===============================
// Encoding
// ===============================

// Marshal encodes v with the default options. A nil value encodes to
// the empty string with no error.
func Marshal(v any) (string, error) {
	return MarshalWith(v, DefaultOptions())
}

// MarshalPretty encodes v indented with the default options.
func MarshalPretty(v any) (string, error) {
	opts := DefaultOptions()
	opts.Pretty = true
	return MarshalWith(v, opts)
}

// MarshalPrettyWith encodes v indented with the given options,
// regardless of their Pretty setting.
func MarshalPrettyWith(v any, opts Options) (string, error) {
	opts.Pretty = true
	return MarshalWith(v, opts)
}

// MarshalWith encodes v with the given options. time.Time and
// timex.Moment values render with the options' layout at any nesting
// depth.
func MarshalWith(v any, opts Options) (string, error) {
	if v == nil {
		return "", nil
	}

	opts, err := resolveOptions(opts)
	if err != nil {
		return "", err
	}

	target := v
	rv := reflect.ValueOf(v)
	if info := shadowOf(rv.Type()); info.changed {
		shadow := reflect.New(info.shadow).Elem()
		copyToShadow(rv, shadow, opts.TimeLayout)
		target = shadow.Interface()
	}

	var data []byte
	if opts.Pretty {
		data, err = json.MarshalIndent(target, "", opts.Indent)
	} else {
		data, err = json.Marshal(target)
	}
	if err != nil {
		return "", errors.JsonxEncodeError("marshal", err)
	}
	return string(data), nil
}

// ===============================
// Decoding
// ===============================

// Unmarshal decodes data into a value of type T with the default
// options. Empty input yields the zero value with no error.
func Unmarshal[T any](data string) (T, error) {
	return UnmarshalWith[T](data, DefaultOptions())
}

// UnmarshalWith decodes data into a value of type T with the given
// options. Time values parse with the options' layout first and the
// common layouts as fallback.
func UnmarshalWith[T any](data string, opts Options) (T, error) {
	var result T

	opts, err := resolveOptions(opts)
	if err != nil {
		return result, err
	}
	if strings.TrimSpace(data) == "" {
		return result, nil
	}

	rv := reflect.ValueOf(&result).Elem()
	if err := decodeInto([]byte(data), rv, opts.TimeLayout); err != nil {
		var zero T
		return zero, errors.JsonxDecodeError("unmarshal", err)
	}
	return result, nil
}

// UnmarshalList decodes a JSON array into a slice of T with the
// default options. Empty input yields a nil slice with no error.
func UnmarshalList[T any](data string) ([]T, error) {
	return UnmarshalWith[[]T](data, DefaultOptions())
}

// UnmarshalListWith decodes a JSON array into a slice of T with the
// given options.
func UnmarshalListWith[T any](data string, opts Options) ([]T, error) {
	return UnmarshalWith[[]T](data, opts)
}

// UnmarshalStringMap decodes a JSON object into a string-to-string map
// with the default options.
func UnmarshalStringMap(data string) (map[string]string, error) {
	return UnmarshalWith[map[string]string](data, DefaultOptions())
}

// UnmarshalStringMapWith decodes a JSON object into a string-to-string
// map with the given options.
func UnmarshalStringMapWith(data string, opts Options) (map[string]string, error) {
	return UnmarshalWith[map[string]string](data, opts)
}

// UnmarshalMap decodes a JSON object into a map with the default
// options. The key type must be usable as a JSON object key.
func UnmarshalMap[K comparable, V any](data string) (map[K]V, error) {
	return UnmarshalWith[map[K]V](data, DefaultOptions())
}

// UnmarshalMapWith decodes a JSON object into a map with the given
// options.
func UnmarshalMapWith[K comparable, V any](data string, opts Options) (map[K]V, error) {
	return UnmarshalWith[map[K]V](data, opts)
}

// ===============================
// Inspection
// ===============================

// Valid reports whether data is syntactically valid JSON.
func Valid(data string) bool {
	return json.Valid([]byte(data))
}

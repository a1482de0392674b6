// File: patchx.go
// Title: Presence-Aware Optional Fields
// Description: Implements the Field type that distinguishes absent,
//              null, and valued states for partial-update payloads.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-17
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-17 v0.1.0: Initial implementation

package patchx

import (
	"bytes"
	"encoding/json"
)

// nullLiteral is the JSON null token
var nullLiteral = []byte("null")

// ===============================
// Field Type
// ===============================

// Field is a presence-aware optional for partial-update payloads. It
// distinguishes three states a plain pointer cannot:
//
//   - absent: the key did not appear in the payload (zero value)
//   - null: the key appeared with a JSON null
//   - valued: the key appeared with a value
//
// The zero value is absent, so Field works without constructors in
// struct literals and decoded payloads.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns a Field holding the given value.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// OfNull returns a present Field in the null state.
func OfNull[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Set stores a value, making the field present and non-null.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.present = true
	f.null = false
}

// SetNull switches the field to the present null state, discarding any
// stored value.
func (f *Field[T]) SetNull() {
	var zero T
	f.value = zero
	f.present = true
	f.null = true
}

// Clear resets the field to the absent state.
func (f *Field[T]) Clear() {
	var zero T
	f.value = zero
	f.present = false
	f.null = false
}

// Present reports whether the field appeared in the payload, either
// with a value or as null.
func (f Field[T]) Present() bool {
	return f.present
}

// Null reports whether the field appeared as JSON null.
func (f Field[T]) Null() bool {
	return f.null
}

// Value returns the stored value and whether it is usable, meaning the
// field is present and non-null.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.present && !f.null
}

// Get returns the stored value, the zero value when the field is
// absent or null.
func (f Field[T]) Get() T {
	return f.value
}

// anyValue implements the presence capability: the stored value boxed
// as any, nil when the field is absent or null.
func (f Field[T]) anyValue() any {
	if !f.present || f.null {
		return nil
	}
	return f.value
}

// ===============================
// JSON Codec
// ===============================

// MarshalJSON renders the stored value, or null when the field is
// absent or in the null state. Absent and null render identically;
// callers that need to omit absent fields entirely pair Field with
// omitzero on Go releases that support it.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return nullLiteral, nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON records presence and distinguishes null from a value.
// The decoder only calls this for keys that appear in the payload, so
// absent fields keep their zero state.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, nullLiteral) {
		var zero T
		f.value = zero
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// ===============================
// Presence Capability
// ===============================

// presence is the capability interface every Field instantiation
// implements. The unexported method keeps the set closed to this
// package, which lets the schema trust the semantics of anything that
// satisfies it.
type presence interface {
	Present() bool
	Null() bool
	anyValue() any
}

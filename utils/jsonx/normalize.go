// File: normalize.go
// Title: Normalizing Decode Hook
// Description: Implements UnmarshalNormalized, which decodes a payload
//              and applies string normalization to the result's string
//              fields and present Field values in place.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-17
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-17 v0.1.0: Initial implementation

package jsonx

import (
	"reflect"

	"github.com/msto63/dkit/utils/patchx"
	"github.com/msto63/dkit/utils/stringx"
)

// fieldStringType is the one Field instantiation normalization rewrites
var fieldStringType = reflect.TypeOf(patchx.Field[string]{})

// UnmarshalNormalized decodes data like UnmarshalWith and then applies
// the given normalization to the result: exported string fields,
// string slice and array elements, nested structs behind values and
// pointers, and present non-null patchx.Field[string] values. With
// norm.EmptyToNull set, a normalized empty string on a Field collapses
// to the null state, so "   " arrives as an explicit clear.
//
// Presence-aware fields are found through the patchx schema, one
// cached schema per type. Map contents are left alone; they are not
// addressable in place.
func UnmarshalNormalized[T any](data string, opts Options, norm stringx.NormalizeOptions) (T, error) {
	result, err := UnmarshalWith[T](data, opts)
	if err != nil {
		return result, err
	}

	normalizeValue(reflect.ValueOf(&result).Elem(), norm)
	return result, nil
}

// normalizeValue rewrites rv in place; rv must be addressable
func normalizeValue(rv reflect.Value, norm stringx.NormalizeOptions) {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(stringx.Normalize(rv.String(), norm))

	case reflect.Pointer:
		if !rv.IsNil() {
			normalizeValue(rv.Elem(), norm)
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			normalizeValue(rv.Index(i), norm)
		}

	case reflect.Struct:
		if rv.Type() == fieldStringType {
			if rv.CanAddr() {
				normalizeFieldString(rv.Addr().Interface().(*patchx.Field[string]), norm)
			}
			return
		}
		normalizeStruct(rv, norm)
	}
}

// normalizeStruct handles one struct value: presence-aware fields via
// the schema, everything else by recursion
func normalizeStruct(rv reflect.Value, norm stringx.NormalizeOptions) {
	schema := patchx.SchemaOf(rv.Interface())

	presenceFields := make(map[int]bool, len(schema.Fields))
	for i := range schema.Fields {
		d := &schema.Fields[i]
		presenceFields[d.Index] = true

		fv := rv.Field(d.Index)
		if fv.Type() != fieldStringType || !fv.CanAddr() {
			continue
		}
		normalizeFieldString(fv.Addr().Interface().(*patchx.Field[string]), norm)
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if presenceFields[i] || !t.Field(i).IsExported() {
			continue
		}
		normalizeValue(rv.Field(i), norm)
	}
}

// normalizeFieldString rewrites one present non-null string field
func normalizeFieldString(f *patchx.Field[string], norm stringx.NormalizeOptions) {
	v, ok := f.Value()
	if !ok {
		return
	}

	v = stringx.Normalize(v, norm)
	if norm.EmptyToNull && v == "" {
		f.SetNull()
		return
	}
	f.Set(v)
}

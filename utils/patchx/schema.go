// File: schema.go
// Title: Patch Schema Discovery
// Description: Implements cached reflection over struct types to find
//              presence-aware fields, with capability accessors and the
//              Apply operation for copying present fields onto targets.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-17
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-17 v0.1.0: Initial implementation

package patchx

import (
	"reflect"
	"strings"
	"sync"

	"github.com/msto63/dkit/core/errors"
)

// presenceType is the interface type all Field instantiations satisfy
var presenceType = reflect.TypeOf((*presence)(nil)).Elem()

// schemaCache maps reflect.Type to *Schema. Schemas are immutable once
// built, so one instance per type serves all goroutines.
var schemaCache sync.Map

// emptySchema serves non-struct inputs
var emptySchema = &Schema{}

// ===============================
// Schema and Descriptor
// ===============================

// Descriptor describes one presence-aware field of a struct type. Its
// accessors take the surrounding struct value, or a pointer to it, and
// answer through the presence capability without renewed tag parsing.
type Descriptor struct {
	// Name is the JSON-facing name, taken from the json tag when one
	// names the field and the Go field name otherwise.
	Name string

	// FieldName is the Go struct field name.
	FieldName string

	// Index is the field's position in the struct type.
	Index int

	owner reflect.Type
}

// Schema lists the presence-aware fields of one struct type.
type Schema struct {
	// Type is the struct type the schema describes, nil for the empty
	// schema of non-struct inputs.
	Type reflect.Type

	// Fields holds the descriptors in struct declaration order.
	Fields []Descriptor

	byName map[string]*Descriptor
}

// Field returns the descriptor for the given name, matching the
// JSON-facing name first and the Go field name second.
func (s *Schema) Field(name string) (*Descriptor, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Names returns the JSON-facing names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i := range s.Fields {
		names[i] = s.Fields[i].Name
	}
	return names
}

// ===============================
// Schema Construction
// ===============================

// SchemaOf returns the schema for the concrete struct type behind v,
// dereferencing pointers. The schema is computed once per type and
// cached, so repeated calls return the same instance. Non-struct
// inputs yield the empty schema.
func SchemaOf(v any) *Schema {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return emptySchema
	}

	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*Schema)
	}

	built := buildSchema(t)

	// LoadOrStore keeps one winner under concurrent first access
	actual, _ := schemaCache.LoadOrStore(t, built)
	return actual.(*Schema)
}

// buildSchema performs the one-time reflection over a struct type
func buildSchema(t reflect.Type) *Schema {
	s := &Schema{
		Type:   t,
		byName: make(map[string]*Descriptor),
	}

	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if !ft.IsExported() || !ft.Type.Implements(presenceType) {
			continue
		}
		s.Fields = append(s.Fields, Descriptor{
			Name:      jsonName(ft),
			FieldName: ft.Name,
			Index:     i,
			owner:     t,
		})
	}

	for i := range s.Fields {
		d := &s.Fields[i]
		s.byName[d.Name] = d
		if d.FieldName != d.Name {
			s.byName[d.FieldName] = d
		}
	}
	return s
}

// jsonName resolves the JSON-facing name of a struct field. Fields
// tagged json:"-" keep their Go name for schema purposes; they are
// still patchable even though the codec skips them.
func jsonName(ft reflect.StructField) string {
	tag := ft.Tag.Get("json")
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ft.Name
	}
	return name
}

// ===============================
// Descriptor Accessors
// ===============================

// structValue dereferences v down to a struct value of the
// descriptor's owner type
func (d *Descriptor) structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != d.owner {
		return reflect.Value{}, false
	}
	return rv, true
}

// presenceOf returns the field's presence capability
func (d *Descriptor) presenceOf(v any) (presence, bool) {
	rv, ok := d.structValue(v)
	if !ok {
		return nil, false
	}
	p, ok := rv.Field(d.Index).Interface().(presence)
	return p, ok
}

// Present reports whether the field is present on v. Values of a
// different type than the schema's answer false.
func (d *Descriptor) Present(v any) bool {
	p, ok := d.presenceOf(v)
	return ok && p.Present()
}

// Null reports whether the field is present as null on v.
func (d *Descriptor) Null(v any) bool {
	p, ok := d.presenceOf(v)
	return ok && p.Null()
}

// ValueOf returns the field's stored value boxed as any, nil when the
// field is absent or null or v is not of the schema's type.
func (d *Descriptor) ValueOf(v any) any {
	p, ok := d.presenceOf(v)
	if !ok {
		return nil
	}
	return p.anyValue()
}

// CopyTo copies the field's complete state from src onto dst. Both
// must be of the schema's struct type, dst as a settable pointer.
func (d *Descriptor) CopyTo(dst, src any) error {
	sv, ok := d.structValue(src)
	if !ok {
		return errors.PatchxInvalidTarget("copy_to", src)
	}

	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() || dv.Elem().Type() != d.owner {
		return errors.PatchxInvalidTarget("copy_to", dst)
	}

	dv.Elem().Field(d.Index).Set(sv.Field(d.Index))
	return nil
}

// ===============================
// Package-Level Queries
// ===============================

// Present reports whether the named field is present on v. Unknown
// names and non-struct values answer false.
func Present(v any, field string) bool {
	d, ok := SchemaOf(v).Field(field)
	if !ok {
		return false
	}
	return d.Present(v)
}

// Apply copies the present fields of patch onto the matching fields of
// target, matching by Go field name. target must be a settable pointer
// to a struct. Null fields zero their targets, valued fields assign,
// and a valued field also fills a pointer target with a fresh
// allocation. The returned slice holds the JSON-facing names of the
// fields applied, in declaration order.
//
// A present field without a matching target field, and a present field
// whose value cannot be assigned, are caller bugs and fail the whole
// operation before any field is written.
func Apply(patch any, target any) ([]string, error) {
	pv := reflect.ValueOf(patch)
	for pv.Kind() == reflect.Pointer {
		if pv.IsNil() {
			return nil, errors.PatchxInvalidTarget("apply", patch)
		}
		pv = pv.Elem()
	}
	if !pv.IsValid() || pv.Kind() != reflect.Struct {
		return nil, errors.PatchxInvalidTarget("apply", patch)
	}

	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() || tv.Elem().Kind() != reflect.Struct {
		return nil, errors.PatchxInvalidTarget("apply", target)
	}
	te := tv.Elem()

	schema := SchemaOf(patch)

	// Validation pass, so failures leave the target untouched
	type pending struct {
		d  *Descriptor
		p  presence
		tf reflect.Value
	}
	var applies []pending

	for i := range schema.Fields {
		d := &schema.Fields[i]
		p, ok := pv.Field(d.Index).Interface().(presence)
		if !ok || !p.Present() {
			continue
		}

		tf := te.FieldByName(d.FieldName)
		if !tf.IsValid() || !tf.CanSet() {
			return nil, errors.PatchxUnknownField("apply", d.FieldName)
		}

		if !p.Null() {
			if err := checkAssignable(d, p, pv.Field(d.Index), tf); err != nil {
				return nil, err
			}
		}
		applies = append(applies, pending{d: d, p: p, tf: tf})
	}

	applied := make([]string, 0, len(applies))
	for _, a := range applies {
		if a.p.Null() {
			a.tf.Set(reflect.Zero(a.tf.Type()))
		} else {
			assignValue(a.p, pv.Field(a.d.Index), a.tf)
		}
		applied = append(applied, a.d.Name)
	}
	return applied, nil
}

// checkAssignable verifies one valued field can land on its target
func checkAssignable(d *Descriptor, p presence, pf, tf reflect.Value) error {
	// Field-typed target of the same instantiation takes the whole state
	if pf.Type() == tf.Type() {
		return nil
	}

	val := reflect.ValueOf(p.anyValue())
	if !val.IsValid() {
		// Typed nil inside the field, assignable to any nilable target
		return nil
	}
	if val.Type().AssignableTo(tf.Type()) {
		return nil
	}
	if tf.Kind() == reflect.Pointer && val.Type().AssignableTo(tf.Type().Elem()) {
		return nil
	}
	return errors.PatchxTypeMismatch("apply", d.FieldName,
		tf.Type().String(), val.Type().String())
}

// assignValue writes one valued field onto its validated target
func assignValue(p presence, pf, tf reflect.Value) {
	if pf.Type() == tf.Type() {
		tf.Set(pf)
		return
	}

	val := reflect.ValueOf(p.anyValue())
	if !val.IsValid() {
		tf.Set(reflect.Zero(tf.Type()))
		return
	}
	if val.Type().AssignableTo(tf.Type()) {
		tf.Set(val)
		return
	}

	// Pointer target filled from a value
	ptr := reflect.New(tf.Type().Elem())
	ptr.Elem().Set(val)
	tf.Set(ptr)
}

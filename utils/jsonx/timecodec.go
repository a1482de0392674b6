// File: timecodec.go
// Title: Layout-Aware Time Codec
// Description: Implements the shadow-type machinery that renders and
//              parses time.Time and timex.Moment values with a per-call
//              layout, without global codec state.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-16
// Modified: 2025-03-16
//
// Change History:
// - 2025-03-16 v0.1.0: Initial implementation

package jsonx

import (
	"bytes"
	"encoding"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/msto63/dkit/utils/timex"
)

// nullLiteral is the JSON null token
var nullLiteral = []byte("null")

var (
	timeType        = reflect.TypeOf(time.Time{})
	momentType      = reflect.TypeOf(timex.Moment{})
	timeValueType   = reflect.TypeOf(timeValue{})
	momentValueType = reflect.TypeOf(momentValue{})

	jsonMarshalerType   = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// ===============================
// Leaf Wrappers
// ===============================

// timeValue stands in for time.Time inside shadow types. Encoding
// formats with the layout carried in the value; decoding stores the
// raw token for the later resolve pass, which knows the layout.
type timeValue struct {
	Time   time.Time
	Layout string
	raw    json.RawMessage
}

func (tv timeValue) MarshalJSON() ([]byte, error) {
	layout := tv.Layout
	if layout == "" {
		layout = timex.LayoutDefault
	}
	return json.Marshal(tv.Time.Format(layout))
}

func (tv *timeValue) UnmarshalJSON(data []byte) error {
	// The decoder reuses its buffer, so the token must be copied
	tv.raw = append(tv.raw[:0:0], data...)
	return nil
}

// resolve parses the stored token, trying the configured layout first
// and the common layouts second
func (tv *timeValue) resolve(layout string) error {
	if len(tv.raw) == 0 {
		return nil
	}
	if bytes.Equal(tv.raw, nullLiteral) {
		tv.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(tv.raw, &s); err != nil {
		return err
	}
	if t, err := time.Parse(layout, s); err == nil {
		tv.Time = t
		return nil
	}

	t, err := timex.Parse(s)
	if err != nil {
		return err
	}
	tv.Time = t
	return nil
}

// momentValue is the timex.Moment counterpart of timeValue
type momentValue struct {
	Moment timex.Moment
	Layout string
	raw    json.RawMessage
}

func (mv momentValue) MarshalJSON() ([]byte, error) {
	layout := mv.Layout
	if layout == "" {
		layout = timex.LayoutDefault
	}
	formatted, err := mv.Moment.Format(layout)
	if err != nil {
		return nil, err
	}
	return json.Marshal(formatted)
}

func (mv *momentValue) UnmarshalJSON(data []byte) error {
	mv.raw = append(mv.raw[:0:0], data...)
	return nil
}

func (mv *momentValue) resolve(layout string) error {
	if len(mv.raw) == 0 {
		return nil
	}
	if bytes.Equal(mv.raw, nullLiteral) {
		mv.Moment = timex.Moment{}
		return nil
	}

	var s string
	if err := json.Unmarshal(mv.raw, &s); err != nil {
		return err
	}
	if m, err := timex.ParseMoment(s, layout); err == nil {
		mv.Moment = m
		return nil
	}

	t, err := timex.Parse(s)
	if err != nil {
		return err
	}
	mv.Moment = timex.At(t)
	return nil
}

// ===============================
// Shadow Type Construction
// ===============================

// shadowInfo describes how a type takes part in layout-aware coding.
// When changed is false the original type codes as-is through the
// standard library.
type shadowInfo struct {
	shadow  reflect.Type
	changed bool
}

// shadowCache maps reflect.Type to shadowInfo. Shadow types are
// immutable, so one entry per type serves all calls; the layout
// travels in values, never in types.
var shadowCache sync.Map

// shadowOf returns the cached shadow description for t
func shadowOf(t reflect.Type) shadowInfo {
	if cached, ok := shadowCache.Load(t); ok {
		return cached.(shadowInfo)
	}
	info := buildShadow(t, make(map[reflect.Type]bool))
	actual, _ := shadowCache.LoadOrStore(t, info)
	return actual.(shadowInfo)
}

// identity marks a type as coding through the standard library
func identity(t reflect.Type) shadowInfo {
	return shadowInfo{shadow: t, changed: false}
}

// buildShadow derives the shadow type for t. The building set breaks
// recursion on self-referential types; times behind such a cycle keep
// the standard rendering.
func buildShadow(t reflect.Type, building map[reflect.Type]bool) shadowInfo {
	switch t {
	case timeType:
		return shadowInfo{shadow: timeValueType, changed: true}
	case momentType:
		return shadowInfo{shadow: momentValueType, changed: true}
	}

	// Types with their own codec keep it; rewriting their insides
	// would change their wire form
	if t.Implements(jsonMarshalerType) || reflect.PointerTo(t).Implements(jsonMarshalerType) ||
		t.Implements(jsonUnmarshalerType) || reflect.PointerTo(t).Implements(jsonUnmarshalerType) ||
		t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return identity(t)
	}

	if building[t] {
		return identity(t)
	}
	building[t] = true
	defer delete(building, t)

	switch t.Kind() {
	case reflect.Pointer:
		elem := buildShadow(t.Elem(), building)
		if !elem.changed {
			return identity(t)
		}
		return shadowInfo{shadow: reflect.PointerTo(elem.shadow), changed: true}

	case reflect.Slice:
		elem := buildShadow(t.Elem(), building)
		if !elem.changed {
			return identity(t)
		}
		return shadowInfo{shadow: reflect.SliceOf(elem.shadow), changed: true}

	case reflect.Array:
		elem := buildShadow(t.Elem(), building)
		if !elem.changed {
			return identity(t)
		}
		return shadowInfo{shadow: reflect.ArrayOf(t.Len(), elem.shadow), changed: true}

	case reflect.Map:
		elem := buildShadow(t.Elem(), building)
		if !elem.changed {
			return identity(t)
		}
		return shadowInfo{shadow: reflect.MapOf(t.Key(), elem.shadow), changed: true}

	case reflect.Struct:
		return buildStructShadow(t, building)

	default:
		return identity(t)
	}
}

// buildStructShadow mirrors a struct type with time fields replaced,
// preserving names, tags, and declaration order. Unexported fields are
// left out; the codec ignores them either way.
func buildStructShadow(t reflect.Type, building map[reflect.Type]bool) shadowInfo {
	fields := make([]reflect.StructField, 0, t.NumField())
	changed := false

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		elem := buildShadow(f.Type, building)
		if f.Anonymous && elem.changed {
			// Embedded fields cannot be rebuilt without losing the
			// flattened wire form; the whole struct keeps the
			// standard rendering
			return identity(t)
		}
		if elem.changed {
			changed = true
		}

		fields = append(fields, reflect.StructField{
			Name:      f.Name,
			Type:      elem.shadow,
			Tag:       f.Tag,
			Anonymous: f.Anonymous,
		})
	}

	if !changed {
		return identity(t)
	}
	return shadowInfo{shadow: reflect.StructOf(fields), changed: true}
}

// ===============================
// Value Transfer
// ===============================

// copyToShadow fills the shadow value dst from src, binding the layout
// into every time leaf
func copyToShadow(src, dst reflect.Value, layout string) {
	if src.Type() == dst.Type() {
		dst.Set(src)
		return
	}

	switch dst.Type() {
	case timeValueType:
		dst.Set(reflect.ValueOf(timeValue{
			Time:   src.Interface().(time.Time),
			Layout: layout,
		}))
		return
	case momentValueType:
		dst.Set(reflect.ValueOf(momentValue{
			Moment: src.Interface().(timex.Moment),
			Layout: layout,
		}))
		return
	}

	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		p := reflect.New(dst.Type().Elem())
		copyToShadow(src.Elem(), p.Elem(), layout)
		dst.Set(p)

	case reflect.Slice:
		if src.IsNil() {
			return
		}
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			copyToShadow(src.Index(i), out.Index(i), layout)
		}
		dst.Set(out)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			copyToShadow(src.Index(i), dst.Index(i), layout)
		}

	case reflect.Map:
		if src.IsNil() {
			return
		}
		out := reflect.MakeMapWithSize(dst.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			ev := reflect.New(dst.Type().Elem()).Elem()
			copyToShadow(iter.Value(), ev, layout)
			out.SetMapIndex(iter.Key(), ev)
		}
		dst.Set(out)

	case reflect.Struct:
		st := src.Type()
		j := 0
		for i := 0; i < st.NumField(); i++ {
			if !st.Field(i).IsExported() {
				continue
			}
			copyToShadow(src.Field(i), dst.Field(j), layout)
			j++
		}
	}
}

// copyFromShadow extracts the decoded shadow value src into dst,
// resolving every stored time token with the layout
func copyFromShadow(src, dst reflect.Value, layout string) error {
	if src.Type() == dst.Type() {
		dst.Set(src)
		return nil
	}

	switch src.Type() {
	case timeValueType:
		tv := src.Interface().(timeValue)
		if err := tv.resolve(layout); err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(tv.Time))
		return nil
	case momentValueType:
		mv := src.Interface().(momentValue)
		if err := mv.resolve(layout); err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(mv.Moment))
		return nil
	}

	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return nil
		}
		p := reflect.New(dst.Type().Elem())
		if err := copyFromShadow(src.Elem(), p.Elem(), layout); err != nil {
			return err
		}
		dst.Set(p)

	case reflect.Slice:
		if src.IsNil() {
			return nil
		}
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := copyFromShadow(src.Index(i), out.Index(i), layout); err != nil {
				return err
			}
		}
		dst.Set(out)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			if err := copyFromShadow(src.Index(i), dst.Index(i), layout); err != nil {
				return err
			}
		}

	case reflect.Map:
		if src.IsNil() {
			return nil
		}
		out := reflect.MakeMapWithSize(dst.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			ev := reflect.New(dst.Type().Elem()).Elem()
			if err := copyFromShadow(iter.Value(), ev, layout); err != nil {
				return err
			}
			out.SetMapIndex(iter.Key(), ev)
		}
		dst.Set(out)

	case reflect.Struct:
		dt := dst.Type()
		j := 0
		for i := 0; i < dt.NumField(); i++ {
			if !dt.Field(i).IsExported() {
				continue
			}
			if err := copyFromShadow(src.Field(j), dst.Field(i), layout); err != nil {
				return err
			}
			j++
		}
	}
	return nil
}

// decodeInto unmarshals data into the addressable value out, routing
// through the shadow type when out's type contains times
func decodeInto(data []byte, out reflect.Value, layout string) error {
	info := shadowOf(out.Type())
	if !info.changed {
		return json.Unmarshal(data, out.Addr().Interface())
	}

	shadow := reflect.New(info.shadow)
	if err := json.Unmarshal(data, shadow.Interface()); err != nil {
		return err
	}
	return copyFromShadow(shadow.Elem(), out, layout)
}

// File: patchx_test.go
// Title: Presence-Aware Field Tests
// Description: Tests for the Field states and the JSON codec behavior
//              distinguishing absent, null, and valued keys.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-17
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-17 v0.1.0: Initial test implementation

package patchx

import (
	"encoding/json"
	"testing"
)

func TestFieldStates(t *testing.T) {
	t.Run("Zero value is absent", func(t *testing.T) {
		var f Field[string]
		if f.Present() {
			t.Error("zero Field reports present")
		}
		if f.Null() {
			t.Error("zero Field reports null")
		}
		if v, ok := f.Value(); ok || v != "" {
			t.Errorf("Value() = %q, %v, want empty, false", v, ok)
		}
		if f.Get() != "" {
			t.Errorf("Get() = %q, want empty", f.Get())
		}
	})

	t.Run("Set makes a valued field", func(t *testing.T) {
		var f Field[int]
		f.Set(42)
		if !f.Present() || f.Null() {
			t.Errorf("after Set: Present() = %v, Null() = %v", f.Present(), f.Null())
		}
		if v, ok := f.Value(); !ok || v != 42 {
			t.Errorf("Value() = %d, %v, want 42, true", v, ok)
		}
	})

	t.Run("SetNull discards the value", func(t *testing.T) {
		f := Of("kept")
		f.SetNull()
		if !f.Present() || !f.Null() {
			t.Errorf("after SetNull: Present() = %v, Null() = %v", f.Present(), f.Null())
		}
		if f.Get() != "" {
			t.Errorf("Get() after SetNull = %q, want empty", f.Get())
		}
		if _, ok := f.Value(); ok {
			t.Error("Value() reports usable after SetNull")
		}
	})

	t.Run("Clear returns to absent", func(t *testing.T) {
		f := Of(7)
		f.Clear()
		if f.Present() || f.Null() {
			t.Errorf("after Clear: Present() = %v, Null() = %v", f.Present(), f.Null())
		}
	})

	t.Run("Constructors", func(t *testing.T) {
		valued := Of("hello")
		if v, ok := valued.Value(); !ok || v != "hello" {
			t.Errorf("Of: Value() = %q, %v", v, ok)
		}

		nulled := OfNull[string]()
		if !nulled.Present() || !nulled.Null() {
			t.Errorf("OfNull: Present() = %v, Null() = %v", nulled.Present(), nulled.Null())
		}
	})
}

func TestFieldUnmarshal(t *testing.T) {
	type payload struct {
		Name Field[string] `json:"name"`
		Age  Field[int]    `json:"age"`
		Note Field[string] `json:"note"`
	}

	var p payload
	data := `{"name": "Ada", "age": null}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if v, ok := p.Name.Value(); !ok || v != "Ada" {
		t.Errorf("Name = %q, %v, want Ada, true", v, ok)
	}
	if !p.Age.Present() || !p.Age.Null() {
		t.Errorf("Age: Present() = %v, Null() = %v, want present null",
			p.Age.Present(), p.Age.Null())
	}
	if p.Note.Present() {
		t.Error("Note reports present for a missing key")
	}
}

func TestFieldUnmarshalComposite(t *testing.T) {
	type payload struct {
		Tags   Field[[]string]       `json:"tags"`
		Limits Field[map[string]int] `json:"limits"`
	}

	var p payload
	data := `{"tags": ["a", "b"], "limits": {"max": 10}}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	tags, ok := p.Tags.Value()
	if !ok || len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("Tags = %v, %v, want [a b], true", tags, ok)
	}
	limits, ok := p.Limits.Value()
	if !ok || limits["max"] != 10 {
		t.Errorf("Limits = %v, %v, want map[max:10], true", limits, ok)
	}
}

func TestFieldUnmarshalInvalid(t *testing.T) {
	var f Field[int]
	if err := json.Unmarshal([]byte(`"not a number"`), &f); err == nil {
		t.Error("Unmarshal of mismatched type expected error, got nil")
	}
}

func TestFieldMarshal(t *testing.T) {
	testCases := []struct {
		name     string
		field    Field[string]
		expected string
	}{
		{"Valued", Of("hello"), `"hello"`},
		{"Null state", OfNull[string](), "null"},
		{"Absent", Field[string]{}, "null"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.field)
			if err != nil {
				t.Fatalf("Marshal() unexpected error: %v", err)
			}
			if string(data) != tc.expected {
				t.Errorf("Marshal() = %s, want %s", data, tc.expected)
			}
		})
	}
}

func TestFieldRoundTrip(t *testing.T) {
	type payload struct {
		Name Field[string] `json:"name"`
		Age  Field[int]    `json:"age"`
	}

	in := payload{Name: Of("Grace"), Age: Of(36)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var out payload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if v, ok := out.Name.Value(); !ok || v != "Grace" {
		t.Errorf("Name after round trip = %q, %v", v, ok)
	}
	if v, ok := out.Age.Value(); !ok || v != 36 {
		t.Errorf("Age after round trip = %d, %v", v, ok)
	}
}

// Package patchx implements presence-aware optional fields for dkit.
//
// Package: patchx
// Title: Field Presence for Partial Updates
// Description: This package provides the Field type for PATCH-style
//              payloads where absent, null, and valued keys mean three
//              different things, plus cached schema discovery over
//              struct types and an Apply operation that copies present
//              fields onto target structs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-17
// Modified: 2025-03-17
//
// Change History:
// - 2025-03-17 v0.1.0: Initial implementation
//
// # The Three States
//
// A partial update must distinguish "leave the field alone" from "clear
// the field" from "set the field". Plain pointers conflate the first
// two. Field keeps them apart:
//
//	type UserPatch struct {
//	    DisplayName patchx.Field[string] `json:"display_name"`
//	    Age         patchx.Field[int]    `json:"age"`
//	}
//
//	var p UserPatch
//	json.Unmarshal([]byte(`{"display_name": null}`), &p)
//
//	p.DisplayName.Present() // true, the key appeared
//	p.DisplayName.Null()    // true, as JSON null
//	p.Age.Present()         // false, the key was missing
//
// The zero value is the absent state, so decoded payloads need no
// constructors and untouched fields answer absent.
//
// # Schemas
//
// SchemaOf discovers the presence-aware fields of a struct type once
// and caches the result by type identity; repeated calls return the
// same Schema instance. Descriptors answer presence questions for any
// value of the type through capability dispatch rather than renewed
// tag parsing:
//
//	schema := patchx.SchemaOf(UserPatch{})
//	for _, d := range schema.Fields {
//	    if d.Present(p) {
//	        fmt.Println(d.Name, "was sent")
//	    }
//	}
//
// Present is the one-shot form for a single named field, accepting
// either the JSON-facing name or the Go field name.
//
// # Applying Patches
//
// Apply copies the present fields of a patch struct onto the matching
// fields of a target entity, matching by Go field name. Valued fields
// assign, null fields zero their targets (a nil pointer where the
// target is a pointer), and absent fields leave the target alone. The
// returned names feed audit logs and dirty tracking:
//
//	applied, err := patchx.Apply(patch, &entity)
//
// A present field with no matching target field and a present field
// whose type cannot land on its target fail the whole operation before
// any field is written, so a failed Apply never leaves a target half
// patched.
//
// # See Also
//
// Package jsonx decodes payloads with layout-aware time handling and
// offers UnmarshalNormalized, which uses these schemas to normalize
// decoded Field[string] values in place.
package patchx

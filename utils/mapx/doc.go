// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides map utility functions for Go, offering
//              key and value membership checks, emptiness predicates,
//              extraction, and merging with type-safe generics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with core map utilities

// Package mapx provides map utility functions for Go.
//
// Package: mapx
// Title: Map Utilities for Go
// Description: This package provides the map operations that recur
//              throughout the toolkit: membership checks for keys and
//              values with negated mirrors, emptiness predicates that
//              treat nil as empty, key and value extraction, and merging
//              with later-wins semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Overview
//
// The mapx package mirrors slicex for maps. Membership checks come in
// symmetric pairs: ContainsKey()/NotContainsKey() and ContainsValue()/
// NotContainsValue(), so call sites read as the condition they express.
//
// Nil maps are treated as empty everywhere: they contain no keys and no
// values, IsEmpty() reports true, and Keys()/Values() return nil.
//
// Key capabilities include:
//   - Validation: IsEmpty(), IsNotEmpty()
//   - Membership: ContainsKey(), ContainsValue() and their NotContains
//     mirrors
//   - Extraction: Keys(), Values() in unspecified order
//   - Manipulation: Merge() with later maps overriding earlier ones
//
// Usage Examples
//
// Membership:
//
//	settings := map[string]string{"host": "localhost"}
//	mapx.ContainsKey(settings, "host")     // true
//	mapx.NotContainsKey(settings, "port")  // true
//
// Merging configuration layers:
//
//	effective := mapx.Merge(defaults, fileValues, envOverrides)
//
// Note that Keys() and Values() return elements in Go's map iteration
// order, which is unspecified. Sort the result when deterministic order
// matters.
//
// Thread Safety
//
// All functions never modify their inputs and are safe for concurrent use
// as long as the input maps are not written concurrently.
//
// See Also
//
//   - slicex: The slice counterpart to this package
//   - convx: MapString for rendering maps deterministically
package mapx

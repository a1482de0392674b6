// Package slicex implements slice utility functions for the dkit toolkit.
//
// Package: slicex
// Title: Slice Utilities for Go
// Description: This package provides membership checks with negated and
//              case-insensitive variants, emptiness predicates that treat
//              nil as empty, transformation helpers, and first-value
//              selection for fallback chains. All functions are generic
//              and work with any slice type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with core slice utilities
//
// Overview
//
// The slicex package covers the slice operations that recur throughout the
// toolkit: asking whether a slice holds a value, filtering and mapping
// without index bookkeeping, and picking the first usable value from a
// list of candidates.
//
// Membership checks come in symmetric pairs. Every Contains variant has a
// NotContains mirror, so call sites read as the condition they express
// instead of a negated expression. ContainsFold() compares strings under
// Unicode case folding, which suits case-insensitive vocabularies like log
// levels and enum values.
//
// Nil slices are treated as empty everywhere: they contain nothing,
// IsEmpty() reports true, and transformations return nil.
//
// Key capabilities include:
//   - Validation: IsEmpty(), IsNotEmpty()
//   - Membership: Contains(), ContainsFunc(), ContainsFold() and their
//     NotContains mirrors, IndexOf()
//   - Selection: FirstNonZero() for fallback chains over any comparable type
//   - Transformation: Filter(), Map(), Unique() preserving input order
//
// Usage Examples
//
// Membership:
//
//	levels := []string{"debug", "info", "warn", "error"}
//	slicex.ContainsFold(levels, "INFO")   // true
//	slicex.NotContains([]int{1, 2}, 3)    // true
//
// Fallback selection:
//
//	port := slicex.FirstNonZero(cliPort, configPort, 8080)
//
// Transformation:
//
//	evens := slicex.Filter(nums, func(n int) bool { return n%2 == 0 })
//	names := slicex.Map(users, func(u User) string { return u.Name })
//	paths = slicex.Unique(paths)
//
// Thread Safety
//
// All functions are pure, never modify their inputs, and are safe for
// concurrent use.
//
// See Also
//
//   - mapx: The map counterpart to this package
//   - stringx: FirstNonEmpty and FirstNonBlank for string-specific selection
package slicex

// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides generic arithmetic helpers over signed
//              integers and floats with explicit error reporting and
//              nil-skipping aggregation for optional values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-10
// Modified: 2025-03-10
//
// Change History:
// - 2025-03-10 v0.1.0: Initial implementation with generic arithmetic helpers

// Package mathx provides generic arithmetic helpers for Go.
//
// Package: mathx
// Title: Generic Arithmetic Utilities
// Description: This package provides sum, subtract, multiply, divide,
//              modulus, and maximum operations over all signed integer and
//              floating-point types. Division by zero and empty aggregation
//              inputs are reported as errors instead of panicking, and
//              pointer-based variants skip nil slots so optional values can
//              participate without pre-filtering.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-10
// Modified: 2025-03-10
//
// Overview
//
// The mathx package covers the arithmetic that otherwise accumulates as
// small helpers next to business code: aggregating values that may be
// absent, and dividing values that may be zero, without panics and without
// repeating guard clauses at every call site.
//
// Two aggregation styles are provided. The pointer variants Sum() and
// Max() take *T arguments and skip nil slots, which pairs naturally with
// optional struct fields and the stringx.NilIfEmpty() convention. The
// value variants SumOf() and MaxOf() take plain values for the common case.
//
// Key capabilities include:
//   - Aggregation: Sum()/SumOf() with nil skipping, Max()/MaxOf() with
//     empty-input rejection
//   - Arithmetic: Subtract(), Multiply() over any Real type
//   - Guarded division: Divide() and Modulus() return an error for zero
//     divisors, for floats as well, so results are never infinities
//   - One constraint: Real, composed from the convx numeric constraints,
//     covering signed integers and floats
//
// Error Handling
//
// Failed operations return errors built through core/errors with mathx
// codes. A zero divisor yields MATHX_DIVISION_BY_ZERO with high severity;
// an empty or all-nil Max() input yields INVALID_INPUT. No function in
// this package panics on bad input.
//
// Usage Examples
//
// Aggregating optional values:
//
//	a, b := 3, 4
//	total := mathx.Sum(&a, nil, &b)   // 7, nil slot skipped
//	best, err := mathx.Max(&a, &b)    // 4
//
// Guarded division:
//
//	q, err := mathx.Divide(10, 3)     // 3, integer truncation
//	_, err = mathx.Divide(10, 0)      // MATHX_DIVISION_BY_ZERO
//	r, err := mathx.Modulus(5.5, 2.0) // 1.5, sign follows dividend
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
//
// See Also
//
//   - convx: The numeric constraints Real is built from
//   - slicex: Collection helpers for slices of results
package mathx

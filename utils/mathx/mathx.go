// File: mathx.go
// Title: Generic Arithmetic Utilities
// Description: Implements generic arithmetic helpers over signed integers
//              and floats with explicit error reporting for division by
//              zero and empty inputs. Pointer variants skip nil slots so
//              optional values can participate in aggregations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-10
// Modified: 2025-03-10
//
// Change History:
// - 2025-03-10 v0.1.0: Initial implementation with generic arithmetic helpers

package mathx

import (
	"math"
	"reflect"

	"github.com/msto63/dkit/core/errors"
	"github.com/msto63/dkit/utils/convx"
)

// Real covers the signed integer and floating-point types the arithmetic
// helpers operate on. Unsigned types are excluded because Subtract would
// silently wrap on them.
type Real interface {
	convx.Signed | convx.Float
}

// Sum returns the sum of all non-nil values. Nil slots are skipped, so
// optional values can be aggregated without pre-filtering. An empty or
// all-nil input sums to zero.
//
// Example:
//
//	a, b := 3, 4
//	total := mathx.Sum(&a, nil, &b)  // 7
func Sum[T Real](vals ...*T) T {
	var sum T
	for _, v := range vals {
		if v != nil {
			sum += *v
		}
	}
	return sum
}

// SumOf returns the sum of the given values. An empty input sums to zero.
func SumOf[T Real](vals ...T) T {
	var sum T
	for _, v := range vals {
		sum += v
	}
	return sum
}

// Subtract returns a minus b.
func Subtract[T Real](a, b T) T {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply[T Real](a, b T) T {
	return a * b
}

// Divide returns the quotient of a divided by b. Integer types divide with
// truncation, float types divide exactly. A zero divisor is rejected for
// floats as well, so the result is never an infinity.
func Divide[T Real](a, b T) (T, error) {
	if b == 0 {
		return 0, errors.MathxDivisionByZero("divide")
	}
	return a / b, nil
}

// Modulus returns the remainder of a divided by b. For float types the
// result follows math.Mod, so the sign matches the dividend. A zero
// divisor is rejected.
func Modulus[T Real](a, b T) (T, error) {
	if b == 0 {
		return 0, errors.MathxDivisionByZero("modulus")
	}
	switch reflect.ValueOf(a).Kind() {
	case reflect.Float32, reflect.Float64:
		return T(math.Mod(float64(a), float64(b))), nil
	}
	return T(int64(a) % int64(b)), nil
}

// Max returns the maximum of all non-nil values. Nil slots are skipped.
// An empty or all-nil input is rejected because no maximum exists.
func Max[T Real](vals ...*T) (T, error) {
	if len(vals) == 0 {
		return 0, errors.InvalidInput("mathx", "max", "no values", "at least one value")
	}
	var best T
	found := false
	for _, v := range vals {
		if v == nil {
			continue
		}
		if !found || *v > best {
			best = *v
			found = true
		}
	}
	if !found {
		return 0, errors.InvalidInput("mathx", "max", "all values nil", "at least one non-nil value")
	}
	return best, nil
}

// MaxOf returns the maximum of the given values. An empty input is
// rejected because no maximum exists.
func MaxOf[T Real](vals ...T) (T, error) {
	if len(vals) == 0 {
		return 0, errors.InvalidInput("mathx", "max_of", "no values", "at least one value")
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return best, nil
}

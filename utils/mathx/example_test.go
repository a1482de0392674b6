// File: example_test.go
// Title: Example Tests for mathx Package
// Description: Executable examples demonstrating the usage of the generic
//              arithmetic helpers. These examples appear in the package
//              documentation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-10
// Modified: 2025-03-10
//
// Change History:
// - 2025-03-10 v0.1.0: Initial example implementation

package mathx_test

import (
	"fmt"

	dkitmathx "github.com/msto63/dkit/utils/mathx"
)

func ExampleSum() {
	a, b := 3, 4
	fmt.Println(dkitmathx.Sum(&a, nil, &b))
	fmt.Println(dkitmathx.Sum[int]())
	// Output:
	// 7
	// 0
}

func ExampleSumOf() {
	fmt.Println(dkitmathx.SumOf(1, 2, 3))
	fmt.Println(dkitmathx.SumOf(1.5, 2.25))
	// Output:
	// 6
	// 3.75
}

func ExampleDivide() {
	q, err := dkitmathx.Divide(10, 3)
	fmt.Println(q, err)

	_, err = dkitmathx.Divide(10, 0)
	fmt.Println(err != nil)
	// Output:
	// 3 <nil>
	// true
}

func ExampleModulus() {
	r, _ := dkitmathx.Modulus(10, 3)
	fmt.Println(r)

	f, _ := dkitmathx.Modulus(5.5, 2.0)
	fmt.Println(f)
	// Output:
	// 1
	// 1.5
}

func ExampleMax() {
	a, b, c := 1, 5, 3
	best, _ := dkitmathx.Max(&a, &b, nil, &c)
	fmt.Println(best)
	// Output: 5
}

func ExampleMaxOf() {
	best, _ := dkitmathx.MaxOf(3, 1, 2)
	fmt.Println(best)
	// Output: 3
}

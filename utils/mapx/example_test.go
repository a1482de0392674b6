// File: example_test.go
// Title: Map Utilities Examples
// Description: Executable examples demonstrating the usage of map utility
//              functions in practical scenarios.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with practical examples

package mapx

import (
	"fmt"
	"sort"
)

func ExampleContainsKey() {
	settings := map[string]string{"host": "localhost", "port": "8080"}

	fmt.Println(ContainsKey(settings, "host"))
	fmt.Println(ContainsKey(settings, "timeout"))
	// Output:
	// true
	// false
}

func ExampleContainsValue() {
	ports := map[string]int{"http": 80, "https": 443}

	fmt.Println(ContainsValue(ports, 443))
	fmt.Println(ContainsValue(ports, 22))
	// Output:
	// true
	// false
}

func ExampleKeys() {
	settings := map[string]string{"host": "localhost", "port": "8080"}

	keys := Keys(settings)
	sort.Strings(keys)

	fmt.Println(keys)
	// Output: [host port]
}

func ExampleMerge() {
	defaults := map[string]string{"host": "localhost", "port": "8080"}
	overrides := map[string]string{"port": "9090"}

	merged := Merge(defaults, overrides)

	fmt.Println(merged["host"], merged["port"])
	// Output: localhost 9090
}

func ExampleIsEmpty() {
	var m map[string]int

	fmt.Println(IsEmpty(m))
	fmt.Println(IsEmpty(map[string]int{"a": 1}))
	// Output:
	// true
	// false
}

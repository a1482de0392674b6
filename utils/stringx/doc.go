// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for dkit,
//              offering Unicode-safe string manipulation, normalization,
//              and commonly needed utilities that extend Go's standard library.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-08
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with core string utilities
// - 2025-03-09 v0.2.0: Enhanced documentation with comprehensive structure and examples

// Package stringx provides extended string operations for dkit.
//
// Package: stringx
// Title: Extended String Operations for dkit
// Description: This package provides essential string utilities that extend
//              the Go standard library with commonly needed operations.
//              Focus on Unicode safety, explicit normalization, and developer
//              ergonomics for production-ready string manipulation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-08
// Modified: 2025-03-09
//
// Overview
//
// The stringx package extends Go's standard strings package with frequently
// needed utility functions. It provides a comprehensive set of string
// manipulation tools that are Unicode-aware, performance-conscious, and safe
// for production use. The package addresses common gaps in the standard
// library while maintaining Go's philosophy of simplicity and clarity.
//
// Key capabilities include:
//   - Empty and blank checks with default-value helpers
//   - Pointer bridges for optional values (NilIfEmpty, Deref)
//   - Trimmed and case-insensitive comparison and containment helpers
//   - Capitalization that joins dotted identifiers (Capitalize)
//   - Configurable normalization pipeline (Normalize)
//   - Case conversion utilities (camelCase, snake_case, kebab-case, etc.)
//   - Random string generation and UUID-based identifiers
//   - Unicode-safe truncation, padding, and reversal
//   - Memory-efficient string interning
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Core Operations: Checks, defaults, comparison, padding (stringx.go)
//   - Capitalization and Case Conversion: Naming transforms (case.go)
//   - Normalization: Configurable cleanup pipeline (normalize.go)
//   - Random Generation: Secure random strings and identifiers (random.go)
//
// The implementation prioritizes correctness over speed, but includes
// performance optimizations where they don't compromise safety or clarity.
//
// Usage Examples
//
// Basic string operations:
//
//	// Safe empty/blank checking
//	if stringx.IsBlank("  \t\n  ") {
//	    fmt.Println("String contains only whitespace")
//	}
//
//	// Defaults for missing values
//	name := stringx.DefaultIfBlank(input, "anonymous")
//
//	// Optional-value bridges
//	ptr := stringx.NilIfEmpty("")       // nil
//	val := stringx.Deref(ptr)           // ""
//
//	// Unicode-aware truncation
//	long := "Hello, 世界! This is a long string"
//	short := stringx.Truncate(long, 10, "...")
//	// Result: "Hello, ..."
//
// Comparison helpers:
//
//	// Whitespace-tolerant equality
//	stringx.EqualTrimmed(" code ", "code")       // true
//	stringx.EqualTrimmedFold("CODE", " code ")   // true
//
//	// Case-insensitive containment
//	stringx.ContainsFold("Hello World", "WORLD") // true
//
// Capitalization:
//
//	// Capitalize joins dot-separated parts, uppercasing the first
//	// letter of each part and consuming the dots
//	stringx.Capitalize("sales.order")        // "SalesOrder"
//	stringx.Capitalize("...a")               // "A"
//
//	// CapitalizeEach works with an arbitrary separator
//	stringx.CapitalizeEach("hello world", " ") // "HelloWorld"
//
// Normalization:
//
//	opts := stringx.NormalizeOptions{
//	    Trim: true,
//	    Case: stringx.CaseUpper,
//	}
//	clean := stringx.Normalize("  product code  ", opts)
//	// Result: "PRODUCT CODE"
//
// Case conversions:
//
//	// Convert between naming conventions
//	varName := "myVariableName"
//
//	snake := stringx.ToSnakeCase(varName)       // "my_variable_name"
//	kebab := stringx.ToKebabCase(varName)       // "my-variable-name"
//	camel := stringx.ToCamelCase("my_var")      // "myVar"
//	pascal := stringx.ToPascalCase("my_var")    // "MyVar"
//	title := stringx.ToTitleCase("hello world") // "Hello World"
//
// Random string generation:
//
//	// Lowercase random strings for fixtures and temp names
//	name, _ := stringx.RandomString(10)
//	prefixed, _ := stringx.RandomStringPrefix(8, "tmp-")
//
//	// Custom character sets
//	code, _ := stringx.RandomFrom(stringx.Digits, 6)
//
//	// Predefined sets
//	token, _ := stringx.RandomURLSafe(32)
//	display, _ := stringx.RandomHumanReadable(8)
//
//	// UUID-based identifiers
//	id := stringx.NewID()        // canonical UUID
//	short := stringx.NewShortID(8)
//
// Performance Considerations
//
// The package includes several performance optimizations:
//
//   - String interning for frequently used strings reduces memory usage
//   - ASCII fast paths in padding functions avoid rune conversion
//   - Builder patterns for efficient string concatenation
//   - Benchmarked implementations with performance notes
//
// Best Practices
//
// 1. Use IsBlank() instead of checking len() for user input:
//
//	// Good - handles whitespace
//	if stringx.IsBlank(userInput) {
//	    return errors.New("input required")
//	}
//
// 2. Use Unicode-aware functions for international text:
//
//	// Good - handles Unicode correctly
//	truncated := stringx.Truncate(text, 50, "...")
//
//	// Bad - may split Unicode characters
//	truncated := text[:50] + "..."
//
// 3. Choose the comparison helper that matches the intent:
//
//	// User-entered codes: ignore padding and case
//	if stringx.EqualTrimmedFold(input, expected) { ... }
//
//	// Machine identifiers: exact comparison
//	if input == expected { ... }
//
// Integration with dkit
//
// The stringx package underpins several other dkit packages:
//
//   - jsonx applies Normalize to decoded string fields
//   - filex uses RandomStringAffix for collision-free temp file names
//   - The dkit CLI uses NewID for job identifiers
//   - config uses IsBlank for path validation
//
// Error Handling
//
// Functions that can fail return errors following dkit conventions:
//
//	result, err := stringx.RandomInt(1, 100)
//	if err != nil {
//	    return err
//	}
//
// Most functions are designed to be error-free by handling edge cases
// gracefully:
//   - Empty strings return sensible defaults
//   - Non-positive lengths yield empty results
//   - Invalid UTF-8 is handled safely
//
// Thread Safety
//
// All exported functions are thread-safe and can be called concurrently.
// The string interning cache uses sync.RWMutex for safe concurrent access.
// Random string generation uses crypto/rand for thread-safe operation.
//
// See Also
//
//   - strings: Go standard library string functions
//   - unicode: Unicode character classification
//   - Package convx: For value-to-string conversions
//   - Package jsonx: For normalization during decoding
//
package stringx

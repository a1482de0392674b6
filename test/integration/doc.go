// File: doc.go
// Title: Integration Test Suite Documentation
// Description: Package overview for the cross-module integration tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-19
// Modified: 2025-03-19
//
// Change History:
// - 2025-03-19 v0.1.0: Initial integration test suite

// Package integration verifies the interaction between dkit modules:
// consistent error handling across module boundaries, data flowing from
// one module into the next, and realistic end-to-end scenarios that no
// single package test covers.
//
// Module integration (module_integration_test.go) exercises data flow:
// validated strings into convx and timex parsing, normalization into
// enum validation, JSON patches decoded by jsonx and applied by patchx,
// and file round trips through filex with checksums and async tasks.
//
// Error integration (error_integration_test.go) checks that every
// module produces core/error values with the standard severity tiers,
// module-scoped codes, and context that survives wrapping.
//
// Performance integration (performance_test.go) runs short workloads
// across module combinations to catch gross regressions; bounds are
// deliberately generous so the suite stays stable on slow machines.
package integration

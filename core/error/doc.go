// Package error provides comprehensive error handling capabilities for the dkit library.
//
// Package: error
// Title: dkit Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and severity levels. It provides a
//              foundation for consistent error handling across all dkit packages and the
//              applications built on top of them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - JSON serialization for structured logging
//
// Usage:
//   import "github.com/msto63/dkit/core/error"
//
//   // Create a new error with context
//   err := error.New("copy failed").
//     WithCode(error.CodeCopyFailed).
//     WithDetail("source", "/tmp/in.dat").
//     WithSeverity(error.SeverityMedium)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to mirror directory").
//     WithCode(error.CodeCopyFailed).
//     WithDetail("directory", "/tmp")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeCopyFailed) {
//     // Handle copy errors specifically
//   }
package error

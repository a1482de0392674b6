// Package log provides structured logging capabilities for dkit.
//
// Package: log
// Title: dkit Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and tight
//              integration with the dkit error handling system. It supports performance
//              monitoring, audit trails, and correlation of asynchronous batch work.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-05
// Modified: 2025-03-05
//
// Change History:
// - 2025-03-05 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with operation names, job IDs, and custom fields
// - Integration with dkit error system for automatic error logging
// - Performance metrics and timing measurements
// - Audit trail capabilities for file system changes
// - Optional asynchronous output with buffered delivery
// - Caller information for debugging
//
// Usage:
//   import "github.com/msto63/dkit/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatJSON).
//     WithField("tool", "dkit").
//     WithOperation("copy_batch")
//
//   // Log messages with different levels
//   logger.Info("Copy completed", log.Field("files", 42))
//   logger.Error("Copy failed", log.Err(err))
//   logger.Debug("Processing file", log.Fields{
//     "source":      "/data/in.bin",
//     "destination": "/backup/in.bin",
//     "size":        1024,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("directory_scan")
//   // ... perform file system operation
//   timer.Stop()
//
//   // Audit logging for destructive operations
//   logger.Audit("Directory deleted", log.Fields{
//     "path":    "/tmp/workdir",
//     "success": true,
//   })
package log

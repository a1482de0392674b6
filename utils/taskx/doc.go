// Package taskx implements lightweight asynchronous task handles for dkit.
//
// Package: taskx
// Title: Asynchronous Task Handles
// Description: This package provides a minimal generic abstraction for
//              running a function on its own goroutine and collecting the
//              result later. It backs the asynchronous variants of the
//              filex operations and is usable on its own wherever a
//              fire-and-collect pattern is needed.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial implementation
//
// # Overview
//
// A Task[T] wraps one function call running on one goroutine:
//
//	task := taskx.Go(func() (string, error) {
//		return expensiveLookup()
//	})
//
//	// ... do other work ...
//
//	value, err := task.Wait()
//
// Tasks complete exactly once. Wait can be called repeatedly and from
// multiple goroutines; every call observes the same result. Done exposes
// the completion as a channel for use in select statements:
//
//	select {
//	case <-task.Done():
//		value, err := task.Wait()
//		_ = value
//		_ = err
//	case <-time.After(5 * time.Second):
//		// keep the handle, collect later
//	}
//
// # Design Notes
//
// There is deliberately no cancellation and no timeout: a task exposes
// completion, not interruption. Callers that need to stop early stop
// waiting; the goroutine runs to completion in the background. Functions
// run by Go should report failures through their error return value.
//
// # Thread Safety
//
// All methods are safe for concurrent use. The completion channel close
// establishes the happens-before relationship that makes the stored
// result visible to all waiters.
//
// # Related Packages
//
//   - utils/filex: asynchronous file operation variants return *Task
package taskx

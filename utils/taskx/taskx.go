// File: taskx.go
// Title: Asynchronous Task Handles
// Description: Implements a minimal generic task abstraction for running
//              a function on its own goroutine and collecting its result
//              later. Tasks complete exactly once and expose completion,
//              not interruption.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial implementation with Go/Wait/Done/Err

package taskx

// Task represents a single asynchronous operation producing a value of
// type T. A task is started with Go, runs on exactly one goroutine, and
// completes exactly once. There is no cancellation: callers that lose
// interest simply stop waiting, the goroutine finishes on its own.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Go starts fn on a new goroutine and returns a handle to the running
// task. The function's return values become the task's result and error.
// fn should report failures through its error return rather than panic.
func Go[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		// The close provides the happens-before edge that makes
		// result and err safe to read after Done fires.
		defer close(t.done)
		t.result, t.err = fn()
	}()
	return t
}

// Unit is the empty result type of tasks run purely for their side
// effects, mirroring operations that return only an error.
type Unit = struct{}

// Run starts an error-only function as a task with no payload.
func Run(fn func() error) *Task[Unit] {
	return Go(func() (Unit, error) {
		return Unit{}, fn()
	})
}

// Done returns a channel that is closed when the task has completed.
// It can be used in select statements to combine tasks with other events.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes and returns its value and error.
// Wait may be called any number of times from any goroutine; every call
// returns the same outcome.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.result, t.err
}

// MustWait blocks until the task completes and returns its value.
// It panics if the task failed. Intended for tests and program setup
// where a failure is not recoverable.
func (t *Task[T]) MustWait() T {
	value, err := t.Wait()
	if err != nil {
		panic(err)
	}
	return value
}

// Err returns the error of a completed task. While the task is still
// running Err returns nil, so a nil result is only meaningful after
// Done has fired. Use Wait to block for the final outcome.
func (t *Task[T]) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Completed reports whether the task has finished.
func (t *Task[T]) Completed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

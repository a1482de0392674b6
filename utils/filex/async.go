// File: async.go
// Title: Asynchronous Operation Mirrors
// Description: Implements non-blocking variants of the file operations.
//              Each mirror runs the synchronous logic on its own task
//              goroutine and delivers the result or failure through the
//              task handle.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with mirrors for all operations

package filex

import (
	"github.com/msto63/dkit/utils/taskx"
)

// ExistsAsync is the non-blocking variant of Exists
func ExistsAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return Exists(path)
	})
}

// IsFileAsync is the non-blocking variant of IsFile
func IsFileAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return IsFile(path)
	})
}

// IsDirAsync is the non-blocking variant of IsDir
func IsDirAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return IsDir(path)
	})
}

// CanReadAsync is the non-blocking variant of CanRead
func CanReadAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return CanRead(path)
	})
}

// CanReadDirAsync is the non-blocking variant of CanReadDir
func CanReadDirAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return CanReadDir(path)
	})
}

// CanWriteAsync is the non-blocking variant of CanWrite
func CanWriteAsync(path string) *taskx.Task[bool] {
	return taskx.Go(func() (bool, error) {
		return CanWrite(path)
	})
}

// FormatBytesAsync is the non-blocking variant of FormatBytes
func FormatBytesAsync(size int64) *taskx.Task[string] {
	return taskx.Go(func() (string, error) {
		return FormatBytes(size)
	})
}

// CreateDirectoryAsync is the non-blocking variant of CreateDirectory
func CreateDirectoryAsync(path string) *taskx.Task[string] {
	return taskx.Go(func() (string, error) {
		return CreateDirectory(path)
	})
}

// CreateFileAsync is the non-blocking variant of CreateFile
func CreateFileAsync(path string) *taskx.Task[string] {
	return taskx.Go(func() (string, error) {
		return CreateFile(path)
	})
}

// ReadStringAsync is the non-blocking variant of ReadString
func ReadStringAsync(path string) *taskx.Task[string] {
	return taskx.Go(func() (string, error) {
		return ReadString(path)
	})
}

// ReadLinesAsync is the non-blocking variant of ReadLines
func ReadLinesAsync(path string) *taskx.Task[[]string] {
	return taskx.Go(func() ([]string, error) {
		return ReadLines(path)
	})
}

// WriteStringAsync is the non-blocking variant of WriteString
func WriteStringAsync(path, content string) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return WriteString(path, content)
	})
}

// CopyFileAsync is the non-blocking variant of CopyFile. The listener is
// invoked from the task's goroutine.
func CopyFileAsync(src, dst string, listener ProgressListener) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return CopyFile(src, dst, listener)
	})
}

// MoveFileAsync is the non-blocking variant of MoveFile. The listener is
// invoked from the task's goroutine.
func MoveFileAsync(src, dst string, listener ProgressListener) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return MoveFile(src, dst, listener)
	})
}

// DirSizeAsync is the non-blocking variant of DirSize
func DirSizeAsync(path string) *taskx.Task[int64] {
	return taskx.Go(func() (int64, error) {
		return DirSize(path), nil
	})
}

// CopyFilesAsync is the non-blocking variant of CopyFiles. The batch
// stays strictly sequential inside the task.
func CopyFilesAsync(paths []string, destDir string, listener ProgressListener) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return CopyFiles(paths, destDir, listener)
	})
}

// MoveFilesAsync is the non-blocking variant of MoveFiles. The batch
// stays strictly sequential inside the task.
func MoveFilesAsync(paths []string, destDir string, listener ProgressListener) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return MoveFiles(paths, destDir, listener)
	})
}

// DeleteFileAsync is the non-blocking variant of DeleteFile
func DeleteFileAsync(path string) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return DeleteFile(path)
	})
}

// DeleteDirAllAsync is the non-blocking variant of DeleteDirAll
func DeleteDirAllAsync(path string) *taskx.Task[taskx.Unit] {
	return taskx.Run(func() error {
		return DeleteDirAll(path)
	})
}

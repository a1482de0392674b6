// Package filex implements file system operation utilities for dkit.
//
// Package: filex
// Title: File System Operations for Go
// Description: This package provides file and directory operation
//              utilities including path predicates, human-readable size
//              formatting, idempotent creation, line-oriented content
//              I/O, chunked copying with progress reporting, recursive
//              size calculation, checksums, glob matching, and an
//              asynchronous facade built on the taskx package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation
//
// # Path Predicates
//
// Predicates answer questions about a path without failing on absent
// files:
//   - Exists: Check if a file or directory exists
//   - IsFile/IsDir: Check the entry kind
//   - CanRead/CanWrite: Probe effective access to a regular file
//   - CanReadDir: Probe listability of a directory
//
// Every predicate returns (bool, error). The error is reserved for
// invalid arguments such as an empty path; a missing file or a failed
// stat answers false with a nil error. This keeps call sites free of
// os.IsNotExist checks:
//
//	if ok, err := filex.Exists(path); err != nil {
//	    return err
//	} else if !ok {
//	    // handle the absent file
//	}
//
// # Size Formatting and Calculation
//
// FormatBytes renders byte counts with binary (1024-based) units, from
// "500 B" through "1.0 KB" to "1.00 PB". FileSize reports the length of
// a regular file. DirSize walks a tree and sums the regular files in
// it; it never fails and answers 0 for unreadable or missing paths,
// which makes it safe for display purposes.
//
// # Idempotent Creation
//
// CreateDirectory and CreateFile bring a path into existence together
// with any missing parents and succeed silently when the target is
// already there in the right kind. Both return the cleaned path of the
// target, so callers can chain them:
//
//	dir, err := filex.CreateDirectory("build/out")
//
// # Content I/O
//
// ReadLines reads a text file into its lines without terminators.
// ReadString joins those lines with the platform line separator,
// terminating every line including the last. WriteString writes content
// to a file, creating parent directories as needed; empty content is
// rejected rather than silently truncating the target.
//
// # Copying and Moving
//
// CopyFile streams content in 8 KiB chunks and invokes an optional
// ProgressListener after every chunk with cumulative bytes against the
// total. MoveFile renames when source and destination share a
// filesystem and falls back to copy-then-delete across filesystems.
//
// CopyFiles and MoveFiles transfer multiple sources into one flat
// destination directory. The batch forms pre-compute a grand total so
// the listener sees one continuous progression across all files:
//
//	err := filex.CopyFiles(sources, destDir, func(copied, total int64) {
//	    fmt.Printf("\r%d of %d bytes", copied, total)
//	})
//
// # Checksums and Globbing
//
// Checksum streams a file through MD5, SHA-256, or XXH64 and returns
// the hex digest. Glob matches entries under a root against doublestar
// patterns, so "**/*.txt" finds text files at any depth.
//
// # Asynchronous Facade
//
// Every core operation has an Async variant returning a taskx handle
// that can be polled or awaited:
//
//	task := filex.CopyFileAsync(src, dst, nil)
//	// other work
//	if _, err := task.Wait(); err != nil {
//	    return err
//	}
//
// Progress listeners passed to asynchronous operations run on the task
// goroutine; awaiting the task orders their effects before the caller
// continues.
//
// # Error Handling
//
// Invalid arguments surface as INVALID_INPUT errors. Missing files
// surface as FILEX_NOT_FOUND, and I/O failures carry operation-specific
// codes such as FILEX_COPY_FAILED, all built with the core/errors
// package and carrying the underlying cause.
//
// # See Also
//
// Package taskx provides the task handles behind the asynchronous
// facade. Package timex provides FormatDuration for rendering elapsed
// transfer times next to FormatBytes output.
package filex

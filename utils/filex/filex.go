// File: filex.go
// Title: Core File Utilities
// Description: Implements file and directory predicates, human-readable
//              byte formatting, idempotent creation, line-oriented content
//              I/O, size calculation, deletion helpers, and directory
//              listings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation with core file utilities

package filex

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/msto63/dkit/core/errors"
)

// FileInfo represents extended file information
type FileInfo struct {
	Name    string      // File name
	Path    string      // Absolute file path
	Size    int64       // File size in bytes
	Mode    os.FileMode // File mode
	ModTime time.Time   // Last modification time
	IsDir   bool        // Whether it's a directory
	Ext     string      // File extension
}

// copyChunkSize is the chunk size for progress-reporting copies
const copyChunkSize = 8 * 1024

// Buffer pools for efficient memory management in file operations
var (
	// chunkBufferPool serves the copy loop (8KB chunks)
	chunkBufferPool = sync.Pool{
		New: func() interface{} {
			return make([]byte, copyChunkSize)
		},
	}

	// streamBufferPool serves whole-stream operations such as checksums (32KB)
	streamBufferPool = sync.Pool{
		New: func() interface{} {
			return make([]byte, 32*1024)
		},
	}
)

// lineSeparator is the platform line separator used by ReadString
var lineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// ===============================
// Path Predicates
// ===============================

// Exists reports whether a file or directory exists at the path. Paths
// that cannot be inspected count as not existing.
func Exists(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "exists", path, "non-empty path")
	}

	_, err := os.Stat(path)
	return err == nil, nil
}

// IsFile reports whether the path exists and is a regular file
func IsFile(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "is_file", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether the path exists and is a directory
func IsDir(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "is_dir", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}
	return info.IsDir(), nil
}

// CanRead reports whether the path is a regular file that can be opened
// for reading
func CanRead(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "can_read", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	file.Close()
	return true, nil
}

// CanReadDir reports whether the path is a directory whose entries can
// be listed
func CanReadDir(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "can_read_dir", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false, nil
	}

	if _, err := os.ReadDir(path); err != nil {
		return false, nil
	}
	return true, nil
}

// CanWrite reports whether the path is a regular file that can be opened
// for writing
func CanWrite(path string) (bool, error) {
	if path == "" {
		return false, errors.InvalidInput("filex", "can_write", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false, nil
	}
	file.Close()
	return true, nil
}

// ===============================
// Byte Formatting
// ===============================

// FormatBytes formats a byte count as a human-readable string. Values
// below 1024 render as integer bytes, the KB tier with one decimal, and
// MB upward with two decimals.
func FormatBytes(size int64) (string, error) {
	if size < 0 {
		return "", errors.InvalidInput("filex", "format_bytes", size, "non-negative byte count")
	}

	if size < 1024 {
		return fmt.Sprintf("%d B", size), nil
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(size) / 1024
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%.1f KB", value), nil
	}
	return fmt.Sprintf("%.2f %s", value, units[unit]), nil
}

// ===============================
// Idempotent Creation
// ===============================

// CreateDirectory creates a directory with all ancestors and returns its
// cleaned path. An existing directory is reused; an existing entry of
// another kind is an error.
func CreateDirectory(path string) (string, error) {
	if path == "" {
		return "", errors.InvalidInput("filex", "create_directory", path, "non-empty path")
	}
	cleaned := filepath.Clean(path)

	if info, err := os.Stat(cleaned); err == nil {
		if info.IsDir() {
			return cleaned, nil
		}
		return "", errors.FilexIOError("create_directory", cleaned,
			fmt.Errorf("existing path is not a directory"))
	}

	if err := os.MkdirAll(cleaned, 0755); err != nil {
		return "", errors.FilexIOError("create_directory", cleaned, err)
	}
	return cleaned, nil
}

// CreateFile creates an empty file with all parent directories and
// returns its cleaned path. An existing regular file is reused; an
// existing entry of another kind is an error.
func CreateFile(path string) (string, error) {
	if path == "" {
		return "", errors.InvalidInput("filex", "create_file", path, "non-empty path")
	}
	cleaned := filepath.Clean(path)

	if info, err := os.Stat(cleaned); err == nil {
		if info.Mode().IsRegular() {
			return cleaned, nil
		}
		return "", errors.FilexIOError("create_file", cleaned,
			fmt.Errorf("existing path is not a regular file"))
	}

	if err := os.MkdirAll(filepath.Dir(cleaned), 0755); err != nil {
		return "", errors.FilexIOError("create_file", cleaned, err)
	}

	file, err := os.Create(cleaned)
	if err != nil {
		return "", errors.FilexIOError("create_file", cleaned, err)
	}
	file.Close()
	return cleaned, nil
}

// ===============================
// Content I/O
// ===============================

// ReadString reads a text file and returns its lines joined with the
// platform line separator, including a separator after the last line.
func ReadString(path string) (string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineSeparator)
	}
	return b.String(), nil
}

// ReadLines reads a text file and returns its lines in order
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, errors.InvalidInput("filex", "read_lines", path, "non-empty path")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FilexNotFound(path)
		}
		return nil, errors.FilexIOError("read_lines", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.FilexIOError("read_lines", path, err)
	}
	return lines, nil
}

// WriteString writes content to a file, creating parent directories and
// replacing any existing content. Empty content is rejected.
func WriteString(path, content string) error {
	if path == "" {
		return errors.InvalidInput("filex", "write_string", path, "non-empty path")
	}
	if content == "" {
		return errors.InvalidInput("filex", "write_string", content, "non-empty content")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.FilexIOError("write_string", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.FilexIOError("write_string", path, err)
	}
	return nil
}

// ===============================
// Size Calculation
// ===============================

// FileSize returns the size of a regular file in bytes
func FileSize(path string) (int64, error) {
	if path == "" {
		return 0, errors.InvalidInput("filex", "file_size", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.FilexNotFound(path)
		}
		return 0, errors.FilexIOError("file_size", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.FilexIOError("file_size", path,
			fmt.Errorf("not a regular file"))
	}
	return info.Size(), nil
}

// DirSize returns the total size of all files under the path. An empty
// or nonexistent path contributes zero, a plain file its own length.
// Entries that cannot be inspected are skipped; DirSize never fails.
func DirSize(path string) int64 {
	if path == "" {
		return 0
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	_ = filepath.Walk(path, func(_ string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !fi.IsDir() {
			total += fi.Size()
		}
		return nil
	})
	return total
}

// ===============================
// Deletion
// ===============================

// DeleteFile removes a single file
func DeleteFile(path string) error {
	if path == "" {
		return errors.InvalidInput("filex", "delete_file", path, "non-empty path")
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.FilexNotFound(path)
		}
		return errors.FilexIOError("delete_file", path, err)
	}
	return nil
}

// DeleteDirAll removes a directory tree. An empty or nonexistent path is
// silently ignored.
func DeleteDirAll(path string) error {
	if path == "" {
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return errors.FilexIOError("delete_dir", path, err)
	}
	return nil
}

// ===============================
// File Info and Listings
// ===============================

// GetFileInfo returns extended file information
func GetFileInfo(path string) (FileInfo, error) {
	if path == "" {
		return FileInfo{}, errors.InvalidInput("filex", "file_info", path, "non-empty path")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileInfo{}, errors.FilexNotFound(path)
		}
		return FileInfo{}, errors.FilexIOError("file_info", path, err)
	}

	absPath, _ := filepath.Abs(path)

	return FileInfo{
		Name:    info.Name(),
		Path:    absPath,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
		Ext:     filepath.Ext(path),
	}, nil
}

// ListDir returns the contents of a directory
func ListDir(path string) ([]FileInfo, error) {
	if path == "" {
		return nil, errors.InvalidInput("filex", "list_dir", path, "non-empty path")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FilexNotFound(path)
		}
		return nil, errors.FilexIOError("list_dir", path, err)
	}

	var fileInfos []FileInfo
	for _, entry := range entries {
		info, err := GetFileInfo(filepath.Join(path, entry.Name()))
		if err != nil {
			// Skip entries that vanish between the listing and the stat
			continue
		}
		fileInfos = append(fileInfos, info)
	}
	return fileInfos, nil
}

// ListFiles returns only the files (not directories) in a directory
func ListFiles(path string) ([]FileInfo, error) {
	allEntries, err := ListDir(path)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range allEntries {
		if !entry.IsDir {
			files = append(files, entry)
		}
	}
	return files, nil
}

// ListDirs returns only the directories in a directory
func ListDirs(path string) ([]FileInfo, error) {
	allEntries, err := ListDir(path)
	if err != nil {
		return nil, err
	}

	var dirs []FileInfo
	for _, entry := range allEntries {
		if entry.IsDir {
			dirs = append(dirs, entry)
		}
	}
	return dirs, nil
}

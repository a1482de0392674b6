// File: filex_test.go
// Title: Core File Utilities Tests
// Description: Tests for path predicates, byte formatting, idempotent
//              creation, content I/O, size calculation, deletion, and
//              directory listings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial test implementation

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	dkiterror "github.com/msto63/dkit/core/error"
	"github.com/msto63/dkit/core/errors"
)

// writeTestFile creates a file with the given content under dir
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file %s: %v", path, err)
	}
	return path
}

// ===============================
// Path Predicate Tests
// ===============================

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "present.txt", "data")

	t.Run("Existing file", func(t *testing.T) {
		ok, err := Exists(file)
		if err != nil {
			t.Fatalf("Exists() unexpected error: %v", err)
		}
		if !ok {
			t.Error("Exists() = false for an existing file")
		}
	})

	t.Run("Existing directory", func(t *testing.T) {
		ok, err := Exists(dir)
		if err != nil {
			t.Fatalf("Exists() unexpected error: %v", err)
		}
		if !ok {
			t.Error("Exists() = false for an existing directory")
		}
	})

	t.Run("Missing path", func(t *testing.T) {
		ok, err := Exists(filepath.Join(dir, "missing"))
		if err != nil {
			t.Fatalf("Exists() unexpected error: %v", err)
		}
		if ok {
			t.Error("Exists() = true for a missing path")
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := Exists("")
		if err == nil {
			t.Fatal("Exists(\"\") expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeInvalidInput)) {
			t.Errorf("Exists(\"\") error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeInvalidInput)
		}
	})
}

func TestIsFileIsDir(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "plain.txt", "data")

	testCases := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{"Regular file", file, true, false},
		{"Directory", dir, false, true},
		{"Missing", filepath.Join(dir, "missing"), false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotFile, err := IsFile(tc.path)
			if err != nil {
				t.Fatalf("IsFile() unexpected error: %v", err)
			}
			if gotFile != tc.wantFile {
				t.Errorf("IsFile(%s) = %v, want %v", tc.path, gotFile, tc.wantFile)
			}

			gotDir, err := IsDir(tc.path)
			if err != nil {
				t.Fatalf("IsDir() unexpected error: %v", err)
			}
			if gotDir != tc.wantDir {
				t.Errorf("IsDir(%s) = %v, want %v", tc.path, gotDir, tc.wantDir)
			}
		})
	}

	if _, err := IsFile(""); err == nil {
		t.Error("IsFile(\"\") expected error, got nil")
	}
	if _, err := IsDir(""); err == nil {
		t.Error("IsDir(\"\") expected error, got nil")
	}
}

func TestCanRead(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "readable.txt", "data")

	if ok, err := CanRead(file); err != nil || !ok {
		t.Errorf("CanRead(file) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := CanRead(dir); err != nil || ok {
		t.Errorf("CanRead(dir) = %v, %v, want false, nil", ok, err)
	}
	if ok, err := CanRead(filepath.Join(dir, "missing")); err != nil || ok {
		t.Errorf("CanRead(missing) = %v, %v, want false, nil", ok, err)
	}
	if _, err := CanRead(""); err == nil {
		t.Error("CanRead(\"\") expected error, got nil")
	}
}

func TestCanReadDir(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "plain.txt", "data")

	if ok, err := CanReadDir(dir); err != nil || !ok {
		t.Errorf("CanReadDir(dir) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := CanReadDir(file); err != nil || ok {
		t.Errorf("CanReadDir(file) = %v, %v, want false, nil", ok, err)
	}
	if _, err := CanReadDir(""); err == nil {
		t.Error("CanReadDir(\"\") expected error, got nil")
	}
}

func TestCanWrite(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "writable.txt", "data")

	if ok, err := CanWrite(file); err != nil || !ok {
		t.Errorf("CanWrite(file) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := CanWrite(dir); err != nil || ok {
		t.Errorf("CanWrite(dir) = %v, %v, want false, nil", ok, err)
	}
	if ok, err := CanWrite(filepath.Join(dir, "missing")); err != nil || ok {
		t.Errorf("CanWrite(missing) = %v, %v, want false, nil", ok, err)
	}
	if _, err := CanWrite(""); err == nil {
		t.Error("CanWrite(\"\") expected error, got nil")
	}
}

// ===============================
// Byte Formatting Tests
// ===============================

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		name     string
		size     int64
		expected string
	}{
		{"Zero", 0, "0 B"},
		{"Bytes", 500, "500 B"},
		{"Just below a kilobyte", 1023, "1023 B"},
		{"One kilobyte", 1024, "1.0 KB"},
		{"Kilobytes", 1536, "1.5 KB"},
		{"Megabytes", 1572864, "1.50 MB"},
		{"One gigabyte", 1073741824, "1.00 GB"},
		{"One terabyte", 1099511627776, "1.00 TB"},
		{"One petabyte", 1125899906842624, "1.00 PB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatBytes(tc.size)
			if err != nil {
				t.Fatalf("FormatBytes(%d) unexpected error: %v", tc.size, err)
			}
			if got != tc.expected {
				t.Errorf("FormatBytes(%d) = %q, want %q", tc.size, got, tc.expected)
			}
		})
	}

	t.Run("Negative size", func(t *testing.T) {
		_, err := FormatBytes(-1)
		if err == nil {
			t.Fatal("FormatBytes(-1) expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeInvalidInput)) {
			t.Errorf("FormatBytes(-1) error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeInvalidInput)
		}
	})
}

// ===============================
// Idempotent Creation Tests
// ===============================

func TestCreateDirectory(t *testing.T) {
	dir := t.TempDir()

	t.Run("Creates nested directories", func(t *testing.T) {
		target := filepath.Join(dir, "a", "b", "c")
		got, err := CreateDirectory(target)
		if err != nil {
			t.Fatalf("CreateDirectory() unexpected error: %v", err)
		}
		if got != filepath.Clean(target) {
			t.Errorf("CreateDirectory() = %q, want %q", got, filepath.Clean(target))
		}
		if ok, _ := IsDir(target); !ok {
			t.Error("CreateDirectory() did not create the directory")
		}
	})

	t.Run("Existing directory is reused", func(t *testing.T) {
		target := filepath.Join(dir, "reused")
		if _, err := CreateDirectory(target); err != nil {
			t.Fatalf("first CreateDirectory() unexpected error: %v", err)
		}
		got, err := CreateDirectory(target)
		if err != nil {
			t.Fatalf("second CreateDirectory() unexpected error: %v", err)
		}
		if got != target {
			t.Errorf("second CreateDirectory() = %q, want %q", got, target)
		}
	})

	t.Run("Returns the cleaned path", func(t *testing.T) {
		messy := filepath.Join(dir, "x") + string(filepath.Separator) + "." + string(filepath.Separator) + "y"
		got, err := CreateDirectory(messy)
		if err != nil {
			t.Fatalf("CreateDirectory() unexpected error: %v", err)
		}
		if got != filepath.Join(dir, "x", "y") {
			t.Errorf("CreateDirectory() = %q, want %q", got, filepath.Join(dir, "x", "y"))
		}
	})

	t.Run("File in the way", func(t *testing.T) {
		file := writeTestFile(t, dir, "blocker.txt", "data")
		_, err := CreateDirectory(file)
		if err == nil {
			t.Fatal("CreateDirectory() over a file expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeFilexCreateFailed)) {
			t.Errorf("CreateDirectory() error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeFilexCreateFailed)
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if _, err := CreateDirectory(""); err == nil {
			t.Fatal("CreateDirectory(\"\") expected error, got nil")
		}
	})
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Creates file with parents", func(t *testing.T) {
		target := filepath.Join(dir, "sub", "new.txt")
		got, err := CreateFile(target)
		if err != nil {
			t.Fatalf("CreateFile() unexpected error: %v", err)
		}
		if got != target {
			t.Errorf("CreateFile() = %q, want %q", got, target)
		}
		if ok, _ := IsFile(target); !ok {
			t.Error("CreateFile() did not create the file")
		}
	})

	t.Run("Existing file is reused untouched", func(t *testing.T) {
		target := writeTestFile(t, dir, "kept.txt", "important")
		got, err := CreateFile(target)
		if err != nil {
			t.Fatalf("CreateFile() unexpected error: %v", err)
		}
		if got != target {
			t.Errorf("CreateFile() = %q, want %q", got, target)
		}
		content, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("reading file back: %v", err)
		}
		if string(content) != "important" {
			t.Errorf("CreateFile() truncated an existing file: %q", content)
		}
	})

	t.Run("Directory in the way", func(t *testing.T) {
		_, err := CreateFile(dir)
		if err == nil {
			t.Fatal("CreateFile() over a directory expected error, got nil")
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if _, err := CreateFile(""); err == nil {
			t.Fatal("CreateFile(\"\") expected error, got nil")
		}
	})
}

// ===============================
// Content I/O Tests
// ===============================

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	t.Run("Ordered lines", func(t *testing.T) {
		file := writeTestFile(t, dir, "lines.txt", "alpha\nbeta\ngamma\n")
		lines, err := ReadLines(file)
		if err != nil {
			t.Fatalf("ReadLines() unexpected error: %v", err)
		}
		want := []string{"alpha", "beta", "gamma"}
		if len(lines) != len(want) {
			t.Fatalf("ReadLines() = %d lines, want %d", len(lines), len(want))
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("ReadLines()[%d] = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("Empty file", func(t *testing.T) {
		file := writeTestFile(t, dir, "empty.txt", "")
		lines, err := ReadLines(file)
		if err != nil {
			t.Fatalf("ReadLines() unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("ReadLines() = %v, want no lines", lines)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(dir, "missing.txt"))
		if err == nil {
			t.Fatal("ReadLines(missing) expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeFilexNotFound)) {
			t.Errorf("ReadLines(missing) error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeFilexNotFound)
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if _, err := ReadLines(""); err == nil {
			t.Fatal("ReadLines(\"\") expected error, got nil")
		}
	})
}

func TestReadString(t *testing.T) {
	dir := t.TempDir()

	t.Run("Joins lines with the separator", func(t *testing.T) {
		file := writeTestFile(t, dir, "content.txt", "alpha\nbeta\n")
		got, err := ReadString(file)
		if err != nil {
			t.Fatalf("ReadString() unexpected error: %v", err)
		}
		want := "alpha" + lineSeparator + "beta" + lineSeparator
		if got != want {
			t.Errorf("ReadString() = %q, want %q", got, want)
		}
	})

	t.Run("Trailing separator is added", func(t *testing.T) {
		file := writeTestFile(t, dir, "no-newline.txt", "alpha\nbeta")
		got, err := ReadString(file)
		if err != nil {
			t.Fatalf("ReadString() unexpected error: %v", err)
		}
		if !strings.HasSuffix(got, lineSeparator) {
			t.Errorf("ReadString() = %q, want trailing separator", got)
		}
	})

	t.Run("Empty file", func(t *testing.T) {
		file := writeTestFile(t, dir, "empty.txt", "")
		got, err := ReadString(file)
		if err != nil {
			t.Fatalf("ReadString() unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("ReadString() = %q, want empty", got)
		}
	})
}

func TestWriteString(t *testing.T) {
	dir := t.TempDir()

	t.Run("Writes content creating parents", func(t *testing.T) {
		target := filepath.Join(dir, "deep", "out.txt")
		if err := WriteString(target, "written"); err != nil {
			t.Fatalf("WriteString() unexpected error: %v", err)
		}
		content, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("reading file back: %v", err)
		}
		if string(content) != "written" {
			t.Errorf("WriteString() wrote %q, want %q", content, "written")
		}
	})

	t.Run("Overwrites completely", func(t *testing.T) {
		target := writeTestFile(t, dir, "overwrite.txt", "a much longer original content")
		if err := WriteString(target, "short"); err != nil {
			t.Fatalf("WriteString() unexpected error: %v", err)
		}
		content, _ := os.ReadFile(target)
		if string(content) != "short" {
			t.Errorf("WriteString() left %q, want %q", content, "short")
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		err := WriteString("", "content")
		if err == nil {
			t.Fatal("WriteString(\"\", content) expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeInvalidInput)) {
			t.Errorf("WriteString error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeInvalidInput)
		}
	})

	t.Run("Empty content", func(t *testing.T) {
		err := WriteString(filepath.Join(dir, "never.txt"), "")
		if err == nil {
			t.Fatal("WriteString(path, \"\") expected error, got nil")
		}
		if ok, _ := Exists(filepath.Join(dir, "never.txt")); ok {
			t.Error("WriteString with empty content created the file")
		}
	})
}

// ===============================
// Size Calculation Tests
// ===============================

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "sized.txt", "12345")

	t.Run("Regular file", func(t *testing.T) {
		size, err := FileSize(file)
		if err != nil {
			t.Fatalf("FileSize() unexpected error: %v", err)
		}
		if size != 5 {
			t.Errorf("FileSize() = %d, want 5", size)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := FileSize(filepath.Join(dir, "missing"))
		if err == nil {
			t.Fatal("FileSize(missing) expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeFilexNotFound)) {
			t.Errorf("FileSize(missing) error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeFilexNotFound)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		if _, err := FileSize(dir); err == nil {
			t.Fatal("FileSize(dir) expected error, got nil")
		}
	})
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "1234")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("creating subdirectory: %v", err)
	}
	writeTestFile(t, sub, "b.txt", "123456")

	t.Run("Recursive sum", func(t *testing.T) {
		if got := DirSize(dir); got != 10 {
			t.Errorf("DirSize() = %d, want 10", got)
		}
	})

	t.Run("Plain file", func(t *testing.T) {
		if got := DirSize(filepath.Join(dir, "a.txt")); got != 4 {
			t.Errorf("DirSize(file) = %d, want 4", got)
		}
	})

	t.Run("Missing path", func(t *testing.T) {
		if got := DirSize(filepath.Join(dir, "missing")); got != 0 {
			t.Errorf("DirSize(missing) = %d, want 0", got)
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if got := DirSize(""); got != 0 {
			t.Errorf("DirSize(\"\") = %d, want 0", got)
		}
	})
}

// ===============================
// Deletion Tests
// ===============================

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Deletes a file", func(t *testing.T) {
		file := writeTestFile(t, dir, "doomed.txt", "data")
		if err := DeleteFile(file); err != nil {
			t.Fatalf("DeleteFile() unexpected error: %v", err)
		}
		if ok, _ := Exists(file); ok {
			t.Error("DeleteFile() left the file in place")
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		err := DeleteFile(filepath.Join(dir, "missing"))
		if err == nil {
			t.Fatal("DeleteFile(missing) expected error, got nil")
		}
		if !dkiterror.HasCode(err, dkiterror.Code(errors.CodeFilexNotFound)) {
			t.Errorf("DeleteFile(missing) error code = %v, want %s",
				dkiterror.GetCode(err), errors.CodeFilexNotFound)
		}
	})

	t.Run("Empty path", func(t *testing.T) {
		if err := DeleteFile(""); err == nil {
			t.Fatal("DeleteFile(\"\") expected error, got nil")
		}
	})
}

func TestDeleteDirAll(t *testing.T) {
	dir := t.TempDir()

	t.Run("Removes a tree", func(t *testing.T) {
		root := filepath.Join(dir, "tree")
		if err := os.MkdirAll(filepath.Join(root, "deep"), 0755); err != nil {
			t.Fatalf("creating tree: %v", err)
		}
		writeTestFile(t, filepath.Join(root, "deep"), "leaf.txt", "data")

		if err := DeleteDirAll(root); err != nil {
			t.Fatalf("DeleteDirAll() unexpected error: %v", err)
		}
		if ok, _ := Exists(root); ok {
			t.Error("DeleteDirAll() left the tree in place")
		}
	})

	t.Run("Nonexistent path is a no-op", func(t *testing.T) {
		if err := DeleteDirAll(filepath.Join(dir, "missing")); err != nil {
			t.Errorf("DeleteDirAll(missing) = %v, want nil", err)
		}
	})

	t.Run("Empty path is a no-op", func(t *testing.T) {
		if err := DeleteDirAll(""); err != nil {
			t.Errorf("DeleteDirAll(\"\") = %v, want nil", err)
		}
	})
}

// ===============================
// File Info and Listing Tests
// ===============================

func TestGetFileInfo(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "info.txt", "12345")

	info, err := GetFileInfo(file)
	if err != nil {
		t.Fatalf("GetFileInfo() unexpected error: %v", err)
	}
	if info.Name != "info.txt" {
		t.Errorf("Name = %q, want info.txt", info.Name)
	}
	if info.Size != 5 {
		t.Errorf("Size = %d, want 5", info.Size)
	}
	if info.IsDir {
		t.Error("IsDir = true for a regular file")
	}
	if info.Ext != ".txt" {
		t.Errorf("Ext = %q, want .txt", info.Ext)
	}
	if !filepath.IsAbs(info.Path) {
		t.Errorf("Path = %q, want absolute", info.Path)
	}

	if _, err := GetFileInfo(filepath.Join(dir, "missing")); err == nil {
		t.Error("GetFileInfo(missing) expected error, got nil")
	}
}

func TestListings(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "one.txt", "1")
	writeTestFile(t, dir, "two.log", "22")
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("creating subdirectory: %v", err)
	}

	t.Run("ListDir", func(t *testing.T) {
		entries, err := ListDir(dir)
		if err != nil {
			t.Fatalf("ListDir() unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Errorf("ListDir() = %d entries, want 3", len(entries))
		}
	})

	t.Run("ListFiles", func(t *testing.T) {
		files, err := ListFiles(dir)
		if err != nil {
			t.Fatalf("ListFiles() unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("ListFiles() = %d entries, want 2", len(files))
		}
		for _, f := range files {
			if f.IsDir {
				t.Errorf("ListFiles() returned directory %s", f.Name)
			}
		}
	})

	t.Run("ListDirs", func(t *testing.T) {
		dirs, err := ListDirs(dir)
		if err != nil {
			t.Fatalf("ListDirs() unexpected error: %v", err)
		}
		if len(dirs) != 1 || dirs[0].Name != "subdir" {
			t.Errorf("ListDirs() = %v, want [subdir]", dirs)
		}
	})

	t.Run("Missing directory", func(t *testing.T) {
		if _, err := ListDir(filepath.Join(dir, "missing")); err == nil {
			t.Error("ListDir(missing) expected error, got nil")
		}
	})
}

// File: glob.go
// Title: Recursive Glob Matching
// Description: Implements recursive pattern matching over a directory
//              tree using doublestar patterns against slash-separated
//              paths relative to the root.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-14
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-14 v0.1.0: Initial implementation

package filex

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/msto63/dkit/core/errors"
)

// Glob returns the entries under root whose root-relative slash path
// matches pattern. Patterns support doublestar's ** syntax, so
// "**/*.txt" matches text files at any depth. Matches keep the
// platform path form joined onto root; the root itself is never a match.
func Glob(root, pattern string) ([]string, error) {
	if root == "" {
		return nil, errors.InvalidInput("filex", "glob", root, "non-empty root")
	}
	if pattern == "" {
		return nil, errors.InvalidInput("filex", "glob", pattern, "non-empty pattern")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.InvalidInput("filex", "glob", pattern, "valid glob pattern")
	}

	var matches []string
	err := filepath.Walk(root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		matched, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FilexNotFound(root)
		}
		return nil, errors.FilexIOError("glob", root, err)
	}
	return matches, nil
}

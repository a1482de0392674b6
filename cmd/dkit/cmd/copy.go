// File: copy.go
// Title: Copy and Move Commands
// Description: Implements the copy and move subcommands with optional
//              glob expansion and progress reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-20
// Modified: 2025-03-20
//
// Change History:
// - 2025-03-20 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/dkit/core/errors"
	"github.com/msto63/dkit/core/log"
	"github.com/msto63/dkit/utils/filex"
	"github.com/msto63/dkit/utils/slicex"
	"github.com/msto63/dkit/utils/timex"
)

var (
	globPattern string
	noProgress  bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <source>... <destination>",
	Short: "Copy files with progress reporting",
	Long: `Copies one or more files. With a single source and a destination
that is not an existing directory, the destination names the target
file; otherwise sources are copied into the destination directory.

The --glob flag treats each source as a directory root and expands the
pattern beneath it:

  dkit copy --glob '**/*.log' /var/app /tmp/logs`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(args, false)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <source>... <destination>",
	Short: "Move files with progress reporting",
	Long: `Moves one or more files. Within a filesystem this is a rename;
across filesystems content is copied and the source removed. Glob
expansion and destination handling follow the copy command.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(args, true)
	},
}

func init() {
	for _, c := range []*cobra.Command{copyCmd, moveCmd} {
		c.Flags().StringVar(&globPattern, "glob", "", "Expand sources as directory roots with this pattern")
		c.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	}
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(moveCmd)
}

func runTransfer(args []string, move bool) error {
	sources, dest := args[:len(args)-1], args[len(args)-1]

	verb := "copy"
	if move {
		verb = "move"
	}

	if globPattern != "" {
		expanded, err := expandSources(sources, globPattern)
		if err != nil {
			return err
		}
		sources = expanded
	}

	if len(sources) == 0 {
		return errors.InvalidInput("cli", verb, globPattern, "at least one matching source file")
	}

	renderer := newProgressRenderer(os.Stderr, isTerminalFile(os.Stderr))
	var listener filex.ProgressListener
	if !quiet && !noProgress {
		listener = renderer.listener()
	}

	logger.Debug("starting transfer", log.Fields{
		"verb":    verb,
		"sources": len(sources),
		"dest":    dest,
	})

	started := time.Now()
	err := transfer(sources, dest, move, listener)
	renderer.done()
	if err != nil {
		return err
	}

	elapsed := timex.FormatDuration(time.Since(started))
	if !quiet {
		fmt.Printf("%s: %d file(s) in %s\n", verb, len(sources), elapsed)
	}
	logger.Debug("transfer complete", log.Fields{
		"verb":    verb,
		"files":   len(sources),
		"elapsed": elapsed,
	})
	return nil
}

// transfer picks the single-file form when one source targets a path
// that is not an existing directory
func transfer(sources []string, dest string, move bool, listener filex.ProgressListener) error {
	destDir, err := filex.IsDir(dest)
	if err != nil {
		return err
	}

	if len(sources) == 1 && !destDir {
		if move {
			return filex.MoveFile(sources[0], dest, listener)
		}
		return filex.CopyFile(sources[0], dest, listener)
	}

	if move {
		return filex.MoveFiles(sources, dest, listener)
	}
	return filex.CopyFiles(sources, dest, listener)
}

// expandSources resolves each root against the pattern, keeping only
// regular files and deduplicating across overlapping roots
func expandSources(roots []string, pattern string) ([]string, error) {
	var expanded []string
	for _, root := range roots {
		matches, err := filex.Glob(root, pattern)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, matches...)
	}

	expanded = slicex.Unique(expanded)

	files := expanded[:0]
	for _, path := range expanded {
		ok, err := filex.IsFile(path)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, path)
		}
	}
	return files, nil
}

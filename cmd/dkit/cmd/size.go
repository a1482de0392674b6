// File: size.go
// Title: Size Command
// Description: Implements the size subcommand reporting file and
//              directory sizes in human-readable or raw form.
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

	"github.com/spf13/cobra"

	"github.com/msto63/dkit/utils/filex"
)

var sizeBytes bool

var sizeCmd = &cobra.Command{
	Use:   "size <path>...",
	Short: "Show file or directory sizes",
	Long: `Shows the size of each path. Directories are sized recursively;
unreadable entries count as zero. Sizes print human-readable unless
--bytes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().BoolVarP(&sizeBytes, "bytes", "b", false, "Print raw byte counts")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	var total int64

	for _, path := range args {
		isDir, err := filex.IsDir(path)
		if err != nil {
			return err
		}

		var size int64
		if isDir {
			size = filex.DirSize(path)
		} else {
			size, err = filex.FileSize(path)
			if err != nil {
				return err
			}
		}
		total += size

		if err := printSize(size, path); err != nil {
			return err
		}
	}

	if len(args) > 1 {
		if err := printSize(total, "total"); err != nil {
			return err
		}
	}
	return nil
}

func printSize(size int64, label string) error {
	if sizeBytes {
		fmt.Printf("%d\t%s\n", size, label)
		return nil
	}

	human, err := filex.FormatBytes(size)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", human, label)
	return nil
}

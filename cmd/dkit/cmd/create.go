// File: create.go
// Title: Mkdir and Touch Commands
// Description: Implements the mkdir and touch subcommands for
//              idempotent directory and file creation.
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

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>...",
	Short: "Create directories, parents included",
	Long: `Creates each directory along with missing parents. Existing
directories are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			created, err := filex.CreateDirectory(path)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Println(created)
			}
		}
		return nil
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <path>...",
	Short: "Create empty files, parents included",
	Long: `Creates each file along with missing parent directories.
Existing files keep their content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			created, err := filex.CreateFile(path)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Println(created)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(touchCmd)
}

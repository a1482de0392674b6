// File: hash.go
// Title: Hash Command
// Description: Implements the hash subcommand computing file checksums
//              with a selectable algorithm.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/dkit/utils/filex"
)

var hashAlgo string

var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Compute file checksums",
	Long: `Computes a checksum for each file and prints it in the
digest-then-path form used by the coreutils hash tools. Supported
algorithms are md5, sha256, and xxh64; the default comes from the
hash.algo config key and falls back to sha256.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().StringVarP(&hashAlgo, "algo", "a", "sha256", "Checksum algorithm: md5, sha256, or xxh64")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	// Flag wins; the config key supplies the default when unset
	if !cmd.Flags().Changed("algo") {
		hashAlgo = cfg.GetString("hash.algo", hashAlgo)
	}
	algo := filex.ChecksumAlgo(strings.ToLower(hashAlgo))

	for _, path := range args {
		digest, err := filex.Checksum(path, algo)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", digest, path)
	}
	return nil
}

// File: main.go
// Title: dkit CLI Entry Point
// Description: Starts the dkit command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-20
// Modified: 2025-03-20
//
// Change History:
// - 2025-03-20 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/dkit/cmd/dkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the listicle CLI: a single-user tool that keeps
// arbitrary-schema collections as human-readable Markdown files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

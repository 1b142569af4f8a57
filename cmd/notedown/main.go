// Package main provides the notedown CLI.
package main

import (
	"os"

	"github.com/notedown-dev/notedown/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the dictlint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/dictlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the keyframe CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/keyframe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

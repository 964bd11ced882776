package main

import (
	"os"

	"github.com/minbar-labs/minbar-cli/internal/adapters/driving/cli"
)

// version is injected at build time via -ldflags.
var version = ""

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/canon-labs/scriptura-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/kcaldas/shellfolio/cmd/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with error code
		os.Exit(1)
	}
}

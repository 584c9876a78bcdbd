package main

import (
	"os"

	"github.com/safar/go-catalog-store/cmd/catalog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}

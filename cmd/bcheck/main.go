package main

import (
	"os"

	"github.com/bcheck-dev/bcheck/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

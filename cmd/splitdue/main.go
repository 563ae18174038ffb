package main

import (
	"os"

	"github.com/splitdue-dev/splitdue/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

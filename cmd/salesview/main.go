package main

import (
	"os"

	"github.com/salesview-dev/salesview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/campusfin-dev/campusfin/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

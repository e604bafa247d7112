package main

import (
	"os"

	"frost-depth/cmd/frostdepth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

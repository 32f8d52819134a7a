package main

import (
	"os"

	"wgvanity/cmd/wgvanity/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

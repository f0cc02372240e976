package main

import (
	"os"

	"github.com/hrpower/meetreport/cmd/meetreport/commands"
)

// main is the entry point for the meetreport CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

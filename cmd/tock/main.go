package main

import (
	"fmt"
	"os"

	"github.com/dyluth/tock/cmd/tock/commands"
	"github.com/dyluth/tock/internal/printer"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors from the printer package are already on stderr
	if err := commands.Execute(); err != nil {
		if !printer.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

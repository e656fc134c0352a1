package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/taskdocs/internal"
	"github.com/valter-silva-au/taskdocs/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	app.Wire()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

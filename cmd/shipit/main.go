package main

import (
	"errors"
	"os"

	"shipit.dev/shipit/internal/cli"
	shipiterrors "shipit.dev/shipit/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Check for passthrough commands before processing with cobra
	if cli.HandlePassthrough(os.Args) {
		return // HandlePassthrough already exited
	}

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Inherit the exit code of the git command that decided the outcome.
		var cmdErr *shipiterrors.GitCommandError
		if errors.As(err, &cmdErr) {
			os.Exit(cmdErr.ExitCode())
		}
		os.Exit(1)
	}
}

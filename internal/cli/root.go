// Package cli wires the cobra command tree for the shipit binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &shipFlags{}

	rootCmd := &cobra.Command{
		Use:   "shipit [message]",
		Short: "Shipit stages, commits, rebase-pulls and pushes your work in one command",
		Long: `Shipit automates the save-everything-and-push loop: it reports status,
stages all changes, commits them, pulls the remote branch with rebase,
pushes, and falls back to a force push when the push is rejected.

Run it with an optional commit message; without one, the configured
placeholder message is used.`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE:    runShip(flags),

		// Runtime failures print the git error, not the usage text.
		SilenceUsage: true,
	}

	addShipFlags(rootCmd, flags)

	// Add subcommands
	rootCmd.AddCommand(newShipCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/ship"
	"shipit.dev/shipit/internal/tui"
)

// shipFlags holds the flags shared by the root command and `shipit ship`
type shipFlags struct {
	message string
	remote  string
	branch  string
	force   bool
	noForce bool
	dryRun  bool
	quiet   bool
	prompt  bool
}

func addShipFlags(cmd *cobra.Command, f *shipFlags) {
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "Commit message (default: configured placeholder)")
	cmd.Flags().StringVar(&f.remote, "remote", "", "Remote to pull from and push to (default: configured remote)")
	cmd.Flags().StringVar(&f.branch, "branch", "", "Branch to ship (default: configured branch)")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Force push without asking when the push is rejected")
	cmd.Flags().BoolVar(&f.noForce, "no-force", false, "Never force push")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Print the sequence without running it")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().BoolVarP(&f.prompt, "prompt", "p", false, "Ask for the commit message before running")
}

// runShip builds the RunE function for the ship sequence
func runShip(f *shipFlags) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, args []string) error {
		ctx, err := runtime.GetContext()
		if err != nil {
			return err
		}
		defer ctx.Splog.Close()

		message := f.message
		if message == "" && len(args) > 0 {
			message = args[0]
		}
		if message == "" && f.prompt {
			placeholder, err := config.GetDefaultMessage(ctx.RepoRoot)
			if err != nil {
				return err
			}
			message, err = tui.PromptCommitMessage(placeholder)
			if err != nil {
				return err
			}
		}

		forceMode := ""
		switch {
		case f.force && f.noForce:
			return errFlagConflict
		case f.force:
			forceMode = config.ForceFallbackAuto
		case f.noForce:
			forceMode = config.ForceFallbackNever
		}

		opts := ship.Options{
			Message:   message,
			Remote:    f.remote,
			Branch:    f.branch,
			ForceMode: forceMode,
			DryRun:    f.dryRun,
		}

		if f.quiet {
			ctx.Splog.SetQuiet(true)
			opts.UI = tui.NewSimpleShipUI(ctx.Splog)
		}

		return ship.Action(ctx, opts)
	}
}

// newShipCmd creates the explicit ship command (same behavior as the bare root)
func newShipCmd() *cobra.Command {
	flags := &shipFlags{}

	cmd := &cobra.Command{
		Use:   "ship [message]",
		Short: "Stage, commit, rebase-pull and push in one go",
		Long: `Runs the fixed sequence: status, add -A, commit, pull --rebase, push.
If the push is rejected, retries with --force according to the configured
fallback policy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShip(flags),
	}

	addShipFlags(cmd, flags)

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		remote        string
		branch        string
		message       string
		forceFallback string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the shipit config for this repository",
		Long: `Writes .git/.shipit_config with the remote, branch, default commit
message and force-push fallback policy used by the ship sequence.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			if branch == "" {
				// Default to the branch that is checked out right now.
				if current, err := ctx.Runner.GetCurrentBranch(); err == nil {
					branch = current
				} else {
					branch = config.DefaultBranch
				}
			}

			cfg := &config.RepoConfig{
				Remote:         &remote,
				Branch:         &branch,
				DefaultMessage: &message,
				ForceFallback:  &forceFallback,
			}
			if err := config.WriteRepoConfig(ctx.RepoRoot, cfg); err != nil {
				return err
			}

			ctx.Splog.Info("Initialized shipit: remote=%s branch=%s forceFallback=%s", remote, branch, forceFallback)
			ctx.Splog.Tip("Run 'shipit' to stage, commit, pull --rebase and push in one go.")
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", config.DefaultRemote, "Remote to ship to")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to ship (default: current branch)")
	cmd.Flags().StringVarP(&message, "message", "m", config.DefaultMessage, "Default commit message")
	cmd.Flags().StringVar(&forceFallback, "force-fallback", config.DefaultForceFallback, "Force push policy after a rejected push: auto, prompt or never")

	return cmd
}

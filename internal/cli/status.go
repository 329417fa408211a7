package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/runtime"
)

var errFlagConflict = errors.New("--force and --no-force are mutually exclusive")

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the working tree",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			summary, err := ctx.Runner.Status(context.Background())
			if err != nil {
				return err
			}

			splog := ctx.Splog
			splog.Info("On branch %s", output.ColorBranchName(summary.Branch))

			if summary.Clean() {
				splog.Info("Working tree clean")
				return nil
			}

			for _, entry := range summary.Entries {
				splog.Info("  %s %s", output.ColorStatusCode(entry.Code), entry.Path)
			}
			splog.Newline()
			splog.Info("%d staged, %d unstaged, %d untracked",
				summary.Staged, summary.Unstaged, summary.Untracked)
			return nil
		},
	}

	return cmd
}

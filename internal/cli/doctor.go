package cli

import (
	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/doctor"
	"shipit.dev/shipit/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var skipGitHub bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that git, the remote and GitHub access are set up",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return doctor.Action(ctx, doctor.Options{
				SkipGitHub: skipGitHub,
			})
		},
	}

	cmd.Flags().BoolVar(&skipGitHub, "skip-github", false, "Skip the GitHub API checks")

	return cmd
}

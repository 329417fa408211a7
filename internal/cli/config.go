package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/runtime"
)

var configKeys = []string{"remote", "branch", "defaultMessage", "forceFallback"}

// newConfigCmd creates the config command with get/set subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get or set shipit configuration for this repository",
	}

	getCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Print a config value, or all values when no key is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			keys := configKeys
			if len(args) == 1 {
				keys = args[:1]
			}

			for _, key := range keys {
				value, err := config.GetKey(ctx.RepoRoot, key)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					ctx.Splog.Info("%s", value)
				} else {
					ctx.Splog.Info("%s = %s", key, value)
				}
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if !contains(configKeys, key) {
				return fmt.Errorf("unknown config key %q (known keys: %v)", key, configKeys)
			}
			if err := config.SetKey(ctx.RepoRoot, key, value); err != nil {
				return err
			}
			ctx.Splog.Info("%s = %s", key, value)
			return nil
		},
	}

	cmd.AddCommand(getCmd)
	cmd.AddCommand(setCmd)

	return cmd
}

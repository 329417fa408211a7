package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	root := NewRootCmd("1.2.3", "abc1234", "2026-01-01")

	t.Run("registers every subcommand", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"ship", "status", "init", "config", "doctor"} {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		}
	})

	t.Run("accepts at most one positional message", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, root.Args(root, []string{"a message"}))
		require.Error(t, root.Args(root, []string{"one", "two"}))
	})

	t.Run("carries the ship flags on the root", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"message", "remote", "branch", "force", "no-force", "dry-run", "quiet", "prompt"} {
			assert.NotNil(t, root.Flags().Lookup(name), "flag %s", name)
		}
	})

	t.Run("embeds the build info in the version", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, root.Version, "1.2.3")
		assert.Contains(t, root.Version, "abc1234")
	})
}

func TestShipCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := newShipCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-m", "fix things", "--remote", "upstream", "--force"}))

	message, err := cmd.Flags().GetString("message")
	require.NoError(t, err)
	assert.Equal(t, "fix things", message)

	remote, err := cmd.Flags().GetString("remote")
	require.NoError(t, err)
	assert.Equal(t, "upstream", remote)

	force, err := cmd.Flags().GetBool("force")
	require.NoError(t, err)
	assert.True(t, force)
}

func TestHandlePassthrough(t *testing.T) {
	t.Parallel()

	// Matching commands exec git and exit the process, so only the
	// non-matching paths are exercised here.
	t.Run("ignores shipit's own subcommands", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"ship", "status", "init", "config", "doctor"} {
			assert.False(t, HandlePassthrough([]string{"shipit", name}), "command %s", name)
		}
	})

	t.Run("ignores bare invocations", func(t *testing.T) {
		t.Parallel()
		assert.False(t, HandlePassthrough([]string{"shipit"}))
	})

	t.Run("ignores unknown commands", func(t *testing.T) {
		t.Parallel()
		assert.False(t, HandlePassthrough([]string{"shipit", "frobnicate"}))
	})

	t.Run("ignores flags", func(t *testing.T) {
		t.Parallel()
		assert.False(t, HandlePassthrough([]string{"shipit", "--version"}))
	})
}

func TestGitCommandAllowlist(t *testing.T) {
	t.Parallel()

	// shipit owns these names; passing them through would shadow its
	// own subcommands.
	for _, name := range []string{"status", "init", "config"} {
		assert.False(t, contains(gitCommandAllowlist, name), "command %s", name)
	}

	assert.True(t, contains(gitCommandAllowlist, "rebase"))
	assert.True(t, contains(gitCommandAllowlist, "stash"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newRepoRoot creates a directory shaped like a repository root, with a
// .git directory for the config file to live in.
func newRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	return root
}

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.False(t, IsInitialized(root))

		remote, err := GetRemote(root)
		require.NoError(t, err)
		require.Equal(t, DefaultRemote, remote)

		branch, err := GetBranch(root)
		require.NoError(t, err)
		require.Equal(t, DefaultBranch, branch)

		message, err := GetDefaultMessage(root)
		require.NoError(t, err)
		require.Equal(t, DefaultMessage, message)

		fallback, err := GetForceFallback(root)
		require.NoError(t, err)
		require.Equal(t, ForceFallbackAuto, fallback)
	})

	t.Run("written config is read back", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		remote := "upstream"
		branch := "trunk"
		require.NoError(t, WriteRepoConfig(root, &RepoConfig{
			Remote: &remote,
			Branch: &branch,
		}))
		require.True(t, IsInitialized(root))

		config, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "upstream", *config.Remote)
		require.Equal(t, "trunk", *config.Branch)
		require.Nil(t, config.DefaultMessage)
	})

	t.Run("corrupt file returns an error", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		path := filepath.Join(root, ".git", ".shipit_config")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

		_, err := GetRepoConfig(root)
		require.Error(t, err)
	})
}

func TestSetKey(t *testing.T) {
	t.Parallel()

	t.Run("round trips each key", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.NoError(t, SetKey(root, "remote", "upstream"))
		require.NoError(t, SetKey(root, "branch", "trunk"))
		require.NoError(t, SetKey(root, "defaultMessage", "wip"))
		require.NoError(t, SetKey(root, "forceFallback", ForceFallbackNever))

		for key, want := range map[string]string{
			"remote":         "upstream",
			"branch":         "trunk",
			"defaultMessage": "wip",
			"forceFallback":  ForceFallbackNever,
		} {
			got, err := GetKey(root, key)
			require.NoError(t, err)
			require.Equal(t, want, got, "key %s", key)
		}
	})

	t.Run("later sets preserve earlier keys", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.NoError(t, SetKey(root, "remote", "upstream"))
		require.NoError(t, SetKey(root, "branch", "trunk"))

		remote, err := GetRemote(root)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)
	})

	t.Run("rejects invalid force fallback values", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		err := SetKey(root, "forceFallback", "sometimes")
		require.ErrorContains(t, err, "invalid forceFallback")
		require.False(t, IsInitialized(root))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()
		root := newRepoRoot(t)

		require.ErrorContains(t, SetKey(root, "color", "red"), "unknown config key")

		_, err := GetKey(root, "color")
		require.ErrorContains(t, err, "unknown config key")
	})
}

func TestGetForceFallback(t *testing.T) {
	t.Parallel()

	root := newRepoRoot(t)
	bogus := "always"
	require.NoError(t, WriteRepoConfig(root, &RepoConfig{ForceFallback: &bogus}))

	_, err := GetForceFallback(root)
	require.ErrorContains(t, err, "invalid forceFallback")
}

package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/testhelpers"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	t.Run("parses branch and entries", func(t *testing.T) {
		t.Parallel()
		output := "## main...origin/main [ahead 1]\n M changed.txt\nA  staged.txt\n?? new.txt\n"
		summary := parseStatus(output)

		require.Equal(t, "main", summary.Branch)
		require.Len(t, summary.Entries, 3)
		require.Equal(t, 1, summary.Staged)
		require.Equal(t, 1, summary.Unstaged)
		require.Equal(t, 1, summary.Untracked)
		require.False(t, summary.Clean())
	})

	t.Run("clean tree", func(t *testing.T) {
		t.Parallel()
		summary := parseStatus("## main\n")
		require.Equal(t, "main", summary.Branch)
		require.True(t, summary.Clean())
	})

	t.Run("branch without upstream", func(t *testing.T) {
		t.Parallel()
		summary := parseStatus("## feature/x\n?? a.txt\n")
		require.Equal(t, "feature/x", summary.Branch)
		require.Equal(t, 1, summary.Untracked)
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()

	repo := testhelpers.Must(testhelpers.NewGitRepo(t.TempDir()))
	require.NoError(t, repo.CreateChangeAndCommit("base.txt", "base"))
	runner := NewCommandRunner(repo.Dir)

	summary, err := runner.Status(context.Background())
	require.NoError(t, err)
	require.True(t, summary.Clean())
	require.Equal(t, "main", summary.Branch)

	require.NoError(t, repo.CreateChange("untracked.txt", "hello"))

	summary, err = runner.Status(context.Background())
	require.NoError(t, err)
	require.False(t, summary.Clean())
	require.Equal(t, 1, summary.Untracked)
}

package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/testhelpers"
)

func TestPush(t *testing.T) {
	t.Parallel()

	t.Run("pushes new commits to the remote", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)

		require.NoError(t, fixture.Repo.CreateChangeAndCommit("a.txt", "local change"))
		require.NoError(t, runner.Push(context.Background(), "origin", "main", false))
		testhelpers.ExpectRemoteInSync(t, fixture, "main")
	})

	t.Run("diverged remote rejects the push", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)

		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChangeAndCommit("theirs.txt", "their change"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChangeAndCommit("ours.txt", "our change"))

		err := runner.Push(context.Background(), "origin", "main", false)
		require.ErrorIs(t, err, shipiterrors.ErrPushRejected)
	})

	t.Run("force push overwrites the diverged remote", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)

		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChangeAndCommit("theirs.txt", "their change"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChangeAndCommit("ours.txt", "our change"))

		require.NoError(t, runner.Push(context.Background(), "origin", "main", true))
		testhelpers.ExpectRemoteInSync(t, fixture, "main")
	})
}

func TestPullRebase(t *testing.T) {
	t.Parallel()

	t.Run("rebases local commits onto the remote", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)

		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChangeAndCommit("theirs.txt", "their change"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChangeAndCommit("ours.txt", "our change"))

		require.NoError(t, runner.PullRebase(context.Background(), "origin", "main"))

		// Local history now contains both commits with ours on top.
		testhelpers.ExpectLastCommitMessage(t, fixture.Repo, "our change")
		log, err := fixture.Repo.RunGitCommandAndGetOutput("log", "--pretty=%s")
		require.NoError(t, err)
		require.Contains(t, log, "their change")
	})

	t.Run("no-op when already up to date", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)

		require.NoError(t, runner.PullRebase(context.Background(), "origin", "main"))
	})

	t.Run("conflicting histories report a rebase conflict", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		runner := NewCommandRunner(fixture.Repo.Dir)
		ctx := context.Background()

		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChange("shared.txt", "their version"))
		require.NoError(t, clone.RunGitCommand("add", "-A"))
		require.NoError(t, clone.RunGitCommand("commit", "-m", "their edit"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChange("shared.txt", "our version"))
		require.NoError(t, fixture.Repo.RunGitCommand("add", "-A"))
		require.NoError(t, fixture.Repo.RunGitCommand("commit", "-m", "our edit"))

		err := runner.PullRebase(ctx, "origin", "main")
		require.ErrorIs(t, err, shipiterrors.ErrRebaseConflict)
		require.True(t, runner.IsRebaseInProgress(ctx))

		require.NoError(t, runner.RebaseAbort(ctx))
		require.False(t, runner.IsRebaseInProgress(ctx))
	})
}

func TestHasRemoteBranch(t *testing.T) {
	fixture := testhelpers.NewGitRepoWithRemote(t)
	SetWorkingDir(fixture.Repo.Dir)
	t.Cleanup(func() { SetWorkingDir("") })

	exists, err := HasRemoteBranch(context.Background(), "origin", "main")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = HasRemoteBranch(context.Background(), "origin", "does-not-exist")
	require.NoError(t, err)
	require.False(t, exists)
}

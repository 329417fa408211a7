package ship

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/testhelpers"
)

func newRepoContext(t *testing.T, fixture *testhelpers.RemoteFixture) *runtime.Context {
	t.Helper()

	ctx := runtime.NewContext(git.NewRealRunnerWithDir(fixture.Repo.Dir))
	ctx.RepoRoot = fixture.Repo.Dir
	ctx.Splog.SetQuiet(true)
	return ctx
}

func TestShipAgainstRealRemote(t *testing.T) {
	t.Parallel()

	t.Run("commits and pushes local changes", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		ctx := newRepoContext(t, fixture)

		require.NoError(t, fixture.Repo.CreateChange("notes.txt", "remember the milk"))

		opts := silentOptions(ctx.Splog)
		opts.Message = "add notes"
		err := Action(ctx, opts)
		require.NoError(t, err)

		testhelpers.ExpectCleanWorkingTree(t, fixture.Repo)
		testhelpers.ExpectLastCommitMessage(t, fixture.Repo, "add notes")
		testhelpers.ExpectRemoteInSync(t, fixture, "main")
	})

	t.Run("uses the placeholder message when none is given", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		ctx := newRepoContext(t, fixture)

		require.NoError(t, fixture.Repo.CreateChange("todo.txt", "ship it"))

		err := Action(ctx, silentOptions(ctx.Splog))
		require.NoError(t, err)
		testhelpers.ExpectLastCommitMessage(t, fixture.Repo, config.DefaultMessage)
	})

	t.Run("rebases onto a collaborator's push before pushing", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		ctx := newRepoContext(t, fixture)

		// A collaborator pushes a non-conflicting change first.
		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChangeAndCommit("theirs.txt", "their change"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChange("ours.txt", "our change"))

		opts := silentOptions(ctx.Splog)
		opts.Message = "our change"
		err := Action(ctx, opts)
		require.NoError(t, err)

		// Both commits must be on the remote, ours rebased on top.
		testhelpers.ExpectRemoteInSync(t, fixture, "main")
		testhelpers.ExpectLastCommitMessage(t, fixture.Repo, "our change")

		out, err := fixture.Repo.RunGitCommandAndGetOutput("log", "--pretty=%s")
		require.NoError(t, err)
		require.Contains(t, out, "their change")
	})

	t.Run("force pushes when rebase conflicts leave the push rejected", func(t *testing.T) {
		t.Parallel()
		fixture := testhelpers.NewGitRepoWithRemote(t)
		ctx := newRepoContext(t, fixture)

		// Collaborator and local both rewrite the same file so the
		// rebase pull stops on a conflict and the push stays rejected.
		clone := fixture.CloneWorkingCopy(t)
		require.NoError(t, clone.CreateChange("shared.txt", "their version"))
		require.NoError(t, clone.RunGitCommand("add", "-A"))
		require.NoError(t, clone.RunGitCommand("commit", "-m", "their edit"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, fixture.Repo.CreateChange("shared.txt", "our version"))

		opts := silentOptions(ctx.Splog)
		opts.Message = "our edit"
		opts.ForceMode = config.ForceFallbackAuto
		err := Action(ctx, opts)
		require.NoError(t, err)

		// The remote branch must now match the local main ref.
		localSHA, err := fixture.Repo.RunGitCommandAndGetOutput("rev-parse", "refs/heads/main")
		require.NoError(t, err)
		remoteSHA, err := fixture.RemoteHeadSHA("main")
		require.NoError(t, err)
		require.Equal(t, localSHA, remoteSHA)
	})
}

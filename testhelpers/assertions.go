package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCleanWorkingTree asserts that the repository has no uncommitted changes.
func ExpectCleanWorkingTree(t *testing.T, repo *GitRepo) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err, "Failed to get status")
	require.Empty(t, output, "Working tree is not clean")
}

// ExpectLastCommitMessage asserts the subject of the most recent commit.
func ExpectLastCommitMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	message, err := repo.LastCommitMessage()
	require.NoError(t, err, "Failed to read last commit message")
	require.Equal(t, expected, message)
}

// ExpectRemoteInSync asserts that the remote branch points at the local HEAD.
func ExpectRemoteInSync(t *testing.T, fixture *RemoteFixture, branch string) {
	t.Helper()

	localSHA, err := fixture.Repo.HeadSHA()
	require.NoError(t, err, "Failed to get local HEAD")
	remoteSHA, err := fixture.RemoteHeadSHA(branch)
	require.NoError(t, err, "Failed to get remote HEAD")
	require.Equal(t, localSHA, remoteSHA, "Remote %s is not in sync with local HEAD", branch)
}

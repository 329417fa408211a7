package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushRejectedError(t *testing.T) {
	t.Parallel()

	inner := errors.New("non-fast-forward")
	err := NewPushRejectedError("origin", "main", inner)

	require.ErrorIs(t, err, ErrPushRejected)
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "origin")
	require.Contains(t, err.Error(), "main")
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	t.Run("message includes stderr and stdout", func(t *testing.T) {
		t.Parallel()
		err := NewGitCommandError("git", []string{"push"}, "out", "err", errors.New("exit status 1"))
		require.Contains(t, err.Error(), "stderr: err")
		require.Contains(t, err.Error(), "stdout: out")
	})

	t.Run("exit code defaults to 1 without an ExitError", func(t *testing.T) {
		t.Parallel()
		err := NewGitCommandError("git", nil, "", "", errors.New("not started"))
		require.Equal(t, 1, err.ExitCode())
	})
}

package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// PullRebase fetches the remote branch and rebases local commits on top of it
func (r *CommandRunner) PullRebase(ctx context.Context, remote, branch string) error {
	_, err := r.Run(ctx, "pull", "--rebase", remote, branch)
	if err != nil {
		if r.IsRebaseInProgress(ctx) {
			// Leave the repository as git left it so the user can resolve
			// or abort; the caller decides whether to continue.
			return fmt.Errorf("%w: pull --rebase %s %s stopped on conflicts", shipiterrors.ErrRebaseConflict, remote, branch)
		}
		if isRebaseConflict(err) {
			return fmt.Errorf("%w: %s", shipiterrors.ErrRebaseConflict, conflictDetail(err))
		}
		return fmt.Errorf("failed to pull --rebase from %s/%s: %w", remote, branch, err)
	}
	return nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func (r *CommandRunner) IsRebaseInProgress(ctx context.Context) bool {
	// Check for .git/rebase-merge or .git/rebase-apply directories.
	// This is more reliable than checking REBASE_HEAD which can persist after rebase.
	gitDir, err := r.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}
	if _, err := os.Stat(gitDir + "/rebase-merge"); err == nil {
		return true
	}
	if _, err := os.Stat(gitDir + "/rebase-apply"); err == nil {
		return true
	}
	return false
}

// RebaseAbort aborts an in-progress rebase
func (r *CommandRunner) RebaseAbort(ctx context.Context) error {
	_, err := r.Run(ctx, "rebase", "--abort")
	if err != nil {
		return fmt.Errorf("failed to abort rebase: %w", err)
	}
	return nil
}

func isRebaseConflict(err error) bool {
	var cmdErr *shipiterrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	combined := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(combined, "CONFLICT") ||
		strings.Contains(combined, "could not apply")
}

func conflictDetail(err error) string {
	var cmdErr *shipiterrors.GitCommandError
	if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
		return strings.TrimSpace(cmdErr.Stderr)
	}
	return err.Error()
}

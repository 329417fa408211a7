package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// CommitOptions contains options for creating a commit
type CommitOptions struct {
	Message    string
	Amend      bool
	NoEdit     bool
	AllowEmpty bool
}

// Commit creates a commit with the given message. The message is passed
// verbatim to git.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	return r.CommitWithOptions(ctx, CommitOptions{Message: message})
}

// CommitWithOptions creates a commit with the given options
func (r *CommandRunner) CommitWithOptions(ctx context.Context, opts CommitOptions) error {
	args := []string{"commit"}

	if opts.Amend {
		args = append(args, "--amend")
	}
	if opts.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	if opts.NoEdit {
		args = append(args, "--no-edit")
	}

	_, err := r.Run(ctx, args...)
	if err != nil {
		if isNothingToCommit(err) {
			return fmt.Errorf("%w: %s", shipiterrors.ErrNothingToCommit, opts.Message)
		}
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// isNothingToCommit reports whether the commit failed because the index was clean
func isNothingToCommit(err error) bool {
	var cmdErr *shipiterrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	combined := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(combined, "nothing to commit") ||
		strings.Contains(combined, "nothing added to commit")
}

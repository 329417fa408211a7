package git

import (
	"context"
	"errors"
	"strings"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// Push pushes a branch to the remote.
// If force is true, uses --force (overwrites the remote branch).
func (r *CommandRunner) Push(ctx context.Context, remote, branch string, force bool) error {
	args := []string{"push", "-u", remote}
	if force {
		args = append(args, "--force")
	}
	args = append(args, branch)

	_, err := r.Run(ctx, args...)
	if err != nil {
		if !force && isPushRejected(err) {
			return shipiterrors.NewPushRejectedError(remote, branch, err)
		}
		return err
	}
	return nil
}

// isPushRejected reports whether a push failed because the remote ref
// moved (non-fast-forward) rather than e.g. a network or auth failure.
func isPushRejected(err error) bool {
	var cmdErr *shipiterrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	combined := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(combined, "[rejected]") ||
		strings.Contains(combined, "non-fast-forward") ||
		strings.Contains(combined, "failed to push some refs") ||
		strings.Contains(combined, "fetch first")
}

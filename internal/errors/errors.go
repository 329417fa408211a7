// Package errors provides sentinel errors and custom error types for the shipit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrNothingToCommit indicates that the commit step had no staged changes
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrPushRejected indicates that the remote rejected a push
	ErrPushRejected = errors.New("push rejected")

	// ErrRebaseConflict indicates that the rebase pull stopped on a conflict
	ErrRebaseConflict = errors.New("rebase conflict")
)

// PushRejectedError represents a push that the remote refused
type PushRejectedError struct {
	Remote string
	Branch string
	Err    error
}

func (e *PushRejectedError) Error() string {
	return fmt.Sprintf("push of %s to %s rejected", e.Branch, e.Remote)
}

// Is returns true if the target error is ErrPushRejected
func (e *PushRejectedError) Is(target error) bool {
	return target == ErrPushRejected
}

func (e *PushRejectedError) Unwrap() error {
	return e.Err
}

// NewPushRejectedError creates a new PushRejectedError
func NewPushRejectedError(remote, branch string, err error) *PushRejectedError {
	return &PushRejectedError{Remote: remote, Branch: branch, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of the failed command, or 1 when the
// command did not run far enough to produce one.
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// SetWorkingDir sets the working directory for the default git runner.
func SetWorkingDir(dir string) {
	defaultRunner.workingDir = dir
}

// RunGitCommandInDir executes a git command in a specific directory and returns the output.
func RunGitCommandInDir(dir string, args ...string) (string, error) {
	runner := &CommandRunner{workingDir: dir}
	return runner.Run(context.Background(), args...)
}

// RunGitCommandWithContext executes a git command with the given context using the default runner.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.Run(ctx, args...)
}

// Run executes a git command with the given context and returns the output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// runInternal is the internal implementation that handles directory and trimming
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", shipiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", shipiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunGHCommandWithContext executes a gh command with the given context.
func RunGHCommandWithContext(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "gh", args...)
	if defaultRunner.workingDir != "" {
		cmd.Dir = defaultRunner.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", shipiterrors.NewGitCommandError("gh", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Runner defines the interface for git operations used by the ship action.
// This allows the action to be used with both real git and mock implementations.
type Runner interface {
	// Repository information
	GetRepoRoot() (string, error)
	GetCurrentBranch() (string, error)
	GetRemote() string

	// Ship sequence operations
	Status(ctx context.Context) (*StatusSummary, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	PullRebase(ctx context.Context, remote, branch string) error
	Push(ctx context.Context, remote, branch string, force bool) error
}

// NewRealRunnerWithDir returns a standard implementation of Runner that calls
// git in a specific directory.
func NewRealRunnerWithDir(dir string) Runner {
	return &realRunner{runner: &CommandRunner{workingDir: dir}}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct {
	runner *CommandRunner
}

func (r *realRunner) GetRepoRoot() (string, error) {
	return GetRepoRootIn(r.runner.workingDir)
}

func (r *realRunner) GetCurrentBranch() (string, error) {
	return r.runner.GetCurrentBranch(context.Background())
}

func (r *realRunner) GetRemote() string {
	return r.runner.GetRemote()
}

func (r *realRunner) Status(ctx context.Context) (*StatusSummary, error) {
	return r.runner.Status(ctx)
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return r.runner.StageAll(ctx)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return r.runner.Commit(ctx, message)
}

func (r *realRunner) PullRebase(ctx context.Context, remote, branch string) error {
	return r.runner.PullRebase(ctx, remote, branch)
}

func (r *realRunner) Push(ctx context.Context, remote, branch string, force bool) error {
	return r.runner.Push(ctx, remote, branch, force)
}

package git

import (
	"context"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository containing
// the current working directory
func GetRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return GetRepoRootIn(wd)
}

// GetRepoRootIn returns the root directory of the Git repository containing dir.
// Pass empty dir to use the current working directory.
func GetRepoRootIn(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", shipiterrors.ErrNotARepository, dir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// OpenRepository opens the go-git repository containing dir
func OpenRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", shipiterrors.ErrNotARepository, dir)
	}
	return repo, nil
}

// GetCurrentBranch returns the name of the currently checked-out branch
func (r *CommandRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.Run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("not on a branch (detached HEAD?): %w", err)
	}
	return branch, nil
}

// GitVersion returns the version string of the installed git binary
func GitVersion(ctx context.Context) (string, error) {
	return RunGitCommandWithContext(ctx, "--version")
}

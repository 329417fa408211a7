package git

import (
	"context"
	"fmt"
)

// GetRemote returns the remote configured for the current branch,
// falling back to "origin"
func (r *CommandRunner) GetRemote() string {
	ctx := context.Background()

	branch, err := r.GetCurrentBranch(ctx)
	if err == nil {
		remote, err := r.Run(ctx, "config", "--get", fmt.Sprintf("branch.%s.remote", branch))
		if err == nil && remote != "" {
			return remote
		}
	}

	return "origin"
}

// GetRemoteURL returns the fetch URL of the named remote, resolved
// through go-git so insteadOf rewrites are honored
func GetRemoteURL(dir, remote string) (string, error) {
	repo, err := OpenRepository(dir)
	if err != nil {
		return "", err
	}

	rem, err := repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("remote %q not configured: %w", remote, err)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", remote)
	}
	return urls[0], nil
}

// ListRemotes returns the names of all configured remotes
func ListRemotes(dir string) ([]string, error) {
	repo, err := OpenRepository(dir)
	if err != nil {
		return nil, err
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	names := make([]string, 0, len(remotes))
	for _, rem := range remotes {
		names = append(names, rem.Config().Name)
	}
	return names, nil
}

// HasRemoteBranch reports whether the remote advertises the given branch
func HasRemoteBranch(ctx context.Context, remote, branch string) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-remote", "--heads", remote, branch)
	if err != nil {
		return false, fmt.Errorf("failed to query remote %s: %w", remote, err)
	}
	return output != "", nil
}

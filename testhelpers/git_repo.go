// Package testhelpers provides testing utilities for the shipit CLI,
// including Git repository fixtures and custom assertions.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Initialize new repository with optimized config.
	// Use git -c flags to avoid reading global config and set local configs.
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewGitRepoFromURL clones a repository from a URL (or local path).
func NewGitRepoFromURL(dir string, repoURL string) (*GitRepo, error) {
	cmd := exec.Command("git", "clone", repoURL, dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// RemoteFixture is a working repository wired to a local bare remote named "origin".
type RemoteFixture struct {
	Repo    *GitRepo
	BareDir string
}

// NewGitRepoWithRemote creates a repo with an initial commit pushed to a
// local bare "origin" so push/pull operations work against a real remote.
func NewGitRepoWithRemote(t *testing.T) *RemoteFixture {
	t.Helper()

	root := t.TempDir()
	bareDir := filepath.Join(root, "origin.git")
	workDir := filepath.Join(root, "work")

	cmd := exec.Command("git", "init", "--bare", "-b", "main", bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}

	repo := Must(NewGitRepo(workDir))
	if err := repo.RunGitCommand("remote", "add", "origin", bareDir); err != nil {
		t.Fatalf("failed to add remote: %v", err)
	}
	if err := repo.CreateChangeAndCommit("initial", "initial commit"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}
	if err := repo.RunGitCommand("push", "-u", "origin", "main"); err != nil {
		t.Fatalf("failed to push initial commit: %v", err)
	}

	return &RemoteFixture{Repo: repo, BareDir: bareDir}
}

// CloneWorkingCopy clones another working copy of the fixture's remote,
// useful for simulating a collaborator pushing first.
func (f *RemoteFixture) CloneWorkingCopy(t *testing.T) *GitRepo {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "clone")
	repo, err := NewGitRepoFromURL(dir, f.BareDir)
	if err != nil {
		t.Fatalf("failed to clone working copy: %v", err)
	}
	return repo
}

// RunGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange writes content to a file without committing it.
func (r *GitRepo) CreateChange(fileName, content string) error {
	path := filepath.Join(r.Dir, fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content+"\n"), 0644)
}

// CreateChangeAndCommit writes a file, stages everything and commits.
func (r *GitRepo) CreateChangeAndCommit(fileName, message string) error {
	if err := r.CreateChange(fileName, fileName); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// LastCommitMessage returns the subject of the most recent commit.
func (r *GitRepo) LastCommitMessage() (string, error) {
	return r.RunGitCommandAndGetOutput("log", "-1", "--pretty=%s")
}

// HeadSHA returns the SHA of HEAD.
func (r *GitRepo) HeadSHA() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "HEAD")
}

// RemoteHeadSHA returns the SHA of the remote branch ref as seen by the remote itself.
func (f *RemoteFixture) RemoteHeadSHA(branch string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "refs/heads/"+branch)
	cmd.Dir = f.BareDir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

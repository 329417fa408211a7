// Package github provides a minimal client for the GitHub API, used to
// verify that the configured remote is reachable and authenticated.
package github

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"shipit.dev/shipit/internal/git"
)

// RepoInfo identifies a GitHub repository
type RepoInfo struct {
	Owner string
	Repo  string
}

// githubURLPattern matches https and ssh GitHub remote URLs
var githubURLPattern = regexp.MustCompile(`^(?:https://github\.com/|git@github\.com:)([^/]+)/(.+?)(?:\.git)?$`)

// ParseOwnerRepo extracts owner and repo from a GitHub remote URL.
// Returns false when the URL does not point at github.com.
func ParseOwnerRepo(remoteURL string) (RepoInfo, bool) {
	matches := githubURLPattern.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if matches == nil {
		return RepoInfo{}, false
	}
	return RepoInfo{Owner: matches[1], Repo: matches[2]}, true
}

// GetToken gets a GitHub token from the environment or the gh CLI
func GetToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	output, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}

// Client wraps the go-github client for the checks doctor performs
type Client struct {
	client *github.Client
}

// NewClient creates a client authenticated with the given token
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{client: github.NewClient(tc)}
}

// Ping verifies the token by fetching the authenticated user
func (c *Client) Ping(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("GitHub authentication failed: %w", err)
	}
	return user.GetLogin(), nil
}

// CheckRepository verifies that the repository exists and is accessible
func (c *Client) CheckRepository(ctx context.Context, info RepoInfo) error {
	_, _, err := c.client.Repositories.Get(ctx, info.Owner, info.Repo)
	if err != nil {
		return fmt.Errorf("repository %s/%s not accessible: %w", info.Owner, info.Repo, err)
	}
	return nil
}

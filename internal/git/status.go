package git

import (
	"context"
	"fmt"
	"strings"
)

// StatusEntry represents a single changed path from git status
type StatusEntry struct {
	// Code is the two-character porcelain status code, e.g. " M", "??", "A "
	Code string
	Path string
}

// StatusSummary represents the state of the working tree
type StatusSummary struct {
	Branch    string
	Entries   []StatusEntry
	Staged    int
	Unstaged  int
	Untracked int
}

// Clean returns true when the working tree has no changes
func (s *StatusSummary) Clean() bool {
	return len(s.Entries) == 0
}

// Status reports the state of the working tree using porcelain output
func (r *CommandRunner) Status(ctx context.Context) (*StatusSummary, error) {
	output, err := r.RunRaw(ctx, "status", "--porcelain=v1", "--branch")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parseStatus(output), nil
}

// parseStatus parses `git status --porcelain=v1 --branch` output
func parseStatus(output string) *StatusSummary {
	summary := &StatusSummary{}

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			// "## main...origin/main [ahead 1]" or "## main"
			branch := strings.TrimPrefix(line, "## ")
			if idx := strings.Index(branch, "..."); idx >= 0 {
				branch = branch[:idx]
			}
			if idx := strings.Index(branch, " "); idx >= 0 {
				branch = branch[:idx]
			}
			summary.Branch = branch
			continue
		}
		if len(line) < 4 {
			continue
		}

		code := line[:2]
		path := line[3:]
		summary.Entries = append(summary.Entries, StatusEntry{Code: code, Path: path})

		switch {
		case code == "??":
			summary.Untracked++
		default:
			if code[0] != ' ' {
				summary.Staged++
			}
			if code[1] != ' ' {
				summary.Unstaged++
			}
		}
	}

	return summary
}

// Package runtime provides a context type that holds the git runner and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"fmt"
	"os"

	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/output"
)

// Context provides access to the git runner and output for commands
type Context struct {
	Runner   git.Runner
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a new context with the given runner
func NewContext(runner git.Runner) *Context {
	return &Context{
		Runner: runner,
		Splog:  output.NewSplog(),
	}
}

// GetContext builds the runtime context for the current working directory,
// verifying that it is inside a git repository.
func GetContext() (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	git.SetWorkingDir(repoRoot)

	ctx := NewContext(git.NewRealRunnerWithDir(repoRoot))
	ctx.RepoRoot = repoRoot

	// Mirror output to a rotating log file when requested.
	if logFile := os.Getenv("SHIPIT_LOG_FILE"); logFile != "" {
		if splog, err := output.NewSplogWithLogFile(logFile); err == nil {
			ctx.Splog = splog
		}
	}
	return ctx, nil
}

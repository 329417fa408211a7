// Package doctor checks that the environment is ready for shipit:
// git on PATH, a work tree, a configured remote and GitHub access.
package doctor

import (
	"context"
	"fmt"
	"strings"

	"shipit.dev/shipit/internal/config"
	"shipit.dev/shipit/internal/git"
	"shipit.dev/shipit/internal/github"
	"shipit.dev/shipit/internal/output"
	"shipit.dev/shipit/internal/runtime"
)

// Options contains options for the doctor command
type Options struct {
	// SkipGitHub disables the GitHub API checks
	SkipGitHub bool
}

type report struct {
	splog  *output.Splog
	failed int
}

func (r *report) ok(format string, args ...interface{}) {
	r.splog.Info("  ✓ "+format, args...)
}

func (r *report) fail(format string, args ...interface{}) {
	r.failed++
	r.splog.Info("  ✗ "+format, args...)
}

func (r *report) skip(format string, args ...interface{}) {
	r.splog.Info("  ▸ "+format, args...)
}

// Action runs the environment checks and reports the results
func Action(ctx *runtime.Context, opts Options) error {
	gctx := context.Background()
	rep := &report{splog: ctx.Splog}

	ctx.Splog.Info("Checking environment...")

	version, err := git.GitVersion(gctx)
	if err != nil {
		rep.fail("git not found on PATH: %v", err)
		return fmt.Errorf("%d check(s) failed", rep.failed)
	}
	rep.ok("%s", version)

	if ctx.RepoRoot == "" {
		rep.fail("not inside a git work tree")
		return fmt.Errorf("%d check(s) failed", rep.failed)
	}
	rep.ok("repository at %s", ctx.RepoRoot)

	branch, err := ctx.Runner.GetCurrentBranch()
	if err != nil {
		rep.fail("not on a branch: %v", err)
	} else {
		rep.ok("on branch %s", output.ColorBranchName(branch))
	}

	name, nameErr := git.GetUserName(gctx)
	email, emailErr := git.GetUserEmail(gctx)
	if nameErr != nil || emailErr != nil {
		rep.fail("commit identity not configured (set user.name and user.email)")
	} else {
		rep.ok("committing as %s <%s>", name, email)
	}

	remote, err := config.GetRemote(ctx.RepoRoot)
	if err != nil {
		return err
	}
	targetBranch, err := config.GetBranch(ctx.RepoRoot)
	if err != nil {
		return err
	}

	remoteURL, err := git.GetRemoteURL(ctx.RepoRoot, remote)
	if err != nil {
		rep.fail("remote %q not configured: %v", remote, err)
		if names, lerr := git.ListRemotes(ctx.RepoRoot); lerr == nil && len(names) > 0 {
			rep.skip("available remotes: %s", strings.Join(names, ", "))
		}
	} else {
		rep.ok("remote %s → %s", remote, remoteURL)

		exists, err := git.HasRemoteBranch(gctx, remote, targetBranch)
		switch {
		case err != nil:
			rep.fail("cannot reach remote %s: %v", remote, err)
		case exists:
			rep.ok("branch %s exists on %s", targetBranch, remote)
		default:
			rep.fail("branch %s not found on %s", targetBranch, remote)
		}

		checkGitHub(gctx, rep, remoteURL, opts)
	}

	ctx.Splog.Newline()
	if rep.failed > 0 {
		return fmt.Errorf("%d check(s) failed", rep.failed)
	}
	ctx.Splog.Info("All checks passed.")
	return nil
}

func checkGitHub(gctx context.Context, rep *report, remoteURL string, opts Options) {
	if opts.SkipGitHub {
		rep.skip("GitHub checks skipped")
		return
	}

	info, isGitHub := github.ParseOwnerRepo(remoteURL)
	if !isGitHub {
		rep.skip("remote is not a GitHub URL, skipping API checks")
		return
	}

	token, err := github.GetToken(gctx)
	if err != nil {
		rep.fail("no GitHub token (set GITHUB_TOKEN or run 'gh auth login'): %v", err)
		return
	}

	client := github.NewClient(gctx, token)
	login, err := client.Ping(gctx)
	if err != nil {
		rep.fail("GitHub authentication failed: %v", err)
		return
	}
	rep.ok("authenticated to GitHub as %s", login)

	if err := client.CheckRepository(gctx, info); err != nil {
		rep.fail("%v", err)
		return
	}
	rep.ok("repository %s/%s accessible", info.Owner, info.Repo)
}

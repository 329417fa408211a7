// Package ship implements the fixed save-everything-and-push sequence:
// status, stage all, commit, pull --rebase, push, force push fallback.
package ship

import (
	"context"
	"errors"
	"fmt"

	"shipit.dev/shipit/internal/config"
	shipiterrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/runtime"
	"shipit.dev/shipit/internal/tui"
)

// Options contains options for the ship command
type Options struct {
	// Message is the commit message. Empty means the configured placeholder.
	Message string

	// Remote and Branch override the configured remote/branch.
	Remote string
	Branch string

	// ForceMode is the fallback policy for a failed push:
	// config.ForceFallbackAuto, config.ForceFallbackPrompt or config.ForceFallbackNever.
	// Empty means the configured policy.
	ForceMode string

	// DryRun prints the plan without running anything.
	DryRun bool

	// UI overrides the progress display. Nil selects TTY or plain
	// output automatically.
	UI tui.ShipUI

	// Confirm overrides the force-push confirmation prompt. Nil uses
	// the interactive prompt.
	Confirm func(remote, branch string) (bool, error)
}

// Step indices into the fixed sequence
const (
	stepStatus = iota
	stepStage
	stepCommit
	stepPull
	stepPush
	stepForcePush
)

func newSteps(remote, branch string) []tui.Step {
	return []tui.Step{
		{Name: "status", Status: tui.StatusPending},
		{Name: "add -A", Status: tui.StatusPending},
		{Name: "commit", Status: tui.StatusPending},
		{Name: fmt.Sprintf("pull --rebase %s %s", remote, branch), Status: tui.StatusPending},
		{Name: fmt.Sprintf("push %s %s", remote, branch), Status: tui.StatusPending},
		{Name: fmt.Sprintf("push --force %s %s", remote, branch), Status: tui.StatusPending},
	}
}

// Action runs the ship sequence. Intermediate step failures are reported
// and the sequence keeps going; the returned error is the outcome of the
// last command that ran (push, or the force push when the fallback fired).
func Action(ctx *runtime.Context, opts Options) error {
	runner := ctx.Runner
	splog := ctx.Splog
	gctx := context.Background()

	message := opts.Message
	if message == "" {
		var err error
		message, err = config.GetDefaultMessage(ctx.RepoRoot)
		if err != nil {
			return err
		}
	}

	remote := opts.Remote
	if remote == "" {
		var err error
		remote, err = config.GetRemote(ctx.RepoRoot)
		if err != nil {
			return err
		}
	}

	branch := opts.Branch
	if branch == "" {
		var err error
		branch, err = config.GetBranch(ctx.RepoRoot)
		if err != nil {
			return err
		}
	}

	forceMode := opts.ForceMode
	if forceMode == "" {
		var err error
		forceMode, err = config.GetForceFallback(ctx.RepoRoot)
		if err != nil {
			return err
		}
	}

	splog.Debug("shipping to %s/%s with fallback %q", remote, branch, forceMode)

	steps := newSteps(remote, branch)

	if opts.DryRun {
		splog.Info("Would run:")
		for i, step := range steps {
			if i == stepForcePush {
				splog.Info("  %s (only if push fails)", step.Name)
				continue
			}
			if i == stepCommit {
				splog.Info("  commit -m %q", message)
				continue
			}
			splog.Info("  %s", step.Name)
		}
		return nil
	}

	ui := opts.UI
	if ui == nil {
		ui = tui.NewShipUI(splog)
	}
	confirm := opts.Confirm
	if confirm == nil {
		confirm = tui.ConfirmForcePush
	}

	ui.Start(steps)

	// Step 1: status (informational only)
	ui.StepRunning(stepStatus)
	summary, err := runner.Status(gctx)
	switch {
	case err != nil:
		ui.StepFailed(stepStatus, err)
	case summary.Clean():
		ui.StepDone(stepStatus, "working tree clean")
	default:
		ui.StepDone(stepStatus, fmt.Sprintf("%d changed path(s) on %s", len(summary.Entries), summary.Branch))
	}

	// Step 2: stage everything
	ui.StepRunning(stepStage)
	if err := runner.StageAll(gctx); err != nil {
		ui.StepFailed(stepStage, err)
	} else {
		ui.StepDone(stepStage, "")
	}

	// Step 3: commit
	ui.StepRunning(stepCommit)
	if err := runner.Commit(gctx, message); err != nil {
		if errors.Is(err, shipiterrors.ErrNothingToCommit) {
			ui.StepSkipped(stepCommit, "nothing to commit")
		} else {
			ui.StepFailed(stepCommit, err)
		}
	} else {
		ui.StepDone(stepCommit, fmt.Sprintf("%q", message))
	}

	// Step 4: pull --rebase
	ui.StepRunning(stepPull)
	if err := runner.PullRebase(gctx, remote, branch); err != nil {
		ui.StepFailed(stepPull, err)
	} else {
		ui.StepDone(stepPull, "")
	}

	// Step 5: push
	ui.StepRunning(stepPush)
	pushErr := runner.Push(gctx, remote, branch, false)
	if pushErr == nil {
		ui.StepDone(stepPush, "")
		ui.StepSkipped(stepForcePush, "push succeeded")
		ui.Complete()
		return nil
	}
	ui.StepFailed(stepPush, pushErr)

	// Step 6: force fallback
	switch forceMode {
	case config.ForceFallbackNever:
		ui.StepSkipped(stepForcePush, "force fallback disabled")
		ui.Complete()
		return pushErr

	case config.ForceFallbackPrompt:
		// End the progress display before prompting.
		ui.Complete()
		splog.Warn("Push failed, remote branch has diverged.")
		ok, err := confirm(remote, branch)
		if err != nil || !ok {
			splog.Info("Not force pushing. Resolve manually with 'git pull --rebase' and push again.")
			return pushErr
		}
		splog.Info("Push failed, attempting force push...")
		if err := runner.Push(gctx, remote, branch, true); err != nil {
			splog.Error("Force push failed: %v", err)
			return err
		}
		splog.Info("✓ Force pushed %s to %s", branch, remote)
		return nil

	default: // config.ForceFallbackAuto
		splog.Info("Push failed, attempting force push...")
		ui.StepRunning(stepForcePush)
		if err := runner.Push(gctx, remote, branch, true); err != nil {
			ui.StepFailed(stepForcePush, err)
			ui.Complete()
			return err
		}
		ui.StepDone(stepForcePush, "")
		ui.Complete()
		return nil
	}
}

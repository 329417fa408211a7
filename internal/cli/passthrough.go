package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var gitCommandAllowlist = []string{
	"add",
	"am",
	"apply",
	"bisect",
	"blame",
	"branch",
	"checkout",
	"cherry-pick",
	"clean",
	"clone",
	"commit",
	// "status", "init" and "config" excluded - shipit has its own
	"diff",
	"difftool",
	"fetch",
	"grep",
	"log",
	"merge",
	"mv",
	"pull",
	"push",
	"rebase",
	"reflog",
	"remote",
	"reset",
	"restore",
	"revert",
	"rm",
	"show",
	"stash",
	"switch",
	"tag",
}

// HandlePassthrough checks if the command should be passed through to git
// and executes it if so. Returns true if the command was handled (and the program should exit).
func HandlePassthrough(args []string) bool {
	if len(args) < 2 {
		return false
	}

	command := args[1]
	if !contains(gitCommandAllowlist, command) {
		return false
	}

	gitArgs := args[1:]
	gitCmd := exec.Command("git", gitArgs...)
	gitCmd.Stdin = os.Stdin
	gitCmd.Stdout = os.Stdout
	gitCmd.Stderr = os.Stderr

	fmt.Fprintf(os.Stderr, "\033[90mPassing command through to git...\033[0m\n")
	fmt.Fprintf(os.Stderr, "\033[90mRunning: \"git %s\"\033[0m\n\n", strings.Join(gitArgs, " "))

	err := gitCmd.Run()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			os.Exit(exitError.ExitCode())
		}
		os.Exit(1)
	}

	os.Exit(0)
	return true
}

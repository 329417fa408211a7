package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via SHIPIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (SHIPIT_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("SHIPIT_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// ConfirmForcePush asks whether the rejected push should be retried with --force
func ConfirmForcePush(remote, branch string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Push of %s to %s was rejected. Force push and overwrite the remote branch?", branch, remote),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}

// PromptCommitMessage asks for a commit message with a default value
func PromptCommitMessage(defaultMessage string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var message string
	prompt := &survey.Input{
		Message: "Commit message",
		Default: defaultMessage,
	}
	if err := survey.AskOne(prompt, &message); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return message, nil
}

package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	stagedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unstagedSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	untrackedSty = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorDone colors text for a successful step
func ColorDone(text string) string {
	return doneStyle.Render(text)
}

// ColorError colors text for a failed step
func ColorError(text string) string {
	return errorStyle.Render(text)
}

// ColorWarn colors text for a warning
func ColorWarn(text string) string {
	return warnStyle.Render(text)
}

// ColorBranchName colors a branch name
func ColorBranchName(branchName string) string {
	return branchStyle.Render(branchName)
}

// ColorStatusCode colors a porcelain status code
func ColorStatusCode(code string) string {
	switch {
	case code == "??":
		return untrackedSty.Render(code)
	case code[0] != ' ':
		return stagedStyle.Render(code)
	default:
		return unstagedSty.Render(code)
	}
}

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

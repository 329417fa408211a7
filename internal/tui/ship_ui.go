// Package tui provides terminal user interface components for shipit.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shipit.dev/shipit/internal/output"
)

// Step statuses
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Step represents one command in the ship sequence
type Step struct {
	Name   string
	Status string
	Detail string
	Err    error
}

// ShipUI defines the interface for displaying ship sequence progress
type ShipUI interface {
	// Start begins the progress display with the planned steps
	Start(steps []Step)

	// StepRunning marks a step as in progress
	StepRunning(idx int)

	// StepDone marks a step as finished, with an optional detail line
	StepDone(idx int, detail string)

	// StepSkipped marks a step as skipped with a reason
	StepSkipped(idx int, reason string)

	// StepFailed marks a step as failed
	StepFailed(idx int, err error)

	// Complete finalizes the display
	Complete()
}

// NewShipUI creates the appropriate UI based on TTY availability
func NewShipUI(splog *output.Splog) ShipUI {
	if output.IsTTY() {
		return NewTTYShipUI(splog)
	}
	return NewSimpleShipUI(splog)
}

// SimpleShipUI implements ShipUI with line-by-line output for non-TTY environments
type SimpleShipUI struct {
	splog *output.Splog
	steps []Step
}

// NewSimpleShipUI creates a new simple ship UI
func NewSimpleShipUI(splog *output.Splog) *SimpleShipUI {
	return &SimpleShipUI{splog: splog}
}

func (u *SimpleShipUI) Start(steps []Step) {
	u.steps = make([]Step, len(steps))
	copy(u.steps, steps)
}

func (u *SimpleShipUI) StepRunning(idx int) {
	if idx >= len(u.steps) {
		return
	}
	u.splog.Info("  ⋯ %s...", u.steps[idx].Name)
}

func (u *SimpleShipUI) StepDone(idx int, detail string) {
	if idx >= len(u.steps) {
		return
	}
	if detail != "" {
		u.splog.Info("  %s %s — %s", output.ColorDone("✓"), u.steps[idx].Name, detail)
	} else {
		u.splog.Info("  %s %s", output.ColorDone("✓"), u.steps[idx].Name)
	}
	u.steps[idx].Status = StatusDone
}

func (u *SimpleShipUI) StepSkipped(idx int, reason string) {
	if idx >= len(u.steps) {
		return
	}
	u.splog.Info("  ▸ %s %s", output.ColorDim(u.steps[idx].Name), output.ColorDim("— "+reason))
	u.steps[idx].Status = StatusSkipped
}

func (u *SimpleShipUI) StepFailed(idx int, err error) {
	if idx >= len(u.steps) {
		return
	}
	u.splog.Info("  %s %s failed: %v", output.ColorError("✗"), u.steps[idx].Name, err)
	u.steps[idx].Status = StatusFailed
	u.steps[idx].Err = err
}

func (u *SimpleShipUI) Complete() {
	failed := 0
	for _, s := range u.steps {
		if s.Status == StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		u.splog.Info("%s", output.ColorWarn(fmt.Sprintf("Completed with %d failed step(s)", failed)))
	}
}

// TTYShipUI implements ShipUI with bubbletea for animated progress
type TTYShipUI struct {
	splog    *output.Splog
	program  *tea.Program
	started  bool
	wasQuiet bool
}

// NewTTYShipUI creates a new TTY ship UI
func NewTTYShipUI(splog *output.Splog) *TTYShipUI {
	return &TTYShipUI{splog: splog}
}

func (u *TTYShipUI) Start(steps []Step) {
	model := newShipModel(steps)
	u.program = tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	u.started = true

	// Suppress splog while bubbletea owns the terminal
	u.wasQuiet = u.splog.IsQuiet()
	u.splog.SetQuiet(true)

	go func() {
		_, _ = u.program.Run()
	}()
}

func (u *TTYShipUI) StepRunning(idx int) {
	u.send(stepUpdateMsg{idx: idx, status: StatusRunning})
}

func (u *TTYShipUI) StepDone(idx int, detail string) {
	u.send(stepUpdateMsg{idx: idx, status: StatusDone, detail: detail})
}

func (u *TTYShipUI) StepSkipped(idx int, reason string) {
	u.send(stepUpdateMsg{idx: idx, status: StatusSkipped, detail: reason})
}

func (u *TTYShipUI) StepFailed(idx int, err error) {
	u.send(stepUpdateMsg{idx: idx, status: StatusFailed, err: err})
}

func (u *TTYShipUI) Complete() {
	if !u.started || u.program == nil {
		return
	}
	u.program.Send(progressCompleteMsg{})
	u.program.Wait()
	u.splog.SetQuiet(u.wasQuiet)
}

func (u *TTYShipUI) send(msg tea.Msg) {
	if !u.started || u.program == nil {
		return
	}
	u.program.Send(msg)
}

// Internal bubbletea model for ship progress

type stepUpdateMsg struct {
	idx    int
	status string
	detail string
	err    error
}

type progressCompleteMsg struct{}

type shipStyles struct {
	doneStyle  lipgloss.Style
	errorStyle lipgloss.Style
	dimStyle   lipgloss.Style
}

type shipModel struct {
	steps   []Step
	spinner spinner.Model
	done    bool
	styles  shipStyles
}

func newShipModel(steps []Step) *shipModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &shipModel{
		steps:   steps,
		spinner: s,
		styles: shipStyles{
			doneStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m *shipModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *shipModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepUpdateMsg:
		if msg.idx < len(m.steps) {
			m.steps[msg.idx].Status = msg.status
			m.steps[msg.idx].Detail = msg.detail
			m.steps[msg.idx].Err = msg.err
		}
		return m, m.spinner.Tick

	case progressCompleteMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *shipModel) View() string {
	var b strings.Builder

	for _, step := range m.steps {
		var icon, suffix string
		switch step.Status {
		case StatusRunning:
			icon = m.spinner.View()
		case StatusDone:
			icon = m.styles.doneStyle.Render("✓")
			if step.Detail != "" {
				suffix = " " + m.styles.dimStyle.Render("— "+step.Detail)
			}
		case StatusFailed:
			icon = m.styles.errorStyle.Render("✗")
			if step.Err != nil {
				suffix = " " + m.styles.errorStyle.Render(step.Err.Error())
			}
		case StatusSkipped:
			icon = m.styles.dimStyle.Render("▸")
			if step.Detail != "" {
				suffix = " " + m.styles.dimStyle.Render("— "+step.Detail)
			}
		default:
			icon = m.styles.dimStyle.Render("○")
		}
		b.WriteString(fmt.Sprintf("  %s %s%s\n", icon, step.Name, suffix))
	}

	if m.done {
		failed := 0
		for _, step := range m.steps {
			if step.Status == StatusFailed {
				failed++
			}
		}
		b.WriteString("\n")
		if failed > 0 {
			b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("Completed with %d failed step(s)", failed)))
		} else {
			b.WriteString(m.styles.doneStyle.Render("✓ Shipped"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

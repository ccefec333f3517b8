// internal/tui/tui.go
// Package tui renders a live view of a measurement session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/timeit/internal/workload"
	"github.com/mwiater/timeit/stats"
	"github.com/mwiater/timeit/timing"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	meanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// runCompleteMsg carries the elapsed microseconds of one finished run.
type runCompleteMsg struct {
	micros float64
}

// Model is the Bubble Tea model for a live measurement session. Runs execute
// one at a time; the next run is only scheduled once the previous result
// message has been processed, so the timed work itself is never concurrent.
type Model struct {
	workload  workload.Workload
	total     int
	durations []float64
	spinner   spinner.Model
	progress  progress.Model
	done      bool
	aborted   bool
}

// New creates a session model for the given workload and run count.
func New(w workload.Workload, runs int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		workload:  w,
		total:     runs,
		durations: make([]float64, 0, runs),
		spinner:   s,
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

// Durations returns the measurements collected so far, in invocation order.
func (m Model) Durations() []float64 {
	return m.durations
}

// Aborted reports whether the user quit before all runs completed.
func (m Model) Aborted() bool {
	return m.aborted
}

// measureCmd times a single invocation of the workload.
func measureCmd(w workload.Workload) tea.Cmd {
	return func() tea.Msg {
		return runCompleteMsg{micros: timing.Measure(w.Fn)}
	}
}

// Init starts the spinner and the first measurement run.
func (m Model) Init() tea.Cmd {
	if m.total <= 0 {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, measureCmd(m.workload))
}

// Update advances the session state for spinner ticks, completed runs, and
// key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.done {
				m.aborted = true
			}
			return m, tea.Quit
		}
		return m, nil

	case runCompleteMsg:
		if m.done {
			return m, nil
		}
		m.durations = append(m.durations, msg.micros)
		if len(m.durations) >= m.total {
			m.done = true
			return m, tea.Quit
		}
		return m, measureCmd(m.workload)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the session: header, progress, per-run durations, running mean.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Timing %s · %d runs", m.workload.Spec, m.total)))
	b.WriteString("\n\n")

	pct := 0.0
	if m.total > 0 {
		pct = float64(len(m.durations)) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(pct))
	b.WriteString("\n\n")

	for i, d := range m.durations {
		b.WriteString(fmt.Sprintf("  run %d: %.3fµs\n", i+1, d))
	}

	if !m.done {
		b.WriteString(fmt.Sprintf("  %s run %d of %d...\n", m.spinner.View(), len(m.durations)+1, m.total))
	}

	if len(m.durations) > 0 {
		b.WriteString("\n")
		b.WriteString(meanStyle.Render(fmt.Sprintf("  mean: %.3fµs", stats.Mean(m.durations))))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render("\n  q to quit\n"))
	return b.String()
}

// internal/report/report.go
// Package report renders measurement session results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/timeit/internal/runner"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	meanValue = color.New(color.FgGreen, color.Bold).SprintFunc()
	runLabel  = color.New(color.FgCyan).SprintFunc()
)

// Render writes a human-readable view of a measurement session to w: one line
// per run in invocation order, then the mean. With debug enabled the raw
// result struct is dumped after the summary.
func Render(w io.Writer, result *runner.Result, debug bool) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Workload %s · %d runs", result.Workload, result.Runs)))

	for i, d := range result.DurationsUs {
		fmt.Fprintf(w, "  %s %s\n", runLabel(fmt.Sprintf("run %d:", i+1)), formatMicros(d))
	}

	fmt.Fprintf(w, "  mean:  %s\n", meanValue(formatMicros(result.MeanUs)))

	if debug {
		_, _ = pp.Fprintln(w, result)
	}
}

// formatMicros renders a microsecond value with millisecond context for
// easier reading of slow workloads.
func formatMicros(micros float64) string {
	if micros >= 1000 {
		return fmt.Sprintf("%.3fµs (%.3fms)", micros, micros/1000)
	}
	return fmt.Sprintf("%.3fµs", micros)
}

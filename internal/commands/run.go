// internal/commands/run.go
package timeit

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwiater/timeit/internal/appconfig"
	"github.com/mwiater/timeit/internal/logging"
	"github.com/mwiater/timeit/internal/report"
	"github.com/mwiater/timeit/internal/runner"
	"github.com/mwiater/timeit/internal/tui"
	"github.com/mwiater/timeit/internal/workload"
)

var runRuns int

// runCmd times a workload and reports per-run durations and their mean.
var runCmd = &cobra.Command{
	Use:   "run [workload]",
	Short: "Time a workload and report per-run durations and their mean",
	Long: `Run the given workload spec (e.g. sleep:10, spin:100000, hash:64) a
configurable number of times, sequentially, and report the elapsed wall-clock
time of each run together with the arithmetic mean. Without an argument the
configured workload is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if len(args) == 1 {
			cfg.Workload = args[0]
		}
		if cmd.Flags().Changed("runs") {
			cfg.Runs = runRuns
		}

		if cfg.Interactive {
			return runInteractive(&cfg, cmd.OutOrStdout())
		}

		result, err := runner.Run(&cfg)
		if err != nil {
			return err
		}
		report.Render(cmd.OutOrStdout(), result, cfg.Debug)
		return nil
	},
}

// runInteractive drives the measurement session through the live TUI and
// renders the collected results once the program exits.
func runInteractive(cfg *appconfig.Config, out io.Writer) error {
	w, err := workload.Resolve(cfg.WorkloadSpec())
	if err != nil {
		return fmt.Errorf("resolve workload: %w", err)
	}

	program := tea.NewProgram(tui.New(w, cfg.RunCount()))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}

	session, ok := finalModel.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", finalModel)
	}
	if session.Aborted() {
		logging.LogEvent("Interactive session aborted after %d of %d runs", len(session.Durations()), cfg.RunCount())
	}

	result := runner.ResultFrom(w.Spec, session.Durations())
	report.Render(out, result, cfg.Debug)
	return nil
}

func init() {
	runCmd.Flags().IntVarP(&runRuns, "runs", "n", 0, "number of measurement runs (0 = configured default)")

	rootCmd.AddCommand(runCmd)
}

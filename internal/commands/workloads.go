// internal/commands/workloads.go
package timeit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/timeit/internal/workload"
)

var workloadName = color.New(color.FgCyan, color.Bold).SprintFunc()

// workloadExamples maps workload names to an example spec for the listing.
var workloadExamples = map[string]string{
	"sleep": "sleep:10 — sleep for 10 milliseconds",
	"spin":  "spin:100000 — 100000 iterations of integer work",
	"hash":  "hash:64 — hash a fixed payload 64 times",
}

// workloadsCmd lists the built-in workloads available for timing.
var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List the built-in workloads available for timing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range workload.Names() {
			if example, ok := workloadExamples[name]; ok {
				fmt.Fprintf(out, "%s  %s\n", workloadName(name), example)
				continue
			}
			fmt.Fprintln(out, workloadName(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workloadsCmd)
}

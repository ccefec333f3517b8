// internal/runner/runner.go
// Package runner executes a measurement session for a configured workload.
package runner

import (
	"fmt"

	"github.com/mwiater/timeit/internal/appconfig"
	"github.com/mwiater/timeit/internal/logging"
	"github.com/mwiater/timeit/internal/workload"
	"github.com/mwiater/timeit/stats"
	"github.com/mwiater/timeit/timing"
)

// Result holds the measurements collected for one workload session.
type Result struct {
	Workload    string    `json:"workload"`
	Runs        int       `json:"runs"`
	DurationsUs []float64 `json:"durationsMicros"`
	MeanUs      float64   `json:"meanMicros"`
}

// ResultFrom builds a Result from durations already collected for spec, in
// invocation order.
func ResultFrom(spec string, durations []float64) *Result {
	return &Result{
		Workload:    spec,
		Runs:        len(durations),
		DurationsUs: durations,
		MeanUs:      stats.Mean(durations),
	}
}

// Run resolves the configured workload, measures it the configured number of
// times sequentially, and returns the ordered durations with their mean. The
// workload runs to completion on the calling goroutine; a panic inside it is
// not recovered.
func Run(cfg *appconfig.Config) (*Result, error) {
	w, err := workload.Resolve(cfg.WorkloadSpec())
	if err != nil {
		return nil, fmt.Errorf("resolve workload: %w", err)
	}

	runs := cfg.RunCount()
	logging.LogEvent("Measuring workload %s over %d runs...", w.Spec, runs)

	durations := timing.MeasureN(w.Fn, runs)
	for i, d := range durations {
		logging.LogRun(w.Spec, i+1, runs, d)
	}

	return &Result{
		Workload:    w.Spec,
		Runs:        runs,
		DurationsUs: durations,
		MeanUs:      stats.Mean(durations),
	}, nil
}

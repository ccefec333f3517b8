// internal/report/report_test.go
package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwiater/timeit/internal/runner"
)

func TestRender(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Workload:    "sleep:10",
		Runs:        2,
		DurationsUs: []float64{10050.25, 10121.75},
		MeanUs:      10086.0,
	}

	var buf bytes.Buffer
	Render(&buf, result, false)
	out := buf.String()

	if !strings.Contains(out, "sleep:10") {
		t.Fatalf("expected workload spec in output, got:\n%s", out)
	}
	if !strings.Contains(out, "run 1:") || !strings.Contains(out, "run 2:") {
		t.Fatalf("expected per-run lines, got:\n%s", out)
	}
	if !strings.Contains(out, "10086.000µs") {
		t.Fatalf("expected mean value in output, got:\n%s", out)
	}
}

func TestRenderDebugDumpsResult(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Workload: "spin:10", Runs: 1, DurationsUs: []float64{3.2}, MeanUs: 3.2}

	var plain, debug bytes.Buffer
	Render(&plain, result, false)
	Render(&debug, result, true)

	if debug.Len() <= plain.Len() {
		t.Fatal("expected debug render to include the raw result dump")
	}
}

func TestFormatMicros(t *testing.T) {
	t.Parallel()

	if got := formatMicros(250.5); got != "250.500µs" {
		t.Fatalf("sub-millisecond format: %q", got)
	}
	if got := formatMicros(2500.0); got != "2500.000µs (2.500ms)" {
		t.Fatalf("millisecond format: %q", got)
	}
}

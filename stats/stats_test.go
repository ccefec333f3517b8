// stats/stats_test.go
package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "empty", in: nil, want: 0},
		{name: "empty slice", in: []float64{}, want: 0},
		{name: "single value identity", in: []float64{42.5}, want: 42.5},
		{name: "simple average", in: []float64{2.0, 4.0, 6.0}, want: 4.0},
		{name: "negative values", in: []float64{-1.0, 1.0}, want: 0},
		{name: "fractional result", in: []float64{1.0, 2.0}, want: 1.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Mean(tt.in); got != tt.want {
				t.Fatalf("Mean(%v) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}

func TestMeanNaNPropagates(t *testing.T) {
	t.Parallel()

	if got := Mean([]float64{1.0, math.NaN(), 3.0}); !math.IsNaN(got) {
		t.Fatalf("expected NaN to propagate, got %f", got)
	}
}

func TestMeanInfinityPropagates(t *testing.T) {
	t.Parallel()

	if got := Mean([]float64{1.0, math.Inf(1)}); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf to propagate, got %f", got)
	}
}

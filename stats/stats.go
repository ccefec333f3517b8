// stats/stats.go
// Package stats provides aggregate calculations over measurement sequences.
package stats

// Mean returns the arithmetic mean of values, summing left to right in input
// order. An empty input yields 0.0 rather than an error, which makes "mean of
// nothing" indistinguishable from a mean of exactly zero. NaN and infinite
// values propagate through the sum per float64 arithmetic.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

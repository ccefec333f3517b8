// timing/timing.go
// Package timing measures wall-clock execution time of zero-argument
// functions using the monotonic clock.
package timing

import "time"

// Measure invokes fn exactly once, synchronously, on the calling goroutine
// and returns the elapsed wall-clock time in microseconds. Fractional
// microseconds are preserved. A panic inside fn is not recovered and unwinds
// to the caller.
func Measure(fn func()) float64 {
	start := time.Now()
	fn()
	return float64(time.Since(start)) / float64(time.Microsecond)
}

// MeasureN invokes fn sequentially runs times, returning the elapsed
// microseconds of each invocation in invocation order. A runs value of zero
// or less returns an empty slice without invoking fn. If fn panics partway
// through, results collected so far are discarded along with the unwinding
// call stack.
func MeasureN(fn func(), runs int) []float64 {
	if runs <= 0 {
		return []float64{}
	}
	results := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		results = append(results, Measure(fn))
	}
	return results
}

// SPDX-License-Identifier: MIT
// Package: ravine/bench
//
// Package bench is the timing harness around the traversal variants:
// wall-clock samples plus the derived speedup and efficiency figures
// the benchmark reports.
//
// The harness measures; it does not print. Reporting belongs to the
// caller (the CLI logs rows through logrus).
package bench

import (
	"errors"
	"fmt"
	"time"
)

// ErrRunFailed wraps a measured function's error together with its name.
var ErrRunFailed = errors.New("bench: measured run failed")

// Sample is one measured traversal run.
type Sample struct {
	// Name labels the variant, e.g. "serial" or "parallel-8".
	Name string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Visited is the number of vertices the run reported visiting.
	Visited int
}

// Measure runs fn once under a wall clock. fn returns the visited
// count; its error aborts the sample.
func Measure(name string, fn func() (int, error)) (Sample, error) {
	start := time.Now()
	visited, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: %s: %v", ErrRunFailed, name, err)
	}

	return Sample{Name: name, Elapsed: elapsed, Visited: visited}, nil
}

// Speedup returns serial time over parallel time: >1 means the parallel
// run won. A non-positive parallel duration yields 0.
func Speedup(serial, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}

	return float64(serial) / float64(parallel)
}

// Efficiency normalizes a speedup by the worker count that produced it.
func Efficiency(speedup float64, workers int) float64 {
	if workers < 1 {
		return 0
	}

	return speedup / float64(workers)
}

// Row is one line of a speedup table: a parallel sample scored against
// the serial baseline.
type Row struct {
	Workers    int
	Sample     Sample
	Speedup    float64
	Efficiency float64
}

// Score builds a Row from a baseline and a parallel sample.
func Score(baseline Sample, parallel Sample, workers int) Row {
	s := Speedup(baseline.Elapsed, parallel.Elapsed)

	return Row{
		Workers:    workers,
		Sample:     parallel,
		Speedup:    s,
		Efficiency: Efficiency(s, workers),
	}
}

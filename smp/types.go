// types.go — sentinel errors, functional options, and the Result
// record shared by both variants.

package smp

import (
	"errors"
	"runtime"
)

// defaultWorkRounds mirrors the distributed core's per-vertex workload.
const defaultWorkRounds = 1000

// Sentinel errors for shared-memory traversal.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("smp: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("smp: invalid option supplied")
)

// Option configures optional behavior of Serial and Parallel.
type Option func(*Options)

// Options holds configurable parameters for shared-memory traversal.
type Options struct {
	// WorkRounds is the deterministic per-vertex workload; 0 disables it.
	WorkRounds int

	// Workers bounds the number of concurrent traversal tasks in
	// Parallel; ignored by Serial. Defaults to runtime.NumCPU().
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the benchmark workload and one
// worker per CPU.
func DefaultOptions() Options {
	return Options{
		WorkRounds: defaultWorkRounds,
		Workers:    runtime.NumCPU(),
	}
}

// WithWorkRounds returns an Option setting the per-vertex workload to n
// rounds. n must be non-negative.
func WithWorkRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.WorkRounds = n
	}
}

// WithWorkers returns an Option bounding Parallel's concurrency to n
// tasks. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.Workers = n
	}
}

// Result captures a full-graph shared-memory traversal.
type Result struct {
	// Order records vertices in visit order. For Parallel the order is
	// scheduler-dependent; the set of entries is exact.
	Order []int
}

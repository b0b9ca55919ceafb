// types.go — sentinel errors, functional options, and the per-worker
// Result record.

package ddfs

import (
	"context"
	"errors"
)

// NoTarget disables the reachability question: the traversal visits
// every owned vertex it can reach and Found stays false.
const NoTarget = -1

// defaultWorkRounds is the synthetic per-vertex workload of the
// benchmark this core models: 1000 accumulator rounds per first visit.
const defaultWorkRounds = 1000

// Sentinel errors for distributed traversal.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to Run.
	ErrGraphNil = errors.New("ddfs: graph is nil")

	// ErrCommNil is returned when a nil *comm.Comm is passed to Run.
	ErrCommNil = errors.New("ddfs: communicator is nil")

	// ErrDomainMismatch indicates the domain was not produced by
	// partition.Split for this graph and communicator.
	ErrDomainMismatch = errors.New("ddfs: domain does not match graph and communicator")

	// ErrTargetRange indicates a target vertex outside [0, N).
	ErrTargetRange = errors.New("ddfs: target vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ddfs: invalid option supplied")

	// ErrSizeMismatch indicates a peer's payload length contradicts the
	// count it announced. Fatal: the exchange has no retry path.
	ErrSizeMismatch = errors.New("ddfs: received payload contradicts announced size")
)

// Option configures optional behavior of Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds configurable parameters for one worker's traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancellation aborts the local passes; posted exchange operations
	// are still drained so peers are never left hanging.
	Ctx context.Context

	// WorkRounds is the number of deterministic accumulator rounds run
	// on each first visit, standing in for real per-vertex processing
	// cost. It never changes the traversal outcome. 0 disables the
	// workload; default is 1000.
	WorkRounds int

	// OnVisit, if non-nil, is invoked when a vertex is first marked
	// visited. Returning an error aborts the local passes.
	OnVisit func(v int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the
// benchmark workload (1000 rounds), and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		WorkRounds: defaultWorkRounds,
	}
}

// WithContext returns an Option that sets the context for the local
// passes. A nil ctx has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkRounds returns an Option that sets the synthetic per-vertex
// workload to n accumulator rounds. n must be non-negative; 0 disables
// the workload entirely (useful in tests).
func WithWorkRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.WorkRounds = n
	}
}

// WithOnVisit returns an Option that installs fn as a first-visit hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures one worker's share of the distributed traversal.
type Result struct {
	// Order records this worker's owned vertices in visit order.
	// len(Order) is the worker's contribution to the global visited count.
	Order []int

	// Found reports whether this worker's traversal visited the target.
	// Purely local: combine across workers with comm.ReduceMax.
	Found bool

	// Interior and Boundary count the classification of owned vertices:
	// interior vertices have no edge leaving the domain, boundary
	// vertices have at least one.
	Interior int
	Boundary int

	// External is the number of distinct non-owned vertex ids referenced
	// by edges leaving this worker's boundary vertices.
	External int

	// Sent[r] and Received[r] count the vertex ids shipped to and
	// delivered from rank r by the boundary exchange.
	Sent     []int
	Received []int
}

// parallel.go — task-parallel full-graph DFS: unvisited neighbors may
// be claimed by worker goroutines, visited state lives behind one lock.

package smp

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/velmir/ravine/graph"
)

// Parallel runs a task-parallel depth-first traversal of the whole
// graph. Each discovered unvisited neighbor is offered to the worker
// pool; when the pool is saturated the spawning task recurses inline,
// so traversal never stalls waiting for a free worker.
func Parallel(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	w := &parallelWalker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res:     &Result{Order: make([]int, 0, n)},
	}
	w.eg.SetLimit(o.Workers)

	for v := 0; v < n; v++ {
		w.mu.Lock()
		seen := w.visited[v]
		w.mu.Unlock()
		if !seen {
			w.traverse(v)
		}
	}
	// All spawned subtree tasks, including nested ones, finish here.
	_ = w.eg.Wait()

	return w.res, nil
}

type parallelWalker struct {
	graph *graph.Graph
	opts  Options
	eg    errgroup.Group

	mu      sync.Mutex
	visited []bool
	res     *Result
	sink    float64
}

// traverse claims v under the lock, then explores its neighbors. A
// neighbor is handed to the pool when a slot is free (TryGo) and
// traversed inline otherwise; nested blocking Go calls could deadlock
// a saturated pool.
func (w *parallelWalker) traverse(v int) {
	w.mu.Lock()
	if w.visited[v] {
		w.mu.Unlock()

		return
	}
	w.visited[v] = true
	w.res.Order = append(w.res.Order, v)
	w.mu.Unlock()

	work := simulateWork(v, w.opts.WorkRounds)
	w.mu.Lock()
	w.sink += work
	w.mu.Unlock()

	for _, nb := range w.graph.Neighbors(v) {
		w.mu.Lock()
		seen := w.visited[nb]
		w.mu.Unlock()
		if seen {
			continue
		}
		nb := nb
		if !w.eg.TryGo(func() error {
			w.traverse(nb)

			return nil
		}) {
			w.traverse(nb)
		}
	}
}

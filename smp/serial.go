// serial.go — the single-threaded full-graph DFS baseline.

package smp

import "github.com/velmir/ravine/graph"

// Serial runs a recursive depth-first traversal of the whole graph,
// restarting from every unvisited vertex in increasing id order.
func Serial(g *graph.Graph, opts ...Option) (*Result, error) {
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
	w := &serialWalker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res:     &Result{Order: make([]int, 0, n)},
	}
	for v := 0; v < n; v++ {
		if !w.visited[v] {
			w.traverse(v)
		}
	}

	return w.res, nil
}

type serialWalker struct {
	graph   *graph.Graph
	opts    Options
	visited []bool
	res     *Result
	sink    float64
}

func (w *serialWalker) traverse(v int) {
	w.visited[v] = true
	w.res.Order = append(w.res.Order, v)

	w.sink += simulateWork(v, w.opts.WorkRounds)

	for _, nb := range w.graph.Neighbors(v) {
		if !w.visited[nb] {
			w.traverse(nb)
		}
	}
}

// simulateWork is the same bounded accumulator loop the distributed
// core runs per first visit.
func simulateWork(v, rounds int) float64 {
	var work float64
	for i := 0; i < rounds; i++ {
		work += float64((v * i) % 100)
	}

	return work
}

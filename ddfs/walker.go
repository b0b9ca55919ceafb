// walker.go — the ownership-restricted depth-first walker and the
// interior/boundary classification it runs over.

package ddfs

import (
	"fmt"
	"sort"

	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/partition"
)

// walker encapsulates one worker's mutable traversal state.
type walker struct {
	graph  *graph.Graph
	dom    partition.Domain
	opts   Options
	target int

	// visited is sized to the whole graph for O(1) indexing, but marks
	// are only ever set for owned vertices: the ownership check precedes
	// every mark-and-record action.
	visited []bool

	res *Result

	// sink keeps the synthetic workload's accumulator observable so the
	// loop cannot be optimized away.
	sink float64
}

// traverse visits v depth-first within the owned domain. External
// neighbors are recorded into ext instead of followed; the walker never
// recurses outside the domain. Returns true as soon as the target is
// visited anywhere in the call tree, unwinding immediately.
func (w *walker) traverse(v int, ext map[int]struct{}) (bool, error) {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	// 2. Ownership check before any mark: non-owned vertices are the
	// exchange's business, never the walker's.
	if !w.dom.Contains(v) || w.visited[v] {
		return false, nil
	}

	// 3. Mark and record.
	w.visited[v] = true
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return false, fmt.Errorf("ddfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. First-match early exit.
	if v == w.target {
		w.res.Found = true

		return true, nil
	}

	// 5. Synthetic per-vertex workload.
	w.simulateWork(v)

	// 6. Explore neighbors: owned → recurse, external → record.
	for _, nb := range w.graph.Neighbors(v) {
		if w.dom.Contains(nb) {
			if !w.visited[nb] {
				found, err := w.traverse(nb, ext)
				if found || err != nil {
					return found, err
				}
			}
		} else {
			ext[nb] = struct{}{}
		}
	}

	return false, nil
}

// pass runs the walker over vertices in order, skipping visited ones.
// Each iteration re-checks the found flag, so a hit stops the pass
// without suppressing later passes.
func (w *walker) pass(vertices []int, ext map[int]struct{}) error {
	for _, v := range vertices {
		if w.res.Found {
			return nil
		}
		if w.visited[v] {
			continue
		}
		found, err := w.traverse(v, ext)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
	}

	return nil
}

// simulateWork burns a bounded, deterministic amount of CPU per first
// visit. Pure arithmetic: no observable effect beyond time and the sink.
func (w *walker) simulateWork(v int) {
	var work float64
	for i := 0; i < w.opts.WorkRounds; i++ {
		work += float64((v * i) % 100)
	}
	w.sink += work
}

// classify splits the owned range into interior vertices (no edge
// leaves the domain) and boundary vertices (at least one does), both in
// increasing id order.
func (w *walker) classify() (interior, boundary []int) {
	for v := w.dom.Start; v < w.dom.End; v++ {
		if w.isBoundary(v) {
			boundary = append(boundary, v)
		} else {
			interior = append(interior, v)
		}
	}

	return interior, boundary
}

// isBoundary reports whether owned vertex v has an edge leaving the domain.
func (w *walker) isBoundary(v int) bool {
	for _, nb := range w.graph.Neighbors(v) {
		if !w.dom.Contains(nb) {
			return true
		}
	}

	return false
}

// externalRefs collects the deduplicated external-reference set of the
// boundary vertices, returned in ascending id order for deterministic
// routing.
func externalRefs(g *graph.Graph, dom partition.Domain, boundary []int) []int {
	set := make(map[int]struct{})
	for _, v := range boundary {
		for _, nb := range g.Neighbors(v) {
			if !dom.Contains(nb) {
				set[nb] = struct{}{}
			}
		}
	}

	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

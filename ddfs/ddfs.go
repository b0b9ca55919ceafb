// ddfs.go — Run, the per-worker traversal orchestrator. Fixed state
// sequence, no branching back:
//
//	classify → size-exchange post → local interior → size-exchange drain
//	→ data-exchange post+drain → local boundary → local external →
//	send drain → done

package ddfs

import (
	"fmt"

	"github.com/velmir/ravine/comm"
	"github.com/velmir/ravine/graph"
	"github.com/velmir/ravine/partition"
)

// Run executes one worker's share of the distributed depth-first
// search over g, restricted to dom, exchanging boundary references
// through c. It returns the worker's visit order and its local found
// flag; global combination (sum of counts, max of flags) is the
// caller's business, after every worker has returned.
func Run(g *graph.Graph, dom partition.Domain, c *comm.Comm, target int, opts ...Option) (*Result, error) {
	// 1. Validate collaborators.
	if g == nil {
		return nil, ErrGraphNil
	}
	if c == nil {
		return nil, ErrCommNil
	}

	// 2. Apply options; surface any recorded violation.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. The domain must be the one Split derives for this graph, and the
	// communicator must speak for the same rank and world.
	n := g.Order()
	want, err := partition.Split(n, dom.WorldSize, dom.Rank)
	if err != nil {
		return nil, fmt.Errorf("ddfs: %v: %w", err, ErrDomainMismatch)
	}
	if want != dom || c.Rank() != dom.Rank || c.Size() != dom.WorldSize {
		return nil, ErrDomainMismatch
	}
	if target != NoTarget && (target < 0 || target >= n) {
		return nil, fmt.Errorf("ddfs: target=%d of %d vertices: %w", target, n, ErrTargetRange)
	}

	res := &Result{
		Order:    make([]int, 0, dom.Len()),
		Sent:     make([]int, dom.WorldSize),
		Received: make([]int, dom.WorldSize),
	}
	w := &walker{
		graph:   g,
		dom:     dom,
		opts:    o,
		target:  target,
		visited: make([]bool, n),
		res:     res,
	}

	// 4. CLASSIFY: split owned vertices into interior and boundary.
	interior, boundary := w.classify()
	res.Interior = len(interior)
	res.Boundary = len(boundary)

	// 5. SIZE_EXCHANGE_POST: receives strictly before any send.
	ex := newExchange(c, dom)
	ex.postSizeRecvs()

	// 6. Build and route the external-reference set, then post every
	// outgoing size (and, where non-empty, payload) send. All of this
	// worker's sends are in flight before any fallible pass runs.
	external := externalRefs(g, dom, boundary)
	res.External = len(external)
	ex.route(external, n)
	ex.postSends()
	for dst, ids := range ex.outgoing {
		res.Sent[dst] = len(ids)
	}

	// scratch absorbs external refs rediscovered during the interior and
	// external passes; only the boundary pass feeds a surviving set.
	scratch := make(map[int]struct{})

	// 7. LOCAL_INTERIOR: overlaps the in-flight size exchange.
	if err = w.pass(interior, scratch); err != nil {
		return res, drainAfterError(ex, err)
	}

	// 8. SIZE_EXCHANGE_DRAIN: counts fully known before any data post.
	if err = ex.drainSizes(); err != nil {
		return res, err
	}

	// 9. DATA_EXCHANGE_POST_DRAIN.
	received, err := ex.exchangeData()
	if err != nil {
		return res, err
	}
	for src, ids := range received {
		res.Received[src] = len(ids)
	}

	// 10. LOCAL_BOUNDARY: the boundary set this pass accumulates is
	// bookkeeping only; the exchange already shipped the classify-time set.
	boundarySet := make(map[int]struct{})
	if err = w.pass(boundary, boundarySet); err != nil {
		return res, drainAfterError(ex, err)
	}

	// 11. LOCAL_EXTERNAL: delivered ids, per source rank in rank order.
	// Only ids this worker owns and has not visited seed new walks. The
	// found check gates each source rank's sub-loop.
	for src := 0; src < dom.WorldSize; src++ {
		if res.Found {
			continue
		}
		for _, v := range received[src] {
			if dom.Contains(v) && !w.visited[v] {
				found, perr := w.traverse(v, scratch)
				if perr != nil {
					return res, drainAfterError(ex, perr)
				}
				if found {
					break
				}
			}
		}
	}

	// 12. SEND_DRAIN, then DONE.
	if err = ex.drainSends(); err != nil {
		return res, err
	}

	return res, nil
}

// drainAfterError completes the outstanding exchange before surfacing
// err. Every rank posts its sends before running any fallible pass, so
// the drain always terminates and no peer is left waiting on us.
func drainAfterError(ex *exchange, err error) error {
	if derr := ex.drainSizes(); derr == nil {
		_, _ = ex.exchangeData()
	}
	_ = ex.drainSends()

	return err
}

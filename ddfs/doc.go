// Package ddfs implements depth-first search over a statically
// partitioned graph: every worker owns one contiguous block of the
// vertex range, traverses only vertices it owns, and learns about the
// rest of the graph exclusively through an explicit boundary exchange.
//
// What:
//
//	Run(g, dom, c, target, opts...) executes one worker's share of the
//	distributed traversal and reports which owned vertices it visited,
//	in order, and whether it visited the target. The per-worker
//	procedure is a fixed state sequence:
//
//	  classify → post size receives → build external-reference set →
//	  post size+data sends → interior pass → drain size receives →
//	  post+drain data receives → boundary pass → external pass →
//	  drain sends → done
//
// Key behaviors:
//
//   - Ownership is absolute: the walker never recurses into a vertex
//     outside its domain and never marks one visited. Edges leaving the
//     domain are recorded as external references instead of followed.
//   - The boundary exchange is two-phase and fully non-blocking: counts
//     first (receives posted before any send, zero counts still sent),
//     payloads second, sized exactly by the counts just learned. The
//     interior pass runs while the size exchange is in flight, and
//     outgoing sends stay in flight until the final drain.
//   - Early exit is local only. Finding the target stops further
//     iteration inside the current pass, but the remaining passes and
//     the exchange still execute — workers never signal each other
//     mid-traversal, so measured cost stays comparable across ranks.
//     Global found/visited totals are combined by the caller afterwards
//     (comm.ReduceMax / comm.ReduceSum).
//   - Each first visit runs a deterministic synthetic workload standing
//     in for real per-vertex processing cost; see WithWorkRounds.
//
// Complexity:
//   - Time: O(V_local + E_local) traversal plus O(W) exchange posts,
//     plus WorkRounds arithmetic per first visit.
//   - Memory: O(V) for the visited marks (global-size for O(1)
//     indexing), O(V_local) recursion and result, O(W) buffers.
//
// Errors:
//   - ErrGraphNil, ErrCommNil       nil collaborators.
//   - ErrDomainMismatch             domain disagrees with the graph's
//     order or the communicator's rank/size.
//   - ErrTargetRange                target outside [0, N) and not NoTarget.
//   - ErrOptionViolation            invalid option supplied.
//   - ErrSizeMismatch               peer payload contradicts its count.
//   - context.Canceled, hook errors propagated from the passes.
package ddfs

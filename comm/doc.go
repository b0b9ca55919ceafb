// Package comm is the message substrate between ravine workers: an
// in-process, channel-backed rendering of the non-blocking point-to-point
// and collective surface the distributed traversal core is written against.
//
// What:
//
//   - World: the communicator shared by all ranks. NewWorld(size)
//     allocates one mailbox per (source, destination, tag) triple;
//     Comm(rank) hands out a rank's endpoint.
//   - Comm.Send / Comm.Recv: non-blocking posts of fixed-size integer
//     payloads, returning a *Request handle. Payloads are copied on
//     send, so no memory is ever shared between ranks.
//   - Comm.WaitAll: block until a batch of outstanding requests has
//     completed — the only blocking point in the model.
//   - Collectives: Bcast (scalar broadcast), ReduceSum / ReduceMax
//     (all-ranks reductions), Barrier. Used by the reporting harness,
//     never by the traversal core itself.
//
// Why:
//
//	Workers are memory-isolated: each owns its visited marks and result
//	sequence outright, and cross-worker knowledge moves only through
//	these messages. Keeping the substrate behind this small surface
//	means the traversal core reads like its message-passing design:
//	post receives, post sends, overlap computation, drain.
//
// Ordering & failure model:
//
//   - Each (source, destination, tag) mailbox is FIFO.
//   - A receive completes only after the matching send was posted; the
//     caller observes the payload only after WaitAll returns.
//   - Collectives must be invoked by every rank in the same order.
//   - No timeouts and no cancellation: a hung peer hangs the collective.
//     That is the accepted failure model — communication faults are
//     fatal, not recoverable.
//
// Errors:
//   - ErrWorldSize: NewWorld with size < 1.
//   - ErrRankRange: rank, source, or destination outside [0, size).
//   - ErrTagRange:  tag other than TagSize or TagData.
//   - ErrClosed:    point-to-point operation on a closed World.
package comm

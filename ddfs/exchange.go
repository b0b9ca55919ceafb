// exchange.go — the two-phase, non-blocking boundary exchange: ship
// externally-referenced vertex ids to their owning ranks, counts before
// payloads, overlapped with the local passes.

package ddfs

import (
	"fmt"

	"github.com/velmir/ravine/comm"
	"github.com/velmir/ravine/partition"
)

// exchange tracks one worker's outstanding boundary-exchange state.
type exchange struct {
	comm *comm.Comm
	dom  partition.Domain

	// outgoing[dst] lists the external vertex ids owned by dst, in
	// ascending id order.
	outgoing [][]int

	// sizeRecvs[src] is the posted count receive from src (nil for self).
	sizeRecvs []*comm.Request

	// counts[src] is the announced payload length, known after drainSizes.
	counts []int

	// sends accumulates every posted send; drained last.
	sends []*comm.Request

	// phase latches: drains are invoked again on error paths and must
	// not repost or re-consume anything.
	sizesDrained  bool
	dataExchanged bool
	received      [][]int
}

func newExchange(c *comm.Comm, dom partition.Domain) *exchange {
	return &exchange{
		comm:      c,
		dom:       dom,
		outgoing:  make([][]int, dom.WorldSize),
		sizeRecvs: make([]*comm.Request, dom.WorldSize),
		counts:    make([]int, dom.WorldSize),
	}
}

// postSizeRecvs posts a count receive from every other rank. Receives
// go up first, before any send anywhere, so no pairing of ranks can
// deadlock on unmatched posts.
func (e *exchange) postSizeRecvs() {
	for src := 0; src < e.dom.WorldSize; src++ {
		if src != e.dom.Rank {
			e.sizeRecvs[src] = e.comm.Recv(src, comm.TagSize)
		}
	}
}

// route groups the external-reference set by owning rank. An external
// id never resolves to its discoverer, so own-rank ids are skipped.
func (e *exchange) route(external []int, n int) {
	for _, id := range external {
		owner := partition.Owner(id, n, e.dom.WorldSize)
		if owner != e.dom.Rank {
			e.outgoing[owner] = append(e.outgoing[owner], id)
		}
	}
}

// postSends issues the non-blocking size send to every other rank, then
// the payload send to every rank with a non-empty batch. The count
// always goes out, even when zero, so receivers know not to wait for data.
func (e *exchange) postSends() {
	for dst := 0; dst < e.dom.WorldSize; dst++ {
		if dst == e.dom.Rank {
			continue
		}
		ids := e.outgoing[dst]
		e.sends = append(e.sends, e.comm.Send(dst, comm.TagSize, []int{len(ids)}))
		if len(ids) > 0 {
			e.sends = append(e.sends, e.comm.Send(dst, comm.TagData, ids))
		}
	}
}

// drainSizes waits for every posted count receive and records the
// announced lengths. Must complete before any payload receive is posted.
func (e *exchange) drainSizes() error {
	if e.sizesDrained {
		return nil
	}
	if err := e.comm.WaitAll(e.sizeRecvs...); err != nil {
		return fmt.Errorf("ddfs: size exchange: %w", err)
	}
	e.sizesDrained = true
	for src, r := range e.sizeRecvs {
		if r != nil {
			e.counts[src] = r.Payload()[0]
		}
	}

	return nil
}

// exchangeData posts payload receives only for peers that announced a
// non-zero count, waits for all of them, and returns the delivered ids
// indexed by source rank.
func (e *exchange) exchangeData() ([][]int, error) {
	if e.dataExchanged {
		return e.received, nil
	}
	dataRecvs := make([]*comm.Request, e.dom.WorldSize)
	for src := 0; src < e.dom.WorldSize; src++ {
		if src != e.dom.Rank && e.counts[src] > 0 {
			dataRecvs[src] = e.comm.Recv(src, comm.TagData)
		}
	}
	if err := e.comm.WaitAll(dataRecvs...); err != nil {
		return nil, fmt.Errorf("ddfs: data exchange: %w", err)
	}

	received := make([][]int, e.dom.WorldSize)
	for src, r := range dataRecvs {
		if r == nil {
			continue
		}
		payload := r.Payload()
		if len(payload) != e.counts[src] {
			return nil, fmt.Errorf("ddfs: rank %d announced %d ids, delivered %d: %w",
				src, e.counts[src], len(payload), ErrSizeMismatch)
		}
		received[src] = payload
	}
	e.dataExchanged = true
	e.received = received

	return received, nil
}

// drainSends blocks until every outgoing send has completed. Called
// last: the sends were free to stay in flight through the local passes.
func (e *exchange) drainSends() error {
	if err := e.comm.WaitAll(e.sends...); err != nil {
		return fmt.Errorf("ddfs: send drain: %w", err)
	}

	return nil
}

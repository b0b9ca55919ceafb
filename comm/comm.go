// SPDX-License-Identifier: MIT
// Package: ravine/comm
//
// comm.go — the per-rank endpoint: non-blocking point-to-point
// operations and rank-synchronous collectives.

package comm

import "fmt"

// Comm is one rank's endpoint into a World. A Comm is owned by exactly
// one worker goroutine; Comms of different ranks may be used concurrently.
type Comm struct {
	world *World
	rank  int
}

// Rank returns this endpoint's rank.
func (c *Comm) Rank() int {
	return c.rank
}

// Size returns the world size.
func (c *Comm) Size() int {
	return c.world.size
}

// Send posts a non-blocking send of payload to dst under tag and
// returns immediately. The payload is copied, so the caller may reuse
// its buffer; the send itself may remain in flight until the matching
// receive completes. Invalid arguments yield an already-failed Request.
func (c *Comm) Send(dst, tag int, payload []int) *Request {
	if err := c.world.check(dst, tag); err != nil {
		return failedRequest(fmt.Errorf("Send: %w", err))
	}

	msg := append([]int(nil), payload...)
	ch := c.world.mail[c.rank][dst][tag]
	r := newRequest()
	select {
	case ch <- msg:
		// Mailbox had room: the send completed inline.
		r.complete(nil)
	default:
		// Mailbox full: hand the delivery to a goroutine and let the
		// request complete when the receiver drains it.
		go func() {
			ch <- msg
			r.complete(nil)
		}()
	}

	return r
}

// Recv posts a non-blocking receive from src under tag. The payload is
// available through Request.Payload once the request has been waited on.
func (c *Comm) Recv(src, tag int) *Request {
	if err := c.world.check(src, tag); err != nil {
		return failedRequest(fmt.Errorf("Recv: %w", err))
	}

	ch := c.world.mail[src][c.rank][tag]
	r := newRequest()
	go func() {
		r.payload = <-ch
		r.complete(nil)
	}()

	return r
}

// WaitAll blocks until every request in reqs has completed and returns
// the first error encountered, if any. Nil entries are skipped. This is
// the model's only blocking point: it stalls the calling worker alone.
func (c *Comm) WaitAll(reqs ...*Request) error {
	var firstErr error
	for _, r := range reqs {
		if r == nil {
			continue
		}
		if err := r.Wait(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Bcast distributes value from root to every rank and returns the
// broadcast value. Every rank must call Bcast with the same root, in
// the same collective order.
func (c *Comm) Bcast(root, value int) int {
	w := c.world
	if c.rank == root {
		for dst := 0; dst < w.size; dst++ {
			if dst != root {
				w.coll[root][dst] <- value
			}
		}

		return value
	}

	return <-w.coll[root][c.rank]
}

// ReduceSum combines each rank's value into a global sum delivered to
// every rank.
func (c *Comm) ReduceSum(value int) int {
	return c.reduce(value, func(a, b int) int { return a + b })
}

// ReduceMax combines each rank's value into a global maximum delivered
// to every rank.
func (c *Comm) ReduceMax(value int) int {
	return c.reduce(value, func(a, b int) int {
		if b > a {
			return b
		}

		return a
	})
}

// Barrier blocks until every rank has entered it.
func (c *Comm) Barrier() {
	c.reduce(0, func(int, int) int { return 0 })
}

// reduce gathers every rank's value at collectiveRoot, folds with op in
// ascending rank order, and fans the result back out. Rank-synchronous:
// no rank returns before every rank has contributed.
func (c *Comm) reduce(value int, op func(acc, v int) int) int {
	w := c.world
	if c.rank == collectiveRoot {
		acc := value
		for src := 0; src < w.size; src++ {
			if src != collectiveRoot {
				acc = op(acc, <-w.coll[src][collectiveRoot])
			}
		}
		for dst := 0; dst < w.size; dst++ {
			if dst != collectiveRoot {
				w.coll[collectiveRoot][dst] <- acc
			}
		}

		return acc
	}

	w.coll[c.rank][collectiveRoot] <- value

	return <-w.coll[collectiveRoot][c.rank]
}

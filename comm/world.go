// SPDX-License-Identifier: MIT
// Package: ravine/comm
//
// world.go — World construction and per-rank endpoints.

package comm

import (
	"fmt"
	"sync/atomic"
)

// collectiveRoot is the rank that aggregates reductions and releases
// barriers. Fixed, as in the benchmark it models.
const collectiveRoot = 0

// World owns every mailbox between ranks. One World backs one run;
// all Comm endpoints share it.
type World struct {
	size int

	// mail[src][dst][tag] is the FIFO mailbox for point-to-point messages.
	mail [][][]chan []int

	// coll[src][dst] carries collective scalars (broadcast, reduction,
	// barrier tokens), kept apart from mail so collectives can never
	// consume a traversal payload.
	coll [][]chan int

	closed atomic.Bool
}

// NewWorld allocates mailboxes for size ranks.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewWorld: size=%d: %w", size, ErrWorldSize)
	}

	w := &World{
		size: size,
		mail: make([][][]chan []int, size),
		coll: make([][]chan int, size),
	}
	for src := 0; src < size; src++ {
		w.mail[src] = make([][]chan []int, size)
		w.coll[src] = make([]chan int, size)
		for dst := 0; dst < size; dst++ {
			tags := make([]chan []int, numTags)
			for t := range tags {
				// Capacity 1: at most one message per (src,dst,tag) is in
				// flight per exchange phase, so posts never block inline.
				tags[t] = make(chan []int, 1)
			}
			w.mail[src][dst] = tags
			w.coll[src][dst] = make(chan int, 1)
		}
	}

	return w, nil
}

// Size returns the number of ranks in the world.
func (w *World) Size() int {
	return w.size
}

// Comm returns rank's endpoint into the world.
func (w *World) Comm(rank int) (*Comm, error) {
	if rank < 0 || rank >= w.size {
		return nil, fmt.Errorf("Comm: rank=%d of %d: %w", rank, w.size, ErrRankRange)
	}

	return &Comm{world: w, rank: rank}, nil
}

// Close marks the world closed. Subsequent point-to-point posts fail
// with ErrClosed; operations already in flight are left to drain.
func (w *World) Close() {
	w.closed.Store(true)
}

// check validates a point-to-point operation's peer rank and tag.
func (w *World) check(peer, tag int) error {
	if w.closed.Load() {
		return ErrClosed
	}
	if peer < 0 || peer >= w.size {
		return fmt.Errorf("peer=%d of %d: %w", peer, w.size, ErrRankRange)
	}
	if tag < 0 || tag >= numTags {
		return fmt.Errorf("tag=%d: %w", tag, ErrTagRange)
	}

	return nil
}

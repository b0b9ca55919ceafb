// SPDX-License-Identifier: MIT
// Package: ravine/comm
//
// types.go — message tags, sentinel errors, and the Request handle
// returned by non-blocking operations.

package comm

import "errors"

// Message tags. The boundary exchange runs two phases on separate tags
// so a size message can never be mistaken for a payload.
const (
	// TagSize carries the one-integer count announcing a payload's length.
	TagSize = 0

	// TagData carries the vertex-id payload itself.
	TagData = 1

	numTags = 2
)

// Sentinel errors for substrate misuse.
var (
	// ErrWorldSize indicates NewWorld was asked for a non-positive size.
	ErrWorldSize = errors.New("comm: world size must be at least 1")

	// ErrRankRange indicates a rank, source, or destination outside [0, size).
	ErrRankRange = errors.New("comm: rank out of range")

	// ErrTagRange indicates a tag other than TagSize or TagData.
	ErrTagRange = errors.New("comm: tag out of range")

	// ErrClosed indicates a point-to-point operation on a closed World.
	ErrClosed = errors.New("comm: world is closed")
)

// Request is the handle for one outstanding non-blocking operation.
// It completes exactly once; Wait (or Comm.WaitAll) blocks until then.
type Request struct {
	done    chan struct{}
	payload []int
	err     error
}

// newRequest returns a pending request.
func newRequest() *Request {
	return &Request{done: make(chan struct{})}
}

// failedRequest returns an already-completed request carrying err.
func failedRequest(err error) *Request {
	r := newRequest()
	r.complete(err)

	return r
}

// complete finishes the request with err (nil on success).
func (r *Request) complete(err error) {
	r.err = err
	close(r.done)
}

// Wait blocks until the operation completes and returns its error.
func (r *Request) Wait() error {
	<-r.done

	return r.err
}

// Payload returns the received integers. Valid only for receive
// requests, and only after Wait (or WaitAll) has returned.
func (r *Request) Payload() []int {
	return r.payload
}

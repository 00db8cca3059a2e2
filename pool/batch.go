// File: pool/batch.go
// Deferred release of buffers in arrival order.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This implementation is NOT thread-safe and avoids mutex in hot-path.

package pool

import (
	"github.com/eapache/queue"

	"github.com/momentics/segview/api"
)

// ReleaseBatch collects buffers whose views are still being consumed and
// releases them together, oldest first.
type ReleaseBatch struct {
	q *queue.Queue
}

// NewReleaseBatch creates an empty batch.
func NewReleaseBatch() *ReleaseBatch {
	return &ReleaseBatch{q: queue.New()}
}

// Add schedules buf for release. Nil buffers are ignored.
func (b *ReleaseBatch) Add(buf api.Buffer) {
	if buf == nil {
		return
	}
	b.q.Add(buf)
}

// Len returns number of buffers waiting for release.
func (b *ReleaseBatch) Len() int {
	return b.q.Length()
}

// Oldest returns the buffer that the next Flush releases first.
func (b *ReleaseBatch) Oldest() (api.Buffer, bool) {
	if b.q.Length() == 0 {
		return nil, false
	}
	return b.q.Peek().(api.Buffer), true
}

// FlushN releases at most n buffers in FIFO order and returns how many
// were released.
func (b *ReleaseBatch) FlushN(n int) int {
	released := 0
	for released < n && b.q.Length() > 0 {
		b.q.Remove().(api.Buffer).Release()
		released++
	}
	return released
}

// Flush releases every pending buffer.
func (b *ReleaseBatch) Flush() int {
	return b.FlushN(b.q.Length())
}

// File: core/concurrency/queue.go
// Package concurrency provides the bounded lock-free queue behind pool free lists.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Multi-producer/multi-consumer ring of sequenced cells (Vyukov scheme).
// Producers and consumers never block; a full queue rejects, an empty one
// reports ok == false.

package concurrency

import "sync/atomic"

const cacheLinePad = 64

// BoundedQueue is an MPMC bounded queue with power-of-two capacity.
type BoundedQueue[T any] struct {
	head  atomic.Uint64
	_     [cacheLinePad]byte
	tail  atomic.Uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []cell[T]
}

type cell[T any] struct {
	seq  atomic.Uint64
	data T
}

// MaxCapacity is the largest capacity NewBoundedQueue accepts.
const MaxCapacity = 1 << 30

// NewBoundedQueue creates a queue holding at least capacity items
// (rounded up to a power of two, minimum 2). It panics above MaxCapacity.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity > MaxCapacity {
		panic("concurrency: queue capacity too large")
	}
	size := 2
	for size < capacity {
		size <<= 1
	}
	q := &BoundedQueue[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range q.cells {
		q.cells[i].seq.Store(uint64(i))
	}
	return q
}

// Enqueue adds val; returns false if full.
func (q *BoundedQueue[T]) Enqueue(val T) bool {
	for {
		tail := q.tail.Load()
		c := &q.cells[tail&q.mask]
		dif := int64(c.seq.Load()) - int64(tail)
		switch {
		case dif == 0:
			if q.tail.CompareAndSwap(tail, tail+1) {
				c.data = val
				c.seq.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false
		}
	}
}

// Dequeue removes and returns the oldest item; ok is false if empty.
func (q *BoundedQueue[T]) Dequeue() (item T, ok bool) {
	for {
		head := q.head.Load()
		c := &q.cells[head&q.mask]
		dif := int64(c.seq.Load()) - int64(head+1)
		switch {
		case dif == 0:
			if q.head.CompareAndSwap(head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.seq.Store(head + q.mask + 1)
				return item, true
			}
		case dif < 0:
			return item, false
		}
	}
}

// Len is a racy estimate of the number of queued items.
func (q *BoundedQueue[T]) Len() int {
	n := int64(q.tail.Load()) - int64(q.head.Load())
	if n < 0 {
		return 0
	}
	return int(n)
}

// Cap returns the queue capacity.
func (q *BoundedQueue[T]) Cap() int { return len(q.cells) }

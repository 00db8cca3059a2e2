// File: pool/buffer.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/segment"
)

// allocator produces and destroys slab storage.
type allocator interface {
	alloc(size int) (data []byte, mapped bool)
	free(data []byte, mapped bool)
}

type heapAllocator struct{}

func (heapAllocator) alloc(size int) ([]byte, bool) { return make([]byte, size), false }
func (heapAllocator) free([]byte, bool)             {}

// Buffer is a pooled slab. It implements api.Buffer.
type Buffer struct {
	data     []byte
	mapped   bool
	pool     *Pool
	released atomic.Bool
}

var _ api.Buffer = (*Buffer)(nil)

// Bytes returns the slab itself.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the slab size.
func (b *Buffer) Len() int { return len(b.data) }

// Copy returns a deep copy of the slab.
func (b *Buffer) Copy() []byte {
	dst := make([]byte, len(b.data))
	copy(dst, b.data)
	return dst
}

// View returns a zero-copy window [off, off+n) of the slab.
// The view is valid until the buffer is released.
func (b *Buffer) View(off, n int) (segment.ByteView, error) {
	if b.released.Load() {
		return segment.ByteView{}, api.ErrReleased
	}
	return segment.Bytes(b.data, off, n)
}

// Release returns the buffer to its pool. Releasing twice is a no-op.
func (b *Buffer) Release() {
	if !b.released.CompareAndSwap(false, true) {
		return
	}
	b.pool.put(b)
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.released.Load() }

// Package api
// Author: momentics
//
// Pooled byte storage that views are carved out of.
//
// Buffers may be heap slices, anonymous mmap regions or file mappings.
// Views over a buffer never copy; only Copy and View.CopyTo move bytes.

package api

// Buffer describes a fixed-length, releasable memory region.
type Buffer interface {
	// Bytes returns the region itself, not a copy.
	Bytes() []byte

	// Len returns the region length in bytes.
	Len() int

	// Copy returns a deep copy of the region as a standalone []byte.
	Copy() []byte

	// Release returns the region to its owner.
	// After Release, the buffer and every view derived from it must not be used.
	Release()
}

// BufferPool abstracts fixed-size buffer reuse.
type BufferPool interface {
	// Get returns a buffer of the pool's size class.
	Get() (Buffer, error)

	// Put returns buffer to pool; buffer must not be used afterwards.
	Put(b Buffer)

	// Stats exposes resource/accounting metrics for observability.
	Stats() BufferPoolStats
}

// BufferPoolStats aggregates buffer allocation/reuse stats.
type BufferPoolStats struct {
	TotalAlloc int64 // slabs created
	TotalFree  int64 // slabs destroyed on free-list overflow or Close
	Reused     int64 // Get calls served from the free list
	InUse      int64 // buffers handed out and not yet returned
	Idle       int64 // buffers parked on the free list
}

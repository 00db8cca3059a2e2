// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size byte slabs that segment views are carved out of.
// Slabs come from the Go heap or from anonymous mmap regions (linux), are
// recycled through a lock-free free list, and expose zero-copy windows via
// Buffer.View. A view borrowed from a buffer is valid until that buffer is
// released; afterwards the slab may be handed to another caller.
// See pool.go, buffer.go, batch.go for implementation details.
package pool

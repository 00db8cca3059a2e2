//go:build !linux

// File: pool/alloc_other.go
// Author: momentics <momentics@gmail.com>
//
// Heap-only slab allocation for platforms without the mmap path.

package pool

import "github.com/sirupsen/logrus"

func newMmapAllocator(_ bool, log logrus.FieldLogger) allocator {
	log.Debug("mmap slabs not supported on this platform, using heap")
	return heapAllocator{}
}

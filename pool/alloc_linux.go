//go:build linux

// File: pool/alloc_linux.go
// Package pool: Linux slab allocator using anonymous mmap.
//
// With HugePages set, regions are requested with MAP_HUGETLB and rounded
// to 2 MiB. Any mmap failure falls back to the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const hugePageSize = 2 << 20

type mmapAllocator struct {
	huge bool
	log  logrus.FieldLogger
}

func newMmapAllocator(huge bool, log logrus.FieldLogger) allocator {
	return &mmapAllocator{huge: huge, log: log}
}

// alloc maps exactly sz usable bytes. The returned slice keeps the full
// mapping as capacity so unix.Munmap can find it again.
func (a *mmapAllocator) alloc(sz int) ([]byte, bool) {
	length := sz
	flags := unix.MAP_ANON | unix.MAP_PRIVATE
	if a.huge {
		length = ((sz + hugePageSize - 1) / hugePageSize) * hugePageSize
		flags |= unix.MAP_HUGETLB
	}
	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil && a.huge {
		a.log.WithError(err).Debug("hugepage mmap failed, retrying with regular pages")
		data, err = unix.Mmap(-1, 0, sz, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	}
	if err != nil {
		a.log.WithError(err).WithField("size", sz).Debug("mmap failed, falling back to heap")
		return make([]byte, sz), false
	}
	return data[:sz], true
}

func (a *mmapAllocator) free(b []byte, mapped bool) {
	if !mapped {
		return
	}
	// Munmap wants the whole mapping: len must equal cap.
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		a.log.WithError(err).Warn("munmap failed")
	}
}

//go:build linux

// File: mapped/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mapped

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps size bytes of f. Empty files are not mapped (mmap rejects a
// zero length) and get an empty buffer instead.
func mapFile(f *os.File, size int, writable bool) ([]byte, bool, error) {
	if size == 0 {
		return []byte{}, false, nil
	}
	flags := unix.MAP_PRIVATE
	if writable {
		flags = unix.MAP_SHARED
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func syncFile(_ *os.File, data []byte, mapped bool) error {
	if !mapped {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func unmap(data []byte) error {
	return unix.Munmap(data)
}

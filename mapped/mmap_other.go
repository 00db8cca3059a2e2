//go:build !linux

// File: mapped/mmap_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mapped

import (
	"io"
	"os"
)

// mapFile reads the file into memory; writes are pushed back by syncFile.
func mapFile(f *os.File, size int, _ bool) ([]byte, bool, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func syncFile(f *os.File, data []byte, _ bool) error {
	if _, err := f.WriteAt(data, 0); err != nil {
		return err
	}
	return f.Sync()
}

func unmap([]byte) error { return nil }

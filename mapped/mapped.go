// Package mapped
// Author: momentics <momentics@gmail.com>
//
// File-backed storage for segment views.
//
// On linux the file is mapped with mmap: writable files use MAP_SHARED so
// view writes reach the file, read-only files use a private copy-on-write
// mapping so stray writes never do. Other platforms read the file into
// memory and write it back on Flush. Views are invalid after Close.

package mapped

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/segment"
)

// Options controls how a file is opened.
type Options struct {
	Writable bool               // open read-write and share writes with the file
	Logger   logrus.FieldLogger // nil means logrus.StandardLogger()
}

// File is an open file exposed as a byte buffer.
type File struct {
	path     string
	f        *os.File
	data     []byte
	mapped   bool
	writable bool
	log      logrus.FieldLogger
}

// Open maps path according to opts.
func Open(path string, opts Options) (*File, error) {
	flag := os.O_RDONLY
	if opts.Writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mapped: open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapped: stat %s: %w", path, err)
	}
	size := st.Size()
	if int64(int(size)) != size {
		f.Close()
		return nil, fmt.Errorf("mapped: %s too large (%d bytes)", path, size)
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"component": "mapped", "path": path})

	data, isMapped, err := mapFile(f, int(size), opts.Writable)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapped: map %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"size": size, "mmap": isMapped, "writable": opts.Writable}).Debug("file opened")
	return &File{
		path:     path,
		f:        f,
		data:     data,
		mapped:   isMapped,
		writable: opts.Writable,
		log:      log,
	}, nil
}

// Len returns the file size at open time.
func (m *File) Len() int { return len(m.data) }

// Path returns the file path.
func (m *File) Path() string { return m.path }

// Writable reports whether view writes reach the file.
func (m *File) Writable() bool { return m.writable }

// View returns a window [off, off+n) of the file contents.
func (m *File) View(off, n int) (segment.ByteView, error) {
	if m.f == nil {
		return segment.ByteView{}, api.ErrReleased
	}
	return segment.Bytes(m.data, off, n)
}

// Whole returns a view over the entire file.
func (m *File) Whole() (segment.ByteView, error) {
	return m.View(0, len(m.data))
}

// Flush makes view writes durable. It fails for read-only files.
func (m *File) Flush() error {
	if m.f == nil {
		return api.ErrReleased
	}
	if !m.writable {
		return api.ErrNotSupported.WithContext("op", "flush").WithContext("path", m.path)
	}
	if err := syncFile(m.f, m.data, m.mapped); err != nil {
		return fmt.Errorf("mapped: flush %s: %w", m.path, err)
	}
	return nil
}

// Close unmaps and closes the file. Every view obtained from m becomes
// invalid.
func (m *File) Close() error {
	if m.f == nil {
		return api.ErrReleased
	}
	var firstErr error
	if m.mapped {
		if err := unmap(m.data); err != nil {
			m.log.WithError(err).Warn("munmap failed")
			firstErr = err
		}
	}
	if err := m.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	m.f = nil
	m.data = nil
	m.log.Debug("file closed")
	return firstErr
}

// DumpState implements api.Debug.
func (m *File) DumpState() map[string]any {
	return map[string]any{
		"path":     m.path,
		"size":     len(m.data),
		"mmap":     m.mapped,
		"writable": m.writable,
		"closed":   m.f == nil,
	}
}

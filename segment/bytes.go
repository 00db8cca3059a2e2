// File: segment/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package segment

import (
	"io"

	"github.com/momentics/segview/api"
)

// ByteView exposes a byte window through the io interfaces. Reads and
// writes go straight to the backing buffer; only ByteSlice copies.
type ByteView struct {
	*View[byte]
}

var (
	_ io.ReaderAt = ByteView{}
	_ io.WriterAt = ByteView{}
	_ io.WriterTo = ByteView{}
)

// Bytes returns a ByteView over buf[offset:offset+length].
func Bytes(buf []byte, offset, length int) (ByteView, error) {
	v, err := New(buf, offset, length)
	if err != nil {
		return ByteView{}, err
	}
	return ByteView{View: v}, nil
}

// ByteSlice returns a copy of the window.
func (b ByteView) ByteSlice() []byte {
	out := make([]byte, b.Len())
	copy(out, b.win)
	return out
}

func (b ByteView) String() string {
	return string(b.win)
}

// ReadAt implements io.ReaderAt over logical offsets.
func (b ByteView) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, api.ErrOutOfRange.WithContext("offset", off)
	}
	if off >= int64(len(b.win)) {
		return 0, io.EOF
	}
	n := copy(p, b.win[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt. Writes that would run past the window
// fail with api.ErrInsufficientCapacity and write nothing.
func (b ByteView) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.win)) {
		return 0, api.ErrOutOfRange.WithContext("offset", off)
	}
	if int64(len(p)) > int64(len(b.win))-off {
		return 0, api.ErrInsufficientCapacity.
			WithContext("offset", off).
			WithContext("write_len", len(p)).
			WithContext("length", len(b.win))
	}
	return copy(b.win[off:], p), nil
}

// WriteTo implements io.WriterTo.
func (b ByteView) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.win)
	return int64(n), err
}

// TakeBytes is Take for byte views.
func (b ByteView) TakeBytes(n int) ByteView { return ByteView{View: b.Take(n)} }

// SkipBytes is Skip for byte views.
func (b ByteView) SkipBytes(n int) ByteView { return ByteView{View: b.Skip(n)} }

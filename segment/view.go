// File: segment/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package segment

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/internal/bounds"
)

// View is a fixed-size window over a borrowed slice.
type View[T any] struct {
	buf []T // backing buffer as supplied
	off int
	// win is buf[off:off+n:off+n]; its capacity stops at the window end,
	// so no expression on win can reach outside the window.
	win []T
	eq  func(a, b T) bool
}

var _ api.List[int] = (*View[int])(nil)

// New returns a view over buf[offset:offset+length] using == for searches.
func New[T comparable](buf []T, offset, length int) (*View[T], error) {
	return NewFunc(buf, offset, length, defaultEqual[T]())
}

// NewFunc is New for element types compared by eq.
func NewFunc[T any](buf []T, offset, length int, eq func(a, b T) bool) (*View[T], error) {
	if err := bounds.Window(len(buf), offset, length); err != nil {
		return nil, err
	}
	if eq == nil {
		panic("segment: nil equality function")
	}
	return &View[T]{
		buf: buf,
		off: offset,
		win: buf[offset : offset+length : offset+length],
		eq:  eq,
	}, nil
}

// MustNew is like New but panics on invalid bounds.
func MustNew[T comparable](buf []T, offset, length int) *View[T] {
	v, err := New(buf, offset, length)
	if err != nil {
		panic(err)
	}
	return v
}

// Of returns a view over the whole of buf.
func Of[T comparable](buf []T) *View[T] {
	return MustNew(buf, 0, len(buf))
}

func equal[T comparable](a, b T) bool { return a == b }

// defaultEqual returns == for T, guarded when T can carry interface values:
// == panics on interfaces holding the same uncomparable dynamic type.
func defaultEqual[T comparable]() func(a, b T) bool {
	if holdsInterface(reflect.TypeFor[T]()) {
		return dynamicEqual[T]
	}
	return equal[T]
}

func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// dynamicEqual treats values whose dynamic contents are uncomparable as
// unequal to everything.
func dynamicEqual[T comparable](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == y
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if !reflect.ValueOf(x).Comparable() || !reflect.ValueOf(y).Comparable() {
		return false
	}
	return x == y
}

// Array returns the backing buffer the view borrows.
func (v *View[T]) Array() []T { return v.buf }

// Offset returns the physical index of logical index 0.
func (v *View[T]) Offset() int { return v.off }

// Len returns the number of elements in the window.
func (v *View[T]) Len() int { return len(v.win) }

// IsFixedSize always reports true.
func (v *View[T]) IsFixedSize() bool { return true }

// IsReadOnly always reports false: elements are writable in place.
func (v *View[T]) IsReadOnly() bool { return false }

// Get returns the element at logical index i.
func (v *View[T]) Get(i int) (T, error) {
	if err := bounds.Index(i, len(v.win)); err != nil {
		var zero T
		return zero, err
	}
	return v.win[i], nil
}

// Set overwrites the element at logical index i in the backing buffer.
func (v *View[T]) Set(i int, x T) error {
	if err := bounds.Index(i, len(v.win)); err != nil {
		return err
	}
	v.win[i] = x
	return nil
}

// IndexOf returns the first logical index holding x, or -1.
// Only the window is scanned.
func (v *View[T]) IndexOf(x T) int {
	for i := range v.win {
		if v.eq(v.win[i], x) {
			return i
		}
	}
	return -1
}

// Contains reports whether x occurs inside the window.
func (v *View[T]) Contains(x T) bool {
	return v.IndexOf(x) >= 0
}

// CopyTo copies the window into dst starting at dst[off]. Nothing is
// written unless the whole window fits. Overlapping dst and backing buffer
// are handled like memmove.
func (v *View[T]) CopyTo(dst []T, off int) error {
	if err := bounds.Destination(len(dst), off, len(v.win)); err != nil {
		return err
	}
	copy(dst[off:], v.win)
	return nil
}

// All yields the elements in index order. Each element is read from the
// backing buffer when it is reached, so writes made during iteration show up.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.win {
			if !yield(v.win[i]) {
				return
			}
		}
	}
}

// Enumerate yields (logical index, element) pairs in index order.
func (v *View[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.win {
			if !yield(i, v.win[i]) {
				return
			}
		}
	}
}

// Insert is not supported by a fixed-size view.
func (v *View[T]) Insert(int, T) error { return notSupported("insert") }

// RemoveAt is not supported by a fixed-size view.
func (v *View[T]) RemoveAt(int) error { return notSupported("remove_at") }

// Append is not supported by a fixed-size view.
func (v *View[T]) Append(T) error { return notSupported("append") }

// Remove is not supported by a fixed-size view.
func (v *View[T]) Remove(T) (bool, error) { return false, notSupported("remove") }

// Clear is not supported by a fixed-size view.
func (v *View[T]) Clear() error { return notSupported("clear") }

func notSupported(op string) error {
	return api.ErrNotSupported.WithContext("op", op)
}

// Take returns a view over the first min(n, Len()) elements.
// Negative n yields an empty view.
func (v *View[T]) Take(n int) *View[T] {
	return v.sub(0, bounds.Take(n, len(v.win)))
}

// Skip returns a view over everything after the first min(n, Len()) elements.
func (v *View[T]) Skip(n int) *View[T] {
	k := bounds.Take(n, len(v.win))
	return v.sub(k, len(v.win)-k)
}

// Slice returns a view over logical range [from, to).
func (v *View[T]) Slice(from, to int) (*View[T], error) {
	if err := bounds.Range(from, to, len(v.win)); err != nil {
		return nil, err
	}
	return v.sub(from, to-from), nil
}

// sub builds a narrower view; callers have validated from and n.
func (v *View[T]) sub(from, n int) *View[T] {
	off := v.off + from
	return &View[T]{
		buf: v.buf,
		off: off,
		win: v.buf[off : off+n : off+n],
		eq:  v.eq,
	}
}

func (v *View[T]) String() string {
	return fmt.Sprintf("segment.View[offset=%d length=%d buffer=%d]", v.off, len(v.win), len(v.buf))
}

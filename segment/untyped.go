// File: segment/untyped.go
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

// Untyped adapts a View to api.UntypedList. It holds no state of its own;
// every call is checked against T and forwarded to the typed view.
type Untyped[T any] struct {
	v       *View[T]
	nilable bool
}

var _ api.UntypedList = Untyped[int]{}

// AsUntyped returns the loosely-typed facet of v.
func AsUntyped[T any](v *View[T]) Untyped[T] {
	return Untyped[T]{v: v, nilable: admitsNil(reflect.TypeFor[T]())}
}

func admitsNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// accept converts x to T. An untyped nil is accepted as the zero T only
// when T admits nil.
func (u Untyped[T]) accept(x any) (T, bool) {
	if x == nil {
		var zero T
		return zero, u.nilable
	}
	t, ok := x.(T)
	return t, ok
}

// Typed returns the wrapped view.
func (u Untyped[T]) Typed() *View[T] { return u.v }

func (u Untyped[T]) Len() int          { return u.v.Len() }
func (u Untyped[T]) IsFixedSize() bool { return true }
func (u Untyped[T]) IsReadOnly() bool  { return false }

// Get returns the element at logical index i boxed as any.
func (u Untyped[T]) Get(i int) (any, error) {
	x, err := u.v.Get(i)
	if err != nil {
		return nil, err
	}
	return x, nil
}

// Set stores x at logical index i after checking its type.
func (u Untyped[T]) Set(i int, x any) error {
	if err := bounds.Index(i, u.v.Len()); err != nil {
		return err
	}
	t, ok := u.accept(x)
	if !ok {
		return api.ErrTypeMismatch.
			WithContext("want", reflect.TypeFor[T]().String()).
			WithContext("got", fmt.Sprintf("%T", x))
	}
	return u.v.Set(i, t)
}

// IndexOf returns -1 for values of the wrong type.
func (u Untyped[T]) IndexOf(x any) int {
	t, ok := u.accept(x)
	if !ok {
		return -1
	}
	return u.v.IndexOf(t)
}

// Contains returns false for values of the wrong type.
func (u Untyped[T]) Contains(x any) bool {
	return u.IndexOf(x) >= 0
}

// CopyTo boxes every element into dst starting at dst[off].
func (u Untyped[T]) CopyTo(dst []any, off int) error {
	if same, ok := any(dst).([]T); ok {
		// T is any: dst may alias the backing buffer.
		return u.v.CopyTo(same, off)
	}
	if err := bounds.Destination(len(dst), off, u.v.Len()); err != nil {
		return err
	}
	for i, x := range u.v.Enumerate() {
		dst[off+i] = x
	}
	return nil
}

// All yields the elements boxed as any.
func (u Untyped[T]) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for x := range u.v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

func (u Untyped[T]) Insert(int, any) error    { return notSupported("insert") }
func (u Untyped[T]) RemoveAt(int) error       { return notSupported("remove_at") }
func (u Untyped[T]) Append(any) error         { return notSupported("append") }
func (u Untyped[T]) Remove(any) (bool, error) { return false, notSupported("remove") }
func (u Untyped[T]) Clear() error             { return notSupported("clear") }

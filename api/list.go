// Package api
// Author: momentics <momentics@gmail.com>
//
// Ordered-collection contracts shared by every view implementation.

package api

import "iter"

// Collection is the element-count facet of every list.
type Collection interface {
	// Len returns the number of elements.
	Len() int

	// IsFixedSize reports whether structural mutation is always rejected.
	IsFixedSize() bool

	// IsReadOnly reports whether element writes are rejected.
	IsReadOnly() bool
}

// List is the strongly-typed ordered-collection contract.
//
// Implementations that cannot change their size return ErrNotSupported
// from Insert, RemoveAt, Append, Remove and Clear without side effects.
type List[T any] interface {
	Collection

	// Get returns the element at position i, or ErrOutOfRange.
	Get(i int) (T, error)

	// Set overwrites the element at position i, or returns ErrOutOfRange.
	Set(i int, v T) error

	// IndexOf returns the first position holding v, or -1.
	IndexOf(v T) int

	// Contains reports whether v occurs in the list.
	Contains(v T) bool

	// CopyTo copies every element into dst starting at dst[off].
	// It either copies everything or returns an error without writing.
	CopyTo(dst []T, off int) error

	// All yields the elements in index order.
	All() iter.Seq[T]

	Insert(i int, v T) error
	RemoveAt(i int) error
	Append(v T) error
	Remove(v T) (bool, error)
	Clear() error
}

// UntypedList is the loosely-typed facet of List. Values whose dynamic type
// does not match the element type are "not found" for queries and
// ErrTypeMismatch for Set.
type UntypedList interface {
	Collection

	Get(i int) (any, error)
	Set(i int, v any) error
	IndexOf(v any) int
	Contains(v any) bool
	CopyTo(dst []any, off int) error
	All() iter.Seq[any]

	Insert(i int, v any) error
	RemoveAt(i int) error
	Append(v any) error
	Remove(v any) (bool, error)
	Clear() error
}

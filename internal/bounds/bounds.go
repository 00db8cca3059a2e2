// File: internal/bounds/bounds.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified index and range validation for views, pooled buffers and mappings.
// All call sites translating logical positions into a backing buffer go
// through these helpers, so the arithmetic lives in one place.
//
// Example usage:
//
//   if err := bounds.Window(len(buf), off, n); err != nil { ... }
//   if err := bounds.Index(i, n); err != nil { ... }
//
// Every check is overflow-safe: off+n is never computed before both
// operands are known to be non-negative and off <= total.

package bounds

import "github.com/momentics/segview/api"

// Window validates that [off, off+n) lies inside a buffer of length total.
func Window(total, off, n int) error {
	if off < 0 || n < 0 || off > total || n > total-off {
		return api.ErrInvalidBounds.
			WithContext("offset", off).
			WithContext("length", n).
			WithContext("buffer_len", total)
	}
	return nil
}

// Index validates a logical index against a view length.
func Index(i, n int) error {
	if i < 0 || i >= n {
		return api.ErrOutOfRange.
			WithContext("index", i).
			WithContext("length", n)
	}
	return nil
}

// Destination validates that n elements fit into dst of length total at off.
func Destination(total, off, n int) error {
	if off < 0 || off > total {
		return api.ErrOutOfRange.
			WithContext("dest_offset", off).
			WithContext("dest_len", total)
	}
	if n > total-off {
		return api.ErrInsufficientCapacity.
			WithContext("dest_offset", off).
			WithContext("dest_len", total).
			WithContext("required", n)
	}
	return nil
}

// Take clamps a requested count into [0, n].
func Take(want, n int) int {
	if want < 0 {
		return 0
	}
	if want > n {
		return n
	}
	return want
}

// Range validates a half-open sub-range [from, to) of a view of length n.
func Range(from, to, n int) error {
	if from < 0 || to < from || to > n {
		return api.ErrInvalidBounds.
			WithContext("from", from).
			WithContext("to", to).
			WithContext("length", n)
	}
	return nil
}

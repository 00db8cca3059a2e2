// Package segment
// Author: momentics <momentics@gmail.com>
//
// Fixed-size, zero-copy views over borrowed buffers.
//
// A View exposes the window [offset, offset+length) of a slice it does not
// own through the api.List contract. Elements can be read and overwritten in
// place; writes are visible to every other view and reference sharing the
// backing buffer. The window never grows or shrinks: Insert, RemoveAt,
// Append, Remove and Clear always fail with api.ErrNotSupported.
//
// Includes:
//   - View[T]: typed list facet, slicing helpers (Take, Skip, Slice)
//   - Untyped[T]: loosely-typed facet over the same view
//   - ByteView: io.ReaderAt / io.WriterAt / io.WriterTo over a byte window
//
// Views hold no locks. Callers sharing a backing buffer across goroutines
// must serialize mutation themselves. A view must not outlive the storage it
// borrows (pooled buffers and file mappings document when that ends).
package segment

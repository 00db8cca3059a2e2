// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake buffer and buffer pool implementations for testing.

package fake

import (
	"sync"

	"github.com/momentics/segview/api"
)

// Buffer is a fake implementation of api.Buffer that records releases.
type Buffer struct {
	mu        sync.Mutex
	data      []byte
	releases  int
	onRelease func(*Buffer)
}

// NewBuffer creates a new fake buffer over a copy of data.
func NewBuffer(data []byte) *Buffer {
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &Buffer{data: dataCopy}
}

// Bytes returns the buffer data, or nil once released.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.releases > 0 {
		return nil
	}
	return b.data
}

// Len returns the buffer length.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Copy returns a deep copy of buffer contents.
func (b *Buffer) Copy() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]byte, len(b.data))
	copy(result, b.data)
	return result
}

// Release counts the call; the first one invokes the owning pool hook.
func (b *Buffer) Release() {
	b.mu.Lock()
	b.releases++
	first := b.releases == 1
	hook := b.onRelease
	b.mu.Unlock()
	if first && hook != nil {
		hook(b)
	}
}

// Releases returns how many times Release was called.
func (b *Buffer) Releases() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.releases
}

// BufferPool is a fake implementation of api.BufferPool that allocates
// fresh zeroed buffers and keeps accounting only.
type BufferPool struct {
	mu        sync.Mutex
	size      int
	allocated int64
	freed     int64
	inUse     int64
	closed    bool
}

// NewBufferPool creates a new fake buffer pool.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{size: size}
}

// Get returns a fresh buffer of the pool size.
func (p *BufferPool) Get() (api.Buffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, api.ErrPoolClosed
	}
	p.allocated++
	p.inUse++
	b := NewBuffer(make([]byte, p.size))
	b.onRelease = p.returned
	return b, nil
}

// Put releases b.
func (p *BufferPool) Put(b api.Buffer) {
	b.Release()
}

func (p *BufferPool) returned(*Buffer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.freed++
	if p.inUse > 0 {
		p.inUse--
	}
}

// Close makes further Get calls fail.
func (p *BufferPool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// Stats exposes resource/accounting metrics.
func (p *BufferPool) Stats() api.BufferPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return api.BufferPoolStats{
		TotalAlloc: p.allocated,
		TotalFree:  p.freed,
		InUse:      p.inUse,
	}
}

// DumpState implements api.Debug.
func (p *BufferPool) DumpState() map[string]any {
	s := p.Stats()
	return map[string]any{
		"total_alloc": s.TotalAlloc,
		"total_free":  s.TotalFree,
		"in_use":      s.InUse,
	}
}

var (
	_ api.Buffer     = (*Buffer)(nil)
	_ api.BufferPool = (*BufferPool)(nil)
	_ api.Debug      = (*BufferPool)(nil)
)

// File: pool/pool.go
// Package pool implements lock-free slab reuse for a single size class.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/momentics/segview/api"
	"github.com/momentics/segview/core/concurrency"
)

// Pool hands out fixed-size Buffers and recycles them through a bounded
// lock-free free list. All methods are safe for concurrent use.
type Pool struct {
	size  int
	alloc allocator
	free  *concurrency.BoundedQueue[*Buffer]
	log   logrus.FieldLogger

	closed     atomic.Bool
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	reused     atomic.Int64
	inUse      atomic.Int64
}

var (
	_ api.BufferPool = (*Pool)(nil)
	_ api.Debug      = (*Pool)(nil)
)

// New builds a pool from cfg.
func New(cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.logger().WithField("component", "pool")
	var alloc allocator = heapAllocator{}
	if cfg.UseMmap {
		alloc = newMmapAllocator(cfg.HugePages, log)
	}
	p := &Pool{
		size:  cfg.BufferSize,
		alloc: alloc,
		free:  concurrency.NewBoundedQueue[*Buffer](cfg.Capacity),
		log:   log,
	}
	log.WithFields(logrus.Fields{
		"buffer_size": p.size,
		"capacity":    p.free.Cap(),
		"mmap":        cfg.UseMmap,
	}).Debug("pool created")
	return p, nil
}

// BufferSize returns the size of every buffer handed out.
func (p *Pool) BufferSize() int { return p.size }

// Get returns a buffer; it satisfies api.BufferPool.
func (p *Pool) Get() (api.Buffer, error) {
	b, err := p.Acquire()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Acquire returns a buffer from the free list, allocating a new slab when
// the list is empty. Recycled slabs keep their previous contents.
func (p *Pool) Acquire() (*Buffer, error) {
	if p.closed.Load() {
		return nil, api.ErrPoolClosed
	}
	if b, ok := p.free.Dequeue(); ok {
		b.released.Store(false)
		p.reused.Add(1)
		p.inUse.Add(1)
		return b, nil
	}
	data, mapped := p.alloc.alloc(p.size)
	b := &Buffer{data: data, mapped: mapped, pool: p}
	p.totalAlloc.Add(1)
	p.inUse.Add(1)
	p.log.WithField("mapped", mapped).Debug("slab allocated")
	return b, nil
}

// Put releases b. Buffers from other pools or implementations are ignored.
func (p *Pool) Put(b api.Buffer) {
	if pb, ok := b.(*Buffer); ok && pb.pool == p {
		pb.Release()
	}
}

// put is called exactly once per Release.
func (p *Pool) put(b *Buffer) {
	p.inUse.Add(-1)
	if p.closed.Load() || !p.free.Enqueue(b) {
		p.destroy(b)
		return
	}
	// Close may have drained the free list before b landed on it.
	if p.closed.Load() {
		p.drain()
	}
}

// drain destroys every idle slab and returns how many it freed.
func (p *Pool) drain() int {
	n := 0
	for {
		b, ok := p.free.Dequeue()
		if !ok {
			return n
		}
		p.destroy(b)
		n++
	}
}

func (p *Pool) destroy(b *Buffer) {
	p.alloc.free(b.data, b.mapped)
	b.data = nil
	p.totalFree.Add(1)
	p.log.Debug("slab freed")
}

// Stats exposes allocation counters.
func (p *Pool) Stats() api.BufferPoolStats {
	return api.BufferPoolStats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalFree:  p.totalFree.Load(),
		Reused:     p.reused.Load(),
		InUse:      p.inUse.Load(),
		Idle:       int64(p.free.Len()),
	}
}

// DumpState implements api.Debug.
func (p *Pool) DumpState() map[string]any {
	s := p.Stats()
	return map[string]any{
		"buffer_size": p.size,
		"capacity":    p.free.Cap(),
		"closed":      p.closed.Load(),
		"total_alloc": s.TotalAlloc,
		"total_free":  s.TotalFree,
		"reused":      s.Reused,
		"in_use":      s.InUse,
		"idle":        s.Idle,
	}
}

// Close frees every idle slab and rejects further Acquire calls. Buffers
// still in use are freed when they are released.
func (p *Pool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return api.ErrPoolClosed
	}
	p.log.WithField("freed", p.drain()).Debug("pool closed")
	return nil
}

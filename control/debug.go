// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Probe registry for runtime inspection.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/segview/api"
)

// Probes holds registered debug sources.
type Probes struct {
	mu     sync.RWMutex
	probes map[string]api.Debug
}

// NewProbes creates an empty registry.
func NewProbes() *Probes {
	return &Probes{probes: make(map[string]api.Debug)}
}

// Register adds or replaces the probe stored under name.
func (p *Probes) Register(name string, d api.Debug) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes[name] = d
}

// RegisterFunc adapts a plain function into a probe.
func (p *Probes) RegisterFunc(name string, fn func() map[string]any) {
	p.Register(name, debugFunc(fn))
}

// Unregister drops name; unknown names are ignored.
func (p *Probes) Unregister(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.probes, name)
}

// Names returns registered probe names in sorted order.
func (p *Probes) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.probes))
	for k := range p.probes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DumpState merges every probe snapshot, prefixing keys with the probe name.
func (p *Probes) DumpState() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any)
	for name, d := range p.probes {
		for k, v := range d.DumpState() {
			out[name+"."+k] = v
		}
	}
	return out
}

type debugFunc func() map[string]any

func (f debugFunc) DumpState() map[string]any { return f() }

// File: pool/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config holds parameters immutable for the lifetime of a Pool.
type Config struct {
	BufferSize int  `yaml:"buffer_size"` // Bytes per slab; every Get returns exactly this many
	Capacity   int  `yaml:"capacity"`    // Free list slots, rounded up to a power of two
	UseMmap    bool `yaml:"use_mmap"`    // Back slabs with anonymous mmap instead of the Go heap
	HugePages  bool `yaml:"huge_pages"`  // Request MAP_HUGETLB (2 MiB pages); falls back silently

	Logger logrus.FieldLogger `yaml:"-"` // nil means logrus.StandardLogger()
}

// MaxCapacity bounds Config.Capacity so the power-of-two rounding of the
// free list cannot overflow.
const MaxCapacity = 1 << 30

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: 64 * 1024, // 64 KiB slabs
		Capacity:   1024,      // 1024 idle slabs kept for reuse
		UseMmap:    false,     // heap slabs by default
		HugePages:  false,
	}
}

func (c *Config) validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("pool: buffer size must be positive, got %d", c.BufferSize)
	}
	if c.Capacity <= 0 || c.Capacity > MaxCapacity {
		return fmt.Errorf("pool: capacity must be in [1, %d], got %d", MaxCapacity, c.Capacity)
	}
	return nil
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

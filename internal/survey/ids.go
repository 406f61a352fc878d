package survey

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces identities for steps and options.
// Implementations must never return the same id twice.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDs. It is the default generator.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// CounterGenerator issues monotonically increasing ids such as "opt-1".
// It is deterministic and intended for tests and reproducible fixtures.
type CounterGenerator struct {
	mu     sync.Mutex
	prefix string
	n      uint64
}

// NewCounterGenerator returns a generator whose ids start with prefix.
func NewCounterGenerator(prefix string) *CounterGenerator {
	return &CounterGenerator{prefix: prefix}
}

// NewID implements IDGenerator.
func (g *CounterGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n)
}

// Package cache implements the type cache spec.md §3.3 requires: "every
// expression's checked type is cached, keyed by AST node identity; a second
// visit of the same node returns the cached type without re-checking." The
// in-memory Memory cache is what every check path uses; Durable (backed by
// modernc.org/sqlite) is an optional second tier for long-lived driver
// processes that want the cache to survive a restart (SPEC_FULL.md §3).
package cache

import (
	"sync"

	"github.com/funvibe/specblock/internal/annast"
	"github.com/funvibe/specblock/internal/types"
)

// Memory is a process-local, concurrency-safe type cache. Per spec.md §5,
// the cache itself must tolerate concurrent checking of independent
// expression trees; a sync.RWMutex is sufficient since entries are never
// mutated once written (re-checking the same node is expected to produce
// the same type, so a racing duplicate write is harmless).
type Memory struct {
	mu      sync.RWMutex
	entries map[string]types.Type
}

// New returns an empty Memory cache.
func New() *Memory {
	return &Memory{entries: make(map[string]types.Type)}
}

// Get returns the cached type for expr's node identity, if present.
func (c *Memory) Get(expr annast.Expression) (types.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[expr.NodeIdentity()]
	return t, ok
}

// Put records t as the checked type for expr's node identity.
func (c *Memory) Put(expr annast.Expression, t types.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[expr.NodeIdentity()] = t
}

// Len reports how many nodes currently have a cached type, mostly useful in
// tests asserting that a second Check call hit the cache rather than
// re-checking (count stays the same).
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

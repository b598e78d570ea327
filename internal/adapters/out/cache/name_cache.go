// Package cache keeps counterparty name lists in process memory.
package cache

import (
	"slices"
	"sync"

	"trading/internal/core/domain/model/party"
)

// NameCache implements CounterpartyNameCache. Readers never see a list that
// is being replaced, and callers never share a slice with the cache.
type NameCache struct {
	mu    sync.RWMutex
	names map[party.Role][]string
}

func NewNameCache() *NameCache {
	return &NameCache{names: make(map[party.Role][]string)}
}

// Names returns a copy of the names of role and whether role was ever stored.
func (c *NameCache) Names(role party.Role) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names, ok := c.names[role]
	if !ok {
		return nil, false
	}
	return slices.Clone(names), true
}

// Store replaces the names of role.
func (c *NameCache) Store(role party.Role, names []string) {
	cp := slices.Clone(names)
	if cp == nil {
		cp = []string{}
	}

	c.mu.Lock()
	c.names[role] = cp
	c.mu.Unlock()
}

package booking

import "sync"

// suggestionCache stores the most recent suitability query result per request
// id. An entry with an empty room slice means "queried, nothing suitable",
// which the views must render differently from "never queried".
//
// Each lookup is tagged with a monotonically increasing generation so that
// overlapping queries for the same request resolve latest-wins: a completion
// carrying an older generation than the newest issued one is discarded.
type suggestionCache struct {
	mu      sync.RWMutex
	entries map[int64]suggestionEntry
	gens    map[int64]uint64
}

type suggestionEntry struct {
	rooms []Room
	gen   uint64
}

func newSuggestionCache() *suggestionCache {
	return &suggestionCache{
		entries: make(map[int64]suggestionEntry),
		gens:    make(map[int64]uint64),
	}
}

// Get returns the cached rooms for the request and whether a query has
// completed for it at all.
func (c *suggestionCache) Get(id int64) ([]Room, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return cloneRooms(entry.rooms), true
}

// NextGen issues the generation tag for a lookup that is about to start.
func (c *suggestionCache) NextGen(id int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[id]++
	return c.gens[id]
}

// Store installs a completed lookup unless a newer one has been issued since.
// It reports whether the result was kept.
func (c *suggestionCache) Store(id int64, gen uint64, rooms []Room) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gens[id] {
		return false
	}
	c.entries[id] = suggestionEntry{rooms: cloneRooms(rooms), gen: gen}
	return true
}

// Drop forgets the cached result for a request, e.g. once it turned terminal.
func (c *suggestionCache) Drop(id int64) {
	c.mu.Lock()
	delete(c.entries, id)
	delete(c.gens, id)
	c.mu.Unlock()
}

// Prune drops every cached result whose request id is not in keep.
func (c *suggestionCache) Prune(keep map[int64]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.entries {
		if _, ok := keep[id]; !ok {
			delete(c.entries, id)
			delete(c.gens, id)
		}
	}
}

func cloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return nil
	}
	out := make([]Room, len(rooms))
	copy(out, rooms)
	return out
}

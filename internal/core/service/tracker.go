package service

import (
	"sync"

	"github.com/spaolacci/murmur3"
)

// Tracker remembers a fingerprint of the last content seen per path.
type Tracker struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		hashes: make(map[string]uint64),
	}
}

// Changed records content for path and reports whether it differs from
// what was last recorded. The first sighting of a path counts as changed.
func (t *Tracker) Changed(path string, content []byte) bool {
	h := murmur3.Sum64(content)

	t.mu.Lock()
	defer t.mu.Unlock()
	prev, seen := t.hashes[path]
	t.hashes[path] = h
	return !seen || prev != h
}

// Forget drops the fingerprint for path.
func (t *Tracker) Forget(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.hashes, path)
}

// Len returns the number of tracked paths.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.hashes)
}

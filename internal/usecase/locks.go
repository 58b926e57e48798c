package usecase

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks serializes work per session id. Entries are dropped once nobody holds or waits for them.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{entries: make(map[string]*lockEntry)}
}

// Lock blocks until the session is free and returns the matching unlock func.
func (that *sessionLocks) Lock(id string) func() {
	that.mu.Lock()
	entry, ok := that.entries[id]
	if !ok {
		entry = &lockEntry{}
		that.entries[id] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.entries, id)
		}
		that.mu.Unlock()
	}
}

func (that *sessionLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

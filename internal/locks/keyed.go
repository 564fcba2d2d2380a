package locks

import (
	"sort"
	"sync"
)

// Keyed provides one mutex per string key, created lazily. Acquiring
// several keys at once always locks them in sorted order, so two
// transfers touching the same pair of users in opposite directions can
// never deadlock each other.
//
// Mutexes are kept for the life of the process; the key space (user and
// character IDs) is small and bounded for a single bot.
type Keyed struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

// NewKeyed creates a new keyed mutex set
func NewKeyed() *Keyed {
	return &Keyed{
		mutexes: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutexes for every distinct key and returns the
// function that releases them. Keys are deduplicated so locking
// ("a", "a") cannot self-deadlock.
func (k *Keyed) Lock(keys ...string) (unlock func()) {
	distinct := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, key)
	}
	sort.Strings(distinct)

	acquired := make([]*sync.Mutex, 0, len(distinct))
	for _, key := range distinct {
		acquired = append(acquired, k.mutex(key))
	}
	for _, m := range acquired {
		m.Lock()
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func (k *Keyed) mutex(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, exists := k.mutexes[key]
	if !exists {
		m = &sync.Mutex{}
		k.mutexes[key] = m
	}
	return m
}

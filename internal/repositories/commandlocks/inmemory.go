package commandlocks

import (
	"context"
	"sync"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the command lock
// repository. Useful for testing and development
type InMemoryRepository struct {
	mu    sync.RWMutex
	locks map[string]bool
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		locks: make(map[string]bool),
	}
}

// IsLocked reports whether a command is restricted to admins
func (r *InMemoryRepository) IsLocked(ctx context.Context, commandName string) (bool, error) {
	if commandName == "" {
		return false, botErr.InvalidArgument("command name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.locks[commandName], nil
}

// SetLocked locks or unlocks a command
func (r *InMemoryRepository) SetLocked(ctx context.Context, commandName string, locked bool) error {
	if commandName == "" {
		return botErr.InvalidArgument("command name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.locks[commandName] = locked
	return nil
}

// All returns a snapshot of every recorded lock state
func (r *InMemoryRepository) All(ctx context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]bool, len(r.locks))
	for name, locked := range r.locks {
		snapshot[name] = locked
	}
	return snapshot, nil
}

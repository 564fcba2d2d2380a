package commandlocks

import (
	"context"
	"log"
	"sync"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/storage"
)

// fileRepo implements Repository backed by a JSON state file mapping
// command name to locked flag
type fileRepo struct {
	mu    sync.RWMutex
	path  string
	locks map[string]bool
}

// NewFileRepository loads the command lock file at path, treating a
// corrupted file as empty after logging a warning
func NewFileRepository(path string) Repository {
	locks := make(map[string]bool)
	if err := storage.Load(path, &locks); err != nil {
		log.Printf("Corrupted command lock store %s, reinitializing: %v", path, err)
		locks = make(map[string]bool)
	}

	return &fileRepo{
		path:  path,
		locks: locks,
	}
}

// IsLocked reports whether a command is restricted to admins
func (r *fileRepo) IsLocked(ctx context.Context, commandName string) (bool, error) {
	if commandName == "" {
		return false, botErr.InvalidArgument("command name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.locks[commandName], nil
}

// SetLocked locks or unlocks a command
func (r *fileRepo) SetLocked(ctx context.Context, commandName string, locked bool) error {
	if commandName == "" {
		return botErr.InvalidArgument("command name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.locks[commandName] = locked
	return storage.Save(r.path, r.locks)
}

// All returns a snapshot of every recorded lock state
func (r *fileRepo) All(ctx context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]bool, len(r.locks))
	for name, locked := range r.locks {
		snapshot[name] = locked
	}
	return snapshot, nil
}

package ledger

import (
	"context"
	"log"
	"sync"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/storage"
)

// fileRepo implements Repository backed by a JSON state file mapping
// user ID to balance
type fileRepo struct {
	mu       sync.RWMutex
	path     string
	balances map[string]int64
}

// NewFileRepository loads the ledger state file at path, treating a
// corrupted file as an empty ledger after logging a warning
func NewFileRepository(path string) Repository {
	balances := make(map[string]int64)
	if err := storage.Load(path, &balances); err != nil {
		log.Printf("Corrupted ledger store %s, reinitializing: %v", path, err)
		balances = make(map[string]int64)
	}

	return &fileRepo{
		path:     path,
		balances: balances,
	}
}

// Balance returns the balance for a user, zero for unknown users
func (r *fileRepo) Balance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, botErr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.balances[userID], nil
}

// SetBalances applies the given balances as a single persisted update
func (r *fileRepo) SetBalances(ctx context.Context, balances map[string]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, balance := range balances {
		if balance < 0 {
			return botErr.Internalf("refusing to persist negative balance %d for user %s", balance, userID)
		}
	}
	for userID, balance := range balances {
		r.balances[userID] = balance
	}

	return storage.Save(r.path, r.balances)
}

// All returns a snapshot of every balance
func (r *fileRepo) All(ctx context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]int64, len(r.balances))
	for userID, balance := range r.balances {
		snapshot[userID] = balance
	}
	return snapshot, nil
}

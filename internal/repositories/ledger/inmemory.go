package ledger

import (
	"context"
	"sync"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the ledger repository
// Useful for testing and development
type InMemoryRepository struct {
	mu       sync.RWMutex
	balances map[string]int64
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		balances: make(map[string]int64),
	}
}

// Balance returns the balance for a user, zero for unknown users
func (r *InMemoryRepository) Balance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, botErr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.balances[userID], nil
}

// SetBalances applies the given balances as a single update
func (r *InMemoryRepository) SetBalances(ctx context.Context, balances map[string]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, balance := range balances {
		if balance < 0 {
			return botErr.Internalf("refusing to store negative balance %d for user %s", balance, userID)
		}
	}
	for userID, balance := range balances {
		r.balances[userID] = balance
	}
	return nil
}

// All returns a snapshot of every balance
func (r *InMemoryRepository) All(ctx context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]int64, len(r.balances))
	for userID, balance := range r.balances {
		snapshot[userID] = balance
	}
	return snapshot, nil
}

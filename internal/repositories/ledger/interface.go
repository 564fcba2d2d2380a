package ledger

//go:generate mockgen -destination=mock/mock.go -package=mockledger -source=interface.go

import "context"

// Repository defines the interface for gold balance persistence
type Repository interface {
	// Balance returns the balance for a user, zero for unknown users
	Balance(ctx context.Context, userID string) (int64, error)

	// SetBalances applies the given balances as a single persisted
	// update, so a multi-user transfer is durable as a unit
	SetBalances(ctx context.Context, balances map[string]int64) error

	// All returns a snapshot of every balance
	All(ctx context.Context) (map[string]int64, error)
}

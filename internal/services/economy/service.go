package economy

//go:generate mockgen -destination=mock/mock_service.go -package=mockeconomy -source=service.go

import (
	"context"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/locks"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
)

// Repository is an alias for the ledger repository interface
type Repository = ledger.Repository

// Service defines the gold economy interface. All mutations are
// linearizable per user; a transfer holds both user locks in a
// consistent order for its whole critical section.
type Service interface {
	// Balance returns the user's balance, zero for unknown users
	Balance(ctx context.Context, userID string) (int64, error)

	// Credit adds gold to a user and returns the new balance
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit removes gold from a user and returns the new balance
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// Transfer atomically moves gold between two users; on any failure
	// no balance changes
	Transfer(ctx context.Context, fromID, toID string, amount int64) error
}

// service implements the Service interface
type service struct {
	repository Repository
	userLocks  *locks.Keyed
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

// NewService creates a new economy service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
		userLocks:  locks.NewKeyed(),
	}
}

// Balance returns the user's balance, zero for unknown users
func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, botErr.InvalidArgument("user ID is required")
	}
	return s.repository.Balance(ctx, userID)
}

// Credit adds gold to a user and returns the new balance
func (s *service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, botErr.InvalidArgument("user ID is required")
	}
	if amount <= 0 {
		return 0, botErr.InvalidAmountf("amount must be greater than 0, got %d", amount)
	}

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	balance, err := s.repository.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}

	newBalance := balance + amount
	if err := s.repository.SetBalances(ctx, map[string]int64{userID: newBalance}); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Debit removes gold from a user and returns the new balance
func (s *service) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, botErr.InvalidArgument("user ID is required")
	}
	if amount <= 0 {
		return 0, botErr.InvalidAmountf("amount must be greater than 0, got %d", amount)
	}

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	balance, err := s.repository.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if balance < amount {
		return 0, botErr.InsufficientFundsf("balance %d is less than %d", balance, amount).
			WithMeta("balance", balance).
			WithMeta("amount", amount)
	}

	newBalance := balance - amount
	if err := s.repository.SetBalances(ctx, map[string]int64{userID: newBalance}); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Transfer atomically moves gold between two users
func (s *service) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if fromID == "" || toID == "" {
		return botErr.InvalidArgument("both user IDs are required")
	}
	if fromID == toID {
		return botErr.InvalidTransferf("cannot transfer gold to yourself")
	}
	if amount <= 0 {
		return botErr.InvalidAmountf("amount must be greater than 0, got %d", amount)
	}

	// Both users stay locked for the whole debit-then-credit so no
	// other transfer can interleave and break conservation
	unlock := s.userLocks.Lock(fromID, toID)
	defer unlock()

	fromBalance, err := s.repository.Balance(ctx, fromID)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return botErr.InsufficientFundsf("balance %d is less than %d", fromBalance, amount).
			WithMeta("balance", fromBalance).
			WithMeta("amount", amount)
	}

	toBalance, err := s.repository.Balance(ctx, toID)
	if err != nil {
		return err
	}

	// Single repository update: both sides land or neither does
	return s.repository.SetBalances(ctx, map[string]int64{
		fromID: fromBalance - amount,
		toID:   toBalance + amount,
	})
}

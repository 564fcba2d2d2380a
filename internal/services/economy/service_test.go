package economy_test

import (
	"context"
	"sync"
	"testing"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
	"github.com/Kekatrice/DiscordBotty/internal/services/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (economy.Service, *ledger.InMemoryRepository) {
	t.Helper()
	repo := ledger.NewInMemoryRepository()
	svc := economy.NewService(&economy.ServiceConfig{Repository: repo})
	return svc, repo
}

func totalBalance(t *testing.T, repo *ledger.InMemoryRepository) int64 {
	t.Helper()
	all, err := repo.All(context.Background())
	require.NoError(t, err)
	var sum int64
	for _, balance := range all {
		sum += balance
	}
	return sum
}

func TestService_CreditAndBalance(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	// Unknown users have a zero balance, not an error
	balance, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)

	newBalance, err := svc.Credit(ctx, "user-1", 100)
	require.NoError(t, err)
	assert.EqualValues(t, 100, newBalance)

	_, err = svc.Credit(ctx, "user-1", 0)
	assert.True(t, botErr.Is(err, botErr.CodeInvalidAmount))

	_, err = svc.Credit(ctx, "user-1", -10)
	assert.True(t, botErr.Is(err, botErr.CodeInvalidAmount))
}

func TestService_DebitInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Credit(ctx, "user-1", 50)
	require.NoError(t, err)

	_, err = svc.Debit(ctx, "user-1", 60)
	require.Error(t, err)
	assert.True(t, botErr.IsInsufficientFunds(err))

	// The failed debit left the balance untouched
	balance, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 50, balance)
}

func TestService_TransferConservation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	_, err := svc.Credit(ctx, "alice", 100)
	require.NoError(t, err)
	_, err = svc.Credit(ctx, "bob", 30)
	require.NoError(t, err)

	require.NoError(t, svc.Transfer(ctx, "alice", "bob", 40))

	aliceBalance, err := svc.Balance(ctx, "alice")
	require.NoError(t, err)
	bobBalance, err := svc.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.EqualValues(t, 60, aliceBalance)
	assert.EqualValues(t, 70, bobBalance)
	assert.EqualValues(t, 130, totalBalance(t, repo))
}

func TestService_TransferRejectedLeavesBalancesUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	// User A has 100 gold and tries to send 150
	_, err := svc.Credit(ctx, "user-a", 100)
	require.NoError(t, err)

	err = svc.Transfer(ctx, "user-a", "user-b", 150)
	require.Error(t, err)
	assert.True(t, botErr.IsInsufficientFunds(err))

	aBalance, err := svc.Balance(ctx, "user-a")
	require.NoError(t, err)
	bBalance, err := svc.Balance(ctx, "user-b")
	require.NoError(t, err)
	assert.EqualValues(t, 100, aBalance)
	assert.EqualValues(t, 0, bBalance)
}

func TestService_SelfTransferRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Credit(ctx, "user-1", 100)
	require.NoError(t, err)

	err = svc.Transfer(ctx, "user-1", "user-1", 10)
	require.Error(t, err)
	assert.True(t, botErr.Is(err, botErr.CodeInvalidTransfer))
}

func TestService_ConcurrentOpposingTransfers(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	_, err := svc.Credit(ctx, "alice", 1000)
	require.NoError(t, err)
	_, err = svc.Credit(ctx, "bob", 1000)
	require.NoError(t, err)

	// Hammer the same pair from both directions; the sum must be
	// conserved and nothing may deadlock or go negative
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Transfer(ctx, "alice", "bob", 7)
		}()
		go func() {
			defer wg.Done()
			_ = svc.Transfer(ctx, "bob", "alice", 5)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 2000, totalBalance(t, repo))

	aliceBalance, err := svc.Balance(ctx, "alice")
	require.NoError(t, err)
	bobBalance, err := svc.Balance(ctx, "bob")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, aliceBalance, int64(0))
	assert.GreaterOrEqual(t, bobBalance, int64(0))
}

func TestService_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Credit(ctx, "user-1", 100)
	require.NoError(t, err)

	// 30 concurrent debits of 10 against a balance of 100: exactly 10
	// can succeed
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Debit(ctx, "user-1", 10); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)

	balance, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}

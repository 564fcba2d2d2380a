package ledger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gold.json")

	repo := ledger.NewFileRepository(path)
	require.NoError(t, repo.SetBalances(ctx, map[string]int64{
		"user-1": 100,
		"user-2": 250,
	}))

	reloaded := ledger.NewFileRepository(path)

	balance, err := reloaded.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)

	all, err := reloaded.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"user-1": 100, "user-2": 250}, all)
}

func TestFileRepository_UnknownUserHasZeroBalance(t *testing.T) {
	repo := ledger.NewFileRepository(filepath.Join(t.TempDir(), "gold.json"))

	balance, err := repo.Balance(context.Background(), "stranger")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}

func TestFileRepository_RejectsNegativeBalance(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewFileRepository(filepath.Join(t.TempDir(), "gold.json"))

	err := repo.SetBalances(ctx, map[string]int64{"user-1": -5})
	require.Error(t, err)

	balance, err := repo.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}

func TestFileRepository_CorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gold.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	repo := ledger.NewFileRepository(path)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

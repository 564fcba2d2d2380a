package character_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kekatrice/DiscordBotty/internal/dice"
	domain "github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/characters"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
	"github.com/Kekatrice/DiscordBotty/internal/services/economy"
)

type fixture struct {
	service charSvc.Service
	economy economy.Service
	repo    charSvc.Repository
	roller  *dice.MockRoller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := characters.NewInMemoryRepository()
	econ := economy.NewService(&economy.ServiceConfig{
		Repository: ledger.NewInMemoryRepository(),
	})
	roller := dice.NewMockRoller()

	svc := charSvc.NewService(&charSvc.ServiceConfig{
		Repository: repo,
		Economy:    econ,
		Roller:     roller,
	})

	return &fixture{service: svc, economy: econ, repo: repo, roller: roller}
}

func (f *fixture) upload(t *testing.T, name string) *domain.Character {
	t.Helper()
	char, err := f.service.Upload(context.Background(), &charSvc.UploadInput{
		Name:        name,
		Description: "test character",
	})
	require.NoError(t, err)
	return char
}

func strPtr(s string) *string { return &s }

func TestUpload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	char, err := f.service.Upload(ctx, &charSvc.UploadInput{
		Name:        "Nyx",
		Description: "a shadow",
		Images:      []string{"https://example.com/nyx.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nyx", char.Name)
	assert.Equal(t, domain.StatusAlive, char.Status)
	assert.Empty(t, char.OwnerID)

	// Duplicate names collide case-insensitively
	_, err = f.service.Upload(ctx, &charSvc.UploadInput{Name: "NYX"})
	assert.True(t, botErr.IsAlreadyExists(err))

	// Empty names are rejected
	_, err = f.service.Upload(ctx, &charSvc.UploadInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, botErr.CodeInvalidArgument, botErr.GetCode(err))
}

func TestGetIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.upload(t, "Nyx")

	char, err := f.service.Get(context.Background(), "nYx")
	require.NoError(t, err)
	assert.Equal(t, "Nyx", char.Name)
}

func TestUpdateInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	t.Run("updates fields without touching others", func(t *testing.T) {
		char, err := f.service.UpdateInfo(ctx, &charSvc.UpdateInfoInput{
			Name:     "nyx",
			SideNote: strPtr("afraid of daylight"),
		})
		require.NoError(t, err)
		assert.Equal(t, "afraid of daylight", char.SideNote)
		assert.Equal(t, "test character", char.Description)
	})

	t.Run("rename moves the lookup key", func(t *testing.T) {
		_, err := f.service.UpdateInfo(ctx, &charSvc.UpdateInfoInput{
			Name:    "Nyx",
			NewName: strPtr("Nyxara"),
		})
		require.NoError(t, err)

		_, err = f.service.Get(ctx, "nyx")
		assert.True(t, botErr.IsNotFound(err))

		char, err := f.service.Get(ctx, "nyxara")
		require.NoError(t, err)
		assert.Equal(t, "Nyxara", char.Name)
	})

	t.Run("rename onto an existing name is rejected", func(t *testing.T) {
		f.upload(t, "Rex")
		_, err := f.service.UpdateInfo(ctx, &charSvc.UpdateInfoInput{
			Name:    "Rex",
			NewName: strPtr("NYXARA"),
		})
		assert.True(t, botErr.IsAlreadyExists(err))
	})

	t.Run("case-only rename keeps the record", func(t *testing.T) {
		char, err := f.service.UpdateInfo(ctx, &charSvc.UpdateInfoInput{
			Name:    "nyxara",
			NewName: strPtr("NyxAra"),
		})
		require.NoError(t, err)
		assert.Equal(t, "NyxAra", char.Name)

		all, err := f.service.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestKillAndRevive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Rex")

	char, err := f.service.Kill(ctx, "rex", "dragon fire")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeceased, char.Status)
	assert.Equal(t, "dragon fire", char.CauseOfDeath)

	// Revive restores life but keeps the recorded cause as history
	char, err = f.service.Revive(ctx, "rex")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAlive, char.Status)
	assert.Equal(t, "dragon fire", char.CauseOfDeath)
}

func TestClaim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("successful claim sets the owner", func(t *testing.T) {
		f.upload(t, "Nyx")
		char, err := f.service.Claim(ctx, "nyx", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", char.OwnerID)
	})

	t.Run("claimed characters cannot be claimed again", func(t *testing.T) {
		_, err := f.service.Claim(ctx, "nyx", "user-2")
		require.Error(t, err)
		assert.True(t, botErr.IsAlreadyClaimed(err))
		assert.Equal(t, "user-1", botErr.GetMeta(err)["owner_id"])
	})

	t.Run("deceased characters cannot be claimed", func(t *testing.T) {
		f.upload(t, "Rex")
		_, err := f.service.Kill(ctx, "Rex", "old age")
		require.NoError(t, err)

		_, err = f.service.Claim(ctx, "rex", "user-2")
		require.Error(t, err)
		assert.Equal(t, botErr.CodeNotAlive, botErr.GetCode(err))
	})
}

func TestClaimRaceHasExactlyOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	const claimants = 50

	var wg sync.WaitGroup
	winners := make(chan string, claimants)
	losers := make(chan error, claimants)

	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", id)
			if _, err := f.service.Claim(ctx, "nyx", userID); err != nil {
				losers <- err
			} else {
				winners <- userID
			}
		}(i)
	}
	wg.Wait()
	close(winners)
	close(losers)

	var winnerIDs []string
	for id := range winners {
		winnerIDs = append(winnerIDs, id)
	}
	require.Len(t, winnerIDs, 1, "exactly one claim must succeed")

	lost := 0
	for err := range losers {
		lost++
		assert.True(t, botErr.IsAlreadyClaimed(err))
		assert.Equal(t, winnerIDs[0], botErr.GetMeta(err)["owner_id"])
	}
	assert.Equal(t, claimants-1, lost)

	char, err := f.service.Get(ctx, "nyx")
	require.NoError(t, err)
	assert.Equal(t, winnerIDs[0], char.OwnerID)
}

func TestRelease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	_, err := f.service.Claim(ctx, "nyx", "user-1")
	require.NoError(t, err)

	t.Run("non-owners cannot release", func(t *testing.T) {
		err := f.service.Release(ctx, "nyx", "user-2")
		require.Error(t, err)
		assert.True(t, botErr.IsUnauthorized(err))
	})

	t.Run("owner release clears owner and sale price", func(t *testing.T) {
		_, err := f.service.Sell(ctx, "nyx", "user-1", 50)
		require.NoError(t, err)

		require.NoError(t, f.service.Release(ctx, "nyx", "user-1"))

		char, err := f.service.Get(ctx, "nyx")
		require.NoError(t, err)
		assert.Empty(t, char.OwnerID)
		assert.Zero(t, char.SalePrice, "an unowned character must never carry a sale price")
	})

	t.Run("releasing an unclaimed character fails", func(t *testing.T) {
		err := f.service.Release(ctx, "nyx", "user-1")
		require.Error(t, err)
	})
}

func TestGive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	_, err := f.service.Claim(ctx, "nyx", "user-1")
	require.NoError(t, err)
	_, err = f.service.Sell(ctx, "nyx", "user-1", 75)
	require.NoError(t, err)

	require.NoError(t, f.service.Give(ctx, "nyx", "user-1", "user-2"))

	char, err := f.service.Get(ctx, "nyx")
	require.NoError(t, err)
	assert.Equal(t, "user-2", char.OwnerID)
	assert.Zero(t, char.SalePrice, "a gift clears the previous owner's listing")

	// The old owner no longer has any say
	err = f.service.Give(ctx, "nyx", "user-1", "user-3")
	assert.True(t, botErr.IsUnauthorized(err))
}

func TestSell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	t.Run("unowned characters cannot be listed", func(t *testing.T) {
		_, err := f.service.Sell(ctx, "nyx", "user-1", 100)
		assert.True(t, botErr.IsUnauthorized(err))
	})

	_, err := f.service.Claim(ctx, "nyx", "user-1")
	require.NoError(t, err)

	t.Run("price must be positive", func(t *testing.T) {
		_, err := f.service.Sell(ctx, "nyx", "user-1", 0)
		require.Error(t, err)
		assert.Equal(t, botErr.CodeInvalidAmount, botErr.GetCode(err))
	})

	t.Run("owner lists at a positive price", func(t *testing.T) {
		char, err := f.service.Sell(ctx, "nyx", "user-1", 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), char.SalePrice)
		assert.True(t, char.IsForSale())
	})
}

func TestBuy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	_, err := f.service.Claim(ctx, "nyx", "seller")
	require.NoError(t, err)
	_, err = f.service.Sell(ctx, "nyx", "seller", 100)
	require.NoError(t, err)

	t.Run("buyer without funds keeps nothing", func(t *testing.T) {
		_, creditErr := f.economy.Credit(ctx, "broke", 40)
		require.NoError(t, creditErr)

		_, err := f.service.Buy(ctx, "nyx", "broke")
		require.Error(t, err)
		assert.True(t, botErr.IsInsufficientFunds(err))

		char, getErr := f.service.Get(ctx, "nyx")
		require.NoError(t, getErr)
		assert.Equal(t, "seller", char.OwnerID, "failed purchase must not move ownership")
		assert.Equal(t, int64(100), char.SalePrice)

		balance, balErr := f.economy.Balance(ctx, "broke")
		require.NoError(t, balErr)
		assert.Equal(t, int64(40), balance, "failed purchase must not move gold")
	})

	t.Run("funded buyer gets character, seller gets gold", func(t *testing.T) {
		_, creditErr := f.economy.Credit(ctx, "buyer", 150)
		require.NoError(t, creditErr)

		result, err := f.service.Buy(ctx, "nyx", "buyer")
		require.NoError(t, err)
		assert.Equal(t, "seller", result.SellerID)
		assert.Equal(t, int64(100), result.Price)
		assert.Equal(t, "buyer", result.Character.OwnerID)
		assert.Zero(t, result.Character.SalePrice)

		buyerBal, _ := f.economy.Balance(ctx, "buyer")
		sellerBal, _ := f.economy.Balance(ctx, "seller")
		assert.Equal(t, int64(50), buyerBal)
		assert.Equal(t, int64(100), sellerBal)
	})

	t.Run("a completed sale cannot be bought again", func(t *testing.T) {
		_, creditErr := f.economy.Credit(ctx, "late", 500)
		require.NoError(t, creditErr)
		_, err := f.service.Buy(ctx, "nyx", "late")
		require.Error(t, err)
		assert.Equal(t, botErr.CodeInvalidArgument, botErr.GetCode(err))
	})
}

func TestListOwnedBy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.upload(t, "Zara")
	f.upload(t, "Ash")
	f.upload(t, "Milo")

	_, err := f.service.Claim(ctx, "zara", "user-1")
	require.NoError(t, err)
	_, err = f.service.Claim(ctx, "ash", "user-1")
	require.NoError(t, err)
	_, err = f.service.Claim(ctx, "milo", "user-2")
	require.NoError(t, err)

	owned, err := f.service.ListOwnedBy(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Ash", owned[0].Name)
	assert.Equal(t, "Zara", owned[1].Name)
}

func TestRandomClaimable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("empty store has no candidates", func(t *testing.T) {
		_, err := f.service.RandomClaimable(ctx)
		assert.True(t, botErr.IsNotFound(err))
	})

	f.upload(t, "Zara")
	f.upload(t, "Ash")
	f.upload(t, "Milo")

	t.Run("picks from the sorted claimable pool", func(t *testing.T) {
		f.roller.SetNextRoll(1) // sorted pool: Ash, Milo, Zara
		char, err := f.service.RandomClaimable(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Milo", char.Name)
	})

	t.Run("claimed and deceased characters are excluded", func(t *testing.T) {
		_, err := f.service.Claim(ctx, "ash", "user-1")
		require.NoError(t, err)
		_, err = f.service.Kill(ctx, "zara", "poison")
		require.NoError(t, err)

		f.roller.SetNextRoll(0)
		char, err := f.service.RandomClaimable(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Milo", char.Name)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.upload(t, "Nyx")

	require.NoError(t, f.service.Delete(ctx, "NYX"))

	_, err := f.service.Get(ctx, "nyx")
	assert.True(t, botErr.IsNotFound(err))

	err = f.service.Delete(ctx, "nyx")
	assert.True(t, botErr.IsNotFound(err))
}

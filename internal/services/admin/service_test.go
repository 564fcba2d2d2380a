package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/commandlocks"
	adminSvc "github.com/Kekatrice/DiscordBotty/internal/services/admin"
)

func newService(adminIDs ...string) adminSvc.Service {
	return adminSvc.NewService(&adminSvc.ServiceConfig{
		Repository: commandlocks.NewInMemoryRepository(),
		AdminIDs:   adminIDs,
	})
}

func TestIsAdmin(t *testing.T) {
	svc := newService("admin-1", "admin-2")

	assert.True(t, svc.IsAdmin("admin-1"))
	assert.True(t, svc.IsAdmin("admin-2"))
	assert.False(t, svc.IsAdmin("user-1"))
	assert.False(t, svc.IsAdmin(""))
}

func TestAuthorize(t *testing.T) {
	svc := newService("admin-1")
	ctx := context.Background()

	t.Run("unlocked commands are open to everyone", func(t *testing.T) {
		assert.NoError(t, svc.Authorize(ctx, "claim", "user-1"))
	})

	t.Run("locked commands reject non-admins", func(t *testing.T) {
		require.NoError(t, svc.Lock(ctx, "claim"))

		err := svc.Authorize(ctx, "claim", "user-1")
		require.Error(t, err)
		assert.True(t, botErr.IsUnauthorized(err))

		assert.NoError(t, svc.Authorize(ctx, "claim", "admin-1"))
	})

	t.Run("unlock reopens the command", func(t *testing.T) {
		require.NoError(t, svc.Unlock(ctx, "claim"))
		assert.NoError(t, svc.Authorize(ctx, "claim", "user-1"))
	})
}

func TestLockedCommands(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	names, err := svc.LockedCommands(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, svc.Lock(ctx, "spawn"))
	require.NoError(t, svc.Lock(ctx, "kill"))
	require.NoError(t, svc.Lock(ctx, "revive"))
	require.NoError(t, svc.Unlock(ctx, "revive"))

	names, err = svc.LockedCommands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kill", "spawn"}, names)
}

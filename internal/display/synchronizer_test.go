package display_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kekatrice/DiscordBotty/internal/display"
	domain "github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	mockplatform "github.com/Kekatrice/DiscordBotty/internal/platform/mock"
)

func sent(id string) *platform.Message {
	return &platform.Message{ChannelID: "chan", MessageID: id}
}

func TestSyncPostsAllPagesFirstTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)

	messenger.EXPECT().SendMessage(gomock.Any(), "chan", "page-0").Return(sent("m0"), nil)
	messenger.EXPECT().SendMessage(gomock.Any(), "chan", "page-1").Return(sent("m1"), nil)
	messenger.EXPECT().SendMessage(gomock.Any(), "chan", "page-2").Return(sent("m2"), nil)

	err := sync.Sync(context.Background(), "chan", "roster", []string{"page-0", "page-1", "page-2"})
	require.NoError(t, err)
}

func TestSyncIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)

	messenger.EXPECT().SendMessage(gomock.Any(), "chan", gomock.Any()).Return(sent("m0"), nil).Times(2)

	pages := []string{"alpha", "beta"}
	require.NoError(t, sync.Sync(context.Background(), "chan", "roster", pages))

	// No further expectations: an unchanged refresh touches nothing
	require.NoError(t, sync.Sync(context.Background(), "chan", "roster", pages))
}

func TestSyncEditsChangedAndDeletesSurplus(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)
	ctx := context.Background()

	messenger.EXPECT().SendMessage(ctx, "chan", "old-0").Return(sent("m0"), nil)
	messenger.EXPECT().SendMessage(ctx, "chan", "old-1").Return(sent("m1"), nil)
	messenger.EXPECT().SendMessage(ctx, "chan", "old-2").Return(sent("m2"), nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"old-0", "old-1", "old-2"}))

	// Shrinking to two changed pages edits both and deletes the third
	messenger.EXPECT().EditMessage(ctx, "chan", "m0", "new-0").Return(nil)
	messenger.EXPECT().EditMessage(ctx, "chan", "m1", "new-1").Return(nil)
	messenger.EXPECT().DeleteMessage(ctx, "chan", "m2").Return(nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"new-0", "new-1"}))
}

func TestSyncGrowsByAppending(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)
	ctx := context.Background()

	messenger.EXPECT().SendMessage(ctx, "chan", "page-0").Return(sent("m0"), nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"page-0"}))

	// The existing page is untouched; only the new one is posted
	messenger.EXPECT().SendMessage(ctx, "chan", "page-1").Return(sent("m1"), nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"page-0", "page-1"}))
}

func TestSyncRecreatesExternallyDeletedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)
	ctx := context.Background()

	messenger.EXPECT().SendMessage(ctx, "chan", "v1").Return(sent("m0"), nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"v1"}))

	// The edit hits a hole; a fresh message replaces it
	messenger.EXPECT().EditMessage(ctx, "chan", "m0", "v2").
		Return(botErr.NotFound("message is gone"))
	messenger.EXPECT().SendMessage(ctx, "chan", "v2").Return(sent("m0-replacement"), nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"v2"}))

	// Later edits go to the replacement ID
	messenger.EXPECT().EditMessage(ctx, "chan", "m0-replacement", "v3").Return(nil)
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"v3"}))
}

func TestSyncTracksViewsIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mockplatform.NewMockMessenger(ctrl)
	sync := display.NewSynchronizer(messenger)
	ctx := context.Background()

	messenger.EXPECT().SendMessage(ctx, "chan", "graveyard content").Return(sent("g0"), nil)
	messenger.EXPECT().SendMessage(ctx, "chan", "roster content").Return(sent("r0"), nil)

	require.NoError(t, sync.Sync(ctx, "chan", "graveyard", []string{"graveyard content"}))
	require.NoError(t, sync.Sync(ctx, "chan", "roster", []string{"roster content"}))

	// Updating one view never touches the other's messages
	messenger.EXPECT().EditMessage(ctx, "chan", "g0", "updated").Return(nil)
	require.NoError(t, sync.Sync(ctx, "chan", "graveyard", []string{"updated"}))
}

func makeRoster(n int) []*domain.Character {
	chars := make([]*domain.Character, 0, n)
	for i := 0; i < n; i++ {
		chars = append(chars, &domain.Character{
			Name:   fmt.Sprintf("Char-%03d", i),
			Status: domain.StatusAlive,
		})
	}
	return chars
}

func TestBuildRosterPagesChunking(t *testing.T) {
	pages := display.BuildRosterPages(makeRoster(120), 50)
	require.Len(t, pages, 3)
	assert.Equal(t, 50, len(strings.Split(pages[0], "\n")))
	assert.Equal(t, 50, len(strings.Split(pages[1], "\n")))
	assert.Equal(t, 20, len(strings.Split(pages[2], "\n")))

	// Shrinking the roster shrinks the page count
	pages = display.BuildRosterPages(makeRoster(60), 50)
	require.Len(t, pages, 2)
}

func TestBuildRosterPagesMarkers(t *testing.T) {
	chars := []*domain.Character{
		{Name: "Claimed", Status: domain.StatusAlive, OwnerID: "user-1"},
		{Name: "Dead", Status: domain.StatusDeceased, CauseOfDeath: "poison"},
		{Name: "Free", Status: domain.StatusAlive},
	}

	pages := display.BuildRosterPages(chars, 50)
	require.Len(t, pages, 1)
	lines := strings.Split(pages[0], "\n")
	require.Len(t, lines, 3)

	// Sorted case-insensitively by name
	assert.Contains(t, lines[0], "\U0001F512")
	assert.Contains(t, lines[0], "<@user-1>")
	assert.Contains(t, lines[1], "\U0001F480")
	assert.Contains(t, lines[2], "\U0001F33F")
}

func TestBuildGraveyardPages(t *testing.T) {
	chars := []*domain.Character{
		{Name: "Alive", Status: domain.StatusAlive},
		{Name: "Rex", Status: domain.StatusDeceased, CauseOfDeath: "dragon fire"},
	}

	pages := display.BuildGraveyardPages(chars, 50)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "Rex")
	assert.Contains(t, pages[0], "dragon fire")
	assert.NotContains(t, pages[0], "Alive")

	pages = display.BuildGraveyardPages(nil, 50)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "empty")
}

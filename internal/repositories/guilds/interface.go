package guilds

//go:generate mockgen -destination=mock/mock.go -package=mockguilds -source=interface.go

import (
	"context"

	"github.com/Kekatrice/DiscordBotty/internal/domain/guild"
)

// Repository defines the interface for per-guild settings persistence
type Repository interface {
	// Get retrieves settings for a guild
	Get(ctx context.Context, guildID string) (*guild.Settings, error)

	// Put stores settings, inserting or replacing by guild ID
	Put(ctx context.Context, settings *guild.Settings) error

	// ListAll returns a snapshot of every guild's settings
	ListAll(ctx context.Context) ([]*guild.Settings, error)
}

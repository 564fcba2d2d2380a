package guilds

import (
	"context"
	"sync"

	"github.com/Kekatrice/DiscordBotty/internal/domain/guild"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the guild
// settings repository. Useful for testing and development
type InMemoryRepository struct {
	mu       sync.RWMutex
	settings map[string]*guild.Settings
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		settings: make(map[string]*guild.Settings),
	}
}

// Get retrieves settings for a guild
func (r *InMemoryRepository) Get(ctx context.Context, guildID string) (*guild.Settings, error) {
	if guildID == "" {
		return nil, botErr.InvalidArgument("guild ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, exists := r.settings[guildID]
	if !exists {
		return nil, botErr.NotFoundf("no settings for guild '%s'", guildID).
			WithMeta("guild_id", guildID)
	}

	return settings.Clone(), nil
}

// Put stores settings, inserting or replacing by guild ID
func (r *InMemoryRepository) Put(ctx context.Context, settings *guild.Settings) error {
	if settings == nil {
		return botErr.InvalidArgument("settings cannot be nil")
	}
	if settings.GuildID == "" {
		return botErr.InvalidArgument("guild ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.GuildID] = settings.Clone()
	return nil
}

// ListAll returns a snapshot of every guild's settings
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*guild.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*guild.Settings, 0, len(r.settings))
	for _, settings := range r.settings {
		result = append(result, settings.Clone())
	}
	return result, nil
}

package guilds

import (
	"context"
	"log"
	"sync"

	"github.com/Kekatrice/DiscordBotty/internal/domain/guild"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/storage"
)

// fileRepo implements Repository backed by a JSON state file keyed by
// guild ID. Hunting-ground timestamps ride through the file as RFC 3339
// strings via time.Time's JSON round-trip.
type fileRepo struct {
	mu       sync.RWMutex
	path     string
	settings map[string]*guild.Settings
}

// NewFileRepository loads the guild settings file at path, treating a
// corrupted file as empty after logging a warning
func NewFileRepository(path string) Repository {
	persisted := make(map[string]*guild.Settings)
	if err := storage.Load(path, &persisted); err != nil {
		log.Printf("Corrupted guild settings store %s, reinitializing: %v", path, err)
		persisted = make(map[string]*guild.Settings)
	}

	for guildID, settings := range persisted {
		if settings.GuildID == "" {
			settings.GuildID = guildID
		}
	}

	return &fileRepo{
		path:     path,
		settings: persisted,
	}
}

// Get retrieves settings for a guild
func (r *fileRepo) Get(ctx context.Context, guildID string) (*guild.Settings, error) {
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
func (r *fileRepo) Put(ctx context.Context, settings *guild.Settings) error {
	if settings == nil {
		return botErr.InvalidArgument("settings cannot be nil")
	}
	if settings.GuildID == "" {
		return botErr.InvalidArgument("guild ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.GuildID] = settings.Clone()
	return storage.Save(r.path, r.settings)
}

// ListAll returns a snapshot of every guild's settings
func (r *fileRepo) ListAll(ctx context.Context) ([]*guild.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*guild.Settings, 0, len(r.settings))
	for _, settings := range r.settings {
		result = append(result, settings.Clone())
	}
	return result, nil
}

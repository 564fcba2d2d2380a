package guild

//go:generate mockgen -destination=mock/mock_service.go -package=mockguild -source=service.go

import (
	"context"
	"time"

	"github.com/Kekatrice/DiscordBotty/internal/domain/guild"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/locks"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/guilds"
)

// Service manages per-guild channel configuration and spawn timing
type Service interface {
	// Get retrieves settings for a guild, or not_found if none exist
	Get(ctx context.Context, guildID string) (*guild.Settings, error)

	// ListAll returns every configured guild
	ListAll(ctx context.Context) ([]*guild.Settings, error)

	// SetGraveyard assigns the graveyard display channel
	SetGraveyard(ctx context.Context, guildID, channelID string) error

	// SetCharacterList assigns the roster display channel
	SetCharacterList(ctx context.Context, guildID, channelID string) error

	// SetHuntingGround assigns the spawn channel and its interval in
	// seconds. The spawn clock starts at the moment of configuration.
	SetHuntingGround(ctx context.Context, guildID, channelID string, intervalSeconds int64) error

	// MarkSpawned advances the guild's last-spawn time and persists it
	MarkSpawned(ctx context.Context, guildID string, at time.Time) error
}

type service struct {
	repository guilds.Repository
	guildLocks *locks.Keyed
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository guilds.Repository // Required
}

// NewService creates a new guild service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	return &service{
		repository: cfg.Repository,
		guildLocks: locks.NewKeyed(),
	}
}

func (s *service) Get(ctx context.Context, guildID string) (*guild.Settings, error) {
	if guildID == "" {
		return nil, botErr.InvalidArgument("guild ID is required")
	}
	return s.repository.Get(ctx, guildID)
}

func (s *service) ListAll(ctx context.Context) ([]*guild.Settings, error) {
	return s.repository.ListAll(ctx)
}

func (s *service) SetGraveyard(ctx context.Context, guildID, channelID string) error {
	return s.update(ctx, guildID, func(settings *guild.Settings) error {
		settings.GraveyardChannelID = channelID
		return nil
	})
}

func (s *service) SetCharacterList(ctx context.Context, guildID, channelID string) error {
	return s.update(ctx, guildID, func(settings *guild.Settings) error {
		settings.CharacterListChannelID = channelID
		return nil
	})
}

func (s *service) SetHuntingGround(ctx context.Context, guildID, channelID string, intervalSeconds int64) error {
	if intervalSeconds <= 0 {
		return botErr.InvalidAmountf("spawn interval must be greater than 0 seconds, got %d", intervalSeconds)
	}
	return s.update(ctx, guildID, func(settings *guild.Settings) error {
		settings.HuntingGround = &guild.HuntingGround{
			ChannelID: channelID,
			Interval:  intervalSeconds,
			LastSpawn: time.Now().UTC(),
		}
		return nil
	})
}

func (s *service) MarkSpawned(ctx context.Context, guildID string, at time.Time) error {
	return s.update(ctx, guildID, func(settings *guild.Settings) error {
		if settings.HuntingGround == nil {
			return botErr.NotFound("guild has no hunting ground configured")
		}
		settings.HuntingGround.LastSpawn = at.UTC()
		return nil
	})
}

// update runs a read-modify-write on one guild's settings under its
// lock, creating the settings record on first use
func (s *service) update(ctx context.Context, guildID string, mutate func(*guild.Settings) error) error {
	if guildID == "" {
		return botErr.InvalidArgument("guild ID is required")
	}

	unlock := s.guildLocks.Lock(guildID)
	defer unlock()

	settings, err := s.repository.Get(ctx, guildID)
	if err != nil {
		if !botErr.IsNotFound(err) {
			return err
		}
		settings = &guild.Settings{GuildID: guildID}
	}

	if err := mutate(settings); err != nil {
		return err
	}
	return s.repository.Put(ctx, settings)
}

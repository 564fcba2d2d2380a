package scheduler

import (
	"context"
	"log"
	"time"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/pagination"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
	guildSvc "github.com/Kekatrice/DiscordBotty/internal/services/guild"
)

// Scheduler periodically spawns claimable characters into each guild's
// hunting ground channel
type Scheduler struct {
	guilds     guildSvc.Service
	characters charSvc.Service
	messenger  platform.Messenger
	sessions   *pagination.Manager

	tickInterval time.Duration
	sessionIdle  time.Duration
}

// Config holds configuration for the scheduler
type Config struct {
	Guilds     guildSvc.Service   // Required
	Characters charSvc.Service    // Required
	Messenger  platform.Messenger // Required
	Sessions   *pagination.Manager

	// TickInterval is how often guilds are scanned for due spawns
	TickInterval time.Duration

	// SessionIdleTimeout is passed to each spawned claim session
	SessionIdleTimeout time.Duration
}

// New creates a scheduler
func New(cfg *Config) *Scheduler {
	if cfg.Guilds == nil {
		panic("guild service is required")
	}
	if cfg.Characters == nil {
		panic("character service is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}

	tick := cfg.TickInterval
	if tick <= 0 {
		tick = time.Second
	}
	idle := cfg.SessionIdleTimeout
	if idle <= 0 {
		idle = time.Minute
	}

	return &Scheduler{
		guilds:       cfg.Guilds,
		characters:   cfg.Characters,
		messenger:    cfg.Messenger,
		sessions:     cfg.Sessions,
		tickInterval: tick,
		sessionIdle:  idle,
	}
}

// Run scans for due spawns until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.tick(ctx, now)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// tick runs one scan. A failing guild is logged and skipped, never
// aborting the rest of the scan.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	all, err := s.guilds.ListAll(ctx)
	if err != nil {
		log.Printf("Spawn scan failed to list guilds: %v", err)
		return
	}

	for _, settings := range all {
		hg := settings.HuntingGround
		if hg == nil || hg.ChannelID == "" || !hg.Due(now) {
			continue
		}
		if err := s.spawn(ctx, settings.GuildID, hg.ChannelID, now); err != nil {
			log.Printf("Spawn in guild %s failed: %v", settings.GuildID, err)
		}
	}
}

// SpawnNow runs the spawn path for one guild immediately, as the
// manual spawn command does
func (s *Scheduler) SpawnNow(ctx context.Context, guildID string) error {
	settings, err := s.guilds.Get(ctx, guildID)
	if err != nil {
		return err
	}
	if settings.HuntingGround == nil || settings.HuntingGround.ChannelID == "" {
		return botErr.NotFound("guild has no hunting ground configured")
	}
	return s.spawn(ctx, guildID, settings.HuntingGround.ChannelID, time.Now())
}

// spawn posts one claimable character. The last-spawn time advances on
// every attempt, including the no-candidate and missing-channel cases,
// so the next tick never replays the same spawn.
func (s *Scheduler) spawn(ctx context.Context, guildID, channelID string, now time.Time) error {
	defer func() {
		if err := s.guilds.MarkSpawned(ctx, guildID, now); err != nil {
			log.Printf("Failed to record spawn time for guild %s: %v", guildID, err)
		}
	}()

	if !s.messenger.ChannelExists(ctx, channelID) {
		log.Printf("Hunting ground channel %s for guild %s is gone, skipping spawn", channelID, guildID)
		return nil
	}

	char, err := s.characters.RandomClaimable(ctx)
	if err != nil {
		if botErr.IsNotFound(err) {
			return nil
		}
		return err
	}

	embed := pagination.BuildCharacterEmbed(char, 0, true)
	msg, err := s.messenger.SendEmbed(ctx, channelID, embed)
	if err != nil {
		return err
	}

	if s.sessions != nil {
		return s.sessions.Open(ctx, &pagination.SessionConfig{
			Character:   char,
			Message:     msg,
			Claimable:   true,
			IdleTimeout: s.sessionIdle,
		})
	}
	return nil
}

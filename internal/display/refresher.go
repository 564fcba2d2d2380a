package display

import (
	"context"
	"log"
	"time"

	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
	guildSvc "github.com/Kekatrice/DiscordBotty/internal/services/guild"
)

// Refresher periodically re-renders the graveyard and roster channels
// of every configured guild
type Refresher struct {
	synchronizer *Synchronizer
	guilds       guildSvc.Service
	characters   charSvc.Service

	graveyardInterval time.Duration
	rosterInterval    time.Duration
	pageSize          int
}

// RefresherConfig holds configuration for the refresher
type RefresherConfig struct {
	Synchronizer *Synchronizer    // Required
	Guilds       guildSvc.Service // Required
	Characters   charSvc.Service  // Required

	GraveyardInterval time.Duration
	RosterInterval    time.Duration
	PageSize          int
}

// NewRefresher creates a refresher
func NewRefresher(cfg *RefresherConfig) *Refresher {
	if cfg.Synchronizer == nil {
		panic("synchronizer is required")
	}
	if cfg.Guilds == nil {
		panic("guild service is required")
	}
	if cfg.Characters == nil {
		panic("character service is required")
	}

	graveyard := cfg.GraveyardInterval
	if graveyard <= 0 {
		graveyard = 7 * time.Second
	}
	roster := cfg.RosterInterval
	if roster <= 0 {
		roster = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	return &Refresher{
		synchronizer:      cfg.Synchronizer,
		guilds:            cfg.Guilds,
		characters:        cfg.Characters,
		graveyardInterval: graveyard,
		rosterInterval:    roster,
		pageSize:          pageSize,
	}
}

// RunGraveyard refreshes graveyard channels until ctx is cancelled
func (r *Refresher) RunGraveyard(ctx context.Context) error {
	return r.loop(ctx, r.graveyardInterval, r.RefreshGraveyards)
}

// RunRoster refreshes roster channels until ctx is cancelled
func (r *Refresher) RunRoster(ctx context.Context) error {
	return r.loop(ctx, r.rosterInterval, r.RefreshRosters)
}

func (r *Refresher) loop(ctx context.Context, interval time.Duration, refresh func(context.Context) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := refresh(ctx); err != nil {
				log.Printf("Display refresh failed: %v", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RefreshGraveyards renders the deceased list into every configured
// graveyard channel once
func (r *Refresher) RefreshGraveyards(ctx context.Context) error {
	chars, err := r.characters.ListAll(ctx)
	if err != nil {
		return err
	}
	pages := BuildGraveyardPages(chars, r.pageSize)

	settings, err := r.guilds.ListAll(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, guild := range settings {
		if guild.GraveyardChannelID == "" {
			continue
		}
		if err := r.synchronizer.Sync(ctx, guild.GraveyardChannelID, TagGraveyard, pages); err != nil {
			log.Printf("Graveyard refresh failed for guild %s: %v", guild.GuildID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// RefreshRosters renders the full roster into every configured roster
// channel once
func (r *Refresher) RefreshRosters(ctx context.Context) error {
	chars, err := r.characters.ListAll(ctx)
	if err != nil {
		return err
	}
	pages := BuildRosterPages(chars, r.pageSize)

	settings, err := r.guilds.ListAll(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, guild := range settings {
		if guild.CharacterListChannelID == "" {
			continue
		}
		if err := r.synchronizer.Sync(ctx, guild.CharacterListChannelID, TagRoster, pages); err != nil {
			log.Printf("Roster refresh failed for guild %s: %v", guild.GuildID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

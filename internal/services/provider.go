package services

import (
	"github.com/Kekatrice/DiscordBotty/internal/dice"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/characters"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/commandlocks"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/guilds"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
	adminService "github.com/Kekatrice/DiscordBotty/internal/services/admin"
	characterService "github.com/Kekatrice/DiscordBotty/internal/services/character"
	economyService "github.com/Kekatrice/DiscordBotty/internal/services/economy"
	guildService "github.com/Kekatrice/DiscordBotty/internal/services/guild"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	EconomyService   economyService.Service
	GuildService     guildService.Service
	AdminService     adminService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository   characters.Repository
	LedgerRepository      ledger.Repository
	GuildRepository       guilds.Repository
	CommandLockRepository commandlocks.Repository
	Roller                dice.Roller
	AdminIDs              []string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	ledgerRepo := cfg.LedgerRepository
	if ledgerRepo == nil {
		ledgerRepo = ledger.NewInMemoryRepository()
	}

	guildRepo := cfg.GuildRepository
	if guildRepo == nil {
		guildRepo = guilds.NewInMemoryRepository()
	}

	lockRepo := cfg.CommandLockRepository
	if lockRepo == nil {
		lockRepo = commandlocks.NewInMemoryRepository()
	}

	econService := economyService.NewService(&economyService.ServiceConfig{
		Repository: ledgerRepo,
	})

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
		Economy:    econService,
		Roller:     cfg.Roller,
	})

	gldService := guildService.NewService(&guildService.ServiceConfig{
		Repository: guildRepo,
	})

	admService := adminService.NewService(&adminService.ServiceConfig{
		Repository: lockRepo,
		AdminIDs:   cfg.AdminIDs,
	})

	return &Provider{
		CharacterService: charService,
		EconomyService:   econService,
		GuildService:     gldService,
		AdminService:     admService,
	}
}

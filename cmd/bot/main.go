package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Kekatrice/DiscordBotty/internal/clients/imagesearch"
	"github.com/Kekatrice/DiscordBotty/internal/clients/wikipedia"
	"github.com/Kekatrice/DiscordBotty/internal/config"
	"github.com/Kekatrice/DiscordBotty/internal/display"
	"github.com/Kekatrice/DiscordBotty/internal/handlers/discord"
	"github.com/Kekatrice/DiscordBotty/internal/pagination"
	platformdiscord "github.com/Kekatrice/DiscordBotty/internal/platform/discord"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/characters"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/commandlocks"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/guilds"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/ledger"
	"github.com/Kekatrice/DiscordBotty/internal/scheduler"
	"github.com/Kekatrice/DiscordBotty/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	// Create file repositories
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	log.Printf("Persisting state under %s", cfg.Storage.DataDir)

	serviceProvider := services.NewProvider(&services.ProviderConfig{
		CharacterRepository:   characters.NewFileRepository(filepath.Join(cfg.Storage.DataDir, "characters.json")),
		LedgerRepository:      ledger.NewFileRepository(filepath.Join(cfg.Storage.DataDir, "gold.json")),
		GuildRepository:       guilds.NewFileRepository(filepath.Join(cfg.Storage.DataDir, "channel_settings.json")),
		CommandLockRepository: commandlocks.NewFileRepository(filepath.Join(cfg.Storage.DataDir, "command_locks.json")),
		AdminIDs:              cfg.AdminIDs,
	})

	// Create the platform adapters around the session
	messenger := platformdiscord.NewMessenger(dg)
	replyWaiter := platformdiscord.NewReplyWaiter(dg)
	defer replyWaiter.Close()

	// Create the Wikipedia client
	wikiClient := wikipedia.New(&wikipedia.Config{})

	// Create the image search client if an API key is configured
	var imageClient imagesearch.Client
	if cfg.Serper.APIKey != "" {
		imageClient = imagesearch.New(&imagesearch.Config{
			APIKey:  cfg.Serper.APIKey,
			BaseURL: cfg.Serper.BaseURL,
		})
	} else {
		log.Println("No SERPAPI_API_KEY found, image search commands disabled")
	}

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// State.User is populated once the gateway handshake completes
	sessions := pagination.NewManager(&pagination.ManagerConfig{
		Messenger:  messenger,
		Characters: serviceProvider.CharacterService,
		BotUserID:  dg.State.User.ID,
	})

	spawner := scheduler.New(&scheduler.Config{
		Guilds:             serviceProvider.GuildService,
		Characters:         serviceProvider.CharacterService,
		Messenger:          messenger,
		Sessions:           sessions,
		TickInterval:       cfg.Timers.SpawnTick,
		SessionIdleTimeout: cfg.Timers.SpawnIdleTimeout,
	})

	refresher := display.NewRefresher(&display.RefresherConfig{
		Synchronizer:      display.NewSynchronizer(messenger),
		Guilds:            serviceProvider.GuildService,
		Characters:        serviceProvider.CharacterService,
		GraveyardInterval: cfg.Timers.GraveyardRefresh,
		RosterInterval:    cfg.Timers.RosterRefresh,
		PageSize:          cfg.Timers.PageSize,
	})

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Sessions:        sessions,
		Scheduler:       spawner,
		Messenger:       messenger,
		ReplyWaiter:     replyWaiter,
		Wikipedia:       wikiClient,
		Images:          imageClient,
		Timers:          cfg.Timers,
	})

	// Register gateway handlers
	dg.AddHandler(handler.HandleInteraction)
	dg.AddHandler(handler.HandleReactionAdd)

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	// Run the background loops until an interrupt arrives
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return spawner.Run(gctx) })
	g.Go(func() error { return refresher.RunGraveyard(gctx) })
	g.Go(func() error { return refresher.RunRoster(gctx) })

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Background loop exited: %v", err)
	}

	fmt.Println("Shutting down...")
}

package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Kekatrice/DiscordBotty/internal/clients/imagesearch"
	"github.com/Kekatrice/DiscordBotty/internal/clients/wikipedia"
	"github.com/Kekatrice/DiscordBotty/internal/config"
	"github.com/Kekatrice/DiscordBotty/internal/dice"
	"github.com/Kekatrice/DiscordBotty/internal/pagination"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	"github.com/Kekatrice/DiscordBotty/internal/scheduler"
	"github.com/Kekatrice/DiscordBotty/internal/services"
	"github.com/Kekatrice/DiscordBotty/internal/uuid"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	sessions    *pagination.Manager
	scheduler   *scheduler.Scheduler
	messenger   platform.Messenger
	replyWaiter platform.ReplyWaiter
	wikipedia   wikipedia.Client
	images      imagesearch.Client
	roller      dice.Roller
	uuider      uuid.Generator
	timers      config.TimerConfig

	duels *duelTracker
}

// HandlerConfig holds configuration for creating the handler
type HandlerConfig struct {
	ServiceProvider *services.Provider  // Required
	Sessions        *pagination.Manager // Required
	Scheduler       *scheduler.Scheduler
	Messenger       platform.Messenger  // Required
	ReplyWaiter     platform.ReplyWaiter
	Wikipedia       wikipedia.Client
	Images          imagesearch.Client
	Roller          dice.Roller
	UUIDGenerator   uuid.Generator
	Timers          config.TimerConfig
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	if cfg.Sessions == nil {
		panic("pagination manager is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.NewGoogleUUIDGenerator()
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		sessions:        cfg.Sessions,
		scheduler:       cfg.Scheduler,
		messenger:       cfg.Messenger,
		replyWaiter:     cfg.ReplyWaiter,
		wikipedia:       cfg.Wikipedia,
		images:          cfg.Images,
		roller:          roller,
		uuider:          uuider,
		timers:          cfg.Timers,
		duels:           newDuelTracker(),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commandDefinitions())
	return err
}

// HandleInteraction routes slash commands, autocomplete, and button
// presses
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// HandleReactionAdd feeds message reactions into the pagination manager
func (h *Handler) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	h.sessions.HandleReaction(r.MessageID, r.Emoji.Name, r.UserID)
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	userID := interactionUserID(i)

	// The lock gate runs before any command body
	if err := h.ServiceProvider.AdminService.Authorize(ctx, data.Name, userID); err != nil {
		respondError(s, i, err)
		return
	}

	var err error
	switch data.Name {
	case "upload":
		err = h.handleUpload(ctx, s, i)
	case "view":
		err = h.handleView(ctx, s, i)
	case "changeinfo":
		err = h.handleChangeInfo(ctx, s, i)
	case "delete":
		err = h.handleDelete(ctx, s, i)
	case "list":
		err = h.handleList(ctx, s, i)
	case "ownlist":
		err = h.handleOwnList(ctx, s, i)
	case "release":
		err = h.handleRelease(ctx, s, i)
	case "kill":
		err = h.handleKill(ctx, s, i)
	case "revive":
		err = h.handleRevive(ctx, s, i)
	case "spawn":
		err = h.handleSpawn(ctx, s, i)
	case "addgold":
		err = h.handleAddGold(ctx, s, i)
	case "deletegold":
		err = h.handleDeleteGold(ctx, s, i)
	case "balance":
		err = h.handleBalance(ctx, s, i)
	case "givegold":
		err = h.handleGiveGold(ctx, s, i)
	case "givechar":
		err = h.handleGiveChar(ctx, s, i)
	case "sell":
		err = h.handleSell(ctx, s, i)
	case "duel":
		err = h.handleDuel(ctx, s, i)
	case "setgraveyard":
		err = h.handleSetGraveyard(ctx, s, i)
	case "setcharacterlist":
		err = h.handleSetCharacterList(ctx, s, i)
	case "sethuntingground":
		err = h.handleSetHuntingGround(ctx, s, i)
	case "adminlock":
		err = h.handleAdminLock(ctx, s, i)
	case "adminunlock":
		err = h.handleAdminUnlock(ctx, s, i)
	case "adminlist":
		err = h.handleAdminList(ctx, s, i)
	case "roll":
		err = h.handleRoll(ctx, s, i)
	case "pick":
		err = h.handlePick(ctx, s, i)
	case "guide":
		err = h.handleGuide(s, i)
	case "list_commands":
		err = h.handleListCommands(s, i)
	case "wikipedia":
		err = h.handleWikipedia(ctx, s, i)
	case "addpic":
		err = h.handleAddPic(ctx, s, i)
	case "autoadd":
		err = h.handleAutoAdd(ctx, s, i)
	default:
		return
	}
	if err != nil {
		log.Printf("Error handling /%s: %v", data.Name, err)
	}
}

func (h *Handler) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "view" {
		return
	}
	if err := h.handleViewAutocomplete(context.Background(), s, i); err != nil {
		log.Printf("Error handling view autocomplete: %v", err)
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID

	var err error
	switch {
	case strings.HasPrefix(customID, "buy:"):
		err = h.handleBuyButton(ctx, s, i, strings.TrimPrefix(customID, "buy:"))
	case strings.HasPrefix(customID, "duel_accept:"):
		err = h.handleDuelAccept(ctx, s, i, strings.TrimPrefix(customID, "duel_accept:"))
	case strings.HasPrefix(customID, "duel_decline:"):
		err = h.handleDuelDecline(s, i, strings.TrimPrefix(customID, "duel_decline:"))
	default:
		return
	}
	if err != nil {
		log.Printf("Error handling component %s: %v", customID, err)
	}
}

// interactionUserID returns the acting user for guild and DM
// interactions alike
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

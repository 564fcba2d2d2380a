package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

func (h *Handler) handleSetGraveyard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID := channelValue(optionMap(i), "channel")
	if err := h.requireGuildAdmin(i); err != nil {
		respondError(s, i, err)
		return nil
	}

	if err := h.ServiceProvider.GuildService.SetGraveyard(ctx, i.GuildID, channelID); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("<#%s> will now display deceased characters.", channelID))
}

func (h *Handler) handleSetCharacterList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID := channelValue(optionMap(i), "channel")
	if err := h.requireGuildAdmin(i); err != nil {
		respondError(s, i, err)
		return nil
	}

	if err := h.ServiceProvider.GuildService.SetCharacterList(ctx, i.GuildID, channelID); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("<#%s> will now display the character roster.", channelID))
}

func (h *Handler) handleSetHuntingGround(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	channelID := channelValue(opts, "channel")
	interval := intValue(opts, "interval", 0)

	if err := h.requireGuildAdmin(i); err != nil {
		respondError(s, i, err)
		return nil
	}

	if err := h.ServiceProvider.GuildService.SetHuntingGround(ctx, i.GuildID, channelID, interval); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("Characters will spawn in <#%s> every %d seconds. \U0001F3F9", channelID, interval))
}

// requireGuildAdmin restricts channel configuration to configured
// admins inside a guild
func (h *Handler) requireGuildAdmin(i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return botErr.InvalidArgument("this command only works inside a server")
	}
	if !h.ServiceProvider.AdminService.IsAdmin(interactionUserID(i)) {
		return botErr.Unauthorized("only bot admins can change channel settings")
	}
	return nil
}

func channelValue(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		if v, isString := opt.Value.(string); isString {
			return v
		}
	}
	return ""
}

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

func (h *Handler) handleKill(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	name := stringValue(opts, "name")
	how := stringValue(opts, "how")

	char, err := h.ServiceProvider.CharacterService.Kill(ctx, name, how)
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("\U0001F480 **%s** has died: %s", char.Name, char.CauseOfDeath))
}

func (h *Handler) handleRevive(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := stringValue(optionMap(i), "name")

	char, err := h.ServiceProvider.CharacterService.Revive(ctx, name)
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("✨ **%s** has returned to life!", char.Name))
}

func (h *Handler) handleSpawn(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if h.scheduler == nil {
		respondError(s, i, botErr.Internal("spawning is not available"))
		return nil
	}
	if i.GuildID == "" {
		respondError(s, i, botErr.InvalidArgument("spawning only works inside a server"))
		return nil
	}

	if err := h.scheduler.SpawnNow(ctx, i.GuildID); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respondEphemeral(s, i, "A character has been spawned in the hunting ground!")
}

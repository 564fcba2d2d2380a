package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

func (h *Handler) handleAdminLock(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	command := stringValue(optionMap(i), "command")
	if !h.ServiceProvider.AdminService.IsAdmin(interactionUserID(i)) {
		respondError(s, i, botErr.Unauthorized("only bot admins can lock commands"))
		return nil
	}

	if err := h.ServiceProvider.AdminService.Lock(ctx, command); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("\U0001F512 The '%s' command is now admin-only.", command))
}

func (h *Handler) handleAdminUnlock(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	command := stringValue(optionMap(i), "command")
	if !h.ServiceProvider.AdminService.IsAdmin(interactionUserID(i)) {
		respondError(s, i, botErr.Unauthorized("only bot admins can unlock commands"))
		return nil
	}

	if err := h.ServiceProvider.AdminService.Unlock(ctx, command); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("\U0001F513 The '%s' command is open to everyone.", command))
}

func (h *Handler) handleAdminList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	locked, err := h.ServiceProvider.AdminService.LockedCommands(ctx)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	var sb strings.Builder
	sb.WriteString("**Locked commands:**\n")
	if len(locked) == 0 {
		sb.WriteString("None. Everything is open.\n")
	} else {
		for _, name := range locked {
			sb.WriteString(fmt.Sprintf("\U0001F512 %s\n", name))
		}
	}
	return respondEphemeral(s, i, sb.String())
}

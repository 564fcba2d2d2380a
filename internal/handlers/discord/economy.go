package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

func (h *Handler) handleAddGold(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	target := userValue(opts, "user", i)
	amount := intValue(opts, "amount", 0)

	if target == "" {
		respondError(s, i, botErr.InvalidArgument("a target user is required"))
		return nil
	}
	if _, err := h.ServiceProvider.EconomyService.Credit(ctx, target, amount); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("Added %d gold to <@%s>'s balance.", amount, target))
}

func (h *Handler) handleDeleteGold(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	target := userValue(opts, "user", i)
	amount := intValue(opts, "amount", 0)

	if target == "" {
		respondError(s, i, botErr.InvalidArgument("a target user is required"))
		return nil
	}
	if _, err := h.ServiceProvider.EconomyService.Debit(ctx, target, amount); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("Removed %d gold from <@%s>'s balance.", amount, target))
}

func (h *Handler) handleBalance(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	target := userValue(opts, "user", i)
	if target == "" {
		target = interactionUserID(i)
	}

	balance, err := h.ServiceProvider.EconomyService.Balance(ctx, target)
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	return respondEphemeral(s, i, fmt.Sprintf("<@%s> has %d gold. \U0001FA99", target, balance))
}

func (h *Handler) handleGiveGold(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	recipient := userValue(opts, "recipient", i)
	amount := intValue(opts, "amount", 0)
	sender := interactionUserID(i)

	if err := h.ServiceProvider.EconomyService.Transfer(ctx, sender, recipient, amount); err != nil {
		respondError(s, i, err)
		return nil
	}
	return respond(s, i, fmt.Sprintf("<@%s> gave %d gold to <@%s>!", sender, amount, recipient))
}

// userValue resolves a user option to a user ID
func userValue(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, i *discordgo.InteractionCreate) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	id, isString := opt.Value.(string)
	if !isString {
		return ""
	}
	return id
}

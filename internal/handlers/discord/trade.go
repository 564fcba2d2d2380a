package discord

import (
	"context"
	"fmt"
	"regexp"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

func (h *Handler) handleGiveChar(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	name := stringValue(optionMap(i), "name")
	giver := interactionUserID(i)

	char, err := h.ServiceProvider.CharacterService.Get(ctx, name)
	if err != nil {
		respondError(s, i, err)
		return nil
	}
	if char.OwnerID != giver {
		respondError(s, i, botErr.Unauthorizedf("you do not own '%s'", char.Name))
		return nil
	}
	if h.replyWaiter == nil {
		respondError(s, i, botErr.Internal("transfers are not available"))
		return nil
	}

	if err := respond(s, i, "Who do you want to give this character to? Mention the user."); err != nil {
		return err
	}

	// The whole transfer stands or falls with this one reply
	reply, err := h.replyWaiter.AwaitReply(ctx, i.ChannelID, giver, h.replyTimeout())
	if err != nil {
		if botErr.IsTimeout(err) {
			return followUp(s, i, "No response received. Transfer cancelled.")
		}
		return err
	}

	match := mentionPattern.FindStringSubmatch(reply)
	if match == nil {
		return followUp(s, i, "That was not a user mention. Transfer cancelled.")
	}
	recipient := match[1]

	if err := h.ServiceProvider.CharacterService.Give(ctx, char.Name, giver, recipient); err != nil {
		followUpError(s, i, err)
		return nil
	}
	return followUp(s, i, fmt.Sprintf("Character '%s' has been given to <@%s>.", char.Name, recipient))
}

func (h *Handler) handleSell(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i)
	name := stringValue(opts, "name")
	amount := intValue(opts, "amount", 0)
	seller := interactionUserID(i)

	char, err := h.ServiceProvider.CharacterService.Sell(ctx, name, seller, amount)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("**%s** is up for sale for %d gold! \U0001FA99", char.Name, char.SalePrice),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    fmt.Sprintf("Buy for %d gold", char.SalePrice),
							Style:    discordgo.SuccessButton,
							CustomID: "buy:" + char.Name,
						},
					},
				},
			},
		},
	})
}

func (h *Handler) handleBuyButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	buyer := interactionUserID(i)

	result, err := h.ServiceProvider.CharacterService.Buy(ctx, name, buyer)
	if err != nil {
		respondError(s, i, err)
		return nil
	}

	return respond(s, i, fmt.Sprintf("**%s** has been sold to <@%s> for %d gold! The gold went to <@%s>.",
		result.Character.Name, buyer, result.Price, result.SellerID))
}

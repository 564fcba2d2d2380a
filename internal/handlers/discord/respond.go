package discord

import (
	stderrors "errors"
	"log"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

// respond sends the initial interaction response
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// respondEphemeral sends a response only the acting user can see
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondEmbed sends an embed response
func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// deferResponse acknowledges the interaction so slow work can follow up
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// followUp sends a message after deferResponse
func followUp(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
	})
	return err
}

// respondError reports a failure to the user in terms they can act on
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if sendErr := respondEphemeral(s, i, userMessage(err)); sendErr != nil {
		log.Printf("Failed to send error response: %v", sendErr)
	}
}

// followUpError reports a failure after a deferred response
func followUpError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if sendErr := followUp(s, i, userMessage(err)); sendErr != nil {
		log.Printf("Failed to send error follow-up: %v", sendErr)
	}
}

// userMessage translates an error into user-facing text
func userMessage(err error) string {
	switch botErr.GetCode(err) {
	case botErr.CodeNotFound,
		botErr.CodeInvalidArgument,
		botErr.CodeAlreadyExists,
		botErr.CodeAlreadyClaimed,
		botErr.CodeNotAlive,
		botErr.CodeInsufficientFunds,
		botErr.CodeInvalidAmount,
		botErr.CodeInvalidTransfer,
		botErr.CodeUnauthorized,
		botErr.CodeTimeout:
		var coded *botErr.Error
		if stderrors.As(err, &coded) {
			return coded.Message
		}
		return err.Error()
	default:
		return "Something went wrong. Please try again."
	}
}

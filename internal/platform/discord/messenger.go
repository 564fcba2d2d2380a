package discord

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
)

// Messenger implements platform.Messenger on top of a discordgo session
type Messenger struct {
	session *discordgo.Session
}

// NewMessenger creates a Discord-backed messenger
func NewMessenger(session *discordgo.Session) *Messenger {
	if session == nil {
		panic("session is required")
	}
	return &Messenger{session: session}
}

// SendMessage posts plain text to a channel
func (m *Messenger) SendMessage(ctx context.Context, channelID, content string) (*platform.Message, error) {
	msg, err := m.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapDiscordError(err, "failed to send message")
	}
	return &platform.Message{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// SendEmbed posts a rich embed to a channel
func (m *Messenger) SendEmbed(ctx context.Context, channelID string, embed *platform.Embed) (*platform.Message, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, toDiscordEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapDiscordError(err, "failed to send embed")
	}
	return &platform.Message{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// EditMessage replaces the text content of a posted message
func (m *Messenger) EditMessage(ctx context.Context, channelID, messageID, content string) error {
	_, err := m.session.ChannelMessageEdit(channelID, messageID, content, discordgo.WithContext(ctx))
	if err != nil {
		return wrapDiscordError(err, "failed to edit message")
	}
	return nil
}

// EditEmbed replaces the embed of a posted message
func (m *Messenger) EditEmbed(ctx context.Context, channelID, messageID string, embed *platform.Embed) error {
	_, err := m.session.ChannelMessageEditEmbed(channelID, messageID, toDiscordEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		return wrapDiscordError(err, "failed to edit embed")
	}
	return nil
}

// DeleteMessage removes a posted message, tolerating an already-deleted one
func (m *Messenger) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	err := m.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		wrapped := wrapDiscordError(err, "failed to delete message")
		if botErr.IsNotFound(wrapped) {
			return nil
		}
		return wrapped
	}
	return nil
}

// AddReaction adds the bot's reaction to a message
func (m *Messenger) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	err := m.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx))
	if err != nil {
		return wrapDiscordError(err, "failed to add reaction")
	}
	return nil
}

// ClearReactions removes every reaction from a message
func (m *Messenger) ClearReactions(ctx context.Context, channelID, messageID string) error {
	err := m.session.MessageReactionsRemoveAll(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return wrapDiscordError(err, "failed to clear reactions")
	}
	return nil
}

// RemoveUserReaction removes one user's reaction from a message
func (m *Messenger) RemoveUserReaction(ctx context.Context, channelID, messageID, emoji, userID string) error {
	err := m.session.MessageReactionRemove(channelID, messageID, emoji, userID, discordgo.WithContext(ctx))
	if err != nil {
		return wrapDiscordError(err, "failed to remove reaction")
	}
	return nil
}

// ChannelExists reports whether a channel is visible to the bot
func (m *Messenger) ChannelExists(ctx context.Context, channelID string) bool {
	if channelID == "" {
		return false
	}
	if ch, err := m.session.State.Channel(channelID); err == nil && ch != nil {
		return true
	}
	_, err := m.session.Channel(channelID, discordgo.WithContext(ctx))
	return err == nil
}

func toDiscordEmbed(embed *platform.Embed) *discordgo.MessageEmbed {
	if embed == nil {
		return nil
	}

	out := &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
	}
	if embed.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: embed.ImageURL}
	}
	if embed.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}
	for _, field := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return out
}

// wrapDiscordError maps Discord REST failures onto the bot's error
// codes so callers can react to a vanished message or channel
func wrapDiscordError(err error, message string) error {
	var restErr *discordgo.RESTError
	if stderrors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound:
			return botErr.WrapWithCode(err, botErr.CodeNotFound, message)
		case http.StatusForbidden:
			return botErr.WrapWithCode(err, botErr.CodeUnauthorized, message)
		}
	}
	return botErr.Wrap(err, message)
}

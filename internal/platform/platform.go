package platform

//go:generate mockgen -destination=mock/mock_messenger.go -package=mockplatform -source=platform.go

import (
	"context"
	"time"
)

// Embed is a chat-platform-neutral rich message payload
type Embed struct {
	Title       string
	Description string
	ImageURL    string
	Footer      string
	Fields      []EmbedField
}

// EmbedField is a labeled section of an embed
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Message identifies a message the bot has posted
type Message struct {
	ChannelID string
	MessageID string
}

// Messenger abstracts the chat operations the bot needs. The Discord
// implementation lives in the discord subpackage; tests use the
// generated mock.
type Messenger interface {
	// SendMessage posts plain text to a channel
	SendMessage(ctx context.Context, channelID, content string) (*Message, error)

	// SendEmbed posts a rich embed to a channel
	SendEmbed(ctx context.Context, channelID string, embed *Embed) (*Message, error)

	// EditMessage replaces the text content of a posted message.
	// Returns a not_found error when the message no longer exists.
	EditMessage(ctx context.Context, channelID, messageID, content string) error

	// EditEmbed replaces the embed of a posted message.
	// Returns a not_found error when the message no longer exists.
	EditEmbed(ctx context.Context, channelID, messageID string, embed *Embed) error

	// DeleteMessage removes a posted message. Deleting a message that is
	// already gone is not an error.
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	// AddReaction adds the bot's reaction to a message
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error

	// ClearReactions removes every reaction from a message
	ClearReactions(ctx context.Context, channelID, messageID string) error

	// RemoveUserReaction removes one user's reaction so a control emoji
	// can be pressed again
	RemoveUserReaction(ctx context.Context, channelID, messageID, emoji, userID string) error

	// ChannelExists reports whether a channel is visible to the bot
	ChannelExists(ctx context.Context, channelID string) bool
}

// ReplyWaiter waits for a user's next message in a channel and is used
// by conversational command flows
type ReplyWaiter interface {
	// AwaitReply blocks until the given user sends a message in the
	// channel, the timeout elapses (timeout error), or ctx is done.
	// Returns the message content.
	AwaitReply(ctx context.Context, channelID, userID string, timeout time.Duration) (string, error)
}

package pagination

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
)

// Control emojis understood by a session: previous image, next image,
// and claim
const (
	EmojiPrevious = "⬅️"
	EmojiNext     = "➡️"
	EmojiClaim    = "✨"
)

// Event is one user reaction routed to a session
type Event struct {
	Emoji  string
	UserID string
}

// SessionConfig describes one interactive character embed
type SessionConfig struct {
	Character   *character.Character
	Message     *platform.Message
	Claimable   bool
	IdleTimeout time.Duration
}

// session drives one posted character embed: image navigation for
// everyone, claiming when the session is claimable. Each session is a
// single goroutine consuming its events in order.
type session struct {
	char      *character.Character
	message   *platform.Message
	claimable bool
	idle      time.Duration

	messenger  platform.Messenger
	characters charSvc.Service

	events     chan Event
	done       chan struct{}
	imageIndex int

	onTerminate func()
}

func (s *session) run(ctx context.Context) {
	defer close(s.done)
	defer s.onTerminate()

	timer := time.NewTimer(s.idle)
	defer timer.Stop()

	for {
		select {
		case event := <-s.events:
			if terminal := s.handle(ctx, event); terminal {
				return
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(s.idle)

		case <-timer.C:
			// Idle expiry strips the controls so a stale embed cannot
			// be interacted with
			if err := s.messenger.ClearReactions(ctx, s.message.ChannelID, s.message.MessageID); err != nil {
				log.Printf("Failed to clear reactions on expired session %s: %v", s.message.MessageID, err)
			}
			return

		case <-ctx.Done():
			return
		}
	}
}

// handle processes one reaction; the return value reports whether the
// session is finished
func (s *session) handle(ctx context.Context, event Event) bool {
	switch event.Emoji {
	case EmojiPrevious:
		s.navigate(ctx, -1, event.UserID)
	case EmojiNext:
		s.navigate(ctx, 1, event.UserID)
	case EmojiClaim:
		if s.claimable {
			return s.claim(ctx, event.UserID)
		}
	}
	return false
}

func (s *session) navigate(ctx context.Context, step int, userID string) {
	count := len(s.char.Images)
	if count > 0 {
		s.imageIndex = ((s.imageIndex+step)%count + count) % count
		embed := BuildCharacterEmbed(s.char, s.imageIndex, s.claimable)
		if err := s.messenger.EditEmbed(ctx, s.message.ChannelID, s.message.MessageID, embed); err != nil {
			log.Printf("Failed to update embed for '%s': %v", s.char.Name, err)
		}
	}

	emoji := EmojiNext
	if step < 0 {
		emoji = EmojiPrevious
	}
	if err := s.messenger.RemoveUserReaction(ctx, s.message.ChannelID, s.message.MessageID, emoji, userID); err != nil {
		log.Printf("Failed to remove navigation reaction: %v", err)
	}
}

func (s *session) claim(ctx context.Context, userID string) bool {
	claimed, err := s.characters.Claim(ctx, s.char.Name, userID)
	if err != nil {
		if botErr.IsAlreadyClaimed(err) {
			owner, _ := botErr.GetMeta(err)["owner_id"].(string)
			content := fmt.Sprintf("%s has already been claimed by <@%s>!", s.char.Name, owner)
			if _, sendErr := s.messenger.SendMessage(ctx, s.message.ChannelID, content); sendErr != nil {
				log.Printf("Failed to announce failed claim: %v", sendErr)
			}
			// The embed stays interactive; someone else may still browse
			return false
		}
		log.Printf("Claim of '%s' by %s failed: %v", s.char.Name, userID, err)
		return false
	}

	content := fmt.Sprintf("**%s** has been claimed by <@%s>! ✨", claimed.Name, userID)
	if _, err := s.messenger.SendMessage(ctx, s.message.ChannelID, content); err != nil {
		log.Printf("Failed to announce claim: %v", err)
	}
	if err := s.messenger.ClearReactions(ctx, s.message.ChannelID, s.message.MessageID); err != nil {
		log.Printf("Failed to clear reactions after claim: %v", err)
	}
	return true
}

// BuildCharacterEmbed renders a character at one image index
func BuildCharacterEmbed(char *character.Character, imageIndex int, claimable bool) *platform.Embed {
	embed := &platform.Embed{
		Title:       char.Name,
		Description: char.Description,
	}

	if len(char.Images) > 0 {
		if imageIndex < 0 || imageIndex >= len(char.Images) {
			imageIndex = 0
		}
		embed.ImageURL = char.Images[imageIndex]
		if len(char.Images) > 1 {
			embed.Footer = fmt.Sprintf("Image %d of %d", imageIndex+1, len(char.Images))
		}
	}

	if char.SideNote != "" {
		embed.Fields = append(embed.Fields, platform.EmbedField{
			Name:  "Side note",
			Value: char.SideNote,
		})
	}
	if !char.IsAlive() {
		value := "Deceased"
		if char.CauseOfDeath != "" {
			value = fmt.Sprintf("Deceased (%s)", char.CauseOfDeath)
		}
		embed.Fields = append(embed.Fields, platform.EmbedField{
			Name:  "Status",
			Value: value,
		})
	}
	if char.OwnerID != "" {
		embed.Fields = append(embed.Fields, platform.EmbedField{
			Name:  "Owner",
			Value: fmt.Sprintf("<@%s>", char.OwnerID),
		})
	} else if claimable {
		embed.Fields = append(embed.Fields, platform.EmbedField{
			Name:  "Unclaimed",
			Value: "React with ✨ to claim!",
		})
	}

	return embed
}

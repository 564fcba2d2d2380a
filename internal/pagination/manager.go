package pagination

import (
	"context"
	"log"
	"sync"
	"time"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
	charSvc "github.com/Kekatrice/DiscordBotty/internal/services/character"
)

// Manager routes reaction events to the live sessions it owns, keyed
// by message ID
type Manager struct {
	messenger  platform.Messenger
	characters charSvc.Service
	botUserID  string

	mu       sync.Mutex
	sessions map[string]*session
}

// ManagerConfig holds configuration for the manager
type ManagerConfig struct {
	Messenger  platform.Messenger // Required
	Characters charSvc.Service    // Required
	BotUserID  string
}

// NewManager creates a new session manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg.Messenger == nil {
		panic("messenger is required")
	}
	if cfg.Characters == nil {
		panic("character service is required")
	}

	return &Manager{
		messenger:  cfg.Messenger,
		characters: cfg.Characters,
		botUserID:  cfg.BotUserID,
		sessions:   make(map[string]*session),
	}
}

// Open posts the control reactions on the message and starts a session
// goroutine for it
func (m *Manager) Open(ctx context.Context, cfg *SessionConfig) error {
	if cfg == nil || cfg.Character == nil || cfg.Message == nil {
		return botErr.InvalidArgument("session needs a character and a message")
	}
	if cfg.IdleTimeout <= 0 {
		return botErr.InvalidArgument("session needs a positive idle timeout")
	}

	emojis := []string{}
	if len(cfg.Character.Images) > 1 {
		emojis = append(emojis, EmojiPrevious, EmojiNext)
	}
	if cfg.Claimable {
		emojis = append(emojis, EmojiClaim)
	}
	for _, emoji := range emojis {
		if err := m.messenger.AddReaction(ctx, cfg.Message.ChannelID, cfg.Message.MessageID, emoji); err != nil {
			log.Printf("Failed to add control reaction %s: %v", emoji, err)
		}
	}

	s := &session{
		char:       cfg.Character.Clone(),
		message:    cfg.Message,
		claimable:  cfg.Claimable,
		idle:       cfg.IdleTimeout,
		messenger:  m.messenger,
		characters: m.characters,
		events:     make(chan Event, 16),
		done:       make(chan struct{}),
	}
	s.onTerminate = func() { m.remove(cfg.Message.MessageID) }

	m.mu.Lock()
	m.sessions[cfg.Message.MessageID] = s
	m.mu.Unlock()

	go s.run(ctx)
	return nil
}

// HandleReaction routes a reaction to its session, if any. Reactions
// from the bot itself are ignored.
func (m *Manager) HandleReaction(messageID, emoji, userID string) {
	if userID == "" || userID == m.botUserID {
		return
	}

	m.mu.Lock()
	s, ok := m.sessions[messageID]
	m.mu.Unlock()
	if !ok {
		return
	}

	select {
	case s.events <- Event{Emoji: emoji, UserID: userID}:
	default:
		// A full queue means the actor is spamming; drop the event
	}
}

// ActiveSessions returns the number of live sessions
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// WaitIdle blocks until a session for the message has finished, or the
// timeout elapses. Intended for tests and shutdown.
func (m *Manager) WaitIdle(messageID string, timeout time.Duration) bool {
	m.mu.Lock()
	s, ok := m.sessions[messageID]
	m.mu.Unlock()
	if !ok {
		return true
	}

	select {
	case <-s.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (m *Manager) remove(messageID string) {
	m.mu.Lock()
	delete(m.sessions, messageID)
	m.mu.Unlock()
}

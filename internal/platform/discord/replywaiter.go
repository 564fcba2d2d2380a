package discord

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

type replyKey struct {
	channelID string
	userID    string
}

// ReplyWaiter implements platform.ReplyWaiter by listening to message
// create events on a discordgo session. One waiter per channel and
// user pair; a second AwaitReply for the same pair replaces the first.
type ReplyWaiter struct {
	mu      sync.Mutex
	waiters map[replyKey]chan string
	remove  func()
}

// NewReplyWaiter registers a message handler on the session and
// returns the waiter. Call Close to detach the handler.
func NewReplyWaiter(session *discordgo.Session) *ReplyWaiter {
	w := &ReplyWaiter{
		waiters: make(map[replyKey]chan string),
	}
	w.remove = session.AddHandler(w.onMessageCreate)
	return w
}

// Close detaches the waiter from the session
func (w *ReplyWaiter) Close() {
	if w.remove != nil {
		w.remove()
	}
}

// AwaitReply blocks until the user sends a message in the channel,
// the timeout elapses, or ctx is done
func (w *ReplyWaiter) AwaitReply(ctx context.Context, channelID, userID string, timeout time.Duration) (string, error) {
	key := replyKey{channelID: channelID, userID: userID}
	ch := make(chan string, 1)

	w.mu.Lock()
	w.waiters[key] = ch
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		if w.waiters[key] == ch {
			delete(w.waiters, key)
		}
		w.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case content := <-ch:
		return content, nil
	case <-timer.C:
		return "", botErr.Timeout("timed out waiting for a reply").
			WithMeta("channel_id", channelID).
			WithMeta("user_id", userID)
	case <-ctx.Done():
		return "", botErr.Wrap(ctx.Err(), "reply wait canceled")
	}
}

func (w *ReplyWaiter) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	key := replyKey{channelID: m.ChannelID, userID: m.Author.ID}

	w.mu.Lock()
	ch, ok := w.waiters[key]
	if ok {
		delete(w.waiters, key)
	}
	w.mu.Unlock()

	if ok {
		ch <- m.Content
	}
}

package display

import (
	"context"
	"fmt"
	"log"
	"sync"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/platform"
)

// tracked is one message the synchronizer has posted and still owns
type tracked struct {
	messageID string
	content   string
}

// Synchronizer converges a channel onto a rendered page list with the
// minimum number of edits. Message IDs are tracked in memory only; a
// restart reposts the pages fresh.
type Synchronizer struct {
	messenger platform.Messenger

	mu    sync.Mutex
	views map[string][]tracked
}

// NewSynchronizer creates a synchronizer
func NewSynchronizer(messenger platform.Messenger) *Synchronizer {
	if messenger == nil {
		panic("messenger is required")
	}
	return &Synchronizer{
		messenger: messenger,
		views:     make(map[string][]tracked),
	}
}

// Sync makes the channel show exactly the given pages, one message per
// page. Unchanged pages are left alone, changed pages are edited in
// place, extra pages are appended, and surplus messages are deleted. A
// tracked message someone deleted by hand is reposted.
func (s *Synchronizer) Sync(ctx context.Context, channelID, tag string, pages []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s/%s", channelID, tag)
	current := s.views[key]
	next := make([]tracked, 0, len(pages))

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i, page := range pages {
		if i < len(current) {
			if current[i].content == page {
				next = append(next, current[i])
				continue
			}

			err := s.messenger.EditMessage(ctx, channelID, current[i].messageID, page)
			if err == nil {
				next = append(next, tracked{messageID: current[i].messageID, content: page})
				continue
			}
			if !botErr.IsNotFound(err) {
				keep(err)
				next = append(next, current[i])
				continue
			}
			// The message was deleted out from under us; fall through
			// and post a replacement
		}

		msg, err := s.messenger.SendMessage(ctx, channelID, page)
		if err != nil {
			keep(err)
			continue
		}
		next = append(next, tracked{messageID: msg.MessageID, content: page})
	}

	for i := len(pages); i < len(current); i++ {
		if err := s.messenger.DeleteMessage(ctx, channelID, current[i].messageID); err != nil {
			log.Printf("Failed to delete surplus display message %s: %v", current[i].messageID, err)
		}
	}

	s.views[key] = next
	return firstErr
}

// Forget drops the tracked state for a channel and tag without
// touching the channel
func (s *Synchronizer) Forget(channelID, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, fmt.Sprintf("%s/%s", channelID, tag))
}

package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

const duelTarget = 100

// duel is one pending or running challenge
type duel struct {
	id           string
	channelID    string
	challengerID string
	opponentID   string
}

// duelTracker holds challenges awaiting the opponent's button press
type duelTracker struct {
	mu    sync.Mutex
	duels map[string]*duel
}

func newDuelTracker() *duelTracker {
	return &duelTracker{duels: make(map[string]*duel)}
}

func (t *duelTracker) add(d *duel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.duels[d.id] = d
}

func (t *duelTracker) take(id string) (*duel, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.duels[id]
	if ok {
		delete(t.duels, id)
	}
	return d, ok
}

func (h *Handler) handleDuel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opponent := userValue(optionMap(i), "opponent", i)
	challenger := interactionUserID(i)

	if opponent == "" || opponent == challenger {
		respondError(s, i, botErr.InvalidArgument("you need a different user to duel"))
		return nil
	}

	d := &duel{
		id:           h.uuider.New(),
		channelID:    i.ChannelID,
		challengerID: challenger,
		opponentID:   opponent,
	}
	h.duels.add(d)

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("<@%s>, <@%s> challenges you to a duel! ⚔️", opponent, challenger),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept",
							Style:    discordgo.SuccessButton,
							CustomID: "duel_accept:" + d.id,
						},
						discordgo.Button{
							Label:    "Decline",
							Style:    discordgo.DangerButton,
							CustomID: "duel_decline:" + d.id,
						},
					},
				},
			},
		},
	})
}

func (h *Handler) handleDuelDecline(s *discordgo.Session, i *discordgo.InteractionCreate, duelID string) error {
	d, ok := h.duels.take(duelID)
	if !ok {
		respondError(s, i, botErr.NotFound("this duel is no longer active"))
		return nil
	}
	if interactionUserID(i) != d.opponentID {
		h.duels.add(d)
		respondError(s, i, botErr.Unauthorized("only the challenged user can decline"))
		return nil
	}
	return respond(s, i, fmt.Sprintf("<@%s> declined the duel.", d.opponentID))
}

func (h *Handler) handleDuelAccept(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, duelID string) error {
	d, ok := h.duels.take(duelID)
	if !ok {
		respondError(s, i, botErr.NotFound("this duel is no longer active"))
		return nil
	}
	if interactionUserID(i) != d.opponentID {
		h.duels.add(d)
		respondError(s, i, botErr.Unauthorized("only the challenged user can accept"))
		return nil
	}
	if h.replyWaiter == nil {
		respondError(s, i, botErr.Internal("duels are not available"))
		return nil
	}

	if err := respond(s, i, "Duel accepted! Both fighters, reply with the name of a character you own."); err != nil {
		return err
	}

	challengerChar, err := h.awaitFighter(ctx, d.channelID, d.challengerID)
	if err != nil {
		return h.cancelDuel(s, i, d.challengerID, err)
	}
	opponentChar, err := h.awaitFighter(ctx, d.channelID, d.opponentID)
	if err != nil {
		return h.cancelDuel(s, i, d.opponentID, err)
	}

	winner, log, err := h.runDuelRace(d, challengerChar, opponentChar)
	if err != nil {
		followUpError(s, i, err)
		return nil
	}

	if err := followUp(s, i, log); err != nil {
		return err
	}
	return followUp(s, i, fmt.Sprintf("\U0001F3C6 <@%s> wins the duel!", winner))
}

// awaitFighter waits for one participant to name a character they own
func (h *Handler) awaitFighter(ctx context.Context, channelID, userID string) (string, error) {
	reply, err := h.replyWaiter.AwaitReply(ctx, channelID, userID, h.replyTimeout())
	if err != nil {
		return "", err
	}

	char, err := h.ServiceProvider.CharacterService.Get(ctx, strings.TrimSpace(reply))
	if err != nil {
		return "", err
	}
	if char.OwnerID != userID {
		return "", botErr.Unauthorizedf("you do not own '%s'", char.Name)
	}
	return char.Name, nil
}

func (h *Handler) cancelDuel(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, err error) error {
	if botErr.IsTimeout(err) {
		return followUp(s, i, fmt.Sprintf("<@%s> took too long. Duel cancelled.", userID))
	}
	followUpError(s, i, err)
	return nil
}

// runDuelRace advances both fighters in random steps until one crosses
// the finish line
func (h *Handler) runDuelRace(d *duel, challengerChar, opponentChar string) (string, string, error) {
	scores := map[string]int{d.challengerID: 0, d.opponentID: 0}
	order := []string{d.challengerID, d.opponentID}
	names := map[string]string{d.challengerID: challengerChar, d.opponentID: opponentChar}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s** vs **%s**!\n", challengerChar, opponentChar))

	for round := 1; ; round++ {
		for _, userID := range order {
			step, err := h.roller.Roll(11)
			if err != nil {
				return "", "", err
			}
			// Steps land between 5 and 15
			scores[userID] += step + 4

			if scores[userID] >= duelTarget {
				sb.WriteString(fmt.Sprintf("Round %d: **%s** surges past the finish line!", round, names[userID]))
				return userID, sb.String(), nil
			}
		}
		sb.WriteString(fmt.Sprintf("Round %d: %s %d | %s %d\n",
			round, names[order[0]], scores[order[0]], names[order[1]], scores[order[1]]))
	}
}

package discord

import (
	stderrors "errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kekatrice/DiscordBotty/internal/dice"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found passes through",
			err:      botErr.NotFoundf("character 'Milo' not found"),
			expected: "character 'Milo' not found",
		},
		{
			name:     "already claimed passes through",
			err:      botErr.AlreadyClaimedf("'Milo' already belongs to someone"),
			expected: "'Milo' already belongs to someone",
		},
		{
			name:     "internal is masked",
			err:      botErr.Internal("state file write failed"),
			expected: "Something went wrong. Please try again.",
		},
		{
			name:     "plain error is masked",
			err:      stderrors.New("dial tcp: connection refused"),
			expected: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userMessage(tt.err))
		})
	}
}

func TestMentionPattern(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<@123456789>", "123456789"},
		{"give it to <@!987654321> please", "987654321"},
		{"no mention here", ""},
		{"<@>", ""},
	}

	for _, tt := range tests {
		match := mentionPattern.FindStringSubmatch(tt.input)
		if tt.expected == "" {
			assert.Nil(t, match, "input %q", tt.input)
			continue
		}
		require.Len(t, match, 2, "input %q", tt.input)
		assert.Equal(t, tt.expected, match[1])
	}
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member-1"}},
	}}
	assert.Equal(t, "member-1", interactionUserID(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "dm-user"},
	}}
	assert.Equal(t, "dm-user", interactionUserID(dm))

	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	assert.Equal(t, "", interactionUserID(empty))
}

func TestRunDuelRaceScriptedWinner(t *testing.T) {
	roller := dice.NewMockRoller()
	// Challenger always steps 5, opponent always steps 15; the opponent
	// crosses 100 on its seventh turn
	for i := 0; i < 7; i++ {
		roller.SetNextRoll(1)
		roller.SetNextRoll(11)
	}

	h := &Handler{roller: roller}
	d := &duel{challengerID: "alice", opponentID: "bob"}

	winner, raceLog, err := h.runDuelRace(d, "Milo", "Zara")
	require.NoError(t, err)

	assert.Equal(t, "bob", winner)
	assert.Contains(t, raceLog, "**Milo** vs **Zara**!")
	assert.Contains(t, raceLog, "Round 7: **Zara** surges past the finish line!")
	assert.Contains(t, raceLog, "Round 6: Milo 30 | Zara 90")
}

func TestRunDuelRaceRollerFailure(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetNextRoll(11)
	// The opponent's first roll has nothing queued

	h := &Handler{roller: roller}
	d := &duel{challengerID: "alice", opponentID: "bob"}

	_, _, err := h.runDuelRace(d, "Milo", "Zara")
	require.Error(t, err)
}

package dice_test

import (
	"testing"

	"github.com/Kekatrice/DiscordBotty/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		sides      int
		want       int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			sides:      20,
			want:       15,
		},
		{
			name:       "roll out of range for die",
			setupRolls: []int{7},
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "no predetermined rolls",
			setupRolls: []int{},
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			got, err := roller.Roll(tt.sides)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMockRoller_Pick(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{2, 0, 5})

	idx, err := roller.Pick(3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = roller.Pick(1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	// 5 is out of range for 4 options
	_, err = roller.Pick(4)
	assert.Error(t, err)
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		got, err := roller.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 6)
	}

	for i := 0; i < 100; i++ {
		idx, err := roller.Pick(5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}

	_, err := roller.Roll(0)
	assert.Error(t, err)
	_, err = roller.Pick(0)
	assert.Error(t, err)
}

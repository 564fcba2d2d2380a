package dice

import (
	"math/rand"

	"github.com/Kekatrice/DiscordBotty/internal/errors"
)

// Roller provides an interface for random draws
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a die with the given number of sides, returning 1..sides
	Roll(sides int) (int, error)

	// Pick selects a uniform index in [0, n)
	Pick(n int) (int, error)
}

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidArgumentf("invalid die size %d", sides)
	}
	return rand.Intn(sides) + 1, nil
}

// Pick implements Roller.Pick
func (r *randomRoller) Pick(n int) (int, error) {
	if n < 1 {
		return 0, errors.InvalidArgumentf("cannot pick from %d options", n)
	}
	return rand.Intn(n), nil
}

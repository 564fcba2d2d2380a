package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
)

// Repository defines the interface for character persistence. Names are
// unique under case-insensitive comparison; lookups accept any casing.
type Repository interface {
	// Get retrieves a character by name
	Get(ctx context.Context, name string) (*character.Character, error)

	// Put stores a character, inserting or replacing by name
	Put(ctx context.Context, char *character.Character) error

	// Delete removes a character by name
	Delete(ctx context.Context, name string) error

	// ListAll returns a snapshot of every character
	ListAll(ctx context.Context) ([]*character.Character, error)
}

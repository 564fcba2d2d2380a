package characters

import (
	"context"
	"sync"

	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu    sync.RWMutex
	byKey map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byKey: make(map[string]*character.Character),
	}
}

// Get retrieves a character by name
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*character.Character, error) {
	if name == "" {
		return nil, botErr.InvalidArgument("character name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.byKey[character.CanonicalName(name)]
	if !exists {
		return nil, botErr.NotFoundf("character '%s' not found", name).
			WithMeta("character_name", name)
	}

	return char.Clone(), nil
}

// Put stores a character, inserting or replacing by name
func (r *InMemoryRepository) Put(ctx context.Context, char *character.Character) error {
	if char == nil {
		return botErr.InvalidArgument("character cannot be nil")
	}
	if char.Name == "" {
		return botErr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[character.CanonicalName(char.Name)] = char.Clone()
	return nil
}

// Delete removes a character by name
func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return botErr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := character.CanonicalName(name)
	if _, exists := r.byKey[key]; !exists {
		return botErr.NotFoundf("character '%s' not found", name).
			WithMeta("character_name", name)
	}

	delete(r.byKey, key)
	return nil
}

// ListAll returns a snapshot of every character
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*character.Character, 0, len(r.byKey))
	for _, char := range r.byKey {
		result = append(result, char.Clone())
	}
	return result, nil
}

package characters

import (
	"context"
	"log"
	"sync"

	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/storage"
)

// fileRepo implements Repository backed by a single JSON state file.
// The persisted form is a map of display name to record, the same shape
// a human would expect to read and hand-edit.
type fileRepo struct {
	mu   sync.RWMutex
	path string

	// byKey indexes characters by canonical (folded) name
	byKey map[string]*character.Character
}

// NewFileRepository loads the character state file at path, treating a
// corrupted file as an empty store after logging a warning. The store
// never refuses to start over bad state; the backup rotated on the last
// good save is left for the operator.
func NewFileRepository(path string) Repository {
	persisted := make(map[string]*character.Character)
	if err := storage.Load(path, &persisted); err != nil {
		log.Printf("Corrupted character store %s, reinitializing: %v", path, err)
		persisted = make(map[string]*character.Character)
	}

	byKey := make(map[string]*character.Character, len(persisted))
	for name, char := range persisted {
		if char.Name == "" {
			char.Name = name
		}
		if char.Status == "" {
			char.Status = character.StatusAlive
		}
		byKey[character.CanonicalName(char.Name)] = char
	}

	return &fileRepo{
		path:  path,
		byKey: byKey,
	}
}

// Get retrieves a character by name
func (r *fileRepo) Get(ctx context.Context, name string) (*character.Character, error) {
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
func (r *fileRepo) Put(ctx context.Context, char *character.Character) error {
	if char == nil {
		return botErr.InvalidArgument("character cannot be nil")
	}
	if char.Name == "" {
		return botErr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[character.CanonicalName(char.Name)] = char.Clone()
	return r.persistLocked()
}

// Delete removes a character by name
func (r *fileRepo) Delete(ctx context.Context, name string) error {
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
	return r.persistLocked()
}

// ListAll returns a snapshot of every character
func (r *fileRepo) ListAll(ctx context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*character.Character, 0, len(r.byKey))
	for _, char := range r.byKey {
		result = append(result, char.Clone())
	}
	return result, nil
}

// persistLocked writes the current state to disk. Callers must hold the
// write lock; the mutation is not considered complete until the file
// swap has succeeded.
func (r *fileRepo) persistLocked() error {
	persisted := make(map[string]*character.Character, len(r.byKey))
	for _, char := range r.byKey {
		persisted[char.Name] = char
	}
	return storage.Save(r.path, persisted)
}

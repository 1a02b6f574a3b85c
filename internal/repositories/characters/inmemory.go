package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and dry runs
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
	}
}

// Save stores a copy of the character
func (r *InMemoryRepository) Save(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return gameerr.InvalidArgument("character cannot be nil")
	}

	// Same acceptance rules as the file backend
	if _, err := savefile.Encode(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[character.Name] = character.Clone()

	return nil
}

// Load returns a copy of the stored character
func (r *InMemoryRepository) Load(ctx context.Context, name string) (*entities.Character, error) {
	if err := checkLookupName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[name]
	if !exists {
		return nil, notFound(name)
	}

	return character.Clone(), nil
}

// List returns the stored names, sorted
func (r *InMemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.characters))
	for name := range r.characters {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	if err := checkLookupName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[name]; !exists {
		return notFound(name)
	}

	delete(r.characters, name)
	return nil
}

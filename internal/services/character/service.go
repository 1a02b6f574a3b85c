package character

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/repositories/characters"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// Create builds a new level 1 character and saves it
	Create(ctx context.Context, name string, class entities.CharacterClass) (*entities.Character, error)

	// Get loads a saved character by name
	Get(ctx context.Context, name string) (*entities.Character, error)

	// Save persists an existing character
	Save(ctx context.Context, char *entities.Character) error

	// List returns the names of all saved characters
	List(ctx context.Context) ([]string, error)

	// Delete removes a saved character
	Delete(ctx context.Context, name string) error

	// Revive brings a dead character back at half health and saves it.
	// revived is false when the character was alive.
	Revive(ctx context.Context, name string) (char *entities.Character, revived bool, err error)

	// Summaries loads every saved character for the roster
	Summaries(ctx context.Context) ([]*Summary, error)
}

// Summary is one roster line. Problem is set instead of the stats when the
// save could not be decoded.
type Summary struct {
	Name      string
	Class     entities.CharacterClass
	Level     int
	Health    int
	MaxHealth int
	Gold      int
	Problem   error
}

// service implements the Service interface
type service struct {
	repository Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
	}
}

// Create builds and saves a character. An existing save with the same name
// is never overwritten.
func (s *service) Create(ctx context.Context, name string, class entities.CharacterClass) (*entities.Character, error) {
	char, err := entities.NewCharacter(name, class)
	if err != nil {
		return nil, err
	}

	_, err = s.repository.Load(ctx, name)
	switch {
	case err == nil:
		return nil, gameerr.InvalidArgumentf("character '%s' already exists", name).
			WithMeta("name", name)
	case !gameerr.IsCharacterNotFound(err):
		return nil, gameerr.Wrapf(err, "failed to check for existing character '%s'", name)
	}

	if err := s.repository.Save(ctx, char); err != nil {
		return nil, gameerr.Wrapf(err, "failed to save character '%s'", name)
	}

	return char, nil
}

func (s *service) Get(ctx context.Context, name string) (*entities.Character, error) {
	return s.repository.Load(ctx, name)
}

func (s *service) Save(ctx context.Context, char *entities.Character) error {
	if char == nil {
		return gameerr.InvalidArgument("character cannot be nil")
	}
	return s.repository.Save(ctx, char)
}

func (s *service) List(ctx context.Context) ([]string, error) {
	return s.repository.List(ctx)
}

func (s *service) Delete(ctx context.Context, name string) error {
	return s.repository.Delete(ctx, name)
}

func (s *service) Revive(ctx context.Context, name string) (*entities.Character, bool, error) {
	char, err := s.repository.Load(ctx, name)
	if err != nil {
		return nil, false, err
	}

	if !char.Revive() {
		return char, false, nil
	}

	if err := s.repository.Save(ctx, char); err != nil {
		return nil, false, gameerr.Wrapf(err, "failed to save revived character '%s'", name)
	}

	return char, true, nil
}

// Summaries loads all characters in parallel. Undecodable saves are reported
// on their Summary; any other failure aborts the listing.
func (s *service) Summaries(ctx context.Context) ([]*Summary, error) {
	names, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*Summary, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			char, err := s.repository.Load(ctx, name)
			if gameerr.IsSaveFileCorrupted(err) || gameerr.IsInvalidSaveData(err) {
				summaries[i] = &Summary{Name: name, Problem: err}
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load character %s: %w", name, err)
			}

			summaries[i] = &Summary{
				Name:      char.Name,
				Class:     char.Class,
				Level:     char.Level,
				Health:    char.Health,
				MaxHealth: char.MaxHealth,
				Gold:      char.Gold,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

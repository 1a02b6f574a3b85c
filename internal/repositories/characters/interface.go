package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

// Repository defines the interface for character persistence.
// Characters are keyed by name.
type Repository interface {
	// Save stores a character, overwriting any previous save
	Save(ctx context.Context, character *entities.Character) error

	// Load retrieves a character by name
	Load(ctx context.Context, name string) (*entities.Character, error)

	// List returns the names of all saved characters, sorted
	List(ctx context.Context) ([]string, error)

	// Delete removes a saved character
	Delete(ctx context.Context, name string) error
}

// checkLookupName validates a name passed to Load or Delete. Names that
// could never have been saved are reported as not found.
func checkLookupName(name string) error {
	if name == "" {
		return gameerr.InvalidArgument("character name is required")
	}
	if err := savefile.CheckName(name); err != nil {
		return notFound(name)
	}
	return nil
}

func notFound(name string) error {
	return gameerr.CharacterNotFoundf("character '%s' not found", name).
		WithMeta("name", name)
}

// checkLoadedName rejects a save stored under one name that holds another
func checkLoadedName(name string, char *entities.Character) error {
	if char.Name != name {
		return gameerr.InvalidSaveDataf("save for '%s' holds character '%s'", name, char.Name).
			WithMeta("name", name)
	}
	return nil
}

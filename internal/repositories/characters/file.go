package characters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	Dir string
}

// fileRepo stores one save file per character in a directory
type fileRepo struct {
	dir string
}

// NewFileRepository creates a repository rooted at cfg.Dir. The directory is
// created on the first save.
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}
	if cfg.Dir == "" {
		panic("save directory cannot be empty")
	}

	return &fileRepo{dir: cfg.Dir}
}

func (r *fileRepo) path(name string) string {
	return filepath.Join(r.dir, savefile.FileName(name))
}

// Save writes the character to {name}_save.txt
func (r *fileRepo) Save(ctx context.Context, char *entities.Character) error {
	if char == nil {
		return gameerr.InvalidArgument("character cannot be nil")
	}

	data, err := savefile.Encode(char)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	// Write to a temp file first so a failed write never truncates an existing save
	tmp, err := os.CreateTemp(r.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path(char.Name)); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	return nil
}

// Load reads and decodes {name}_save.txt
func (r *fileRepo) Load(ctx context.Context, name string) (*entities.Character, error) {
	if err := checkLookupName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, gameerr.SaveFileCorrupted(err, fmt.Sprintf("failed to read save for '%s'", name)).
			WithMeta("name", name)
	}

	char, err := savefile.DecodeBytes(data)
	if err != nil {
		return nil, gameerr.Wrapf(err, "failed to load '%s'", name)
	}
	if err := checkLoadedName(name, char); err != nil {
		return nil, err
	}

	return char, nil
}

// List returns the names of every save file in the directory
func (r *fileRepo) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list save directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if name, ok := savefile.NameFromFileName(entry.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes {name}_save.txt
func (r *fileRepo) Delete(ctx context.Context, name string) error {
	if err := checkLookupName(name); err != nil {
		return err
	}

	err := os.Remove(r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete save for '%s': %w", name, err)
	}

	return nil
}

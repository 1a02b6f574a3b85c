package characters_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/repositories/characters"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behavior every backend shares.
// newRepo must return an empty repository.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) characters.Repository) {
	ctx := context.Background()

	t.Run("load missing character", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Load(ctx, "Nobody")
		assert.True(t, gameerr.IsCharacterNotFound(err), "got %v", err)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		repo := newRepo(t)

		for _, char := range []*entities.Character{
			testutils.CreateTestCharacter("Aria", entities.ClassMage),
			testutils.CreateTestVeteran("Sir Robin"),
		} {
			require.NoError(t, repo.Save(ctx, char))

			loaded, err := repo.Load(ctx, char.Name)
			require.NoError(t, err)
			assert.Equal(t, char, loaded)
		}
	})

	t.Run("save overwrites", func(t *testing.T) {
		repo := newRepo(t)
		char := testutils.CreateTestCharacter("Aria", entities.ClassMage)
		require.NoError(t, repo.Save(ctx, char))

		char.Gold = 999
		char.Inventory = append(char.Inventory, "wand")
		require.NoError(t, repo.Save(ctx, char))

		loaded, err := repo.Load(ctx, "Aria")
		require.NoError(t, err)
		assert.Equal(t, 999, loaded.Gold)
		assert.Equal(t, []string{"wand"}, loaded.Inventory)

		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Aria"}, names)
	})

	t.Run("stored record is isolated from the caller", func(t *testing.T) {
		repo := newRepo(t)
		char := testutils.CreateTestVeteran("Vex")
		require.NoError(t, repo.Save(ctx, char))

		char.Inventory[0] = "stolen"
		loaded, err := repo.Load(ctx, "Vex")
		require.NoError(t, err)
		assert.Equal(t, "dagger", loaded.Inventory[0])

		loaded.Gold = 0
		again, err := repo.Load(ctx, "Vex")
		require.NoError(t, err)
		assert.Equal(t, 455, again.Gold)
	})

	t.Run("list is sorted", func(t *testing.T) {
		repo := newRepo(t)

		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)

		for _, name := range []string{"Zed", "Aria", "Milo"} {
			require.NoError(t, repo.Save(ctx, testutils.CreateTestCharacter(name, entities.ClassCleric)))
		}

		names, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Aria", "Milo", "Zed"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Save(ctx, testutils.CreateTestCharacter("Aria", entities.ClassMage)))

		require.NoError(t, repo.Delete(ctx, "Aria"))

		_, err := repo.Load(ctx, "Aria")
		assert.True(t, gameerr.IsCharacterNotFound(err))

		err = repo.Delete(ctx, "Aria")
		assert.True(t, gameerr.IsCharacterNotFound(err))

		names, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("rejects values that cannot round trip", func(t *testing.T) {
		repo := newRepo(t)
		char := testutils.CreateTestCharacter("Aria", entities.ClassMage)
		char.Inventory = []string{"bread, cheese"}

		err := repo.Save(ctx, char)
		assert.True(t, gameerr.IsInvalidSaveData(err), "got %v", err)

		_, err = repo.Load(ctx, "Aria")
		assert.True(t, gameerr.IsCharacterNotFound(err), "nothing should have been written")
	})

	t.Run("invalid names", func(t *testing.T) {
		repo := newRepo(t)

		assert.True(t, gameerr.IsInvalidArgument(repo.Save(ctx, nil)))

		_, err := repo.Load(ctx, "")
		assert.True(t, gameerr.IsInvalidArgument(err))

		_, err = repo.Load(ctx, "../etc/passwd")
		assert.True(t, gameerr.IsCharacterNotFound(err))

		err = repo.Delete(ctx, "")
		assert.True(t, gameerr.IsInvalidArgument(err))
	})
}

//go:build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/repositories/characters"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	runRepositoryContract(t, func(t *testing.T) characters.Repository {
		require.NoError(t, client.FlushDB(context.Background()).Err())
		return characters.NewRedis(client)
	})
}

func TestRedisRepository_KeyLayout(t *testing.T) {
	ctx := context.Background()
	client := testutils.CreateTestRedisClientOrSkip(t)
	require.NoError(t, client.FlushDB(ctx).Err())

	repo := characters.NewRedis(client)
	require.NoError(t, repo.Save(ctx, testutils.CreateTestCharacter("Aria", entities.ClassMage)))

	text, err := client.Get(ctx, "character:Aria").Result()
	require.NoError(t, err)
	assert.Contains(t, text, "CLASS: Mage\n")

	member, err := client.SIsMember(ctx, "characters", "Aria").Result()
	require.NoError(t, err)
	assert.True(t, member)

	require.NoError(t, repo.Delete(ctx, "Aria"))
	exists, err := client.Exists(ctx, "character:Aria").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

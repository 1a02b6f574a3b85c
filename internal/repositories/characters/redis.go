package characters

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
	"github.com/redis/go-redis/v9"
)

// namesKey is the set of every saved character name
const namesKey = "characters"

// redisRepo stores the save file text of each character under character:{name}
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(name string) string {
	return fmt.Sprintf("character:%s", name)
}

// Save stores the encoded character and indexes its name
func (r *redisRepo) Save(ctx context.Context, char *entities.Character) error {
	if char == nil {
		return gameerr.InvalidArgument("character cannot be nil")
	}

	data, err := savefile.Encode(char)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.Name), string(data), 0)
	pipe.SAdd(ctx, namesKey, char.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// Load retrieves and decodes a character
func (r *redisRepo) Load(ctx context.Context, name string) (*entities.Character, error) {
	if err := checkLookupName(name); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	char, err := savefile.DecodeBytes([]byte(data))
	if err != nil {
		return nil, gameerr.Wrapf(err, "failed to load '%s'", name)
	}
	if err := checkLoadedName(name, char); err != nil {
		return nil, err
	}

	return char, nil
}

// List returns the indexed names, sorted
func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, namesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes a character and its index entry
func (r *redisRepo) Delete(ctx context.Context, name string) error {
	if err := checkLookupName(name); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(name))
	pipe.SRem(ctx, namesKey, name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	if del.Val() == 0 {
		return notFound(name)
	}

	return nil
}

package config_test

import (
	"testing"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QUEST_STORAGE", "")
	t.Setenv("QUEST_SAVE_DIR", "")
	t.Setenv("QUEST_SEED", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageFile, cfg.Storage.Backend)
	assert.Equal(t, config.DefaultSaveDir, cfg.Storage.SaveDir)
	assert.Equal(t, int64(0), cfg.Dice.Seed)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("QUEST_STORAGE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("QUEST_SEED", "42")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, int64(42), cfg.Dice.Seed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"redis without url", map[string]string{"QUEST_STORAGE": "redis", "REDIS_URL": ""}},
		{"unknown backend", map[string]string{"QUEST_STORAGE": "s3"}},
		{"bad seed", map[string]string{"QUEST_STORAGE": "memory", "QUEST_SEED": "lucky"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QUEST_SEED", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

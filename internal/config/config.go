package config

import (
	"fmt"
	"os"
	"strconv"
)

// StorageBackend selects where characters are persisted
type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageRedis  StorageBackend = "redis"
	StorageMemory StorageBackend = "memory"
)

// DefaultSaveDir is used when QUEST_SAVE_DIR is unset
const DefaultSaveDir = "data/save_games"

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig
	Redis   RedisConfig
	Dice    DiceConfig
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Backend StorageBackend
	SaveDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// DiceConfig holds random source configuration
type DiceConfig struct {
	Seed int64 // 0 means seed from the clock
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			Backend: StorageBackend(getEnvOrDefault("QUEST_STORAGE", string(StorageFile))),
			SaveDir: getEnvOrDefault("QUEST_SAVE_DIR", DefaultSaveDir),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	seed, err := getEnvAsInt64OrDefault("QUEST_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.Dice.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageFile:
		if c.Storage.SaveDir == "" {
			return fmt.Errorf("QUEST_SAVE_DIR cannot be empty for file storage")
		}
	case StorageRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for redis storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown QUEST_STORAGE %q (want file, redis or memory)", c.Storage.Backend)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

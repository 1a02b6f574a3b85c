package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/dice"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
	"github.com/KirkDiggler/quest-chronicles/internal/repositories/characters"
	abilityService "github.com/KirkDiggler/quest-chronicles/internal/services/ability"
	battleService "github.com/KirkDiggler/quest-chronicles/internal/services/battle"
	characterService "github.com/KirkDiggler/quest-chronicles/internal/services/character"
	monsterService "github.com/KirkDiggler/quest-chronicles/internal/services/monster"
	"github.com/KirkDiggler/quest-chronicles/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	MonsterService   monsterService.Service
	AbilityService   abilityService.Service
	BattleService    battleService.Service
	EventBus         *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	DiceRoller          dice.Roller
	UUIDGenerator       uuid.Generator
	EventBus            *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	abilities := abilityService.NewService(&abilityService.ServiceConfig{
		DiceRoller: roller,
	})

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository: charRepo,
		}),
		MonsterService: monsterService.NewService(),
		AbilityService: abilities,
		BattleService: battleService.NewService(&battleService.ServiceConfig{
			DiceRoller:     roller,
			AbilityService: abilities,
			UUIDGenerator:  cfg.UUIDGenerator,
			EventBus:       bus,
		}),
		EventBus: bus,
	}
}

// NewDiceRoller returns a seeded roller when the config pins a seed
func NewDiceRoller(cfg *config.Config) dice.Roller {
	if cfg.Dice.Seed != 0 {
		return dice.NewSeededRoller(cfg.Dice.Seed)
	}
	return dice.NewRandomRoller()
}

// NewCharacterRepository builds the configured storage backend. The returned
// close func releases any connection and is never nil.
func NewCharacterRepository(ctx context.Context, cfg *config.Config) (characters.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Backend {
	case config.StorageFile:
		log.Printf("Using file storage in %s", cfg.Storage.SaveDir)
		return characters.NewFile(cfg.Storage.SaveDir), noop, nil

	case config.StorageMemory:
		log.Println("Using in-memory storage, characters will not persist")
		return characters.NewInMemoryRepository(), noop, nil

	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to parse Redis URL: %w", err)
		}

		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
		}

		log.Printf("Using Redis storage at %s", opts.Addr)
		return characters.NewRedis(client), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

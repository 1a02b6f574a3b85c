package monster

import (
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Service creates enemies from the fixed enemy table
type Service interface {
	// Create returns a fresh enemy of the given type
	Create(enemyType entities.EnemyType) (*entities.Enemy, error)

	// ForLevel picks the enemy type that matches a character level
	ForLevel(level int) *entities.Enemy

	// Types lists the known enemy types in table order
	Types() []entities.EnemyType
}

type template struct {
	health     int
	strength   int
	magic      int
	xpReward   int
	goldReward int
}

var enemyTable = map[entities.EnemyType]template{
	entities.EnemyGoblin: {health: 50, strength: 8, magic: 2, xpReward: 25, goldReward: 10},
	entities.EnemyOrc:    {health: 80, strength: 12, magic: 5, xpReward: 50, goldReward: 25},
	entities.EnemyDragon: {health: 200, strength: 25, magic: 15, xpReward: 200, goldReward: 100},
}

var enemyOrder = []entities.EnemyType{entities.EnemyGoblin, entities.EnemyOrc, entities.EnemyDragon}

type service struct{}

// NewService creates a new monster service
func NewService() Service {
	return &service{}
}

// Create looks the type up case-insensitively
func (s *service) Create(enemyType entities.EnemyType) (*entities.Enemy, error) {
	key := entities.EnemyType(strings.ToLower(strings.TrimSpace(string(enemyType))))

	base, ok := enemyTable[key]
	if !ok {
		return nil, gameerr.InvalidTargetf("unknown enemy type: %s", enemyType).
			WithMeta("enemy_type", string(enemyType))
	}

	return &entities.Enemy{
		Name:       string(key),
		Type:       key,
		Health:     base.health,
		MaxHealth:  base.health,
		Strength:   base.strength,
		Magic:      base.magic,
		XPReward:   base.xpReward,
		GoldReward: base.goldReward,
	}, nil
}

// ForLevel: 1-2 goblin, 3-5 orc, 6+ dragon
func (s *service) ForLevel(level int) *entities.Enemy {
	enemyType := entities.EnemyDragon
	switch {
	case level <= 2:
		enemyType = entities.EnemyGoblin
	case level <= 5:
		enemyType = entities.EnemyOrc
	}

	enemy, _ := s.Create(enemyType)
	return enemy
}

func (s *service) Types() []entities.EnemyType {
	types := make([]entities.EnemyType, len(enemyOrder))
	copy(types, enemyOrder)
	return types
}

package testutils

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// CreateTestCharacter creates a fresh level 1 character of the given class.
// It panics on an unknown class.
func CreateTestCharacter(name string, class entities.CharacterClass) *entities.Character {
	char, err := entities.NewCharacter(name, class)
	if err != nil {
		panic(err)
	}
	return char
}

// CreateTestVeteran creates a character with progress and a filled inventory
func CreateTestVeteran(name string) *entities.Character {
	char := CreateTestCharacter(name, entities.ClassRogue)
	char.Level = 4
	char.MaxHealth = 120
	char.Health = 75
	char.Strength = 18
	char.Magic = 16
	char.Experience = 210
	char.Gold = 455
	char.Inventory = []string{"dagger", "lockpick", "healing potion"}
	char.ActiveQuests = []string{"the missing caravan"}
	char.CompletedQuests = []string{"rats in the cellar", "goblin camp"}
	return char
}

// CreateTestEnemy creates an enemy with explicit stats
func CreateTestEnemy(name string, health, strength int) *entities.Enemy {
	return &entities.Enemy{
		Name:       name,
		Type:       entities.EnemyType(name),
		Health:     health,
		MaxHealth:  health,
		Strength:   strength,
		XPReward:   25,
		GoldReward: 10,
	}
}

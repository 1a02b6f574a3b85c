package entities

import (
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const (
	// StartingGold is the purse every new character begins with
	StartingGold = 100

	// XPPerLevel times the current level is the experience needed to level up
	XPPerLevel = 100

	levelUpMaxHealth = 10
	levelUpStrength  = 2
	levelUpMagic     = 2
)

// Character is the durable player record, keyed by Name
type Character struct {
	Name            string
	Class           CharacterClass
	Level           int
	Health          int
	MaxHealth       int
	Strength        int
	Magic           int
	Experience      int
	Gold            int
	Inventory       []string
	ActiveQuests    []string
	CompletedQuests []string
}

// NewCharacter creates a level 1 character with the base stats of its class
func NewCharacter(name string, class CharacterClass) (*Character, error) {
	if name == "" {
		return nil, gameerr.InvalidArgument("character name is required")
	}

	stats, ok := BaseStatsFor(class)
	if !ok {
		return nil, gameerr.InvalidCharacterClassf("invalid class: %s", class).
			WithMeta("class", string(class))
	}

	return &Character{
		Name:            name,
		Class:           class,
		Level:           1,
		Health:          stats.Health,
		MaxHealth:       stats.Health,
		Strength:        stats.Strength,
		Magic:           stats.Magic,
		Experience:      0,
		Gold:            StartingGold,
		Inventory:       []string{},
		ActiveQuests:    []string{},
		CompletedQuests: []string{},
	}, nil
}

// Validate checks the record invariants. It does not require a playable
// class: old saves may carry a class the ability table no longer knows.
func (c *Character) Validate() error {
	switch {
	case c == nil:
		return gameerr.InvalidSaveDataf("character is nil")
	case c.Name == "":
		return gameerr.InvalidSaveDataf("missing field: name")
	case c.Class == "":
		return gameerr.InvalidSaveDataf("missing field: class")
	case c.Level < 1:
		return gameerr.InvalidSaveDataf("level must be at least 1, got %d", c.Level)
	case c.MaxHealth <= 0:
		return gameerr.InvalidSaveDataf("max_health must be positive, got %d", c.MaxHealth)
	case c.Health < 0 || c.Health > c.MaxHealth:
		return gameerr.InvalidSaveDataf("health %d outside 0..%d", c.Health, c.MaxHealth)
	case c.Strength < 0, c.Magic < 0:
		return gameerr.InvalidSaveDataf("strength and magic cannot be negative")
	case c.Experience < 0:
		return gameerr.InvalidSaveDataf("experience cannot be negative, got %d", c.Experience)
	case c.Gold < 0:
		return gameerr.InvalidSaveDataf("gold cannot be negative, got %d", c.Gold)
	case c.Inventory == nil:
		return gameerr.InvalidSaveDataf("inventory must be a list")
	case c.ActiveQuests == nil:
		return gameerr.InvalidSaveDataf("active_quests must be a list")
	case c.CompletedQuests == nil:
		return gameerr.InvalidSaveDataf("completed_quests must be a list")
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate stored records
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Inventory = append([]string{}, c.Inventory...)
	out.ActiveQuests = append([]string{}, c.ActiveQuests...)
	out.CompletedQuests = append([]string{}, c.CompletedQuests...)
	return &out
}

// LevelUpThreshold is the experience needed to leave the current level
func (c *Character) LevelUpThreshold() int {
	return c.Level * XPPerLevel
}

// GainExperience adds experience and applies every level-up it pays for.
// It returns how many levels were gained.
func (c *Character) GainExperience(amount int) (int, error) {
	if c.IsDead() {
		return 0, gameerr.CharacterDead("character is dead and cannot gain experience").
			WithMeta("name", c.Name)
	}
	if amount < 0 {
		return 0, gameerr.InvalidAmountf("experience gain cannot be negative, got %d", amount)
	}

	c.Experience += amount

	levels := 0
	for c.Experience >= c.LevelUpThreshold() {
		c.Experience -= c.LevelUpThreshold()
		c.Level++
		c.MaxHealth += levelUpMaxHealth
		c.Strength += levelUpStrength
		c.Magic += levelUpMagic
		c.Health = c.MaxHealth
		levels++
	}

	return levels, nil
}

// Heal restores health up to MaxHealth and returns the amount restored
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}

	old := c.Health
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	return c.Health - old
}

// AddGold adds (or with a negative amount, spends) gold and returns the new total.
// Gold is left untouched when the purse would go negative.
func (c *Character) AddGold(amount int) (int, error) {
	total := c.Gold + amount
	if total < 0 {
		return c.Gold, gameerr.InvalidAmountf("not enough gold: have %d, need %d", c.Gold, -amount).
			WithMeta("gold", c.Gold).
			WithMeta("amount", amount)
	}

	c.Gold = total
	return total, nil
}

// TakeDamage removes health, never going below zero
func (c *Character) TakeDamage(amount int) {
	c.Health = floorHealth(c.Health - amount)
}

// IsDead returns true when health is at or below zero
func (c *Character) IsDead() bool {
	return c.Health <= 0
}

// CanFight returns true if the character is able to start a battle
func (c *Character) CanFight() bool {
	return !c.IsDead()
}

// Revive brings a dead character back at half health.
// Returns false and does nothing if the character is alive.
func (c *Character) Revive() bool {
	if c.Health > 0 {
		return false
	}
	c.Health = c.MaxHealth / 2
	return true
}

// GetName returns the display name, shared with Enemy for combat output
func (c *Character) GetName() string { return c.Name }

// GetHealth returns current health
func (c *Character) GetHealth() int { return c.Health }

// GetMaxHealth returns max health
func (c *Character) GetMaxHealth() int { return c.MaxHealth }

// GetStrength returns strength
func (c *Character) GetStrength() int { return c.Strength }

func floorHealth(hp int) int {
	if hp < 0 {
		return 0
	}
	return hp
}

package entities

import (
	"fmt"
	"time"
)

// BattleStatus represents the current state of a battle
type BattleStatus string

const (
	BattleStatusActive     BattleStatus = "active"      // Combat in progress
	BattleStatusPlayerWon  BattleStatus = "player_won"  // Enemy defeated
	BattleStatusPlayerLost BattleStatus = "player_lost" // Character defeated
	BattleStatusEscaped    BattleStatus = "escaped"     // Character ran away
)

// Winner values reported in a BattleResult
const (
	WinnerPlayer  = "player"
	WinnerEnemy   = "enemy"
	WinnerEscaped = "escaped"
)

const maxCombatLogEntries = 20

// Battle is one in-progress fight between a character and an enemy
type Battle struct {
	ID         string
	Character  *Character
	Enemy      *Enemy
	Status     BattleStatus
	Turn       int
	XPGained   int
	GoldGained int
	CombatLog  []string
	StartedAt  time.Time
	EndedAt    *time.Time
}

// BattleResult is the terminal outcome of a battle
type BattleResult struct {
	Winner     string
	XPGained   int
	GoldGained int
}

// NewBattle creates an active battle
func NewBattle(id string, character *Character, enemy *Enemy) *Battle {
	return &Battle{
		ID:        id,
		Character: character,
		Enemy:     enemy,
		Status:    BattleStatusActive,
		CombatLog: []string{},
		StartedAt: time.Now(),
	}
}

// IsActive returns true while no terminal outcome has been reached
func (b *Battle) IsActive() bool {
	return b.Status == BattleStatusActive
}

// End moves the battle into a terminal status
func (b *Battle) End(status BattleStatus) {
	now := time.Now()
	b.Status = status
	b.EndedAt = &now
}

// Result returns the outcome, or nil while the battle is still active
func (b *Battle) Result() *BattleResult {
	var winner string
	switch b.Status {
	case BattleStatusPlayerWon:
		winner = WinnerPlayer
	case BattleStatusPlayerLost:
		winner = WinnerEnemy
	case BattleStatusEscaped:
		winner = WinnerEscaped
	default:
		return nil
	}

	return &BattleResult{
		Winner:     winner,
		XPGained:   b.XPGained,
		GoldGained: b.GoldGained,
	}
}

// AddCombatLogEntry adds an entry to the combat log
func (b *Battle) AddCombatLogEntry(entry string) {
	b.CombatLog = append(b.CombatLog, fmt.Sprintf("Turn %d: %s", b.Turn, entry))

	// Keep only the last entries to prevent unbounded growth
	if len(b.CombatLog) > maxCombatLogEntries {
		b.CombatLog = b.CombatLog[len(b.CombatLog)-maxCombatLogEntries:]
	}
}

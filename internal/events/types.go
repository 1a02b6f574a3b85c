package events

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	GetBattle() *entities.Battle
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Battle    *entities.Battle
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType          { return e.Type }
func (e *BaseEvent) GetBattle() *entities.Battle { return e.Battle }
func (e *BaseEvent) IsCancelled() bool           { return e.Cancelled }
func (e *BaseEvent) Cancel()                     { e.Cancelled = true }

// BattleEvent reports something that happened in a battle.
// Actor is the name of the combatant that acted, empty for status and end events.
type BattleEvent struct {
	BaseEvent
	Actor   string
	Message string
}

// NewBattleEvent creates a battle event
func NewBattleEvent(eventType EventType, battle *entities.Battle, actor, message string) *BattleEvent {
	return &BattleEvent{
		BaseEvent: BaseEvent{
			Type:   eventType,
			Battle: battle,
		},
		Actor:   actor,
		Message: message,
	}
}

package events

// Event type constants
const (
	EventTypeBattleStarted EventType = "battle.started"
	EventTypeBattleStatus  EventType = "battle.status" // Start of each round, before the player chooses
	EventTypeBattleAction  EventType = "battle.action"
	EventTypeBattleEnded   EventType = "battle.ended"
)

// BattleEventTypes lists every event the battle service emits
var BattleEventTypes = []EventType{
	EventTypeBattleStarted,
	EventTypeBattleStatus,
	EventTypeBattleAction,
	EventTypeBattleEnded,
}

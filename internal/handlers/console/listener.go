package console

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
)

// BattleListener prints battle events to a terminal
type BattleListener struct {
	out io.Writer
}

// NewBattleListener creates a listener writing to out
func NewBattleListener(out io.Writer) *BattleListener {
	return &BattleListener{out: out}
}

func (l *BattleListener) ID() string    { return "console-battle-listener" }
func (l *BattleListener) Priority() int { return 100 }

// HandleEvent prints both combatants on status events and the message
// prefixed with >>> on everything else
func (l *BattleListener) HandleEvent(event events.Event) error {
	b := event.GetBattle()

	if event.GetType() == events.EventTypeBattleStatus {
		if b == nil {
			return nil
		}
		_, err := fmt.Fprintf(l.out, "\n%s\n%s\n", statusLine(b.Character), statusLine(b.Enemy))
		return err
	}

	battleEvent, ok := event.(*events.BattleEvent)
	if !ok || battleEvent.Message == "" {
		return nil
	}
	_, err := fmt.Fprintf(l.out, ">>> %s\n", battleEvent.Message)
	return err
}

func statusLine(c entities.Combatant) string {
	return fmt.Sprintf("%s: HP=%d/%d", c.GetName(), c.GetHealth(), c.GetMaxHealth())
}

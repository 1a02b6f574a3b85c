package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
)

func TestBattleListener(t *testing.T) {
	var out bytes.Buffer
	listener := NewBattleListener(&out)

	char := testutils.CreateTestCharacter("Aria", entities.ClassMage)
	char.Health = 42
	b := entities.NewBattle("battle_1", char, testutils.CreateTestEnemy("orc", 80, 12))

	require.NoError(t, listener.HandleEvent(events.NewBattleEvent(events.EventTypeBattleStatus, b, "", "Round 1")))
	require.NoError(t, listener.HandleEvent(events.NewBattleEvent(events.EventTypeBattleAction, b, "Aria", "Fireball hits the orc for 40 damage")))
	require.NoError(t, listener.HandleEvent(events.NewBattleEvent(events.EventTypeBattleEnded, b, "", "You defeated the orc!")))

	assert.Equal(t, "\nAria: HP=42/80\norc: HP=80/80\n"+
		">>> Fireball hits the orc for 40 damage\n"+
		">>> You defeated the orc!\n", out.String())
}

package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/quest-chronicles/internal/dice"
)

// ManualMockRoller is a dice.Roller that hands out queued die faces in order.
// Running out of faces is an error, so a test sees every unplanned roll.
type ManualMockRoller struct {
	mu    sync.Mutex
	queue []int
	used  int
}

func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetNextRoll queues one more face
func (m *ManualMockRoller) SetNextRoll(face int) {
	m.mu.Lock()
	m.queue = append(m.queue, face)
	m.mu.Unlock()
}

// SetRolls discards anything still queued and queues faces instead
func (m *ManualMockRoller) SetRolls(faces []int) {
	m.mu.Lock()
	m.queue = append([]int(nil), faces...)
	m.used = 0
	m.mu.Unlock()
}

// Remaining is the number of queued faces not yet rolled
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Roll takes count faces off the queue. Each must fit the die.
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if count > len(m.queue) {
		return nil, fmt.Errorf("rolled %dd%d with %d faces queued (%d already used)", count, sides, len(m.queue), m.used)
	}

	faces := make([]int, count)
	copy(faces, m.queue[:count])

	sum := 0
	for _, face := range faces {
		if face < 1 || face > sides {
			return nil, fmt.Errorf("queued face %d does not fit a d%d", face, sides)
		}
		sum += face
	}

	m.queue = m.queue[count:]
	m.used += count

	return &dice.RollResult{
		Total:    sum + bonus,
		Rolls:    faces,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: sum,
	}, nil
}

package entities

// EnemyType names an entry in the enemy table
type EnemyType string

const (
	EnemyGoblin EnemyType = "goblin"
	EnemyOrc    EnemyType = "orc"
	EnemyDragon EnemyType = "dragon"
)

// Enemy is a hostile combatant, created fresh for each battle
type Enemy struct {
	Name       string
	Type       EnemyType
	Health     int
	MaxHealth  int
	Strength   int
	Magic      int
	XPReward   int
	GoldReward int
}

// Rewards is what a character earns for defeating an enemy
type Rewards struct {
	XP   int
	Gold int
}

// Rewards returns the experience and gold this enemy is worth
func (e *Enemy) Rewards() Rewards {
	return Rewards{XP: e.XPReward, Gold: e.GoldReward}
}

// TakeDamage removes health, never going below zero
func (e *Enemy) TakeDamage(amount int) {
	e.Health = floorHealth(e.Health - amount)
}

// IsDefeated returns true when the enemy is out of health
func (e *Enemy) IsDefeated() bool {
	return e.Health <= 0
}

func (e *Enemy) GetName() string   { return e.Name }
func (e *Enemy) GetHealth() int    { return e.Health }
func (e *Enemy) GetMaxHealth() int { return e.MaxHealth }
func (e *Enemy) GetStrength() int  { return e.Strength }

// Combatant is anything that can trade blows in a battle
type Combatant interface {
	GetName() string
	GetHealth() int
	GetMaxHealth() int
	GetStrength() int
	TakeDamage(amount int)
}

var (
	_ Combatant = (*Character)(nil)
	_ Combatant = (*Enemy)(nil)
)

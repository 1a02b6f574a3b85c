package ability

import (
	"fmt"

	"github.com/KirkDiggler/quest-chronicles/internal/dice"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const (
	healAmount     = 30
	criticalChance = 50
)

// Ability names
const (
	PowerStrike    = "Power Strike"
	Fireball       = "Fireball"
	CriticalStrike = "Critical Strike"
	Heal           = "Heal"
)

// Result describes what a special ability did
type Result struct {
	Name     string
	Damage   int
	Healed   int
	Critical bool
	Message  string
}

// Service resolves class special abilities
type Service interface {
	// Use applies the character's class ability to the enemy or to itself
	Use(char *entities.Character, enemy *entities.Enemy) (*Result, error)
}

type service struct {
	diceRoller dice.Roller
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	DiceRoller dice.Roller // Required
}

// NewService creates a new ability service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.DiceRoller == nil {
		panic("dice roller is required")
	}

	return &service{diceRoller: cfg.DiceRoller}
}

// Use dispatches on class, ignoring case
func (s *service) Use(char *entities.Character, enemy *entities.Enemy) (*Result, error) {
	if char == nil || enemy == nil {
		return nil, gameerr.InvalidArgument("character and enemy are required")
	}

	class, _ := char.Class.Normalize()
	switch class {
	case entities.ClassWarrior:
		return strike(PowerStrike, char.Strength*2, enemy), nil
	case entities.ClassMage:
		return strike(Fireball, char.Magic*2, enemy), nil
	case entities.ClassRogue:
		return s.criticalStrike(char, enemy)
	case entities.ClassCleric:
		healed := char.Heal(healAmount)
		return &Result{
			Name:    Heal,
			Healed:  healed,
			Message: fmt.Sprintf("%s casts %s and restores %d health", char.Name, Heal, healed),
		}, nil
	default:
		return nil, gameerr.AbilityUnavailablef("class '%s' has no special ability", char.Class).
			WithMeta("class", string(char.Class))
	}
}

func (s *service) criticalStrike(char *entities.Character, enemy *entities.Enemy) (*Result, error) {
	crit, err := dice.Chance(s.diceRoller, criticalChance)
	if err != nil {
		return nil, gameerr.WrapWithCode(err, gameerr.CodeInternal, "failed to roll for critical strike")
	}

	if !crit {
		result := strike(CriticalStrike, char.Strength, enemy)
		result.Message = fmt.Sprintf("%s misses the weak spot and deals %d damage", CriticalStrike, result.Damage)
		return result, nil
	}

	result := strike(CriticalStrike, char.Strength*3, enemy)
	result.Critical = true
	return result, nil
}

func strike(name string, damage int, enemy *entities.Enemy) *Result {
	enemy.TakeDamage(damage)
	return &Result{
		Name:    name,
		Damage:  damage,
		Message: fmt.Sprintf("%s hits the %s for %d damage", name, enemy.Name, damage),
	}
}

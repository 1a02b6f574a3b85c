package battle

//go:generate mockgen -destination=mock/mock_provider.go -package=mockbattle github.com/KirkDiggler/quest-chronicles/internal/services/battle ActionProvider

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/dice"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
	"github.com/KirkDiggler/quest-chronicles/internal/services/ability"
	"github.com/KirkDiggler/quest-chronicles/internal/uuid"
)

const escapeChance = 50

// Action is what the player does on their turn
type Action string

const (
	ActionAttack  Action = "attack"
	ActionSpecial Action = "special"
	ActionRun     Action = "run"
)

// ParseAction accepts the menu number or the action name
func ParseAction(choice string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "1", string(ActionAttack):
		return ActionAttack, nil
	case "2", string(ActionSpecial):
		return ActionSpecial, nil
	case "3", string(ActionRun):
		return ActionRun, nil
	default:
		return "", gameerr.InvalidArgumentf("unknown action: %q", choice)
	}
}

// ActionProvider supplies the player's choice each round. It is the only
// place a battle waits on the outside world.
type ActionProvider interface {
	NextAction(ctx context.Context, battle *entities.Battle) (Action, error)
}

// Service runs battles between a character and an enemy
type Service interface {
	// Start opens a battle. The character must be alive.
	Start(ctx context.Context, char *entities.Character, enemy *entities.Enemy) (*entities.Battle, error)

	// PlayRound runs one player turn, the enemy reply and the end check
	PlayRound(ctx context.Context, battle *entities.Battle, action Action) error

	// PlayerTurn resolves the player's action
	PlayerTurn(ctx context.Context, battle *entities.Battle, action Action) error

	// EnemyTurn has the enemy attack the character
	EnemyTurn(ctx context.Context, battle *entities.Battle) error

	// CheckEnd ends the battle when either side is down and awards rewards
	// on a win. It reports whether the battle is over.
	CheckEnd(ctx context.Context, battle *entities.Battle) (bool, error)

	// Run plays rounds until the battle reaches a terminal outcome
	Run(ctx context.Context, battle *entities.Battle, provider ActionProvider) (*entities.BattleResult, error)
}

type service struct {
	diceRoller     dice.Roller
	abilityService ability.Service
	uuidGenerator  uuid.Generator
	publisher      events.Publisher
}

// ServiceConfig holds configuration for the battle service
type ServiceConfig struct {
	DiceRoller     dice.Roller      // Required
	AbilityService ability.Service  // Optional, built from DiceRoller if nil
	UUIDGenerator  uuid.Generator   // Optional
	EventBus       events.Publisher // Optional
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.DiceRoller == nil {
		panic("dice roller is required")
	}

	svc := &service{
		diceRoller:     cfg.DiceRoller,
		abilityService: cfg.AbilityService,
		uuidGenerator:  cfg.UUIDGenerator,
		publisher:      cfg.EventBus,
	}

	if svc.abilityService == nil {
		svc.abilityService = ability.NewService(&ability.ServiceConfig{DiceRoller: cfg.DiceRoller})
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewPrefixedGenerator("battle")
	}
	if svc.publisher == nil {
		svc.publisher = events.NewBus()
	}

	return svc
}

// CalculateDamage is attacker strength minus a quarter of the defender's, at least 1
func CalculateDamage(attacker, defender entities.Combatant) int {
	damage := attacker.GetStrength() - defender.GetStrength()/4
	if damage < 1 {
		return 1
	}
	return damage
}

func (s *service) Start(ctx context.Context, char *entities.Character, enemy *entities.Enemy) (*entities.Battle, error) {
	if char == nil {
		return nil, gameerr.InvalidArgument("character is required")
	}
	if enemy == nil {
		return nil, gameerr.InvalidArgument("enemy is required")
	}
	if !char.CanFight() {
		return nil, gameerr.CharacterDead(fmt.Sprintf("%s is dead and cannot fight", char.Name)).
			WithMeta("name", char.Name)
	}

	battle := entities.NewBattle(s.uuidGenerator.New(), char, enemy)

	msg := fmt.Sprintf("%s faces a %s!", char.Name, enemy.Name)
	if err := s.emit(events.EventTypeBattleStarted, battle, "", msg); err != nil {
		return nil, err
	}

	return battle, nil
}

func (s *service) PlayRound(ctx context.Context, battle *entities.Battle, action Action) error {
	if err := requireActive(battle); err != nil {
		return err
	}

	battle.Turn++
	if err := s.PlayerTurn(ctx, battle, action); err != nil {
		// The round never happened, unless it already ended the battle
		if battle.IsActive() {
			battle.Turn--
		}
		return err
	}

	// Skipped for a defeated enemy: a dying blow could kill the character and GainExperience refuses a dead winner
	if battle.IsActive() && !battle.Enemy.IsDefeated() {
		if err := s.EnemyTurn(ctx, battle); err != nil {
			return err
		}
	}

	if _, err := s.CheckEnd(ctx, battle); err != nil {
		return err
	}

	return nil
}

func (s *service) PlayerTurn(ctx context.Context, battle *entities.Battle, action Action) error {
	if err := requireActive(battle); err != nil {
		return err
	}

	char, enemy := battle.Character, battle.Enemy

	switch action {
	case ActionAttack:
		damage := CalculateDamage(char, enemy)
		enemy.TakeDamage(damage)
		return s.emit(events.EventTypeBattleAction, battle, char.Name,
			fmt.Sprintf("%s attacks the %s for %d damage", char.Name, enemy.Name, damage))

	case ActionSpecial:
		result, err := s.abilityService.Use(char, enemy)
		if err != nil {
			return err
		}
		return s.emit(events.EventTypeBattleAction, battle, char.Name, result.Message)

	case ActionRun:
		escaped, err := dice.Chance(s.diceRoller, escapeChance)
		if err != nil {
			return gameerr.WrapWithCode(err, gameerr.CodeInternal, "failed to roll escape")
		}
		if !escaped {
			return s.emit(events.EventTypeBattleAction, battle, char.Name, "Escape failed!")
		}
		battle.End(entities.BattleStatusEscaped)
		return s.emit(events.EventTypeBattleEnded, battle, "", "You successfully escaped!")

	default:
		return gameerr.InvalidArgumentf("unknown action: %q", action)
	}
}

func (s *service) EnemyTurn(ctx context.Context, battle *entities.Battle) error {
	if err := requireActive(battle); err != nil {
		return err
	}

	char, enemy := battle.Character, battle.Enemy
	damage := CalculateDamage(enemy, char)
	char.TakeDamage(damage)

	return s.emit(events.EventTypeBattleAction, battle, enemy.Name,
		fmt.Sprintf("The %s attacks %s for %d damage", enemy.Name, char.Name, damage))
}

func (s *service) CheckEnd(ctx context.Context, battle *entities.Battle) (bool, error) {
	if battle == nil {
		return false, gameerr.InvalidArgument("battle is required")
	}
	if !battle.IsActive() {
		return true, nil
	}

	char, enemy := battle.Character, battle.Enemy

	switch {
	case enemy.IsDefeated():
		rewards := enemy.Rewards()
		levels, err := char.GainExperience(rewards.XP)
		if err != nil {
			return false, gameerr.Wrap(err, "failed to award experience")
		}
		if _, err := char.AddGold(rewards.Gold); err != nil {
			return false, gameerr.Wrap(err, "failed to award gold")
		}

		battle.XPGained = rewards.XP
		battle.GoldGained = rewards.Gold
		battle.End(entities.BattleStatusPlayerWon)

		if err := s.emit(events.EventTypeBattleEnded, battle, "",
			fmt.Sprintf("You defeated the %s!", enemy.Name)); err != nil {
			return true, err
		}
		if levels > 0 {
			if err := s.emit(events.EventTypeBattleAction, battle, char.Name,
				fmt.Sprintf("%s reached level %d!", char.Name, char.Level)); err != nil {
				return true, err
			}
		}
		return true, nil

	case char.IsDead():
		battle.End(entities.BattleStatusPlayerLost)
		return true, s.emit(events.EventTypeBattleEnded, battle, "", "You have been defeated!")
	}

	return false, nil
}

func (s *service) Run(ctx context.Context, battle *entities.Battle, provider ActionProvider) (*entities.BattleResult, error) {
	if provider == nil {
		return nil, gameerr.InvalidArgument("action provider is required")
	}
	if err := requireActive(battle); err != nil {
		return nil, err
	}

	for battle.IsActive() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.emit(events.EventTypeBattleStatus, battle, "",
			fmt.Sprintf("Round %d", battle.Turn+1)); err != nil {
			return nil, err
		}

		action, err := provider.NextAction(ctx, battle)
		if err != nil {
			return nil, gameerr.Wrap(err, "failed to get player action")
		}

		if err := s.PlayRound(ctx, battle, action); err != nil {
			return nil, err
		}
	}

	return battle.Result(), nil
}

func (s *service) emit(eventType events.EventType, battle *entities.Battle, actor, message string) error {
	if eventType != events.EventTypeBattleStatus {
		battle.AddCombatLogEntry(message)
	}
	return s.publisher.Emit(events.NewBattleEvent(eventType, battle, actor, message))
}

func requireActive(battle *entities.Battle) error {
	if battle == nil {
		return gameerr.InvalidArgument("battle is required")
	}
	if !battle.IsActive() {
		return gameerr.CombatNotActive(fmt.Sprintf("battle %s is %s", battle.ID, battle.Status)).
			WithMeta("battle_id", battle.ID)
	}
	return nil
}

package battle_test

import (
	"context"
	"errors"
	"testing"

	mockdice "github.com/KirkDiggler/quest-chronicles/internal/dice/mock"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
	"github.com/KirkDiggler/quest-chronicles/internal/services/battle"
	mockbattle "github.com/KirkDiggler/quest-chronicles/internal/services/battle/mock"
	"github.com/KirkDiggler/quest-chronicles/internal/services/monster"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
	mockuuid "github.com/KirkDiggler/quest-chronicles/internal/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BattleServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	roller   *mockdice.ManualMockRoller
	uuidGen  *mockuuid.MockGenerator
	provider *mockbattle.MockActionProvider
	bus      *events.Bus
	emitted  []*events.BattleEvent
	monsters monster.Service
	service  battle.Service
	ctx      context.Context
}

func (s *BattleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockdice.NewManualMockRoller()
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.provider = mockbattle.NewMockActionProvider(s.ctrl)
	s.monsters = monster.NewService()
	s.ctx = context.Background()

	s.emitted = nil
	s.bus = events.NewBus()
	s.bus.SubscribeAll(events.BattleEventTypes, &events.ListenerFunc{
		Name: "recorder",
		Callback: func(e events.Event) error {
			s.emitted = append(s.emitted, e.(*events.BattleEvent))
			return nil
		},
	})

	s.service = battle.NewService(&battle.ServiceConfig{
		DiceRoller:    s.roller,
		UUIDGenerator: s.uuidGen,
		EventBus:      s.bus,
	})
}

func (s *BattleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.Equal(0, s.roller.Remaining(), "all queued rolls should be used")
}

func TestBattleServiceSuite(t *testing.T) {
	suite.Run(t, new(BattleServiceTestSuite))
}

func (s *BattleServiceTestSuite) start(char *entities.Character, enemyType entities.EnemyType) *entities.Battle {
	enemy, err := s.monsters.Create(enemyType)
	s.Require().NoError(err)

	s.uuidGen.EXPECT().New().Return("battle_test")
	b, err := s.service.Start(s.ctx, char, enemy)
	s.Require().NoError(err)
	return b
}

func (s *BattleServiceTestSuite) eventTypes() []events.EventType {
	types := make([]events.EventType, len(s.emitted))
	for i, e := range s.emitted {
		types[i] = e.GetType()
	}
	return types
}

func (s *BattleServiceTestSuite) lastMessage() string {
	s.Require().NotEmpty(s.emitted)
	return s.emitted[len(s.emitted)-1].Message
}

func (s *BattleServiceTestSuite) TestCalculateDamage() {
	warrior := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)

	s.Equal(13, battle.CalculateDamage(warrior, testutils.CreateTestEnemy("goblin", 50, 8)))
	s.Equal(5, battle.CalculateDamage(testutils.CreateTestEnemy("goblin", 50, 8), warrior))
	s.Equal(1, battle.CalculateDamage(testutils.CreateTestEnemy("rat", 5, 2), testutils.CreateTestEnemy("golem", 50, 40)))
}

func (s *BattleServiceTestSuite) TestStart() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	b := s.start(char, entities.EnemyGoblin)

	s.Equal("battle_test", b.ID)
	s.True(b.IsActive())
	s.Equal(0, b.Turn)
	s.Same(char, b.Character)
	s.Equal([]events.EventType{events.EventTypeBattleStarted}, s.eventTypes())
	s.Equal("Hero faces a goblin!", s.lastMessage())
}

func (s *BattleServiceTestSuite) TestStart_DeadCharacter() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	char.Health = 0

	_, err := s.service.Start(s.ctx, char, testutils.CreateTestEnemy("goblin", 50, 8))
	s.True(gameerr.IsCharacterDead(err))
	s.Empty(s.emitted)
}

func (s *BattleServiceTestSuite) TestStart_NilInputs() {
	_, err := s.service.Start(s.ctx, nil, testutils.CreateTestEnemy("goblin", 50, 8))
	s.True(gameerr.IsInvalidArgument(err))

	_, err = s.service.Start(s.ctx, testutils.CreateTestCharacter("Hero", entities.ClassMage), nil)
	s.True(gameerr.IsInvalidArgument(err))
}

func (s *BattleServiceTestSuite) TestPlayRound_AttackExchange() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)

	s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionAttack))

	s.Equal(1, b.Turn)
	s.Equal(37, b.Enemy.Health)
	s.Equal(115, b.Character.Health)
	s.True(b.IsActive())
	s.Equal([]string{
		"Turn 0: Hero faces a goblin!",
		"Turn 1: Hero attacks the goblin for 13 damage",
		"Turn 1: The goblin attacks Hero for 5 damage",
	}, b.CombatLog)
}

func (s *BattleServiceTestSuite) TestPlayRound_WinAwardsRewards() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	b := s.start(char, entities.EnemyGoblin)

	for b.IsActive() {
		s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionAttack))
	}

	s.Equal(4, b.Turn)
	s.Equal(entities.BattleStatusPlayerWon, b.Status)
	s.Equal(0, b.Enemy.Health)
	// The killing blow lands before the goblin's fourth swing
	s.Equal(105, char.Health)
	s.Equal(25, char.Experience)
	s.Equal(110, char.Gold)
	s.Equal(&entities.BattleResult{Winner: entities.WinnerPlayer, XPGained: 25, GoldGained: 10}, b.Result())
	s.Equal("You defeated the goblin!", s.lastMessage())
}

func (s *BattleServiceTestSuite) TestPlayRound_WinLevelsUp() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	char.Experience = 90
	b := s.start(char, entities.EnemyGoblin)

	for b.IsActive() {
		s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionAttack))
	}

	s.Equal(2, char.Level)
	s.Equal(15, char.Experience)
	s.Equal(char.MaxHealth, char.Health)
	s.Equal("Hero reached level 2!", s.lastMessage())
}

func (s *BattleServiceTestSuite) TestPlayRound_Loss() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassMage)
	b := s.start(char, entities.EnemyDragon)

	for b.IsActive() {
		s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionAttack))
	}

	s.Equal(entities.BattleStatusPlayerLost, b.Status)
	s.Equal(4, b.Turn)
	s.Equal(0, char.Health)
	s.Equal(192, b.Enemy.Health)
	s.Equal(0, char.Experience)
	s.Equal(100, char.Gold)
	s.Equal(&entities.BattleResult{Winner: entities.WinnerEnemy}, b.Result())
	s.Equal("You have been defeated!", s.lastMessage())
}

func (s *BattleServiceTestSuite) TestPlayRound_EscapeSkipsEnemyTurn() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	b := s.start(char, entities.EnemyOrc)
	s.roller.SetRolls([]int{50})

	s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionRun))

	s.Equal(entities.BattleStatusEscaped, b.Status)
	s.Equal(120, char.Health)
	s.Equal(80, b.Enemy.Health)
	s.Equal(&entities.BattleResult{Winner: entities.WinnerEscaped}, b.Result())
	s.Equal(events.EventTypeBattleEnded, s.emitted[len(s.emitted)-1].GetType())
	s.Equal("You successfully escaped!", s.lastMessage())
}

func (s *BattleServiceTestSuite) TestPlayRound_EscapeKeepsTurnWhenEndedEventFails() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyOrc)
	s.bus.Subscribe(events.EventTypeBattleEnded, &events.ListenerFunc{
		Name:     "broken",
		Callback: func(events.Event) error { return errors.New("terminal gone") },
	})
	s.roller.SetRolls([]int{50})

	err := s.service.PlayRound(s.ctx, b, battle.ActionRun)
	s.Error(err)

	s.Equal(entities.BattleStatusEscaped, b.Status)
	s.Equal(1, b.Turn, "the escape round was played")
}

func (s *BattleServiceTestSuite) TestPlayRound_EscapeRollError() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyOrc)

	err := s.service.PlayRound(s.ctx, b, battle.ActionRun)
	s.Equal(gameerr.CodeInternal, gameerr.GetCode(err))
	s.True(b.IsActive())
	s.Equal(0, b.Turn)
}

func (s *BattleServiceTestSuite) TestPlayRound_FailedEscape() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	b := s.start(char, entities.EnemyOrc)
	s.roller.SetRolls([]int{51})

	s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionRun))

	s.True(b.IsActive())
	// orc: 12 - 15/4 = 9
	s.Equal(111, char.Health)
	s.Contains(b.CombatLog, "Turn 1: Escape failed!")
}

func (s *BattleServiceTestSuite) TestPlayRound_Special() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	b := s.start(char, entities.EnemyGoblin)

	s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionSpecial))

	s.Equal(20, b.Enemy.Health)
	s.Equal(115, char.Health)
	s.Contains(b.CombatLog, "Turn 1: Power Strike hits the goblin for 30 damage")
}

func (s *BattleServiceTestSuite) TestPlayRound_SpecialKillSkipsEnemyTurn() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassMage)
	char.Magic = 30
	b := s.start(char, entities.EnemyGoblin)

	s.Require().NoError(s.service.PlayRound(s.ctx, b, battle.ActionSpecial))

	s.Equal(entities.BattleStatusPlayerWon, b.Status)
	s.Equal(80, char.Health)
}

func (s *BattleServiceTestSuite) TestPlayRound_UnavailableAbility() {
	char := testutils.CreateTestCharacter("Hero", entities.ClassWarrior)
	char.Class = "Bard"
	b := s.start(char, entities.EnemyGoblin)

	err := s.service.PlayRound(s.ctx, b, battle.ActionSpecial)
	s.True(gameerr.IsAbilityUnavailable(err))
	s.Equal(0, b.Turn)
	s.True(b.IsActive())
	s.Equal(120, char.Health)
}

func (s *BattleServiceTestSuite) TestPlayRound_UnknownAction() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)

	err := s.service.PlayRound(s.ctx, b, battle.Action("dance"))
	s.True(gameerr.IsInvalidArgument(err))
	s.Equal(0, b.Turn)
}

func (s *BattleServiceTestSuite) TestTurnsRequireActiveBattle() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)
	b.End(entities.BattleStatusEscaped)

	s.True(gameerr.IsCombatNotActive(s.service.PlayRound(s.ctx, b, battle.ActionAttack)))
	s.True(gameerr.IsCombatNotActive(s.service.PlayerTurn(s.ctx, b, battle.ActionAttack)))
	s.True(gameerr.IsCombatNotActive(s.service.EnemyTurn(s.ctx, b)))

	_, err := s.service.Run(s.ctx, b, s.provider)
	s.True(gameerr.IsCombatNotActive(err))

	ended, err := s.service.CheckEnd(s.ctx, b)
	s.NoError(err)
	s.True(ended)
}

func (s *BattleServiceTestSuite) TestCheckEnd_Ongoing() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)

	ended, err := s.service.CheckEnd(s.ctx, b)
	s.NoError(err)
	s.False(ended)
	s.True(b.IsActive())
}

func (s *BattleServiceTestSuite) TestRun_UntilWin() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)
	s.provider.EXPECT().NextAction(s.ctx, b).Return(battle.ActionAttack, nil).Times(4)

	result, err := s.service.Run(s.ctx, b, s.provider)
	s.Require().NoError(err)
	s.Equal(entities.WinnerPlayer, result.Winner)

	statuses := 0
	for _, t := range s.eventTypes() {
		if t == events.EventTypeBattleStatus {
			statuses++
		}
	}
	s.Equal(4, statuses, "one status event per round")
	s.Equal(events.EventTypeBattleStarted, s.emitted[0].GetType())
	s.Equal(events.EventTypeBattleStatus, s.emitted[1].GetType())
	s.Equal("Round 1", s.emitted[1].Message)
}

func (s *BattleServiceTestSuite) TestRun_EscapeEndsImmediately() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyDragon)
	s.roller.SetRolls([]int{51, 12})

	gomock.InOrder(
		s.provider.EXPECT().NextAction(s.ctx, b).Return(battle.ActionRun, nil),
		s.provider.EXPECT().NextAction(s.ctx, b).Return(battle.ActionRun, nil),
	)

	result, err := s.service.Run(s.ctx, b, s.provider)
	s.Require().NoError(err)
	s.Equal(entities.WinnerEscaped, result.Winner)
	s.Equal(2, b.Turn)
	// Only the failed attempt gave the dragon a swing: 25 - 15/4 = 22
	s.Equal(98, b.Character.Health)
}

func (s *BattleServiceTestSuite) TestRun_ProviderError() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)
	s.provider.EXPECT().NextAction(s.ctx, b).Return(battle.Action(""), errors.New("stdin closed"))

	_, err := s.service.Run(s.ctx, b, s.provider)
	s.Require().Error(err)
	s.Contains(err.Error(), "stdin closed")
	s.True(b.IsActive())
}

func (s *BattleServiceTestSuite) TestRun_ContextCancelled() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Run(ctx, b, s.provider)
	s.ErrorIs(err, context.Canceled)
}

func (s *BattleServiceTestSuite) TestRun_ListenerErrorAborts() {
	b := s.start(testutils.CreateTestCharacter("Hero", entities.ClassWarrior), entities.EnemyGoblin)
	s.bus.Subscribe(events.EventTypeBattleStatus, &events.ListenerFunc{
		Name:     "broken",
		Callback: func(events.Event) error { return errors.New("terminal gone") },
	})

	_, err := s.service.Run(s.ctx, b, s.provider)
	s.Error(err)
}

func (s *BattleServiceTestSuite) TestParseAction() {
	for input, want := range map[string]battle.Action{
		"1": battle.ActionAttack, " 2 ": battle.ActionSpecial, "3": battle.ActionRun,
		"Attack": battle.ActionAttack, "run": battle.ActionRun,
	} {
		got, err := battle.ParseAction(input)
		s.NoError(err, input)
		s.Equal(want, got, input)
	}

	_, err := battle.ParseAction("4")
	s.True(gameerr.IsInvalidArgument(err))
}

func (s *BattleServiceTestSuite) TestNewService_RequiresRoller() {
	s.Panics(func() { battle.NewService(&battle.ServiceConfig{}) })
}

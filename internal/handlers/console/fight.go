package console

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/events"
	"github.com/KirkDiggler/quest-chronicles/internal/services/monster"
)

// NewFightCmd creates the fight command.
func NewFightCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fight <name>",
		Short: "Battle an enemy and save the outcome",
		Long: `Battle the enemy for the character's level (goblin up to level 2,
orc up to level 5, dragon after that) or the one named with --enemy.
Each round asks for an action on stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := a.provider

			char, err := p.CharacterService.Get(ctx, args[0])
			if err != nil {
				return err
			}

			var enemy *entities.Enemy
			if enemyType, _ := cmd.Flags().GetString("enemy"); enemyType != "" {
				enemy, err = p.MonsterService.Create(entities.EnemyType(enemyType))
				if err != nil {
					return err
				}
			} else {
				enemy = p.MonsterService.ForLevel(char.Level)
			}

			listener := NewBattleListener(out)
			p.EventBus.SubscribeAll(events.BattleEventTypes, listener)
			defer func() {
				for _, eventType := range events.BattleEventTypes {
					p.EventBus.Unsubscribe(eventType, listener.ID())
				}
			}()

			battle, err := p.BattleService.Start(ctx, char, enemy)
			if err != nil {
				return err
			}

			result, runErr := p.BattleService.Run(ctx, battle, NewPromptProvider(cmd.InOrStdin(), out))

			// Damage taken so far is kept even when the battle is abandoned
			if err := p.CharacterService.Save(ctx, char); err != nil {
				return gameerr.Wrapf(err, "failed to save %s after battle", char.Name)
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(out, "Winner: %s (+%d XP, +%d gold)\n", result.Winner, result.XPGained, result.GoldGained)
			fmt.Fprintf(out, "%s is level %d with HP=%d/%d and %d gold\n",
				char.Name, char.Level, char.Health, char.MaxHealth, char.Gold)
			return nil
		},
	}

	enemyTypes := monster.NewService().Types()
	types := make([]string, 0, len(enemyTypes))
	for _, enemyType := range enemyTypes {
		types = append(types, string(enemyType))
	}
	cmd.Flags().String("enemy", "", "enemy type: "+strings.Join(types, ", "))

	return cmd
}

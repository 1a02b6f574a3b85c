// Package console is the terminal front end: a cobra command tree over the
// game services.
package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/repositories/characters"
	"github.com/KirkDiggler/quest-chronicles/internal/services"
)

// AppName is the binary name
const AppName = "quest"

type openRepositoryFunc func(ctx context.Context, cfg *config.Config) (characters.Repository, func() error, error)

// app holds what every command needs once flags are parsed
type app struct {
	cfg            config.Config
	provider       *services.Provider
	openRepository openRepositoryFunc
	closeRepo      func() error
}

// NewRootCmd creates the root command. cfg supplies defaults that the
// global flags may override. The returned func releases the storage a
// command opened; call it once Execute returns, whether or not it failed.
func NewRootCmd(cfg *config.Config) (*cobra.Command, func() error) {
	return newRootCmd(&app{cfg: *cfg, openRepository: services.NewCharacterRepository})
}

func newRootCmd(a *app) (*cobra.Command, func() error) {
	cfg := a.cfg

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Quest Chronicles - a text RPG",
		Long:          "Create characters, send them into battle and keep their saves.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().String("save-dir", cfg.Storage.SaveDir, "directory for save files")
	cmd.PersistentFlags().String("storage", string(cfg.Storage.Backend), "storage backend: file, redis or memory")
	cmd.PersistentFlags().Int64("seed", cfg.Dice.Seed, "dice seed, 0 for random")

	cmd.AddCommand(
		NewNewCmd(a),
		NewListCmd(a),
		NewShowCmd(a),
		NewDeleteCmd(a),
		NewFightCmd(a),
		NewReviveCmd(a),
	)

	return cmd, a.close
}

func (a *app) init(cmd *cobra.Command) error {
	if cmd.Flags().Changed("save-dir") {
		a.cfg.Storage.SaveDir, _ = cmd.Flags().GetString("save-dir")
	}
	if cmd.Flags().Changed("storage") {
		storage, _ := cmd.Flags().GetString("storage")
		a.cfg.Storage.Backend = config.StorageBackend(storage)
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Dice.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	repo, closeRepo, err := a.openRepository(cmd.Context(), &a.cfg)
	if err != nil {
		return err
	}
	a.closeRepo = closeRepo

	a.provider = services.NewProvider(&services.ProviderConfig{
		CharacterRepository: repo,
		DiceRoller:          services.NewDiceRoller(&a.cfg),
	})

	return nil
}

func (a *app) close() error {
	if a.closeRepo == nil {
		return nil
	}
	closeRepo := a.closeRepo
	a.closeRepo = nil
	if err := closeRepo(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}

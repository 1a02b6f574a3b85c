package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// NewNewCmd creates the new command.
func NewNewCmd(a *app) *cobra.Command {
	classes := make([]string, 0, len(entities.Classes()))
	for _, class := range entities.Classes() {
		classes = append(classes, class.String())
	}

	return &cobra.Command{
		Use:   "new <name> <class>",
		Short: "Create and save a new character",
		Long:  "Create a level 1 character. Class is one of: " + strings.Join(classes, ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.provider.CharacterService.Create(cmd.Context(), args[0], entities.CharacterClass(args[1]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s the %s\n", char.Name, char.Class)
			writeSheet(cmd.OutOrStdout(), char)
			return nil
		},
	}
}

// NewListCmd creates the list command.
func NewListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.provider.CharacterService.Summaries(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No saved characters")
				return nil
			}

			for _, s := range summaries {
				if s.Problem != nil {
					fmt.Fprintf(out, "%-16s (unreadable: %v)\n", s.Name, s.Problem)
					continue
				}
				fmt.Fprintf(out, "%-16s %-8s level %-3d HP=%d/%d gold %d\n",
					s.Name, s.Class, s.Level, s.Health, s.MaxHealth, s.Gold)
			}
			return nil
		},
	}
}

// NewShowCmd creates the show command.
func NewShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.provider.CharacterService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			writeSheet(cmd.OutOrStdout(), char)
			return nil
		},
	}
}

// NewDeleteCmd creates the delete command.
func NewDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.provider.CharacterService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// NewReviveCmd creates the revive command.
func NewReviveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "revive <name>",
		Short: "Revive a dead character at half health",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, revived, err := a.provider.CharacterService.Revive(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !revived {
				fmt.Fprintf(out, "%s is not dead\n", char.Name)
				return nil
			}
			fmt.Fprintf(out, "%s has been revived with HP=%d/%d\n", char.Name, char.Health, char.MaxHealth)
			return nil
		},
	}
}

func writeSheet(w io.Writer, char *entities.Character) {
	fmt.Fprintf(w, "Name:       %s\n", char.Name)
	fmt.Fprintf(w, "Class:      %s\n", char.Class)
	fmt.Fprintf(w, "Level:      %d\n", char.Level)
	fmt.Fprintf(w, "Health:     %d/%d\n", char.Health, char.MaxHealth)
	fmt.Fprintf(w, "Strength:   %d\n", char.Strength)
	fmt.Fprintf(w, "Magic:      %d\n", char.Magic)
	fmt.Fprintf(w, "Experience: %d/%d\n", char.Experience, char.LevelUpThreshold())
	fmt.Fprintf(w, "Gold:       %d\n", char.Gold)
	fmt.Fprintf(w, "Inventory:  %s\n", listOrNone(char.Inventory))
	fmt.Fprintf(w, "Quests:     %s\n", listOrNone(char.ActiveQuests))
	fmt.Fprintf(w, "Completed:  %s\n", listOrNone(char.CompletedQuests))
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

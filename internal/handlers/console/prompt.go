package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/services/battle"
)

// ActionPrompt is shown before reading each action
const ActionPrompt = "Choose action: 1) Attack 2) Special Ability 3) Run : "

// ErrInputClosed is returned when the player's input ends mid-battle
var ErrInputClosed = errors.New("input closed before the battle ended")

// PromptProvider reads battle actions from a terminal
type PromptProvider struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptProvider creates a provider reading from in and prompting on out
func NewPromptProvider(in io.Reader, out io.Writer) *PromptProvider {
	return &PromptProvider{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NextAction prompts until a valid choice is entered
func (p *PromptProvider) NextAction(ctx context.Context, _ *entities.Battle) (battle.Action, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(p.out, ActionPrompt)
		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			fmt.Fprintln(p.out)
			if errors.Is(err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("failed to read action: %w", err)
		}

		action, parseErr := battle.ParseAction(line)
		if parseErr == nil {
			return action, nil
		}
		fmt.Fprintf(p.out, ">>> Invalid choice %q\n", strings.TrimSpace(line))
	}
}

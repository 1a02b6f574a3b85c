package console

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// ErrorMessage renders err for the terminal. Failures the player can fix
// get a second line naming the command that fixes them.
func ErrorMessage(err error) string {
	msg := err.Error()
	name, _ := gameerr.GetMeta(err)["name"].(string)

	switch gameerr.GetCode(err) {
	case gameerr.CodeCharacterNotFound:
		return msg + "\nRun 'quest list' to see saved characters."
	case gameerr.CodeCharacterDead:
		if name != "" {
			return msg + fmt.Sprintf("\nRun 'quest revive %s' first.", name)
		}
	case gameerr.CodeInvalidCharacterClass:
		classes := make([]string, 0, len(entities.Classes()))
		for _, class := range entities.Classes() {
			classes = append(classes, class.String())
		}
		return msg + "\nClasses: " + strings.Join(classes, ", ")
	}

	return msg
}

package dice

import "fmt"

// Chance rolls a d100 and reports whether it landed at or under percent.
// Chance(r, 50) is the coin flip used for escapes and critical strikes.
func Chance(r Roller, percent int) (bool, error) {
	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return false, fmt.Errorf("failed to roll d100: %w", err)
	}
	return result.Total <= percent, nil
}

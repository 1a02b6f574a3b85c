package entities

import "strings"

// CharacterClass is the class a character was created with
type CharacterClass string

const (
	ClassWarrior CharacterClass = "Warrior"
	ClassMage    CharacterClass = "Mage"
	ClassRogue   CharacterClass = "Rogue"
	ClassCleric  CharacterClass = "Cleric"
)

// BaseStats are the level 1 stats a class starts with
type BaseStats struct {
	Health   int
	Strength int
	Magic    int
}

var classOrder = []CharacterClass{ClassWarrior, ClassMage, ClassRogue, ClassCleric}

var classBaseStats = map[CharacterClass]BaseStats{
	ClassWarrior: {Health: 120, Strength: 15, Magic: 5},
	ClassMage:    {Health: 80, Strength: 8, Magic: 20},
	ClassRogue:   {Health: 90, Strength: 12, Magic: 10},
	ClassCleric:  {Health: 100, Strength: 10, Magic: 15},
}

// Classes returns the playable classes in display order
func Classes() []CharacterClass {
	out := make([]CharacterClass, len(classOrder))
	copy(out, classOrder)
	return out
}

// BaseStatsFor returns the starting stats of a class. The lookup is exact:
// "Warrior" is a class, "warrior" is not.
func BaseStatsFor(class CharacterClass) (BaseStats, bool) {
	stats, ok := classBaseStats[class]
	return stats, ok
}

// Normalize maps any casing of a playable class to its canonical value.
// Unknown classes come back unchanged with ok=false.
func (c CharacterClass) Normalize() (CharacterClass, bool) {
	for _, class := range classOrder {
		if strings.EqualFold(string(c), string(class)) {
			return class, true
		}
	}
	return c, false
}

func (c CharacterClass) String() string {
	return string(c)
}

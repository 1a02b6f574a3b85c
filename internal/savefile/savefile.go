// Package savefile encodes characters in the line-oriented KEY: value save format.
//
//	NAME: Aria
//	CLASS: Mage
//	LEVEL: 1
//	...
//	INVENTORY: potion,staff
//
// List fields are comma-joined; an empty list is an empty value.
package savefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	gameerr "github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// FileSuffix is appended to the character name to form the save filename
const FileSuffix = "_save.txt"

// MaxLineLength is the longest line, without its newline, Encode writes and Decode reads
const MaxLineLength = 1 << 20

const (
	KeyName            = "NAME"
	KeyClass           = "CLASS"
	KeyLevel           = "LEVEL"
	KeyHealth          = "HEALTH"
	KeyMaxHealth       = "MAX_HEALTH"
	KeyStrength        = "STRENGTH"
	KeyMagic           = "MAGIC"
	KeyExperience      = "EXPERIENCE"
	KeyGold            = "GOLD"
	KeyInventory       = "INVENTORY"
	KeyActiveQuests    = "ACTIVE_QUESTS"
	KeyCompletedQuests = "COMPLETED_QUESTS"
)

// Keys lists every field in the order it is written
var Keys = []string{
	KeyName, KeyClass, KeyLevel, KeyHealth, KeyMaxHealth, KeyStrength,
	KeyMagic, KeyExperience, KeyGold, KeyInventory, KeyActiveQuests, KeyCompletedQuests,
}

// FileName returns the save filename for a character
func FileName(name string) string {
	return name + FileSuffix
}

// NameFromFileName strips the save suffix. ok is false for other files.
func NameFromFileName(filename string) (string, bool) {
	name, ok := strings.CutSuffix(filename, FileSuffix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// CheckName rejects names that can't be used as a save key
func CheckName(name string) error {
	if name == "" {
		return gameerr.InvalidArgument("character name is required")
	}
	if strings.ContainsAny(name, "/\\\r\n") || name == "." || name == ".." {
		return gameerr.InvalidSaveDataf("character name %q cannot be used as a save name", name).
			WithMeta("name", name)
	}
	return nil
}

// Encode renders a character in save format. Records that would not
// decode back to the same values are rejected with InvalidSaveData.
func Encode(char *entities.Character) ([]byte, error) {
	if err := char.Validate(); err != nil {
		return nil, err
	}
	if err := CheckName(char.Name); err != nil {
		return nil, err
	}
	if strings.ContainsAny(string(char.Class), "\r\n") {
		return nil, gameerr.InvalidSaveDataf("class %q cannot be saved", char.Class)
	}

	lists := map[string][]string{
		KeyInventory:       char.Inventory,
		KeyActiveQuests:    char.ActiveQuests,
		KeyCompletedQuests: char.CompletedQuests,
	}
	for key, items := range lists {
		if err := checkListItems(key, items); err != nil {
			return nil, err
		}
	}

	values := map[string]string{
		KeyName:            char.Name,
		KeyClass:           string(char.Class),
		KeyLevel:           strconv.Itoa(char.Level),
		KeyHealth:          strconv.Itoa(char.Health),
		KeyMaxHealth:       strconv.Itoa(char.MaxHealth),
		KeyStrength:        strconv.Itoa(char.Strength),
		KeyMagic:           strconv.Itoa(char.Magic),
		KeyExperience:      strconv.Itoa(char.Experience),
		KeyGold:            strconv.Itoa(char.Gold),
		KeyInventory:       strings.Join(char.Inventory, ","),
		KeyActiveQuests:    strings.Join(char.ActiveQuests, ","),
		KeyCompletedQuests: strings.Join(char.CompletedQuests, ","),
	}

	var buf bytes.Buffer
	for _, key := range Keys {
		value := values[key]
		if !utf8.ValidString(value) {
			return nil, gameerr.InvalidSaveDataf("%s is not valid UTF-8", key).WithMeta("field", key)
		}
		if len(key)+len(": ")+len(value) > MaxLineLength {
			return nil, gameerr.InvalidSaveDataf("%s is longer than %d bytes", key, MaxLineLength).
				WithMeta("field", key)
		}
		writeLine(&buf, key, value)
	}

	return buf.Bytes(), nil
}

// Decode parses a save. Unreadable input or lines that are not KEY: value
// return SaveFileCorrupted; missing or mistyped fields return InvalidSaveData.
func Decode(r io.Reader) (*entities.Character, error) {
	fields, err := readFields(r)
	if err != nil {
		return nil, err
	}
	return fromFields(fields)
}

// DecodeBytes is Decode over an in-memory save
func DecodeBytes(data []byte) (*entities.Character, error) {
	return Decode(bytes.NewReader(data))
}

func writeLine(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s: %s\n", key, value)
}

func checkListItems(key string, items []string) error {
	for _, item := range items {
		if item == "" || strings.ContainsAny(item, ",\r\n") {
			return gameerr.InvalidSaveDataf("%s entry %q cannot be saved", key, item).
				WithMeta("field", key)
		}
	}
	return nil
}

func readFields(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string, len(Keys))

	scanner := bufio.NewScanner(r)
	// room for the newline and a trailing \r
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength+2)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, gameerr.SaveFileCorrupted(nil, fmt.Sprintf("line %d is not valid UTF-8", lineNo))
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, gameerr.SaveFileCorrupted(nil, fmt.Sprintf("line %d is not KEY: value", lineNo)).
				WithMeta("line", lineNo)
		}
		key = strings.TrimSpace(key)
		if _, dup := fields[key]; dup {
			return nil, gameerr.InvalidSaveDataf("duplicate field: %s", key).WithMeta("field", key)
		}
		fields[key] = strings.TrimPrefix(value, " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, gameerr.SaveFileCorrupted(err, "failed to read save data")
	}

	return fields, nil
}

func fromFields(fields map[string]string) (*entities.Character, error) {
	for _, key := range Keys {
		if _, ok := fields[key]; !ok {
			return nil, gameerr.InvalidSaveDataf("missing field: %s", key).WithMeta("field", key)
		}
	}

	ints := map[string]int{}
	for _, key := range []string{KeyLevel, KeyHealth, KeyMaxHealth, KeyStrength, KeyMagic, KeyExperience, KeyGold} {
		n, err := strconv.Atoi(strings.TrimSpace(fields[key]))
		if err != nil {
			return nil, gameerr.InvalidSaveDataf("invalid value for %s: expected integer, got %q", key, fields[key]).
				WithMeta("field", key)
		}
		ints[key] = n
	}

	char := &entities.Character{
		Name:            fields[KeyName],
		Class:           entities.CharacterClass(fields[KeyClass]),
		Level:           ints[KeyLevel],
		Health:          ints[KeyHealth],
		MaxHealth:       ints[KeyMaxHealth],
		Strength:        ints[KeyStrength],
		Magic:           ints[KeyMagic],
		Experience:      ints[KeyExperience],
		Gold:            ints[KeyGold],
		Inventory:       splitList(fields[KeyInventory]),
		ActiveQuests:    splitList(fields[KeyActiveQuests]),
		CompletedQuests: splitList(fields[KeyCompletedQuests]),
	}

	if err := char.Validate(); err != nil {
		return nil, err
	}
	return char, nil
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}

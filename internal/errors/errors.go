package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can react by kind
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"

	// CodeInvalidCharacterClass indicates a class outside Warrior, Mage, Rogue, Cleric
	CodeInvalidCharacterClass Code = "invalid_character_class"

	// CodeCharacterNotFound indicates no save exists for a character name
	CodeCharacterNotFound Code = "character_not_found"

	// CodeSaveFileCorrupted indicates a save exists but could not be read or parsed
	CodeSaveFileCorrupted Code = "save_file_corrupted"

	// CodeInvalidSaveData indicates save data that fails validation
	CodeInvalidSaveData Code = "invalid_save_data"

	// CodeCharacterDead indicates an action that needs a living character
	CodeCharacterDead Code = "character_dead"

	// CodeInvalidTarget indicates an unknown enemy type
	CodeInvalidTarget Code = "invalid_target"

	// CodeCombatNotActive indicates a turn taken outside an active battle
	CodeCombatNotActive Code = "combat_not_active"

	// CodeAbilityUnavailable indicates the class has no special ability
	CodeAbilityUnavailable Code = "ability_unavailable"

	// CodeInvalidAmount indicates an amount that would break a record invariant
	CodeInvalidAmount Code = "invalid_amount"
)

// Error is an application error with a code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var gameErr *Error
	if errors.As(err, &gameErr) {
		return &Error{
			Code:    gameErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(gameErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// InvalidCharacterClassf creates a formatted invalid class error
func InvalidCharacterClassf(format string, args ...any) *Error {
	return Newf(CodeInvalidCharacterClass, format, args...)
}

// CharacterNotFoundf creates a formatted character not found error
func CharacterNotFoundf(format string, args ...any) *Error {
	return Newf(CodeCharacterNotFound, format, args...)
}

// SaveFileCorrupted wraps a read or parse failure of an existing save
func SaveFileCorrupted(err error, message string) *Error {
	if err == nil {
		return New(CodeSaveFileCorrupted, message)
	}
	return WrapWithCode(err, CodeSaveFileCorrupted, message)
}

// InvalidSaveDataf creates a formatted invalid save data error
func InvalidSaveDataf(format string, args ...any) *Error {
	return Newf(CodeInvalidSaveData, format, args...)
}

// CharacterDead creates a character dead error
func CharacterDead(message string) *Error {
	return New(CodeCharacterDead, message)
}

// InvalidTargetf creates a formatted invalid target error
func InvalidTargetf(format string, args ...any) *Error {
	return Newf(CodeInvalidTarget, format, args...)
}

// CombatNotActive creates a combat not active error
func CombatNotActive(message string) *Error {
	return New(CodeCombatNotActive, message)
}

// AbilityUnavailablef creates a formatted ability unavailable error
func AbilityUnavailablef(format string, args ...any) *Error {
	return Newf(CodeAbilityUnavailable, format, args...)
}

// InvalidAmountf creates a formatted invalid amount error
func InvalidAmountf(format string, args ...any) *Error {
	return Newf(CodeInvalidAmount, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInvalidCharacterClass checks if the error is an invalid class error
func IsInvalidCharacterClass(err error) bool {
	return Is(err, CodeInvalidCharacterClass)
}

// IsCharacterNotFound checks if the error is a character not found error
func IsCharacterNotFound(err error) bool {
	return Is(err, CodeCharacterNotFound)
}

// IsSaveFileCorrupted checks if the error is a corrupted save error
func IsSaveFileCorrupted(err error) bool {
	return Is(err, CodeSaveFileCorrupted)
}

// IsInvalidSaveData checks if the error is an invalid save data error
func IsInvalidSaveData(err error) bool {
	return Is(err, CodeInvalidSaveData)
}

// IsCharacterDead checks if the error is a character dead error
func IsCharacterDead(err error) bool {
	return Is(err, CodeCharacterDead)
}

// IsInvalidTarget checks if the error is an invalid target error
func IsInvalidTarget(err error) bool {
	return Is(err, CodeInvalidTarget)
}

// IsCombatNotActive checks if the error is a combat not active error
func IsCombatNotActive(err error) bool {
	return Is(err, CodeCombatNotActive)
}

// IsAbilityUnavailable checks if the error is an ability unavailable error
func IsAbilityUnavailable(err error) bool {
	return Is(err, CodeAbilityUnavailable)
}

// IsInvalidAmount checks if the error is an invalid amount error
func IsInvalidAmount(err error) bool {
	return Is(err, CodeInvalidAmount)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

package pokemon

import "errors"

// Calculation and lookup failures. All are recoverable at the caller boundary.
var (
	ErrIncompleteCombatant    = errors.New("incomplete combatant data")
	ErrInvalidMoveCategory    = errors.New("invalid move category")
	ErrDataUnavailable        = errors.New("data unavailable")
	ErrInsufficientRosterSize = errors.New("insufficient roster size")
	ErrEmptyOpponentRoster    = errors.New("opponent roster is empty")
	ErrRosterTooLarge         = errors.New("roster exceeds six members")
	ErrUnknownType            = errors.New("unknown type")
	ErrInvalidNature          = errors.New("invalid nature")
)

// IsValidationError reports whether err comes from invalid caller input rather than a data fault.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrIncompleteCombatant,
		ErrInvalidMoveCategory,
		ErrInsufficientRosterSize,
		ErrEmptyOpponentRoster,
		ErrRosterTooLarge,
		ErrUnknownType,
		ErrInvalidNature,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

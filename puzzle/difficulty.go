package puzzle

import (
	"errors"
	"fmt"
)

// Difficulty tiers, in the fixed order evaluation sets list them.
const (
	DifficultySimple = "simple"
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// ErrUnknownDifficulty is returned when a difficulty name is not one of the
// five tiers.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties returns the five tiers in their fixed order. Decoding and
// batch solving iterate tiers in exactly this order.
func Difficulties() []string {
	return []string{
		DifficultySimple,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyExpert,
	}
}

// ValidateDifficulty checks that the name is one of the five tiers.
func ValidateDifficulty(name string) error {
	for _, d := range Difficulties() {
		if d == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

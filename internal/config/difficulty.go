package config

import "fmt"

// Difficulty is a named tier, selected in the menu and fixed for the run.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty converts a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, "":
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy or hard)", s)
	}
}

// String returns the tier name.
func (d Difficulty) String() string {
	return string(d)
}

// Tier returns the parameter set for the given difficulty.
// Unknown values fall back to the easy tier.
func (c Config) Tier(d Difficulty) TierConfig {
	if d == DifficultyHard {
		return c.Difficulty.Hard
	}
	return c.Difficulty.Easy
}

package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ShiftBudget returns the shift allowance for a stage under a preset.
// Easy grants 50% more shifts, hard removes a quarter; neither drops below one
// shift for a stage that allows any. Normal and fixed use the stage value.
func (p DifficultyPreset) ShiftBudget(stageMax int) int {
	if stageMax <= 0 {
		return 0
	}
	var n int
	switch p {
	case DifficultyEasy:
		n = stageMax + (stageMax+1)/2
	case DifficultyHard:
		n = stageMax - stageMax/4
	default:
		return stageMax
	}
	if n < 1 {
		n = 1
	}
	return n
}

// MaxShifts resolves a stage's max_shifts against the configured default.
// A negative stageMax means the stage did not set one.
func (c RubikConfig) MaxShifts(stageMax int) int {
	if stageMax >= 0 {
		return stageMax
	}
	return c.Rules.DefaultMaxShifts
}

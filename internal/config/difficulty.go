package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// AllPresets lists the presets in increasing order of challenge.
var AllPresets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range AllPresets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// IntervalScaleForPreset returns the factor applied to the configured
// gravity interval, as a numerator over 100.
func IntervalScaleForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyHard:
		return 60
	default:
		return 100
	}
}

package config

import (
	"fmt"
	"math"
	"time"
)

// Curve maps the current round's time limit to the next round's.
// Every correct answer multiplies the limit by Decay, never going below Min.
type Curve struct {
	Decay float64
	Min   time.Duration
}

// Next returns max(current*Decay, Min). The product is rounded to the
// nearest nanosecond. Once at Min, Next keeps returning Min.
func (c Curve) Next(current time.Duration) time.Duration {
	next := time.Duration(math.Round(float64(current) * c.Decay))
	if next < c.Min {
		return c.Min
	}
	return next
}

// Steps returns how many correct answers it takes to reach the floor from
// start. Useful for the "modes" listing. Returns -1 when the limit stops
// shrinking above the floor, which happens for a decay so close to 1 that
// the product rounds back to the same duration.
func (c Curve) Steps(start time.Duration) int {
	if c.Decay <= 0 || c.Decay >= 1 {
		return 0
	}
	n := 0
	for d := start; d > c.Min; n++ {
		next := c.Next(d)
		if next == d {
			return -1
		}
		d = next
	}
	return n
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", name)
	}
}

// ApplyPreset adjusts the time budget for a difficulty preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartTimeLimit = 8 * time.Second
		cfg.Gameplay.MinTimeLimit = 2500 * time.Millisecond
		cfg.Gameplay.TimeDecay = 0.95
	case DifficultyHard:
		cfg.Gameplay.StartTimeLimit = 4 * time.Second
		cfg.Gameplay.MinTimeLimit = time.Second
		cfg.Gameplay.TimeDecay = 0.88
	}
}

// Package config provides YAML-based game configuration loading and the
// difficulty curve for Math Escape.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete, immutable set of tunables. It is loaded once at
// startup and passed by value to the components that need it.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Storage  StorageConfig  `yaml:"storage"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // Pixels
	Height int    `yaml:"height"` // Pixels
	FPS    int    `yaml:"fps"`
}

// TimingConfig defines the periodic signals injected into the event queue.
type TimingConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	FlashInterval time.Duration `yaml:"flash_interval"`
}

// GameplayConfig defines the round rules.
type GameplayConfig struct {
	StartTimeLimit   time.Duration `yaml:"start_time_limit"`
	MinTimeLimit     time.Duration `yaml:"min_time_limit"`
	TimeDecay        float64       `yaml:"time_decay"`   // Multiplier per level, in (0, 1)
	TickQuantum      time.Duration `yaml:"tick_quantum"` // Time removed per tick
	WarningThreshold time.Duration `yaml:"warning_threshold"`
	InputMaxLen      int           `yaml:"input_max_len"`
	Mode             string        `yaml:"mode"` // Question mode id
}

// StorageConfig selects where the best score lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "sqlite", "file" or "memory"
	Path    string `yaml:"path"`
}

// Curve returns the difficulty curve described by the gameplay section.
func (g GameplayConfig) Curve() Curve {
	return Curve{Decay: g.TimeDecay, Min: g.MinTimeLimit}
}

// Validate reports the first inconsistency in the configuration.
func (c Config) Validate() error {
	g := c.Gameplay
	switch {
	case g.TimeDecay <= 0 || g.TimeDecay >= 1:
		return fmt.Errorf("config: time_decay must be in (0, 1), got %v", g.TimeDecay)
	case g.MinTimeLimit <= 0:
		return errors.New("config: min_time_limit must be positive")
	case g.StartTimeLimit < g.MinTimeLimit:
		return fmt.Errorf("config: start_time_limit %v is below min_time_limit %v", g.StartTimeLimit, g.MinTimeLimit)
	case g.StartTimeLimit > g.MinTimeLimit && g.Curve().Next(g.StartTimeLimit) == g.StartTimeLimit:
		return fmt.Errorf("config: time_decay %v is too close to 1 to shorten %v", g.TimeDecay, g.StartTimeLimit)
	case g.TickQuantum <= 0:
		return errors.New("config: tick_quantum must be positive")
	case g.InputMaxLen <= 0:
		return errors.New("config: input_max_len must be positive")
	case c.Timing.TickInterval <= 0 || c.Timing.FlashInterval <= 0:
		return errors.New("config: tick_interval and flash_interval must be positive")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.New("config: window size must be positive")
	}
	return nil
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mathescape.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// YAML and is the last fallback when nothing can be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Math Escape Game",
			Width:  900,
			Height: 500,
			FPS:    60,
		},
		Timing: TimingConfig{
			TickInterval:  100 * time.Millisecond,
			FlashInterval: 700 * time.Millisecond,
		},
		Gameplay: GameplayConfig{
			StartTimeLimit:   6 * time.Second,
			MinTimeLimit:     1500 * time.Millisecond,
			TimeDecay:        0.92,
			TickQuantum:      100 * time.Millisecond,
			WarningThreshold: 2 * time.Second,
			InputMaxLen:      13,
			Mode:             "mixed",
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "~/.mathescape/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

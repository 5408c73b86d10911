package core

import "time"

// RuntimeConfig is what a frontend tells the scenes about the running
// program: the logical grid they draw on, the frame rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Grid width in cells
	ScreenH  int   // Grid height in cells
	TickRate int   // Frames per second driving the loop (default 60)
	Seed     int64 // RNG seed; 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameInterval returns the duration of one frame at TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Question is an arithmetic prompt with its integer answer.
// It is immutable once generated.
type Question struct {
	Prompt string
	Answer int
}

package quiz

import "time"

// Snapshot captures the complete session state for determinism testing
// and logging.
type Snapshot struct {
	Ticks     uint64
	Mode      string
	Phase     Phase
	Reason    Reason
	Score     int
	Level     int
	TimeLimit time.Duration
	Remaining time.Duration
	Prompt    string
	Answer    int
	Input     string
	Flash     bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     s.ticks,
		Mode:      s.source.ID(),
		Phase:     s.phase,
		Reason:    s.reason,
		Score:     s.score,
		Level:     s.level,
		TimeLimit: s.limit,
		Remaining: s.timer.Remaining(),
		Prompt:    s.question.Prompt,
		Answer:    s.question.Answer,
		Input:     string(s.input),
		Flash:     s.flash,
	}
}

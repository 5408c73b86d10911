package quiz

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/math-escape/internal/config"
	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/registry"
)

// Phase is the state of a session.
type Phase int

const (
	PhaseAwaitingInput Phase = iota // Waiting for an answer to the current question
	PhaseFinished                   // Game over; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome describes what a submission did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Session already finished
	OutcomeCorrect
	OutcomeWrong
)

// Reason explains why a session finished.
type Reason string

const (
	ReasonNone    Reason = ""
	ReasonWrong   Reason = "wrong_answer"
	ReasonTimeout Reason = "timeout"
)

// Session is one run from the first question to game over.
// It is owned by a single gameplay scene and discarded afterwards.
type Session struct {
	rules  config.GameplayConfig
	curve  config.Curve
	source registry.QuestionSource
	rng    *rand.Rand

	phase    Phase
	reason   Reason
	score    int
	level    int
	limit    time.Duration
	timer    *Timer
	question core.Question
	input    []byte
	flash    bool
	ticks    uint64
}

// NewSession starts a session at level 1 with the configured start limit.
// A zero seed picks a time-based one.
func NewSession(rules config.GameplayConfig, source registry.QuestionSource, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		rules:  rules,
		curve:  rules.Curve(),
		source: source,
		rng:    rand.New(rand.NewSource(seed)),
		phase:  PhaseAwaitingInput,
		level:  1,
		limit:  rules.StartTimeLimit,
	}
	s.timer = NewTimer(s.limit, rules.TickQuantum)
	s.question = source.Generate(s.rng)
	return s
}

// Submit checks raw against the current answer.
// Anything that is not a plain run of ASCII digits counts as wrong.
func (s *Session) Submit(raw string) Outcome {
	if s.phase == PhaseFinished {
		return OutcomeIgnored
	}

	n, ok := parseAnswer(raw)
	if !ok || n != s.question.Answer {
		s.finish(ReasonWrong)
		return OutcomeWrong
	}

	s.score++
	s.level++
	s.limit = s.curve.Next(s.limit)
	s.timer.Reset(s.limit)
	s.question = s.source.Generate(s.rng)
	s.input = s.input[:0]
	return OutcomeCorrect
}

// SubmitPending submits whatever has been typed so far.
func (s *Session) SubmitPending() Outcome {
	return s.Submit(string(s.input))
}

// Tick removes one quantum from the round timer and ends the session
// when it runs out. Returns true if the session is finished.
func (s *Session) Tick() bool {
	if s.phase == PhaseFinished {
		return true
	}
	s.ticks++
	s.timer.Tick()
	if s.timer.Expired() {
		s.finish(ReasonTimeout)
	}
	return s.phase == PhaseFinished
}

// ToggleFlash flips the cosmetic blink state. Game state is unaffected.
func (s *Session) ToggleFlash() {
	s.flash = !s.flash
}

// Type appends a digit to the pending input. Non-digits and input beyond
// the configured maximum length are dropped. Returns true if accepted.
func (s *Session) Type(r rune) bool {
	if s.phase == PhaseFinished || r < '0' || r > '9' {
		return false
	}
	if len(s.input) >= s.rules.InputMaxLen {
		return false
	}
	s.input = append(s.input, byte(r))
	return true
}

// Backspace removes the last typed digit, if any.
func (s *Session) Backspace() {
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

func (s *Session) finish(r Reason) {
	s.phase = PhaseFinished
	s.reason = r
}

// Accessors.

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Finished() bool { return s.phase == PhaseFinished }
func (s *Session) Reason() Reason { return s.reason }
func (s *Session) Score() int { return s.score }
func (s *Session) Level() int { return s.level }
func (s *Session) TimeLimit() time.Duration { return s.limit }
func (s *Session) Remaining() time.Duration { return s.timer.Remaining() }
func (s *Session) Question() core.Question { return s.question }
func (s *Session) Input() string { return string(s.input) }
func (s *Session) Flash() bool { return s.flash }
func (s *Session) Mode() string { return s.source.ID() }
func (s *Session) Rules() config.GameplayConfig { return s.rules }

// Warning reports whether the remaining time is below the warning threshold.
func (s *Session) Warning() bool {
	return s.timer.Remaining() < s.rules.WarningThreshold
}

// parseAnswer accepts only non-empty strings of ASCII digits.
// Signs, spaces and values that overflow int are rejected.
func parseAnswer(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

package quiz

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/math-escape/internal/config"
	"github.com/vovakirdan/math-escape/internal/core"
)

// fixedSource always asks 2 + 3.
type fixedSource struct{}

func (fixedSource) ID() string { return "fixed" }
func (fixedSource) Title() string { return "Fixed" }
func (fixedSource) Generate(*rand.Rand) core.Question {
	return core.Question{Prompt: "2 + 3 = ?", Answer: 5}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultConfig().Gameplay, fixedSource{}, 42)
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)
	if s.Phase() != PhaseAwaitingInput {
		t.Errorf("Phase = %v, want awaiting_input", s.Phase())
	}
	if s.Level() != 1 || s.Score() != 0 {
		t.Errorf("level/score = %d/%d, want 1/0", s.Level(), s.Score())
	}
	if s.TimeLimit() != 6*time.Second || s.Remaining() != 6*time.Second {
		t.Errorf("limit/remaining = %v/%v, want 6s/6s", s.TimeLimit(), s.Remaining())
	}
	if s.Question().Prompt == "" {
		t.Error("no initial question")
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	s := newTestSession(t)
	s.Tick()
	s.Tick()

	if got := s.Submit("5"); got != OutcomeCorrect {
		t.Fatalf("Submit = %v, want correct", got)
	}
	if s.Level() != 2 || s.Score() != 1 {
		t.Errorf("level/score = %d/%d, want 2/1", s.Level(), s.Score())
	}
	want := 5520 * time.Millisecond
	if s.TimeLimit() != want {
		t.Errorf("TimeLimit = %v, want %v", s.TimeLimit(), want)
	}
	if s.Remaining() != want {
		t.Errorf("Remaining = %v, want %v", s.Remaining(), want)
	}
	if s.Phase() != PhaseAwaitingInput {
		t.Errorf("Phase = %v after correct answer", s.Phase())
	}
}

func TestCorrectAnswerAtFloor(t *testing.T) {
	rules := config.DefaultConfig().Gameplay
	rules.StartTimeLimit = rules.MinTimeLimit
	s := NewSession(rules, fixedSource{}, 1)

	s.Submit("5")
	if s.TimeLimit() != 1500*time.Millisecond {
		t.Errorf("TimeLimit = %v, want 1.5s", s.TimeLimit())
	}
	if s.Remaining() != 1500*time.Millisecond {
		t.Errorf("Remaining = %v, want 1.5s", s.Remaining())
	}
}

func TestLimitReachesFloor(t *testing.T) {
	s := newTestSession(t)
	prev := s.TimeLimit()
	for i := 0; i < 40; i++ {
		if s.Submit("5") != OutcomeCorrect {
			t.Fatalf("answer %d rejected", i)
		}
		if s.TimeLimit() > prev {
			t.Fatalf("limit increased from %v to %v", prev, s.TimeLimit())
		}
		prev = s.TimeLimit()
	}
	if s.TimeLimit() != 1500*time.Millisecond {
		t.Errorf("TimeLimit = %v after 40 answers, want floor", s.TimeLimit())
	}
	if s.Score() != 40 || s.Level() != 41 {
		t.Errorf("score/level = %d/%d, want 40/41", s.Score(), s.Level())
	}
}

func TestWrongAnswersFinish(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"letters", "abc"},
		{"empty", ""},
		{"wrong number", "6"},
		{"plus sign", "+5"},
		{"minus sign", "-5"},
		{"leading space", " 5"},
		{"trailing space", "5 "},
		{"digit then letter", "5a"},
		{"decimal", "5.0"},
		{"overflow", "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.Submit("5")
			if got := s.Submit(tt.raw); got != OutcomeWrong {
				t.Fatalf("Submit(%q) = %v, want wrong", tt.raw, got)
			}
			if !s.Finished() {
				t.Fatal("session not finished")
			}
			if s.Score() != 1 {
				t.Errorf("Score = %d, want 1", s.Score())
			}
			if s.Reason() != ReasonWrong {
				t.Errorf("Reason = %q, want wrong_answer", s.Reason())
			}
		})
	}
}

func TestLeadingZerosAccepted(t *testing.T) {
	s := newTestSession(t)
	if got := s.Submit("005"); got != OutcomeCorrect {
		t.Errorf("Submit(005) = %v, want correct", got)
	}
}

func TestTimeoutFinishes(t *testing.T) {
	s := newTestSession(t)
	for i := 1; i <= 59; i++ {
		if s.Tick() {
			t.Fatalf("finished early at tick %d (remaining %v)", i, s.Remaining())
		}
	}
	if !s.Tick() {
		t.Fatalf("not finished after 60 ticks, remaining %v", s.Remaining())
	}
	if s.Reason() != ReasonTimeout {
		t.Errorf("Reason = %q, want timeout", s.Reason())
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", s.Remaining())
	}

	// The 61st tick changes nothing.
	s.Tick()
	if s.Snapshot().Ticks != 60 || s.Score() != 0 {
		t.Errorf("state changed after finish: %+v", s.Snapshot())
	}
}

func TestFinishedIgnoresInput(t *testing.T) {
	s := newTestSession(t)
	s.Submit("1")
	if got := s.Submit("5"); got != OutcomeIgnored {
		t.Errorf("Submit after finish = %v, want ignored", got)
	}
	if s.Type('1') {
		t.Error("Type accepted after finish")
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
}

func TestTypeAndBackspace(t *testing.T) {
	s := newTestSession(t)

	s.Backspace() // no-op on empty
	for _, r := range "12x3" {
		s.Type(r)
	}
	if s.Input() != "123" {
		t.Errorf("Input = %q, want 123", s.Input())
	}
	s.Backspace()
	if s.Input() != "12" {
		t.Errorf("Input = %q after backspace, want 12", s.Input())
	}

	for i := 0; i < 20; i++ {
		s.Type('9')
	}
	if len(s.Input()) != 13 {
		t.Errorf("len(Input) = %d, want 13", len(s.Input()))
	}
}

func TestSubmitPendingClearsInput(t *testing.T) {
	s := newTestSession(t)
	s.Type('5')
	if got := s.SubmitPending(); got != OutcomeCorrect {
		t.Fatalf("SubmitPending = %v, want correct", got)
	}
	if s.Input() != "" {
		t.Errorf("Input = %q after correct answer, want empty", s.Input())
	}
}

func TestToggleFlashIsCosmetic(t *testing.T) {
	s := newTestSession(t)
	before := s.Snapshot()
	s.ToggleFlash()
	after := s.Snapshot()
	if !after.Flash {
		t.Error("flash not toggled")
	}
	after.Flash = before.Flash
	if after != before {
		t.Errorf("flash changed game state:\n%+v\n%+v", before, after)
	}
}

func TestWarning(t *testing.T) {
	s := newTestSession(t)
	if s.Warning() {
		t.Error("warning at 6s")
	}
	for i := 0; i < 41; i++ {
		s.Tick()
	}
	if !s.Warning() {
		t.Errorf("no warning at %v", s.Remaining())
	}
}

func TestSessionDeterminism(t *testing.T) {
	rules := config.DefaultConfig().Gameplay
	s1 := NewSession(rules, Mixed{}, 7)
	s2 := NewSession(rules, Mixed{}, 7)

	for i := 0; i < 20; i++ {
		s1.Submit(strconv.Itoa(s1.Question().Answer))
		s2.Submit(strconv.Itoa(s2.Question().Answer))
		if s1.Snapshot() != s2.Snapshot() {
			t.Fatalf("round %d diverged:\n%+v\n%+v", i, s1.Snapshot(), s2.Snapshot())
		}
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"007", 7, true},
		{"-3", 0, false},
		{"", 0, false},
		{"4 2", 0, false},
		{"٤٢", 0, false}, // non-ASCII digits
	}
	for _, tt := range tests {
		got, ok := parseAnswer(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseAnswer(%q) = %d, %v; want %d, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

package registry

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/math-escape/internal/core"
)

type constSource struct{ id string }

func (c constSource) ID() string { return c.id }
func (c constSource) Title() string { return "Const " + c.id }
func (c constSource) Generate(*rand.Rand) core.Question {
	return core.Question{Prompt: "1 + 1 = ?", Answer: 2}
}

func TestRegisterCreateList(t *testing.T) {
	Register("test-const", func() QuestionSource { return constSource{id: "test-const"} })

	if !Exists("test-const") {
		t.Fatal("registered mode not found")
	}

	src, err := Create("test-const")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if q := src.Generate(nil); q.Answer != 2 {
		t.Errorf("Answer = %d, want 2", q.Answer)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-const" {
			found = true
			if info.Title != "Const test-const" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List does not include registered mode")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-mode"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Exists("no-such-mode") {
		t.Error("Exists reported unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() QuestionSource { return constSource{id: "test-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() QuestionSource { return constSource{id: "test-dup"} })
}

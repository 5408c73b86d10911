package quiz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/math-escape/internal/registry"
)

func TestAdditionRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		q := Addition{}.Generate(rng)
		if q.Answer < 2 || q.Answer > 40 {
			t.Fatalf("sum %d out of range for %q", q.Answer, q.Prompt)
		}
		if !strings.Contains(q.Prompt, " + ") || !strings.HasSuffix(q.Prompt, " = ?") {
			t.Fatalf("unexpected prompt %q", q.Prompt)
		}
	}
}

func TestMultiplicationRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		q := Multiplication{}.Generate(rng)
		if q.Answer < 4 || q.Answer > 100 {
			t.Fatalf("product %d out of range for %q", q.Answer, q.Prompt)
		}
		if !strings.Contains(q.Prompt, " × ") {
			t.Fatalf("unexpected prompt %q", q.Prompt)
		}
		seen[q.Answer] = true
	}
	if !seen[4] || !seen[100] {
		t.Error("range endpoints 2x2 and 10x10 never generated")
	}
}

func TestMixedUsesBothOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var add, mul int
	for i := 0; i < 500; i++ {
		q := Mixed{}.Generate(rng)
		switch {
		case strings.Contains(q.Prompt, "+"):
			add++
		case strings.Contains(q.Prompt, "×"):
			mul++
		default:
			t.Fatalf("unexpected prompt %q", q.Prompt)
		}
	}
	if add == 0 || mul == 0 {
		t.Errorf("mixed mode unbalanced: %d additions, %d multiplications", add, mul)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(99))
	r2 := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		a, b := Mixed{}.Generate(r1), Mixed{}.Generate(r2)
		if a != b {
			t.Fatalf("draw %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeAddition, ModeMultiplication, ModeMixed} {
		src, err := registry.Create(id)
		if err != nil {
			t.Fatalf("mode %q not registered: %v", id, err)
		}
		if src.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, src.ID())
		}
	}
}

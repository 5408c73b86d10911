// Package quiz implements the Math Escape gameplay rules: question modes,
// the round timer and the per-session state machine. It has no I/O and no
// rendering; scenes drive it with submissions and tick signals.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/registry"
)

// Mode identifiers registered with the registry.
const (
	ModeAddition       = "addition"
	ModeMultiplication = "multiplication"
	ModeMixed          = "mixed"
)

// Operand ranges, inclusive.
const (
	addMin, addMax = 1, 20
	mulMin, mulMax = 2, 10
)

func init() {
	registry.Register(ModeAddition, func() registry.QuestionSource { return Addition{} })
	registry.Register(ModeMultiplication, func() registry.QuestionSource { return Multiplication{} })
	registry.Register(ModeMixed, func() registry.QuestionSource { return Mixed{} })
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Addition asks for the sum of two operands in [1, 20].
type Addition struct{}

func (Addition) ID() string { return ModeAddition }
func (Addition) Title() string { return "Addition" }

// Generate returns "a + b = ?".
func (Addition) Generate(rng *rand.Rand) core.Question {
	a, b := between(rng, addMin, addMax), between(rng, addMin, addMax)
	return core.Question{
		Prompt: fmt.Sprintf("%d + %d = ?", a, b),
		Answer: a + b,
	}
}

// Multiplication asks for the product of two operands in [2, 10].
type Multiplication struct{}

func (Multiplication) ID() string { return ModeMultiplication }
func (Multiplication) Title() string { return "Multiplication" }

// Generate returns "a × b = ?".
func (Multiplication) Generate(rng *rand.Rand) core.Question {
	a, b := between(rng, mulMin, mulMax), between(rng, mulMin, mulMax)
	return core.Question{
		Prompt: fmt.Sprintf("%d × %d = ?", a, b),
		Answer: a * b,
	}
}

// Mixed flips a fair coin on every call and delegates to Addition or
// Multiplication.
type Mixed struct{}

func (Mixed) ID() string { return ModeMixed }
func (Mixed) Title() string { return "Mixed" }

func (Mixed) Generate(rng *rand.Rand) core.Question {
	if rng.Intn(2) == 0 {
		return Addition{}.Generate(rng)
	}
	return Multiplication{}.Generate(rng)
}

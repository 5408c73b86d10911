// Package registry provides a global registry for question modes.
// Modes register themselves in init() functions, allowing the scenes and
// the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/math-escape/internal/core"
)

// QuestionSource produces arithmetic questions for one mode.
// Sources hold no state between calls; all randomness comes from rng.
type QuestionSource interface {
	// ID returns a unique identifier for this mode (e.g., "addition").
	// Used for CLI flags, config and score history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate returns a fresh question. The prompt is never empty.
	Generate(rng *rand.Rand) core.Question
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new question source.
type Factory func() QuestionSource

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a question source factory to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a question source by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string) (QuestionSource, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

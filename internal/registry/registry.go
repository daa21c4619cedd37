// Package registry provides a global registry of seed patterns.
// Patterns register themselves in init() functions so the CLI and the
// simulation can populate grids by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-drift/internal/grid"
)

// Pattern populates a freshly created, all-dead grid.
type Pattern interface {
	// ID returns the name used on the command line and in config files.
	ID() string

	// Title returns a short human-readable description.
	Title() string

	// Seed sets live cells on g. Patterns that need randomness must draw
	// only from rng so a fixed seed reproduces the same grid.
	Seed(g *grid.Grid, rng *rand.Rand, density float64)
}

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a pattern.
type Factory func() Pattern

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pattern factory to the registry.
// Panics if a pattern with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PatternInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a pattern by its ID.
func Create(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return f(), nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

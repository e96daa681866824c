// Package registry provides the catalogue of game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tickarcade/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all arcade games must implement.
// Games contain pure rules with no I/O (no Bubble Tea, no storage).
// The session handles lifecycle, timing and persistence.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "flappy", "snake").
	// Used for CLI commands and score storage keys.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Bird").
	Title() string

	// Reset initializes or resets the per-round state.
	// Called by the session every time a round starts.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick using the inputs queued since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, outcome).
	State() core.GameState
}

// Pacer is implemented by games whose tick interval is not the host default
// or changes while playing.
type Pacer interface {
	TickInterval() time.Duration
}

// Suspender is implemented by games that may be paused mid-round.
type Suspender interface {
	CanPause() bool
}

// Options carries per-instance settings to a factory.
// Empty fields mean "use the game default".
type Options struct {
	ConfigPath string // explicit tuning file, overrides the search path
	Difficulty string // preset name (easy, normal, hard, fixed)
	Mode       string // game specific, e.g. "cpu" or "hotseat" for tic-tac-toe
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, independent instance of a game.
type Factory func(opts Options) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the display name of a registered game, or the id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

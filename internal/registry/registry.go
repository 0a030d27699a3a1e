// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
)

// Game is implemented by every engine.
// An engine owns its tick loop and timers; the platform forwards actions,
// draws snapshots and never mutates game state directly.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh round: it stops the running loop, cancels all
	// timed effects, stores a new initial snapshot and restarts the loop.
	Reset(cfg core.RuntimeConfig)

	// Stop halts the loop and cancels timed effects. The last snapshot
	// stays readable.
	Stop()

	// Handle forwards a platform action as a game intent.
	// Actions that make no sense for the game are ignored.
	Handle(a core.Action)

	// Render draws the current snapshot into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the platform-facing summary of the current snapshot.
	State() core.GameState

	// Snapshot returns the current immutable snapshot.
	Snapshot() any

	// Watch streams committed snapshots until cancel is called.
	Watch(buf int) (<-chan any, func())
}

// Services are the collaborators handed to every game factory.
type Services struct {
	Config  config.Config
	Scores  core.HighScoreStore
	Wins    core.VictoryStore
	Results core.ResultPublisher
	Logger  *log.Logger
	Clock   engine.Clock
}

// WithDefaults fills unset services with in-process stand-ins.
func (s Services) WithDefaults() Services {
	if s.Config.Snake.BoardSize == 0 {
		s.Config = config.Default()
	}
	if s.Scores == nil || s.Wins == nil {
		mem := core.NewMemStore()
		if s.Scores == nil {
			s.Scores = mem
		}
		if s.Wins == nil {
			s.Wins = mem
		}
	}
	if s.Results == nil {
		s.Results = discard{}
	}
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	if s.Clock == nil {
		s.Clock = engine.RealClock{}
	}
	return s
}

type discard struct{}

func (discard) Publish(context.Context, core.Result) error { return nil }

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, stopped instance of a game. Reset starts it.
type Factory func(svc Services) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Factories never start loops, so a throwaway instance is cheap.
	titles[id] = f(Services{}.WithDefaults()).Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, svc Services) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(svc.WithDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

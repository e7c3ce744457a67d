// Package registry maps game IDs to factories. Game packages register
// their variants from init(), so the CLI and the SSH server can list and
// create them by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the fixed-step interface the platform drives. Implementations
// hold pure game logic and never touch the terminal.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with this frame's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, level, lines and the game-over/paused flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return infos
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

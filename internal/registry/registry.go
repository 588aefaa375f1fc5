// Package registry lists the playable modes. Each mode package registers its
// modes from init so the CLI, the menu and the SSH server can start them by ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Game is what the host loop drives. Implementations are plain logic and
// never import Bubble Tea.
type Game interface {
	ID() string
	Title() string

	// Reset discards any running match and starts over for this screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by dt seconds with this frame's input.
	Step(in core.InputFrame, dt float64) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// Factory builds a fresh game for a mode.
type Factory func() Game

// Mode describes one playable mode.
type Mode struct {
	ID          string
	Title       string
	Description string // One line for the menu and `tennis list`
	Players     int    // Humans at the keyboard; 0 for demo modes
	New         Factory
}

var (
	mu    sync.RWMutex
	modes []Mode // Registration order
	byID  = make(map[string]int)
)

// Register adds a mode. It panics on an empty ID, a nil factory or an ID
// that is already taken.
func Register(m Mode) {
	if m.ID == "" || m.New == nil {
		panic(fmt.Sprintf("registry: mode %q needs an ID and a factory", m.ID))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	if m.Title == "" {
		m.Title = m.ID
	}
	byID[m.ID] = len(modes)
	modes = append(modes, m)
}

// List returns every registered mode in registration order.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Lookup returns the mode registered under id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return Mode{}, false
	}
	return modes[i], true
}

// Create builds a new game for the mode registered under id.
func Create(id string) (Game, error) {
	m, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m.New(), nil
}

// Exists reports whether a mode is registered under id.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

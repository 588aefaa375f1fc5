package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

// keyHolder is implemented by games that tune how long a key press lasts.
type keyHolder interface {
	KeyHold() time.Duration
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	holds      *HoldTracker
	pending    core.InputFrame // One-shot actions since the last tick
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    h,
		holds:   NewHoldTracker(DefaultKeyHold),
		pending: core.NewInputFrame(),
	}
}

// WithBackToMenu enables the back key, used when the game runs under a menu.
func (m Model) WithBackToMenu() Model {
	keys := m.keys.Keys()
	keys.Back.SetEnabled(true)
	m.keys = NewKeyMapper(keys)
	return m
}

// playfieldHeight leaves the bottom row for the help footer.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if kh, ok := m.game.(keyHolder); ok && kh.KeyHold() > 0 {
		m.holds.hold = kh.KeyHold()
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keys.IsBack(msg) && (m.gameState.Attract || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsMovement():
		m.holds.Press(action, now)
	case action != core.ActionNone:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game draws in its own
// coordinate space, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.FrameSeconds())
	m.lastTick = now

	frame := core.NewInputFrame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}
	m.holds.Apply(&frame, now)

	result := m.game.Step(frame, dt)
	m.gameState = result.State
	m.pending.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.config.ScreenH > 1 {
		view += "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return view
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

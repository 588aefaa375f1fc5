package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// stubGame records what the host feeds it.
type stubGame struct {
	resets int
	steps  []core.InputFrame
	dts    []float64
	state  core.GameState
	hold   time.Duration
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) KeyHold() time.Duration { return g.hold }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub", core.ColorWhite) }
func (g *stubGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.steps = append(g.steps, in)
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.state}
}

func newTestModel(g *stubGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60})
	m.Init()
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{hold: 250 * time.Millisecond}
	m := newTestModel(g)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.holds.hold != 250*time.Millisecond {
		t.Errorf("hold = %v, want the game's key hold", m.holds.hold)
	}
}

func TestModelTickDelta(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	t0 := time.Unix(5000, 0)

	m = step(t, m, TickMsg(t0))
	m = step(t, m, TickMsg(t0.Add(25*time.Millisecond)))

	if len(g.dts) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.dts))
	}
	if g.dts[0] != 1.0/60.0 {
		t.Errorf("first dt = %v, want nominal frame", g.dts[0])
	}
	if g.dts[1] != 0.025 {
		t.Errorf("second dt = %v, want 0.025", g.dts[1])
	}
}

func TestModelOneShotActions(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	t0 := time.Unix(5000, 0)

	m = step(t, m, runeKey("p"))
	m = step(t, m, TickMsg(t0))
	m = step(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if !g.steps[0].Has(core.ActionPause) {
		t.Error("pause not delivered on the next tick")
	}
	if g.steps[1].Has(core.ActionPause) {
		t.Error("pause delivered twice")
	}
}

func TestModelHeldMovement(t *testing.T) {
	g := &stubGame{hold: time.Hour}
	m := newTestModel(g)
	t0 := time.Now()

	m = step(t, m, runeKey("w"))
	for i := 1; i <= 3; i++ {
		m = step(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}

	for i, in := range g.steps {
		if !in.Has(core.ActionLeftUp) {
			t.Errorf("tick %d: movement not held", i)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model not quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g).WithBackToMenu()
	esc := tea.KeyMsg{Type: tea.KeyEscape}

	// Ignored mid-rally
	m = step(t, m, esc)
	if m.BackToMenu() {
		t.Fatal("back accepted during play")
	}

	g.state.Attract = true
	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, esc)
	if !m.BackToMenu() {
		t.Error("back should be accepted in attract mode")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("view missing game output")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view missing help footer")
	}
}

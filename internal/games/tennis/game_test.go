package tennis

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"tennis", "tennis-cpu", "attract"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestModesListedInOrder(t *testing.T) {
	want := []struct {
		id      string
		players int
	}{
		{"tennis", 2},
		{"tennis-cpu", 1},
		{"attract", 0},
	}

	got := registry.List()
	if len(got) != len(want) {
		t.Fatalf("List() has %d modes, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ID != w.id || got[i].Players != w.players {
			t.Errorf("mode %d = %s/%d players, want %s/%d", i, got[i].ID, got[i].Players, w.id, w.players)
		}
		if got[i].Description == "" {
			t.Errorf("mode %s has no description", got[i].ID)
		}
		if g := got[i].New(); g.Title() != got[i].Title {
			t.Errorf("mode %s: game title %q, registry title %q", w.id, g.Title(), got[i].Title)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	dt := cfg.FrameSeconds()

	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 15:
			inputs[i].Set(core.ActionLeftUp)
			inputs[i].Set(core.ActionRightDown)
		case i%40 < 30:
			inputs[i].Set(core.ActionLeftDown)
			inputs[i].Set(core.ActionRightUp)
		}
	}

	run := func() Snapshot {
		g := New(VariantVersus)
		g.Reset(cfg)
		for _, in := range inputs {
			g.Step(in, dt)
		}
		return g.Match().Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same inputs produced different games:\n%+v\n%+v", a, b)
	}
}

func TestGameStepMovesPaddles(t *testing.T) {
	g := New(VariantVersus)
	g.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionLeftUp)
	in.Set(core.ActionRightDown)
	g.Step(in, 0.05)

	if y := g.Match().Paddle(Left).Y(); y >= 218 {
		t.Errorf("left paddle Y = %v, want above 218", y)
	}
	if y := g.Match().Paddle(Right).Y(); y <= 218 {
		t.Errorf("right paddle Y = %v, want below 218", y)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New(VariantVersus)
	g.Reset(core.DefaultConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if res := g.Step(pause, 0); !res.State.Paused {
		t.Error("first pause press should pause")
	}
	g.Step(core.NewInputFrame(), 3)
	if g.Match().Ball().State() != BallIdle {
		t.Error("game advanced while paused")
	}
	if res := g.Step(pause, 0); res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestGameCPUVariant(t *testing.T) {
	g := New(VariantCPU)
	g.Reset(core.DefaultConfig())

	if g.cpu == nil || g.cpu.Side() != Right {
		t.Fatal("CPU variant should drive the right paddle")
	}

	// Arrow keys steer the human paddle too
	in := core.NewInputFrame()
	in.Set(core.ActionRightUp)
	g.Step(in, 0.05)
	if y := g.Match().Paddle(Left).Y(); y >= 218 {
		t.Errorf("left paddle Y = %v, want above 218", y)
	}
}

func TestGameAttractVariant(t *testing.T) {
	g := New(VariantAttract)
	g.Reset(core.DefaultConfig())

	if !g.State().Attract {
		t.Fatal("attract variant should start in attract mode")
	}

	served := false
	for _, ev := range g.Events() {
		if _, ok := ev.(BallServedEvent); ok {
			served = true
		}
	}
	if !served {
		t.Error("attract start should report the serve")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	if res := g.Step(restart, 0); res.State.Attract {
		t.Error("restart should leave attract mode")
	}
}

func TestGameKeyHold(t *testing.T) {
	g := New(VariantVersus)
	g.Reset(core.DefaultConfig())
	if got := g.KeyHold(); got != 120*time.Millisecond {
		t.Errorf("KeyHold = %v, want 120ms", got)
	}
}

func TestGameRender(t *testing.T) {
	g := New(VariantVersus)
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(40, 12) != NetChar {
		t.Error("Render did not draw the playfield")
	}
}

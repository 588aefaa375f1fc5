// Package tennis implements the 1972 two-paddle tennis arcade game.
//
// Geometry is expressed in the original board's H/V clock units and mapped
// to a 640x480 pixel viewport by the video package. The ball moves in discrete
// velocity classes, paddles deflect it by which of seven face segments is
// struck, and a win drops the match into attract mode until restart.
package tennis

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/registry"
)

// Variant selects who controls the paddles.
type Variant int

const (
	VariantVersus  Variant = iota // Two players on one keyboard
	VariantCPU                    // Player on the left, CPU on the right
	VariantAttract                // Starts in attract mode
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives game events; discarded unless the CLI installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger installs the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Match to the platform's registry.Game interface.
type Game struct {
	id      string
	title   string
	variant Variant

	cfg     config.TennisConfig
	match   *Match
	cpu     *CPU
	runtime core.RuntimeConfig
	events  []Event
}

// modes describes each variant for the registry, indexed by Variant.
var modes = [...]registry.Mode{
	VariantVersus: {
		ID:          "tennis",
		Title:       "Tennis",
		Description: "Two players, one keyboard: W/S against the arrow keys",
		Players:     2,
	},
	VariantCPU: {
		ID:          "tennis-cpu",
		Title:       "Tennis vs CPU",
		Description: "You on the left, the machine on the right",
		Players:     1,
	},
	VariantAttract: {
		ID:          "attract",
		Title:       "Tennis (attract mode)",
		Description: "The cabinet idling between games; R starts a match",
		Players:     0,
	},
}

// New creates a game of the given variant. Reset must be called before Step.
func New(variant Variant) *Game {
	if variant < 0 || int(variant) >= len(modes) {
		variant = VariantVersus
	}
	mode := modes[variant]
	return &Game{
		id:      mode.ID,
		title:   mode.Title,
		variant: variant,
		cfg:     config.DefaultTennisConfig(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTennis(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultTennisConfig()
	}
	config.ApplyTennisPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	if g.match != nil {
		g.match.Teardown()
	}
	opts := OptionsFromConfig(cfg)
	opts.Logger = logger.With("game", g.id)
	g.match = NewMatch(opts)

	g.cpu = nil
	if g.variant == VariantCPU {
		g.cpu = NewCPU(Right, cfg.CPU.Skill, cfg.CPU.DeadZone)
	}

	if g.variant == VariantAttract {
		g.match.StartAttract()
	} else {
		g.match.Start()
	}
	g.events = g.match.Events()
}

// Step advances the match by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.match.Mode() == ModePlaying {
		g.match.SetPaused(!g.match.Paused())
	}

	input := Input{Restart: in.Has(core.ActionRestart)}
	input.Up[Left] = in.Has(core.ActionLeftUp)
	input.Down[Left] = in.Has(core.ActionLeftDown)
	input.Up[Right] = in.Has(core.ActionRightUp)
	input.Down[Right] = in.Has(core.ActionRightDown)

	if g.cpu != nil {
		// Either key set steers the human paddle
		input.Up[Left] = input.Up[Left] || input.Up[Right]
		input.Down[Left] = input.Down[Left] || input.Down[Right]
		g.cpu.Decide(g.match.Snapshot(), &input)
	}

	g.match.Update(dt, input)
	g.events = g.match.Events()
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(g.match.Snapshot(), dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}
	score := g.match.Score()
	return core.GameState{
		ScoreLeft:  score[Left],
		ScoreRight: score[Right],
		Attract:    g.match.Mode() == ModeAttract,
		Paused:     g.match.Paused(),
	}
}

// Events returns the events produced by the most recent Reset or Step.
func (g *Game) Events() []Event {
	return g.events
}

// Match exposes the underlying match.
func (g *Game) Match() *Match {
	return g.match
}

// KeyHold is how long one key press keeps a paddle moving.
func (g *Game) KeyHold() time.Duration {
	return time.Duration(g.cfg.Controls.KeyHoldMS) * time.Millisecond
}

func init() {
	for v := range modes {
		mode := modes[v]
		variant := Variant(v)
		mode.New = func() registry.Game { return New(variant) }
		registry.Register(mode)
	}
}

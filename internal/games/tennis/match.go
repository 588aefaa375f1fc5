package tennis

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/video"
)

// Mode is the match's top-level state.
type Mode int

const (
	ModeSetup   Mode = iota // No entities; Start builds them
	ModePlaying             // Two paddles, scoring side walls
	ModeAttract             // After a win: no paddles, ball bounces forever
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSetup:
		return "Setup"
	case ModePlaying:
		return "Playing"
	case ModeAttract:
		return "Attract"
	default:
		return "Unknown"
	}
}

// Input is the set of intents for one frame.
type Input struct {
	Up      [2]bool // Indexed by Side
	Down    [2]bool
	Restart bool
}

// Options configures a match. Build it with DefaultOptions or OptionsFromConfig.
type Options struct {
	Calibration    video.Calibration
	PaddleRate     float64 // Screen heights per second
	ServeDelay     time.Duration
	WinScore       int
	ServeDirection config.ServeDirection
	FirstServe     Side

	// Scheduler runs the delayed serve. When nil the match owns a
	// FrameScheduler and advances it from Update.
	Scheduler Scheduler
	Logger    *log.Logger
}

// DefaultOptions returns options matching the built-in configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultTennisConfig())
}

// OptionsFromConfig converts a loaded configuration into match options.
func OptionsFromConfig(cfg config.TennisConfig) Options {
	first := Right
	if cfg.Gameplay.FirstServe == config.ServeLeft {
		first = Left
	}
	return Options{
		Calibration:    cfg.VideoCalibration(),
		PaddleRate:     cfg.Paddle.Rate,
		ServeDelay:     secondsToDuration(cfg.Ball.ServeDelay),
		WinScore:       cfg.Gameplay.WinScore,
		ServeDirection: cfg.Gameplay.ServeDirection,
		FirstServe:     first,
	}
}

// Match owns every entity in a game and runs the serve/score/attract cycle.
// It is single-threaded: the host calls Update once per frame and the
// scheduler must run callbacks on that same thread.
type Match struct {
	opts   Options
	cal    video.Calibration
	logger *log.Logger

	mode    Mode
	paused  bool
	paddles [2]*Paddle
	ball    *Ball
	score   *ScoreTracker
	net     []core.Rect

	sched  Scheduler
	frames *FrameScheduler // Non-nil when the match owns its scheduler

	serveTimer Timer
	// Bumped on teardown so serve callbacks from an old game do nothing.
	generation uint64

	events []Event
}

// NewMatch creates a match in Setup mode. Call Start to begin play.
func NewMatch(opts Options) *Match {
	m := &Match{
		opts:   opts,
		cal:    opts.Calibration,
		logger: opts.Logger,
		sched:  opts.Scheduler,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.sched == nil {
		m.frames = NewFrameScheduler()
		m.sched = m.frames
	}
	m.net = m.cal.NetSegments()
	return m
}

// Start builds a new game: two paddles, an idle ball and a 0-0 score.
// The first serve follows after the serve delay.
func (m *Match) Start() {
	if m.mode != ModeSetup {
		m.Teardown()
	}

	m.paddles[Left] = NewPaddle(Left, m.cal, m.opts.PaddleRate)
	m.paddles[Right] = NewPaddle(Right, m.cal, m.opts.PaddleRate)
	m.ball = NewBall(m.cal, m.opts.FirstServe)
	m.score = NewScoreTracker(m.opts.WinScore)
	m.mode = ModePlaying
	m.paused = false

	m.logger.Info("new game", "win_score", m.score.WinScore(), "first_serve", m.opts.FirstServe)
	m.scheduleServe(m.opts.FirstServe)
}

// StartAttract builds a game and drops straight into attract mode.
func (m *Match) StartAttract() {
	m.Start()
	m.enterAttract()
}

// Teardown cancels the pending serve and releases all entities.
// A serve callback that fires afterwards is ignored.
func (m *Match) Teardown() {
	if m.serveTimer != nil {
		m.serveTimer.Stop()
		m.serveTimer = nil
	}
	m.generation++
	m.paddles = [2]*Paddle{}
	m.ball = nil
	m.score = nil
	m.events = nil
	m.paused = false
	m.mode = ModeSetup
}

// Restart tears the current game down and starts a new one.
func (m *Match) Restart() {
	m.logger.Info("restart")
	m.Teardown()
	m.Start()
}

// Update advances the match by dt seconds with the given intents.
func (m *Match) Update(dt float64, in Input) {
	if m.mode == ModeSetup {
		return
	}
	if in.Restart && m.mode == ModeAttract {
		m.Restart()
		return
	}
	if m.paused {
		return
	}

	if m.frames != nil {
		m.frames.Advance(secondsToDuration(dt))
	}

	for _, side := range []Side{Left, Right} {
		p := m.paddles[side]
		if p == nil {
			continue
		}
		if in.Up[side] {
			p.MoveUp(dt)
		}
		if in.Down[side] {
			p.MoveDown(dt)
		}
	}

	out := m.ball.Update(dt, m.paddles[:])
	if out.PaddleHit {
		m.emit(BallHitPaddleEvent{Side: out.HitSide, Segment: out.Segment, Hits: m.ball.Hits()})
	}
	if out.Scored {
		m.dispatch(m.score.RecordPoint(out.Scorer))
	}
}

// dispatch queues an event for the host and reacts to it.
func (m *Match) dispatch(ev Event) {
	if ev == nil {
		return
	}
	m.emit(ev)

	switch e := ev.(type) {
	case ScoreUpdatedEvent:
		m.logger.Info("point", "scorer", e.Scorer, "left", e.Score[Left], "right", e.Score[Right])
		m.scheduleServe(m.serveToward(e.Scorer))
	case GameOverEvent:
		m.logger.Info("game over", "winner", e.Winner, "left", e.Score[Left], "right", e.Score[Right])
		m.enterAttract()
	}
}

func (m *Match) emit(ev Event) {
	m.events = append(m.events, ev)
}

// serveToward applies the serve direction policy after scorer won a point.
func (m *Match) serveToward(scorer Side) Side {
	switch m.opts.ServeDirection {
	case config.ServeTowardWinner:
		return scorer
	case config.ServeLeft:
		return Left
	case config.ServeRight:
		return Right
	default:
		return scorer.Opponent()
	}
}

// scheduleServe arranges for the ball to be served toward a side after the
// serve delay. The callback checks it still belongs to the current game and
// that the ball is still waiting, so a late or repeated call is harmless.
func (m *Match) scheduleServe(toward Side) {
	if m.serveTimer != nil {
		m.serveTimer.Stop()
	}

	gen := m.generation
	m.serveTimer = m.sched.After(m.opts.ServeDelay, func() {
		if gen != m.generation || m.ball == nil {
			return
		}
		if st := m.ball.State(); st != BallIdle && st != BallAwaitingServe {
			return
		}
		m.serveTimer = nil
		m.serve(toward)
	})
}

func (m *Match) serve(toward Side) {
	m.ball.SetDirection(toward)
	m.ball.Serve()
	m.emit(BallServedEvent{Toward: toward})
	m.logger.Debug("serve", "toward", toward, "mode", m.mode)
}

// enterAttract removes the paddles, makes the side walls bounce and sets the
// ball loose.
func (m *Match) enterAttract() {
	if m.serveTimer != nil {
		m.serveTimer.Stop()
		m.serveTimer = nil
	}
	m.paddles = [2]*Paddle{}
	m.mode = ModeAttract
	m.ball.SetAttract(true)

	toward := Right
	if h, _ := m.ball.VelocityClasses(); h < 0 {
		toward = Left
	}
	m.serve(toward)
}

// Events returns and clears the events queued since the last call.
func (m *Match) Events() []Event {
	ev := m.events
	m.events = nil
	return ev
}

// Mode returns the current match mode.
func (m *Match) Mode() Mode {
	return m.mode
}

// SetPaused freezes or resumes the match, including the serve timer it owns.
func (m *Match) SetPaused(paused bool) {
	if m.mode == ModeSetup {
		return
	}
	m.paused = paused
}

// Paused reports whether the match is frozen.
func (m *Match) Paused() bool {
	return m.paused
}

// Ball returns the ball, or nil in Setup mode.
func (m *Match) Ball() *Ball {
	return m.ball
}

// Paddle returns the paddle for side, or nil when it has been removed.
func (m *Match) Paddle(side Side) *Paddle {
	side.mustBeValid()
	return m.paddles[side]
}

// Score returns both scores, indexed by Side.
func (m *Match) Score() [2]int {
	if m.score == nil {
		return [2]int{}
	}
	return m.score.Score()
}

// Calibration returns the coordinate mapping the match was built with.
func (m *Match) Calibration() video.Calibration {
	return m.cal
}

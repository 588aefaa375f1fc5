package tennis

import (
	"math"

	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/video"
)

// Ball geometry and court zones in timing units.
const (
	ballWidthHclk  = 4
	ballHeightVclk = 4
	spawnHclk      = video.NetHclk
	spawnVclk      = 139 // Middle of the 246 active lines
	clearZoneLeft  = 144 // Past the left paddle
	clearZoneRight = 368 // Short of the right paddle
)

// BallState is where the ball is in its serve cycle.
type BallState int

const (
	BallIdle          BallState = iota // At the spawn point, never served
	BallInPlay                         // Moving and colliding
	BallAwaitingServe                  // A point was scored; waiting for the serve timer
)

// String returns a human-readable state name.
func (s BallState) String() string {
	switch s {
	case BallIdle:
		return "Idle"
	case BallInPlay:
		return "InPlay"
	case BallAwaitingServe:
		return "AwaitingServe"
	default:
		return "Unknown"
	}
}

// Outcome reports what happened to the ball during one Update.
type Outcome struct {
	PaddleHit  bool
	HitSide    Side // Valid when PaddleHit
	Segment    int  // Valid when PaddleHit
	WallBounce bool // Ceiling, floor, or a side wall in attract mode
	Scored     bool
	Scorer     Side // Valid when Scored
}

// Ball is the moving square. Its velocity is a pair of discrete classes that
// index the speed tables rather than a continuous vector.
type Ball struct {
	x, y   float64
	w, h   float64
	hClass int // Signed; magnitude follows the hit count
	vClass int // -3..3
	hits   int

	// Set on paddle contact, cleared once the ball is back in the clear zone,
	// so one overlap cannot register as several hits.
	debounce bool

	state   BallState
	attract bool // Side walls bounce instead of scoring

	spawnX, spawnY float64
	clearMin       float64
	clearMax       float64
	viewW, viewH   float64
}

// NewBall creates an idle ball at the spawn point heading toward firstServe.
func NewBall(cal video.Calibration, firstServe Side) *Ball {
	w := float64(cal.HclkToInterval(ballWidthHclk))
	h := float64(cal.VclkToInterval(ballHeightVclk))
	b := &Ball{
		w:        w,
		h:        h,
		hClass:   firstServe.Direction(),
		spawnX:   float64(cal.HclkToXPos(spawnHclk)) - w/2,
		spawnY:   float64(cal.VclkToYPos(spawnVclk)) - h/2,
		clearMin: float64(cal.HclkToXPos(clearZoneLeft)),
		clearMax: float64(cal.HclkToXPos(clearZoneRight)),
		viewW:    float64(cal.Width),
		viewH:    float64(cal.Height),
	}
	b.x, b.y = b.spawnX, b.spawnY
	return b
}

// Serve puts the ball back on the spawn point and into play, moving flat.
// The horizontal direction is whatever was set before the serve.
func (b *Ball) Serve() {
	b.hits = 0
	b.x, b.y = b.spawnX, b.spawnY
	b.vClass = 0
	b.hClass = NextHorizontalClass(b.hClass, 0)
	b.debounce = false
	b.state = BallInPlay
}

// SetDirection points the next serve toward the given side.
func (b *Ball) SetDirection(toward Side) {
	b.hClass = toward.Direction() * HorizontalMagnitude(b.hits)
}

// SetAttract switches side walls between scoring and bouncing.
func (b *Ball) SetAttract(on bool) {
	b.attract = on
}

// State returns the serve-cycle state.
func (b *Ball) State() BallState {
	return b.state
}

// Hits returns the paddle hits since the last serve.
func (b *Ball) Hits() int {
	return b.hits
}

// VelocityClasses returns the horizontal and vertical velocity classes.
func (b *Ball) VelocityClasses() (h, v int) {
	return b.hClass, b.vClass
}

// Position returns the ball's top-left corner.
func (b *Ball) Position() (x, y float64) {
	return b.x, b.y
}

// Spawn returns the serve position.
func (b *Ball) Spawn() (x, y float64) {
	return b.spawnX, b.spawnY
}

// Rect returns the ball's collision box.
func (b *Ball) Rect() core.RectF {
	return core.RectF{X: b.x, Y: b.y, W: b.w, H: b.h}
}

// Update advances the ball by dt seconds and resolves collisions.
// Paddles may contain nil entries (removed paddles). Only InPlay balls move.
// Long frames are split so the ball never travels more than its own width
// between collision checks.
func (b *Ball) Update(dt float64, paddles []*Paddle) Outcome {
	var out Outcome
	if b.state != BallInPlay {
		return out
	}

	n := b.subSteps(dt)
	step := dt / float64(n)
	for i := 0; i < n && b.state == BallInPlay; i++ {
		b.step(step, paddles, &out)
	}
	return out
}

// subSteps returns how many collision checks dt needs.
func (b *Ball) subSteps(dt float64) int {
	if dt <= 0 || b.w <= 0 {
		return 1
	}
	hClass := NextHorizontalClass(b.hClass, b.hits)
	dx := math.Abs(Displacement(HorizontalSpeed(hClass), b.viewW, dt))
	dy := math.Abs(Displacement(VerticalSpeed(b.vClass), b.viewH, dt))
	n := int(math.Ceil(math.Max(dx/b.w, dy/b.h)))
	return max(n, 1)
}

func (b *Ball) step(dt float64, paddles []*Paddle, out *Outcome) {
	b.hClass = NextHorizontalClass(b.hClass, b.hits)
	b.x += Displacement(HorizontalSpeed(b.hClass), b.viewW, dt)
	b.y += Displacement(VerticalSpeed(b.vClass), b.viewH, dt)

	if b.x > b.clearMin && b.x < b.clearMax {
		b.debounce = false
	}

	for _, p := range paddles {
		if p == nil || !b.Rect().Intersects(p.Rect()) {
			continue
		}
		if b.debounce {
			break
		}
		b.debounce = true
		seg := p.SegmentAt(b.y + b.h/2 - p.Y())
		b.hClass = -b.hClass
		b.vClass = SegmentClass(seg)
		b.hits++
		out.PaddleHit = true
		out.HitSide = p.Side()
		out.Segment = seg
		break
	}

	if b.y <= 0 && b.vClass < 0 {
		b.vClass = -b.vClass
		out.WallBounce = true
	}
	if b.y+b.h >= b.viewH && b.vClass > 0 {
		b.vClass = -b.vClass
		out.WallBounce = true
	}

	b.checkSideWalls(out)
}

// checkSideWalls scores a point, or bounces in attract mode, when the ball
// reaches the left or right edge of the viewport.
func (b *Ball) checkSideWalls(out *Outcome) {
	var wall Side
	switch {
	case b.x <= 0:
		wall = Left
	case b.x+b.w >= b.viewW:
		wall = Right
	default:
		return
	}

	if b.attract {
		if core.Sign(b.hClass) == wall.Direction() {
			b.hClass = -b.hClass
			out.WallBounce = true
		}
		return
	}

	out.Scored = true
	out.Scorer = wall.Opponent()
	b.state = BallAwaitingServe
}

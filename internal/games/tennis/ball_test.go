package tennis

import (
	"testing"

	"github.com/vovakirdan/tui-tennis/internal/video"
)

func newTestBall() *Ball {
	return NewBall(video.Default(), Right)
}

func TestNewBallIdleAtSpawn(t *testing.T) {
	b := newTestBall()

	if b.State() != BallIdle {
		t.Errorf("State = %v, want Idle", b.State())
	}
	x, y := b.Position()
	if x != 317 || y != 235.5 {
		t.Errorf("Position = (%v, %v), want (317, 235.5)", x, y)
	}
	if sx, sy := b.Spawn(); sx != x || sy != y {
		t.Errorf("Spawn = (%v, %v), want (%v, %v)", sx, sy, x, y)
	}
	r := b.Rect()
	if r.W != 6 || r.H != 7 {
		t.Errorf("ball size = %vx%v, want 6x7", r.W, r.H)
	}

	// Idle balls do not move
	b.Update(1, nil)
	if nx, ny := b.Position(); nx != x || ny != y {
		t.Errorf("idle ball moved to (%v, %v)", nx, ny)
	}
}

func TestBallServeResets(t *testing.T) {
	b := newTestBall()
	b.x, b.y = 12, 400
	b.hits = 9
	b.hClass = -2
	b.vClass = 3
	b.debounce = true
	b.state = BallAwaitingServe

	b.Serve()

	if b.State() != BallInPlay {
		t.Errorf("State = %v, want InPlay", b.State())
	}
	if b.Hits() != 0 {
		t.Errorf("Hits = %d, want 0", b.Hits())
	}
	h, v := b.VelocityClasses()
	if h != -1 || v != 0 {
		t.Errorf("classes = (%d, %d), want (-1, 0)", h, v)
	}
	sx, sy := b.Spawn()
	if x, y := b.Position(); x != sx || y != sy {
		t.Errorf("Position = (%v, %v), want spawn", x, y)
	}
	if b.debounce {
		t.Error("debounce should be cleared by Serve")
	}
}

func TestBallSetDirection(t *testing.T) {
	b := newTestBall()
	b.SetDirection(Left)
	b.Serve()
	if h, _ := b.VelocityClasses(); h != -1 {
		t.Errorf("hClass = %d, want -1", h)
	}
	b.SetDirection(Right)
	if h, _ := b.VelocityClasses(); h != 1 {
		t.Errorf("hClass = %d, want 1", h)
	}
}

func TestBallPaddleHitUsesSegment(t *testing.T) {
	cal := video.Default()
	b := NewBall(cal, Left)
	left := NewPaddle(Left, cal, 0.8)

	b.state = BallInPlay
	b.hits = 5
	b.hClass = -2
	b.x, b.y = 108, 215

	out := b.Update(0, []*Paddle{left, nil})

	if !out.PaddleHit || out.HitSide != Left {
		t.Fatalf("Outcome = %+v, want a left paddle hit", out)
	}
	if out.Segment != 0 {
		t.Errorf("Segment = %d, want 0", out.Segment)
	}
	h, v := b.VelocityClasses()
	if v != -3 {
		t.Errorf("vClass = %d, want -3", v)
	}
	if h <= 0 {
		t.Errorf("hClass = %d, want positive after left paddle hit", h)
	}
	if b.Hits() != 6 {
		t.Errorf("Hits = %d, want 6", b.Hits())
	}
}

func TestBallPaddleHitDebounce(t *testing.T) {
	cal := video.Default()
	b := NewBall(cal, Right)
	right := NewPaddle(Right, cal, 0.8)

	b.state = BallInPlay
	b.hClass = 1
	b.x, b.y = 532, 230 // Centre 15.5 rows into the paddle

	out := b.Update(0, []*Paddle{nil, right})
	if !out.PaddleHit || out.Segment != 3 {
		t.Fatalf("first contact = %+v, want a middle segment hit", out)
	}

	// Still overlapping on the next frame
	out = b.Update(0, []*Paddle{nil, right})
	if out.PaddleHit {
		t.Error("second frame of the same overlap registered a hit")
	}
	if b.Hits() != 1 {
		t.Errorf("Hits = %d, want 1", b.Hits())
	}

	// Crossing the clear zone re-arms paddle collisions
	b.x = 320
	b.Update(0, []*Paddle{nil, right})
	if b.debounce {
		t.Error("debounce not cleared inside the clear zone")
	}
	b.x, b.hClass = 532, 1
	out = b.Update(0, []*Paddle{nil, right})
	if !out.PaddleHit {
		t.Error("contact after the clear zone was not registered")
	}
	if b.Hits() != 2 {
		t.Errorf("Hits = %d, want 2", b.Hits())
	}
}

func TestBallLongFrameStillHitsPaddle(t *testing.T) {
	cal := video.Default()
	left := NewPaddle(Left, cal, 0.8)

	for _, dt := range []float64{1.0 / 60, 1.0 / 30, 0.05, 0.1} {
		for i := 0; i < 100; i++ {
			b := NewBall(cal, Left)
			b.state = BallInPlay
			b.hits = 12
			b.hClass = -3
			b.x = 112 + float64(i)*0.3
			b.y = 230

			var out Outcome
			for frame := 0; frame < 10 && !out.PaddleHit && !out.Scored; frame++ {
				out = b.Update(dt, []*Paddle{left, nil})
			}
			if !out.PaddleHit {
				t.Fatalf("dt=%v start x=%v: ball passed the paddle (%+v)", dt, 112+float64(i)*0.3, out)
			}
			if h, _ := b.VelocityClasses(); h <= 0 {
				t.Fatalf("dt=%v: hClass = %d after hit, want positive", dt, h)
			}
		}
	}
}

func TestBallSubSteps(t *testing.T) {
	b := newTestBall()
	b.state = BallInPlay
	b.hits = 12
	b.hClass = 3

	tests := []struct {
		dt   float64
		want int
	}{
		{0, 1},
		{1.0 / 60, 1},
		{0.1, 6}, // 33.9 px across a 6 px ball
	}
	for _, tt := range tests {
		if got := b.subSteps(tt.dt); got != tt.want {
			t.Errorf("subSteps(%v) = %d, want %d", tt.dt, got, tt.want)
		}
	}
}

func TestBallCeilingAndFloor(t *testing.T) {
	tests := []struct {
		name       string
		y          float64
		vClass     int
		wantV      int
		wantBounce bool
	}{
		{"ceiling moving up", -1, -2, 2, true},
		{"ceiling already moving down", -1, 2, 2, false},
		{"floor moving down", 475, 1, -1, true},
		{"floor already moving up", 475, -3, -3, false},
		{"mid court", 200, 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.state = BallInPlay
			b.hClass = 1
			b.x, b.y = 300, tt.y
			b.vClass = tt.vClass

			out := b.Update(0, nil)
			if _, v := b.VelocityClasses(); v != tt.wantV {
				t.Errorf("vClass = %d, want %d", v, tt.wantV)
			}
			if out.WallBounce != tt.wantBounce {
				t.Errorf("WallBounce = %v, want %v", out.WallBounce, tt.wantBounce)
			}
		})
	}
}

func TestBallSideWallScores(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		hClass int
		scorer Side
	}{
		{"right wall", 635, 1, Left},
		{"left wall", 0, -1, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.state = BallInPlay
			b.x, b.y = tt.x, 100
			b.hClass = tt.hClass

			out := b.Update(0, nil)
			if !out.Scored || out.Scorer != tt.scorer {
				t.Errorf("Outcome = %+v, want score for %v", out, tt.scorer)
			}
			if b.State() != BallAwaitingServe {
				t.Errorf("State = %v, want AwaitingServe", b.State())
			}

			// A waiting ball neither moves nor scores again
			out = b.Update(1, nil)
			if out.Scored {
				t.Error("scored twice for one crossing")
			}
		})
	}
}

func TestBallAttractBounce(t *testing.T) {
	b := newTestBall()
	b.SetAttract(true)
	b.state = BallInPlay
	b.x, b.y = 635, 100
	b.hClass = 1

	out := b.Update(0, nil)
	if out.Scored {
		t.Error("attract mode ball scored")
	}
	if !out.WallBounce {
		t.Error("expected side wall bounce")
	}
	if h, _ := b.VelocityClasses(); h != -1 {
		t.Errorf("hClass = %d, want -1", h)
	}

	// Already heading away: no second flip
	out = b.Update(0, nil)
	if out.WallBounce {
		t.Error("bounced twice off the same wall")
	}
	if b.State() != BallInPlay {
		t.Errorf("State = %v, want InPlay", b.State())
	}
}

func TestBallIntegratesVelocity(t *testing.T) {
	b := newTestBall()
	b.Serve()
	b.vClass = 2
	x0, y0 := b.Position()

	b.Update(0.1, nil)

	x, y := b.Position()
	wantX := x0 + 0.26*640*0.1
	wantY := y0 + 0.455*480*0.1
	if diff := x - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("x = %v, want %v", x, wantX)
	}
	if diff := y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("y = %v, want %v", y, wantY)
	}
}

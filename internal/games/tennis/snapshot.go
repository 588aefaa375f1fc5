package tennis

import "github.com/vovakirdan/tui-tennis/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Geometry is in viewport pixels.
type Snapshot struct {
	Mode     Mode
	Paused   bool
	Width    int
	Height   int
	Net      []core.Rect
	Paddles  []PaddleView // Empty in attract mode
	Ball     BallView
	Score    [2]int
	WinScore int
}

// PaddleView describes one paddle.
type PaddleView struct {
	Side Side
	Y    float64
	Rect core.Rect
}

// BallView describes the ball.
type BallView struct {
	Rect    core.Rect
	State   BallState
	Visible bool // Hidden between a point and the next serve
	HClass  int
	VClass  int
	Hits    int
}

// Snapshot copies the current match state.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:   m.mode,
		Paused: m.paused,
		Width:  m.cal.Width,
		Height: m.cal.Height,
		Net:    append([]core.Rect(nil), m.net...),
		Score:  m.Score(),
	}
	if m.score != nil {
		snap.WinScore = m.score.WinScore()
	}

	for _, p := range m.paddles {
		if p == nil {
			continue
		}
		snap.Paddles = append(snap.Paddles, PaddleView{
			Side: p.Side(),
			Y:    p.Y(),
			Rect: p.Rect().Trunc(),
		})
	}

	if m.ball != nil {
		h, v := m.ball.VelocityClasses()
		snap.Ball = BallView{
			Rect:    m.ball.Rect().Trunc(),
			State:   m.ball.State(),
			Visible: m.ball.State() == BallInPlay,
			HClass:  h,
			VClass:  v,
			Hits:    m.ball.Hits(),
		}
	}
	return snap
}

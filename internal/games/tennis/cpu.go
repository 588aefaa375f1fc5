package tennis

import "math"

// CPU drives one paddle by producing the same up/down intents a player would.
// It tracks the ball only while the ball is coming toward it, and its skill
// limits how many frames it actually reacts on.
type CPU struct {
	side     Side
	skill    float64 // 0-1
	deadZone float64 // Pixels of slack before it moves
	budget   float64
}

// NewCPU creates a CPU controller for side.
func NewCPU(side Side, skill, deadZone float64) *CPU {
	side.mustBeValid()
	return &CPU{
		side:     side,
		skill:    math.Max(0, math.Min(1, skill)),
		deadZone: math.Max(0, deadZone),
	}
}

// Side returns the side the CPU plays.
func (c *CPU) Side() Side {
	return c.side
}

// Decide fills in this frame's intents for the CPU's paddle.
func (c *CPU) Decide(snap Snapshot, in *Input) {
	in.Up[c.side] = false
	in.Down[c.side] = false

	if snap.Mode != ModePlaying || !snap.Ball.Visible {
		return
	}
	var paddle *PaddleView
	for i := range snap.Paddles {
		if snap.Paddles[i].Side == c.side {
			paddle = &snap.Paddles[i]
		}
	}
	if paddle == nil {
		return
	}

	// Only chase a ball heading our way
	if snap.Ball.HClass*c.side.Direction() <= 0 {
		return
	}

	// Skill is the fraction of frames the CPU reacts on. Accumulating it keeps
	// the result deterministic.
	c.budget += c.skill
	if c.budget < 1 {
		return
	}
	c.budget--

	ballCenter := float64(snap.Ball.Rect.Y) + float64(snap.Ball.Rect.H)/2
	paddleCenter := paddle.Y + float64(paddle.Rect.H)/2
	diff := ballCenter - paddleCenter
	if math.Abs(diff) <= c.deadZone {
		return
	}
	if diff < 0 {
		in.Up[c.side] = true
	} else {
		in.Down[c.side] = true
	}
}

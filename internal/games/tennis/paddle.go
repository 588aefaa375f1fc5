package tennis

import (
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/video"
)

// paddleStartVclk is the line a new paddle's top starts on.
const paddleStartVclk = 128

// paddleSegment is one zone of the paddle face, in lines from the paddle top.
type paddleSegment struct {
	offset int
	height int
	class  int // Outgoing vertical velocity class
}

// The middle segment is twice as tall and returns the ball flat.
var paddleSegments = [...]paddleSegment{
	{offset: 0, height: 2, class: -3},
	{offset: 2, height: 2, class: -2},
	{offset: 4, height: 2, class: -1},
	{offset: 6, height: 4, class: 0},
	{offset: 10, height: 2, class: 1},
	{offset: 12, height: 2, class: 2},
	{offset: 14, height: 2, class: 3},
}

// SegmentCount is the number of rebound zones on a paddle face.
const SegmentCount = len(paddleSegments)

// Paddle is a player's bat: a fixed column and a clamped vertical position.
type Paddle struct {
	side   Side
	x      float64
	y      float64
	width  float64
	height float64
	minY   float64
	maxY   float64
	rate   float64 // Screen heights per second
	viewH  float64

	segmentEnds [SegmentCount]int // Pixel row (exclusive) where each segment ends
}

// NewPaddle creates a paddle for the given side at its starting height.
// rate is the movement speed in screen heights per second.
func NewPaddle(side Side, cal video.Calibration, rate float64) *Paddle {
	side.mustBeValid()

	hclk := video.PaddleLeftHclk
	if side == Right {
		hclk = video.PaddleRightHclk
	}

	top, lowest := cal.PaddleTravel()
	p := &Paddle{
		side:   side,
		x:      float64(cal.HclkToXPos(hclk)),
		width:  float64(cal.HclkToInterval(video.PaddleWidthHclk)),
		height: float64(cal.VclkToInterval(video.PaddleHeightVclk)),
		minY:   float64(top),
		maxY:   float64(lowest),
		rate:   rate,
		viewH:  float64(cal.Height),
	}
	for i, seg := range paddleSegments {
		p.segmentEnds[i] = cal.VclkToInterval(seg.offset + seg.height)
	}
	p.y = core.ClampF(float64(cal.VclkToYPos(paddleStartVclk)), p.minY, p.maxY)
	return p
}

// Side returns which side the paddle defends.
func (p *Paddle) Side() Side {
	return p.side
}

// X returns the paddle's left edge in pixels.
func (p *Paddle) X() float64 {
	return p.x
}

// Y returns the paddle's top edge in pixels.
func (p *Paddle) Y() float64 {
	return p.y
}

// Bounds returns the clamp range for Y.
func (p *Paddle) Bounds() (minY, maxY float64) {
	return p.minY, p.maxY
}

// Rect returns the paddle's collision box.
func (p *Paddle) Rect() core.RectF {
	return core.RectF{X: p.x, Y: p.y, W: p.width, H: p.height}
}

// MoveUp moves the paddle toward the top of the screen for dt seconds.
func (p *Paddle) MoveUp(dt float64) {
	p.y = core.ClampF(p.y-p.rate*p.viewH*dt, p.minY, p.maxY)
}

// MoveDown moves the paddle toward the bottom of the screen for dt seconds.
func (p *Paddle) MoveDown(dt float64) {
	p.y = core.ClampF(p.y+p.rate*p.viewH*dt, p.minY, p.maxY)
}

// SegmentAt returns the face segment under a pixel row measured from the
// paddle top. Rows outside the paddle resolve to the nearest end segment.
func (p *Paddle) SegmentAt(offset float64) int {
	row := int(offset)
	if offset < 0 {
		return 0
	}
	for i, end := range p.segmentEnds {
		if row < end {
			return i
		}
	}
	return SegmentCount - 1
}

// VelocityClassAt returns the vertical velocity class a ball leaves with
// after striking the given row.
func (p *Paddle) VelocityClassAt(offset float64) int {
	return SegmentClass(p.SegmentAt(offset))
}

// SegmentClass returns the outgoing vertical velocity class for a segment index.
// Out of range indices return the flat middle class.
func SegmentClass(index int) int {
	if index < 0 || index >= SegmentCount {
		return 0
	}
	return paddleSegments[index].class
}

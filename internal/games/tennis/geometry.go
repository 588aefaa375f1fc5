package tennis

import "github.com/vovakirdan/tui-tennis/internal/video"

// Geometry lists the pixel layout a calibration produces.
type Geometry struct {
	PaddleX      [2]int // Indexed by Side
	PaddleW      int
	PaddleH      int
	PaddleStartY int
	PaddleMinY   int
	PaddleMaxY   int
	SegmentEnds  [SegmentCount]int // Row, from the paddle top, where each segment ends

	BallW     int
	BallH     int
	SpawnX    float64
	SpawnY    float64
	ClearZone [2]int // Left and right edges

	NetX        int
	NetSegments int
}

// DescribeGeometry builds the entities for cal and reports where they land.
func DescribeGeometry(cal video.Calibration) Geometry {
	left := NewPaddle(Left, cal, 0)
	right := NewPaddle(Right, cal, 0)
	ball := NewBall(cal, Right)

	pr := left.Rect()
	br := ball.Rect()
	minY, maxY := left.Bounds()
	sx, sy := ball.Spawn()

	g := Geometry{
		PaddleX:      [2]int{int(left.X()), int(right.X())},
		PaddleW:      int(pr.W),
		PaddleH:      int(pr.H),
		PaddleStartY: int(left.Y()),
		PaddleMinY:   int(minY),
		PaddleMaxY:   int(maxY),
		SegmentEnds:  left.segmentEnds,
		BallW:        int(br.W),
		BallH:        int(br.H),
		SpawnX:       sx,
		SpawnY:       sy,
		ClearZone:    [2]int{int(ball.clearMin), int(ball.clearMax)},
		NetX:         cal.HclkToXPos(video.NetHclk),
		NetSegments:  len(cal.NetSegments()),
	}
	return g
}

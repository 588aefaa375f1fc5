package tennis

import "github.com/vovakirdan/tui-tennis/internal/core"

// Vertical velocity classes, in screen heights per second.
// Index the table with class+3; the slight asymmetry is from the original board.
var verticalSpeeds = [7]float64{-0.695, -0.462, -0.226, 0, 0.228, 0.455, 0.680}

// Horizontal speeds by magnitude 1..3, in screen widths per second.
var horizontalSpeeds = [4]float64{0, 0.26, 0.39, 0.53}

// Hit counts at which the ball steps up to the next horizontal magnitude.
const (
	secondGearHits = 4
	thirdGearHits  = 12
)

const (
	MinVerticalClass = -3
	MaxVerticalClass = 3
)

// VerticalSpeed returns the vertical speed for a velocity class.
// Unknown classes move at zero speed.
func VerticalSpeed(class int) float64 {
	if class < MinVerticalClass || class > MaxVerticalClass {
		return 0
	}
	return verticalSpeeds[class-MinVerticalClass]
}

// HorizontalMagnitude returns the horizontal velocity magnitude for a hit count.
func HorizontalMagnitude(hits int) int {
	switch {
	case hits >= thirdGearHits:
		return 3
	case hits >= secondGearHits:
		return 2
	default:
		return 1
	}
}

// HorizontalSpeed returns the signed horizontal speed for a velocity class.
// Unknown classes move at zero speed.
func HorizontalSpeed(class int) float64 {
	mag := core.Abs(class)
	if mag >= len(horizontalSpeeds) {
		return 0
	}
	return float64(core.Sign(class)) * horizontalSpeeds[mag]
}

// NextHorizontalClass keeps the direction of prev and takes the magnitude
// from the hit count. A zero prev counts as moving right.
func NextHorizontalClass(prev, hits int) int {
	sign := core.Sign(prev)
	if sign == 0 {
		sign = 1
	}
	return sign * HorizontalMagnitude(hits)
}

// Displacement converts a fractional speed into pixels moved this frame.
func Displacement(fraction, dimension, dt float64) float64 {
	return fraction * dimension * dt
}

// Package video converts the game's native timing-signal coordinates into pixels.
//
// The original hardware had no frame buffer: objects appeared when horizontal (H)
// and vertical (V) clock counters matched. The video signal was 455x262 clocks,
// with an 81-clock horizontal blank and a 16-line vertical blank. Scaling the
// active area to 640x480 gives roughly 1.68 px per H clock and 1.95 px per V line.
package video

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Nominal calibration for a 640x480 viewport.
const (
	DefaultWidth      = 640
	DefaultHeight     = 480
	DefaultPxPerHUnit = 1.68
	DefaultPxPerVUnit = 1.95
	DefaultHBlank     = 81
	DefaultVBlank     = 16
	// The original circuitry left the playfield shifted left; HShift recentres it.
	DefaultHShift = 16
)

// Net geometry in timing units.
const (
	NetHclk        = 256
	NetWidthHclk   = 1
	NetSegmentVclk = 4
	NetSpacingVclk = 8
)

// Paddle court layout in timing units. A paddle is triggered at 128H (left)
// or 128H+256H (right), is 4H wide and 16 lines tall.
const (
	PaddleLeftHclk   = 128
	PaddleRightHclk  = 128 + 256
	PaddleWidthHclk  = 4
	PaddleHeightVclk = 16
	PaddleTopVclk    = 32
	PaddleBottomVclk = 16 // Lines kept clear below the lowest paddle position
)

// Calibration holds the viewport size and the clock-to-pixel constants.
// It is fixed at startup and treated as an immutable value.
type Calibration struct {
	Width      int
	Height     int
	PxPerHUnit float32
	PxPerVUnit float32
	HBlank     int
	VBlank     int
	HShift     int
}

// Default returns the nominal 640x480 calibration.
func Default() Calibration {
	return Calibration{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		PxPerHUnit: DefaultPxPerHUnit,
		PxPerVUnit: DefaultPxPerVUnit,
		HBlank:     DefaultHBlank,
		VBlank:     DefaultVBlank,
		HShift:     DefaultHShift,
	}
}

// Validate reports calibration values that would make the mapping degenerate
// or leave the court without room for both paddles.
func (c Calibration) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.PxPerHUnit <= 0 {
		errs = append(errs, fmt.Errorf("px per H unit must be positive, got %v", c.PxPerHUnit))
	}
	if c.PxPerVUnit <= 0 {
		errs = append(errs, fmt.Errorf("px per V unit must be positive, got %v", c.PxPerVUnit))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if left := c.HclkToXPos(PaddleLeftHclk); left < 0 {
		errs = append(errs, fmt.Errorf("left paddle starts off screen at x=%d", left))
	}
	if right := c.HclkToXPos(PaddleRightHclk) + c.HclkToInterval(PaddleWidthHclk); right > c.Width {
		errs = append(errs, fmt.Errorf("width %d cannot fit the right paddle ending at x=%d", c.Width, right))
	}
	top, lowest := c.PaddleTravel()
	if top > lowest {
		errs = append(errs, fmt.Errorf("height %d leaves no paddle travel: top %d, lowest %d", c.Height, top, lowest))
	}
	return errors.Join(errs...)
}

// PaddleTravel returns the highest and lowest pixel rows a paddle top may reach.
func (c Calibration) PaddleTravel() (top, lowest int) {
	top = c.VclkToYPos(PaddleTopVclk)
	lowest = c.Height - c.VclkToInterval(PaddleBottomVclk) - c.VclkToInterval(PaddleHeightVclk)
	return top, lowest
}

// HclkToXPos converts an absolute horizontal clock value to a pixel column.
// Single precision and truncation toward zero match the original's alignment.
func (c Calibration) HclkToXPos(hclk int) int {
	return int(float32(hclk-c.HBlank+c.HShift) * c.PxPerHUnit)
}

// VclkToYPos converts an absolute vertical line value to a pixel row.
func (c Calibration) VclkToYPos(vclk int) int {
	return int(float32(vclk-c.VBlank) * c.PxPerVUnit)
}

// HclkToInterval converts a horizontal duration to a pixel width.
func (c Calibration) HclkToInterval(n int) int {
	return int(float32(n) * c.PxPerHUnit)
}

// VclkToInterval converts a vertical duration to a pixel height.
func (c Calibration) VclkToInterval(n int) int {
	return int(float32(n) * c.PxPerVUnit)
}

// NetSegments returns the dashed centre line as pixel rectangles, top to bottom.
func (c Calibration) NetSegments() []core.Rect {
	x := c.HclkToXPos(NetHclk)
	w := c.HclkToInterval(NetWidthHclk)
	h := c.VclkToInterval(NetSegmentVclk)
	step := c.VclkToInterval(NetSpacingVclk)
	if step <= 0 {
		return nil
	}

	segments := make([]core.Rect, 0, c.Height/step+1)
	for y := 0; y < c.Height; y += step {
		segments = append(segments, core.NewRect(x, y, w, h))
	}
	return segments
}

package tennis

import (
	"fmt"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '█'
	BallChar    = '■'
	NetChar     = '┆'
	SegmentChar = '█'
)

// Seven-segment digit size in cells.
const (
	digitW   = 3
	digitH   = 5
	digitGap = 1
)

// Render rasterizes a snapshot onto dst, scaling viewport pixels to cells.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	if snap.Width <= 0 || snap.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	for _, seg := range snap.Net {
		dst.DrawRect(scaleRect(seg, snap, dst), NetChar, core.ColorGray)
	}

	drawScore(dst, snap.Score[Left], dst.Width()/4)
	drawScore(dst, snap.Score[Right], dst.Width()*3/4)

	for _, p := range snap.Paddles {
		dst.DrawRect(scaleRect(p.Rect, snap, dst), PaddleChar, core.ColorWhite)
	}

	if snap.Ball.Visible {
		dst.DrawRect(scaleRect(snap.Ball.Rect, snap, dst), BallChar, core.ColorYellow)
	}

	if snap.Mode == ModeAttract {
		msg := "PRESS R TO PLAY"
		if winner, ok := winnerOf(snap); ok {
			msg = fmt.Sprintf("%s WINS  -  PRESS R TO PLAY", sideLabel(winner))
		}
		dst.DrawTextCentered(dst.Height()-2, msg, core.ColorCyan)
	}

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// scaleRect maps a pixel rectangle to cells. Anything visible covers at
// least one cell, even when it is narrower than a cell.
func scaleRect(r core.Rect, snap Snapshot, dst *core.Screen) core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}
	x0 := core.ScaleDown(r.X, snap.Width, dst.Width())
	x1 := core.ScaleDown(r.Right()-1, snap.Width, dst.Width()) + 1
	y0 := core.ScaleDown(r.Y, snap.Height, dst.Height())
	y1 := core.ScaleDown(r.Bottom()-1, snap.Height, dst.Height()) + 1
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawScore draws a score as seven-segment digits centred on column cx.
func drawScore(dst *core.Screen, score, cx int) {
	digits := ScoreDigits(score)
	total := len(digits)*(digitW+digitGap) - digitGap
	x := cx - total/2
	for _, d := range digits {
		drawDigit(dst, d, x, 1)
		x += digitW + digitGap
	}
}

func drawDigit(dst *core.Screen, d, x, y int) {
	segs, ok := DigitSegments(d)
	if !ok {
		return
	}
	c := core.ColorGreen
	mid := y + digitH/2
	bottom := y + digitH - 1
	right := x + digitW - 1

	if segs[SegA] {
		dst.DrawRect(core.NewRect(x, y, digitW, 1), SegmentChar, c)
	}
	if segs[SegB] {
		dst.DrawRect(core.NewRect(right, y, 1, mid-y+1), SegmentChar, c)
	}
	if segs[SegC] {
		dst.DrawRect(core.NewRect(right, mid, 1, bottom-mid+1), SegmentChar, c)
	}
	if segs[SegD] {
		dst.DrawRect(core.NewRect(x, bottom, digitW, 1), SegmentChar, c)
	}
	if segs[SegE] {
		dst.DrawRect(core.NewRect(x, mid, 1, bottom-mid+1), SegmentChar, c)
	}
	if segs[SegF] {
		dst.DrawRect(core.NewRect(x, y, 1, mid-y+1), SegmentChar, c)
	}
	if segs[SegG] {
		dst.DrawRect(core.NewRect(x, mid, digitW, 1), SegmentChar, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorGray)
}

func winnerOf(snap Snapshot) (Side, bool) {
	if snap.WinScore <= 0 {
		return Left, false
	}
	for _, s := range []Side{Left, Right} {
		if snap.Score[s] >= snap.WinScore {
			return s, true
		}
	}
	return Left, false
}

func sideLabel(s Side) string {
	if s == Left {
		return "LEFT"
	}
	return "RIGHT"
}

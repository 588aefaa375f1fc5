package tui

import (
	"time"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// DefaultKeyHold is how long one key press keeps a paddle moving when the
// game does not say otherwise.
const DefaultKeyHold = 120 * time.Millisecond

// HoldTracker turns key presses into held movement intents. Terminals report
// presses and auto-repeat but never releases, so each press keeps its action
// active for a short window and a repeat extends it.
type HoldTracker struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHoldTracker creates a tracker holding each press for d.
func NewHoldTracker(d time.Duration) *HoldTracker {
	if d <= 0 {
		d = DefaultKeyHold
	}
	return &HoldTracker{hold: d, until: make(map[core.Action]time.Time)}
}

// Press records a press of a movement action at now. Pressing the opposite
// direction of the same paddle cancels the earlier hold.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if opp, ok := opposite(a); ok {
		delete(h.until, opp)
	}
	h.until[a] = now.Add(h.hold)
}

// Apply sets every action still held at now on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.After(t) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Reset drops every held action.
func (h *HoldTracker) Reset() {
	clear(h.until)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeftUp:
		return core.ActionLeftDown, true
	case core.ActionLeftDown:
		return core.ActionLeftUp, true
	case core.ActionRightUp:
		return core.ActionRightDown, true
	case core.ActionRightDown:
		return core.ActionRightUp, true
	}
	return core.ActionNone, false
}

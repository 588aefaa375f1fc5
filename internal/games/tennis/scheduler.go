package tennis

import (
	"sort"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the timer
	// was still pending.
	Stop() bool
}

// Scheduler runs a callback once after a delay, on the game's update thread.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// FrameScheduler is a Scheduler driven by frame deltas instead of wall time.
// Callbacks run inside Advance, so they never race the frame update.
type FrameScheduler struct {
	now     time.Duration
	seq     uint64
	pending []*frameTimer
}

type frameTimer struct {
	due     time.Duration
	seq     uint64 // Tie-break so equal deadlines fire in scheduling order
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer if it has not fired yet.
func (t *frameTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewFrameScheduler creates an empty scheduler at time zero.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// After schedules fn to run once d has elapsed in Advance calls.
func (s *FrameScheduler) After(d time.Duration, fn func()) Timer {
	s.seq++
	t := &frameTimer{due: s.now + max(d, 0), seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward and runs every callback now due, earliest first.
// Callbacks may schedule new timers; those fire in the same call if already due.
func (s *FrameScheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	for {
		t := s.popDue()
		if t == nil {
			return
		}
		t.fired = true
		t.fn()
	}
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Now returns the scheduler's elapsed time.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

// popDue removes and returns the earliest due timer, dropping stopped ones.
func (s *FrameScheduler) popDue() *frameTimer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.pending = live

	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})

	if len(s.pending) == 0 || s.pending[0].due > s.now {
		return nil
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	return t
}

// secondsToDuration converts a frame delta in seconds to a Duration.
func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}

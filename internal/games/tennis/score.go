package tennis

// DefaultWinScore is the point total that ends a game.
const DefaultWinScore = 11

// ScoreTracker counts points per side and decides the winner.
type ScoreTracker struct {
	points   [2]int
	winScore int
	over     bool
	winner   Side
}

// NewScoreTracker creates a tracker at 0-0. A non-positive winScore uses the default.
func NewScoreTracker(winScore int) *ScoreTracker {
	if winScore <= 0 {
		winScore = DefaultWinScore
	}
	return &ScoreTracker{winScore: winScore}
}

// RecordPoint awards a point to side.
// It returns a GameOverEvent when that point reaches the winning score and a
// ScoreUpdatedEvent otherwise. Once the game is over points are ignored and
// nil is returned.
func (s *ScoreTracker) RecordPoint(side Side) Event {
	side.mustBeValid()
	if s.over {
		return nil
	}

	s.points[side]++
	if s.points[side] >= s.winScore {
		s.over = true
		s.winner = side
		return GameOverEvent{Winner: side, Score: s.points}
	}
	return ScoreUpdatedEvent{Scorer: side, Score: s.points}
}

// Points returns the score for one side.
func (s *ScoreTracker) Points(side Side) int {
	side.mustBeValid()
	return s.points[side]
}

// Score returns both scores, indexed by Side.
func (s *ScoreTracker) Score() [2]int {
	return s.points
}

// Winner returns the winning side once the game is over.
func (s *ScoreTracker) Winner() (Side, bool) {
	return s.winner, s.over
}

// WinScore returns the winning threshold.
func (s *ScoreTracker) WinScore() int {
	return s.winScore
}

package tennis

// Event is something the match reports to its host, for sound or effects.
// The set is closed: only types in this package implement it.
type Event interface {
	matchEvent()
}

// ScoreUpdatedEvent is emitted when a point is scored and the game continues.
type ScoreUpdatedEvent struct {
	Scorer Side
	Score  [2]int // Indexed by Side
}

func (ScoreUpdatedEvent) matchEvent() {}

// GameOverEvent is emitted once, when a side reaches the winning score.
type GameOverEvent struct {
	Winner Side
	Score  [2]int
}

func (GameOverEvent) matchEvent() {}

// BallHitPaddleEvent is emitted on each registered paddle contact.
type BallHitPaddleEvent struct {
	Side    Side
	Segment int
	Hits    int // Hit count after this contact
}

func (BallHitPaddleEvent) matchEvent() {}

// BallServedEvent is emitted whenever the ball is put back into play.
type BallServedEvent struct {
	Toward Side
}

func (BallServedEvent) matchEvent() {}

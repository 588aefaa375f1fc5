package tennis

import "fmt"

// Side identifies a player's half of the court.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	s.mustBeValid()
	if s == Left {
		return Right
	}
	return Left
}

// Direction returns the horizontal sign pointing toward this side's wall.
func (s Side) Direction() int {
	s.mustBeValid()
	if s == Left {
		return -1
	}
	return 1
}

// mustBeValid panics on an unknown side. Passing one is a caller bug,
// not a game situation to recover from.
func (s Side) mustBeValid() {
	if s != Left && s != Right {
		panic(fmt.Sprintf("tennis: invalid side %d", int(s)))
	}
}

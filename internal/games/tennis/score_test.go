package tennis

import "testing"

func TestScoreTrackerGameOverOnce(t *testing.T) {
	s := NewScoreTracker(11)

	for i := 1; i <= 10; i++ {
		ev := s.RecordPoint(Right)
		up, ok := ev.(ScoreUpdatedEvent)
		if !ok {
			t.Fatalf("point %d: got %T, want ScoreUpdatedEvent", i, ev)
		}
		if up.Scorer != Right || up.Score[Right] != i {
			t.Errorf("point %d: event = %+v", i, up)
		}
	}

	ev := s.RecordPoint(Right)
	over, ok := ev.(GameOverEvent)
	if !ok {
		t.Fatalf("11th point: got %T, want GameOverEvent", ev)
	}
	if over.Winner != Right || over.Score != [2]int{0, 11} {
		t.Errorf("GameOverEvent = %+v", over)
	}
	if w, done := s.Winner(); !done || w != Right {
		t.Errorf("Winner = (%v, %v), want (right, true)", w, done)
	}

	// Points after the game ends are ignored
	if ev := s.RecordPoint(Right); ev != nil {
		t.Errorf("point after game over returned %T", ev)
	}
	if ev := s.RecordPoint(Left); ev != nil {
		t.Errorf("point after game over returned %T", ev)
	}
	if s.Score() != [2]int{0, 11} {
		t.Errorf("Score = %v, want [0 11]", s.Score())
	}
}

func TestScoreTrackerAlternating(t *testing.T) {
	s := NewScoreTracker(3)

	sequence := []Side{Left, Right, Left, Right}
	for _, side := range sequence {
		if _, ok := s.RecordPoint(side).(ScoreUpdatedEvent); !ok {
			t.Fatalf("game ended early at %v", s.Score())
		}
	}
	if s.Points(Left) != 2 || s.Points(Right) != 2 {
		t.Errorf("Score = %v, want [2 2]", s.Score())
	}
	if _, done := s.Winner(); done {
		t.Error("Winner reported before the game ended")
	}

	if _, ok := s.RecordPoint(Left).(GameOverEvent); !ok {
		t.Error("3rd left point should end the game")
	}
}

func TestScoreTrackerDefaultWinScore(t *testing.T) {
	if got := NewScoreTracker(0).WinScore(); got != DefaultWinScore {
		t.Errorf("WinScore = %d, want %d", got, DefaultWinScore)
	}
	if got := NewScoreTracker(-4).WinScore(); got != DefaultWinScore {
		t.Errorf("WinScore = %d, want %d", got, DefaultWinScore)
	}
}

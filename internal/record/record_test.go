package record

import (
	"testing"
)

func TestClampDuration(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
	}
	for _, tt := range tests {
		if got := ClampDuration(tt.in); got != tt.want {
			t.Errorf("ClampDuration(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestByQuestion(t *testing.T) {
	attempts := []Attempt{
		{QuestionID: 1, Timestamp: 100},
		{QuestionID: 2, Timestamp: 200},
		{QuestionID: 1, Timestamp: 300},
	}
	grouped := ByQuestion(attempts)
	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2", len(grouped))
	}
	if len(grouped[1]) != 2 {
		t.Errorf("question 1: got %d attempts, want 2", len(grouped[1]))
	}
	if grouped[1][0].Timestamp != 100 || grouped[1][1].Timestamp != 300 {
		t.Errorf("question 1 order not preserved: %v", grouped[1])
	}
}

func TestWrongSet_LatestAttemptDecides(t *testing.T) {
	attempts := []Attempt{
		{QuestionID: 1, Correct: false, Timestamp: 100},
		{QuestionID: 1, Correct: true, Timestamp: 200}, // redeemed
		{QuestionID: 2, Correct: true, Timestamp: 100},
		{QuestionID: 2, Correct: false, Timestamp: 200}, // regressed
		{QuestionID: 3, Correct: false, Timestamp: 100},
	}
	wrong := WrongSet(attempts)
	if wrong[1] {
		t.Error("question 1 was answered correctly last, should not be wrong")
	}
	if !wrong[2] {
		t.Error("question 2 regressed, should be wrong")
	}
	if !wrong[3] {
		t.Error("question 3 never answered correctly, should be wrong")
	}
}

func TestWrongSet_EqualTimestampsPreferLater(t *testing.T) {
	// Two attempts in the same second: the later entry in the log wins.
	attempts := []Attempt{
		{QuestionID: 1, Correct: false, Timestamp: 100},
		{QuestionID: 1, Correct: true, Timestamp: 100},
	}
	if wrong := WrongSet(attempts); wrong[1] {
		t.Error("later same-second attempt was correct, question should not be wrong")
	}
}

func TestWrongSet_Empty(t *testing.T) {
	if wrong := WrongSet(nil); len(wrong) != 0 {
		t.Errorf("got %v, want empty set", wrong)
	}
}

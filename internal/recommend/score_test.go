package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/stats"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_AttemptedQuestion(t *testing.T) {
	// 10 attempts, 2 correct, difficulty 3, last seen 10 days ago:
	// 0.6*0.8 + 0.3*1.0 (capped) + 0.1*0.6 = 0.84
	now := time.Unix(1_700_000_000, 0)
	q := catalog.Question{ID: 1, Difficulty: 3}
	st := stats.QuestionStat{
		Attempts:    10,
		Correct:     2,
		LastAttempt: now.Unix() - 10*86400,
	}
	got := Score(q, st, now)
	if !almostEqual(got, 0.84) {
		t.Errorf("got score %v, want 0.84", got)
	}
}

func TestScore_NeverAttempted(t *testing.T) {
	// Unattempted, difficulty 1: 0.6*1.0 + 0.3*1.0 + 0.1*0.2 + 0.2 = 1.12
	now := time.Unix(1_700_000_000, 0)
	q := catalog.Question{ID: 1, Difficulty: 1}
	got := Score(q, stats.QuestionStat{}, now)
	if !almostEqual(got, 1.12) {
		t.Errorf("got score %v, want 1.12", got)
	}
}

func TestScore_RecencyCapped(t *testing.T) {
	// Seen a year ago scores the same as seen a week ago.
	now := time.Unix(1_700_000_000, 0)
	q := catalog.Question{ID: 1, Difficulty: 2}
	yearAgo := stats.QuestionStat{Attempts: 4, Correct: 2, LastAttempt: now.Unix() - 365*86400}
	weekAgo := stats.QuestionStat{Attempts: 4, Correct: 2, LastAttempt: now.Unix() - 7*86400}
	if a, b := Score(q, yearAgo, now), Score(q, weekAgo, now); !almostEqual(a, b) {
		t.Errorf("year-ago score %v != week-ago score %v", a, b)
	}
}

func TestScore_FutureTimestampClamped(t *testing.T) {
	// A last attempt "in the future" counts as just now, not negative.
	now := time.Unix(1_700_000_000, 0)
	q := catalog.Question{ID: 1, Difficulty: 1}
	st := stats.QuestionStat{Attempts: 1, Correct: 1, LastAttempt: now.Unix() + 3600}
	got := Score(q, st, now)
	// 0.6*0 + 0.3*0 + 0.1*0.2 = 0.02
	if !almostEqual(got, 0.02) {
		t.Errorf("got score %v, want 0.02", got)
	}
}

func TestScore_DifficultyClamped(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	st := stats.QuestionStat{Attempts: 2, Correct: 2, LastAttempt: now.Unix()}

	low := Score(catalog.Question{Difficulty: 0}, st, now)
	if !almostEqual(low, 0.02) {
		t.Errorf("difficulty 0: got %v, want 0.02", low)
	}
	high := Score(catalog.Question{Difficulty: 9}, st, now)
	if !almostEqual(high, 0.1) {
		t.Errorf("difficulty 9: got %v, want 0.1", high)
	}
}

func TestScore_Bounds(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cases := []struct {
		name string
		q    catalog.Question
		st   stats.QuestionStat
	}{
		{"all correct just now", catalog.Question{Difficulty: 1}, stats.QuestionStat{Attempts: 5, Correct: 5, LastAttempt: now.Unix()}},
		{"all wrong long ago", catalog.Question{Difficulty: 5}, stats.QuestionStat{Attempts: 5, LastAttempt: now.Unix() - 30*86400}},
		{"never attempted hard", catalog.Question{Difficulty: 5}, stats.QuestionStat{}},
	}
	for _, tt := range cases {
		got := Score(tt.q, tt.st, now)
		if got < 0 || got > 2 {
			t.Errorf("%s: score %v out of [0, 2]", tt.name, got)
		}
	}
}

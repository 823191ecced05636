package stats

import (
	"testing"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/record"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Question{
		{ID: 1, Topic: "algebra", Difficulty: 2},
		{ID: 2, Topic: "algebra", Difficulty: 3},
		{ID: 3, Topic: "geometry", Difficulty: 4},
	})
}

func TestQuestions_Aggregation(t *testing.T) {
	attempts := []record.Attempt{
		{QuestionID: 1, Correct: true, DurationSecs: 10, Timestamp: 100},
		{QuestionID: 1, Correct: false, DurationSecs: 20, Timestamp: 300},
		{QuestionID: 1, Correct: true, DurationSecs: 5, Timestamp: 200},
		{QuestionID: 2, Correct: false, DurationSecs: 8, Timestamp: 400},
	}

	byID := Questions(attempts)
	q1 := byID[1]
	if q1.Attempts != 3 || q1.Correct != 2 {
		t.Errorf("q1: got %d/%d, want 2 correct of 3", q1.Correct, q1.Attempts)
	}
	if q1.DurationSecs != 35 {
		t.Errorf("q1 duration: got %d, want 35", q1.DurationSecs)
	}
	if q1.LastAttempt != 300 {
		t.Errorf("q1 last attempt: got %d, want 300", q1.LastAttempt)
	}
	if q2 := byID[2]; q2.Attempts != 1 || q2.Correct != 0 {
		t.Errorf("q2: got %d/%d, want 0 correct of 1", q2.Correct, q2.Attempts)
	}
}

func TestQuestions_SumMatchesInput(t *testing.T) {
	attempts := []record.Attempt{
		{QuestionID: 1, Correct: true},
		{QuestionID: 2, Correct: false},
		{QuestionID: 3, Correct: true},
		{QuestionID: 1, Correct: false},
		{QuestionID: 2, Correct: true},
	}
	byID := Questions(attempts)
	total := 0
	for _, st := range byID {
		total += st.Attempts
	}
	if total != len(attempts) {
		t.Errorf("attempt counts sum to %d, want %d", total, len(attempts))
	}
}

func TestTopics_GroupsByTopic(t *testing.T) {
	cat := fixtureCatalog()
	attempts := []record.Attempt{
		{QuestionID: 1, Correct: true},
		{QuestionID: 2, Correct: false},
		{QuestionID: 3, Correct: true},
		{QuestionID: 3, Correct: true},
	}

	byTopic := Topics(attempts, cat)
	alg := byTopic["algebra"]
	if alg.Attempts != 2 || alg.Correct != 1 {
		t.Errorf("algebra: got %d/%d, want 1 correct of 2", alg.Correct, alg.Attempts)
	}
	if alg.Accuracy != 50 {
		t.Errorf("algebra accuracy: got %v, want 50", alg.Accuracy)
	}
	geo := byTopic["geometry"]
	if geo.Accuracy != 100 {
		t.Errorf("geometry accuracy: got %v, want 100", geo.Accuracy)
	}
}

func TestTopics_SkipsUnknownQuestions(t *testing.T) {
	cat := fixtureCatalog()
	attempts := []record.Attempt{
		{QuestionID: 99, Correct: true}, // removed from catalog
		{QuestionID: 1, Correct: true},
	}
	byTopic := Topics(attempts, cat)
	if len(byTopic) != 1 {
		t.Errorf("got %d topics, want 1", len(byTopic))
	}
	if byTopic["algebra"].Attempts != 1 {
		t.Errorf("algebra attempts: got %d, want 1", byTopic["algebra"].Attempts)
	}
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		name string
		st   QuestionStat
		want float64
	}{
		{"no attempts", QuestionStat{}, 0},
		{"half right", QuestionStat{Attempts: 4, Correct: 2}, 50},
		{"all right", QuestionStat{Attempts: 3, Correct: 3}, 100},
	}
	for _, tt := range tests {
		if got := tt.st.AccuracyPercent(); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	attempts := []record.Attempt{
		{QuestionID: 1, Correct: true},
		{QuestionID: 2, Correct: false},
		{QuestionID: 3, Correct: true},
		{QuestionID: 1, Correct: true},
	}
	o := Summarize(attempts)
	if o.Attempts != 4 || o.Correct != 3 {
		t.Errorf("got %d/%d, want 3 correct of 4", o.Correct, o.Attempts)
	}
	if o.Accuracy != 75 {
		t.Errorf("accuracy: got %v, want 75", o.Accuracy)
	}
}

func TestSummarize_Empty(t *testing.T) {
	o := Summarize(nil)
	if o.Attempts != 0 || o.Accuracy != 0 {
		t.Errorf("empty log: got %+v, want zeros", o)
	}
}

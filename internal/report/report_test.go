package report

import (
	"strings"
	"testing"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/record"
)

func fixture() ([]record.Attempt, *catalog.Catalog) {
	cat := catalog.New([]catalog.Question{
		{ID: 1, Topic: "algebra", Difficulty: 2},
		{ID: 2, Topic: "algebra", Difficulty: 4},
		{ID: 3, Topic: "geometry", Difficulty: 2},
	})
	attempts := []record.Attempt{
		{QuestionID: 1, Correct: false, Timestamp: 100},
		{QuestionID: 1, Correct: false, Timestamp: 200},
		{QuestionID: 2, Correct: false, Timestamp: 300},
		{QuestionID: 3, Correct: true, Timestamp: 400},
	}
	return attempts, cat
}

func TestBuild(t *testing.T) {
	attempts, cat := fixture()
	now := time.Unix(1_700_000_000, 0)
	d := Build("ada", attempts, cat, now)

	if d.Overview.Attempts != 4 || d.Overview.Correct != 1 {
		t.Errorf("overview: got %d/%d, want 1 correct of 4", d.Overview.Correct, d.Overview.Attempts)
	}
	if d.WrongCount != 2 {
		t.Errorf("wrong count: got %d, want 2", d.WrongCount)
	}

	if len(d.Topics) != 2 {
		t.Fatalf("got %d topic rows, want 2", len(d.Topics))
	}
	if d.Topics[0].Topic != "algebra" || d.Topics[1].Topic != "geometry" {
		t.Errorf("topics not sorted: %v", d.Topics)
	}
	if d.Topics[0].Accuracy != 0 {
		t.Errorf("algebra accuracy: got %v, want 0", d.Topics[0].Accuracy)
	}

	// Both open wrong questions (1 and 2) are algebra.
	if len(d.WrongByTopic) != 1 || d.WrongByTopic[0].Label != "algebra" || d.WrongByTopic[0].Count != 2 {
		t.Errorf("wrong by topic: got %v", d.WrongByTopic)
	}
	// One at difficulty 2, one at difficulty 4, ascending.
	if len(d.WrongByDifficulty) != 2 {
		t.Fatalf("wrong by difficulty: got %v", d.WrongByDifficulty)
	}
	if d.WrongByDifficulty[0].Difficulty != 2 || d.WrongByDifficulty[1].Difficulty != 4 {
		t.Errorf("difficulty rows not ascending: %v", d.WrongByDifficulty)
	}

	if len(d.WeakTopics) != 1 || d.WeakTopics[0] != "algebra" {
		t.Errorf("weak topics: got %v, want [algebra]", d.WeakTopics)
	}
}

func TestBuild_EmptyLog(t *testing.T) {
	_, cat := fixture()
	d := Build("ada", nil, cat, time.Unix(1_700_000_000, 0))
	if d.Overview.Attempts != 0 || d.WrongCount != 0 || len(d.Topics) != 0 {
		t.Errorf("empty log produced non-empty data: %+v", d)
	}
}

func TestWriteMarkdown(t *testing.T) {
	attempts, cat := fixture()
	d := Build("ada", attempts, cat, time.Unix(1_700_000_000, 0))

	var b strings.Builder
	if err := WriteMarkdown(&b, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"# QuizPath Learning Report",
		"**User**: ada",
		"| Total attempts | 4 |",
		"| algebra | 3 | 0 |",
		"Weak topics",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestWriteMarkdown_NoAttempts(t *testing.T) {
	d := Build("ada", nil, catalog.New(nil), time.Unix(1_700_000_000, 0))
	var b strings.Builder
	if err := WriteMarkdown(&b, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "No attempts recorded yet") {
		t.Error("empty report should say no attempts were recorded")
	}
}

func TestFileStamp(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)
	if got := FileStamp(ts); got != "20260314_0905" {
		t.Errorf("got %q, want 20260314_0905", got)
	}
}

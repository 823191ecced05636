package recommend

import (
	"testing"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/stats"
)

func testCatalog(n int) *catalog.Catalog {
	questions := make([]catalog.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, catalog.Question{
			ID:         i,
			Text:       "q",
			Options:    []string{"a", "b", "c", "d"},
			Topic:      "algebra",
			Difficulty: 3,
		})
	}
	return catalog.New(questions)
}

func TestTopK_LengthCappedAtCatalog(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cat := testCatalog(3)
	items := TopK(cat, nil, now, 10)
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestTopK_EmptyCatalog(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	items := TopK(catalog.New(nil), nil, now, 5)
	if len(items) != 0 {
		t.Errorf("got %d items from empty catalog, want 0", len(items))
	}
}

func TestTopK_NonIncreasingScores(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cat := testCatalog(20)
	statsByID := make(map[int]stats.QuestionStat)
	for i := 1; i <= 20; i++ {
		statsByID[i] = stats.QuestionStat{
			Attempts:    10,
			Correct:     i % 11,
			LastAttempt: now.Unix() - int64(i)*86400,
		}
	}
	items := TopK(cat, statsByID, now, 5)
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Score > items[i-1].Score {
			t.Errorf("item %d score %v exceeds item %d score %v",
				i, items[i].Score, i-1, items[i-1].Score)
		}
	}
}

func TestTopK_WeakestFirst(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cat := testCatalog(3)
	statsByID := map[int]stats.QuestionStat{
		1: {Attempts: 10, Correct: 10, LastAttempt: now.Unix()}, // strong
		2: {Attempts: 10, Correct: 0, LastAttempt: now.Unix()},  // weak
		3: {Attempts: 10, Correct: 5, LastAttempt: now.Unix()},  // middling
	}
	items := TopK(cat, statsByID, now, 3)
	want := []int{2, 3, 1}
	for i, id := range want {
		if items[i].QuestionID != id {
			t.Errorf("position %d: got question %d, want %d", i, items[i].QuestionID, id)
		}
	}
}

func TestTopK_TiesAscendByID(t *testing.T) {
	// All questions identical and unattempted: equal scores everywhere.
	now := time.Unix(1_700_000_000, 0)
	cat := testCatalog(10)
	items := TopK(cat, nil, now, 4)
	want := []int{1, 2, 3, 4}
	for i, id := range want {
		if items[i].QuestionID != id {
			t.Errorf("position %d: got question %d, want %d", i, items[i].QuestionID, id)
		}
	}
}

func TestTopK_ZeroK(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	if items := TopK(testCatalog(5), nil, now, 0); items != nil {
		t.Errorf("k=0: got %v, want nil", items)
	}
}

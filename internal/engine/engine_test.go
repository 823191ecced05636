package engine

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/knowledge"
	"github.com/keleoz/quizpath/internal/record"
	"github.com/keleoz/quizpath/internal/store"
)

// memRepo is an in-memory AttemptRepo for engine tests.
type memRepo struct {
	attempts map[string][]record.Attempt
}

func newMemRepo() *memRepo {
	return &memRepo{attempts: make(map[string][]record.Attempt)}
}

func (m *memRepo) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	m.attempts[data.UserID] = append(m.attempts[data.UserID], record.Attempt{
		QuestionID:   data.QuestionID,
		Correct:      data.Correct,
		DurationSecs: record.ClampDuration(data.DurationSecs),
		Timestamp:    time.Now().Unix(),
	})
	return nil
}

func (m *memRepo) AppendSession(ctx context.Context, data store.SessionEventData) error {
	return nil
}

func (m *memRepo) Attempts(ctx context.Context, userID string) ([]record.Attempt, error) {
	return m.attempts[userID], nil
}

func (m *memRepo) SessionSummaries(ctx context.Context, userID string, opts store.QueryOpts) ([]store.SessionSummary, error) {
	return nil, nil
}

func (m *memRepo) Reset(ctx context.Context, userID string) error {
	delete(m.attempts, userID)
	return nil
}

func testEngine() (*Engine, *memRepo) {
	cat := catalog.New([]catalog.Question{
		{ID: 1, Topic: "algebra", Difficulty: 1},
		{ID: 2, Topic: "algebra", Difficulty: 3},
		{ID: 3, Topic: "geometry", Difficulty: 5},
	})
	g := knowledge.NewGraph()
	g.Declare("geometry", []string{"algebra"})

	repo := newMemRepo()
	return &Engine{Catalog: cat, Graph: g, Repo: repo, User: "ada", Count: 2}, repo
}

func TestRecommend(t *testing.T) {
	eng, repo := testEngine()
	ctx := context.Background()
	now := time.Now()

	// Question 1 answered correctly just now; 2 and 3 untouched.
	repo.attempts["ada"] = []record.Attempt{
		{QuestionID: 1, Correct: true, DurationSecs: 5, Timestamp: now.Unix()},
	}

	items, err := eng.Recommend(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (engine count)", len(items))
	}
	for _, it := range items {
		if it.QuestionID == 1 {
			t.Error("freshly mastered question should not outrank unseen ones")
		}
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	eng := &Engine{Catalog: catalog.New(nil), Repo: newMemRepo(), User: "ada"}
	_, err := eng.Recommend(context.Background(), time.Now())
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("got error %v, want ErrNoQuestions", err)
	}
}

func TestOverview(t *testing.T) {
	eng, repo := testEngine()
	ctx := context.Background()

	repo.attempts["ada"] = []record.Attempt{
		{QuestionID: 1, Correct: true, Timestamp: 100},
		{QuestionID: 2, Correct: false, Timestamp: 200},
		{QuestionID: 2, Correct: false, Timestamp: 300},
	}

	o, wrongCount, err := eng.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Attempts != 3 || o.Correct != 1 {
		t.Errorf("overview: got %d/%d, want 1 correct of 3", o.Correct, o.Attempts)
	}
	if wrongCount != 1 {
		t.Errorf("wrong count: got %d, want 1", wrongCount)
	}
}

func TestWrongQuestions(t *testing.T) {
	eng, repo := testEngine()
	ctx := context.Background()

	repo.attempts["ada"] = []record.Attempt{
		{QuestionID: 1, Correct: false, Timestamp: 100},
		{QuestionID: 2, Correct: false, Timestamp: 100},
		{QuestionID: 1, Correct: true, Timestamp: 200},
	}

	ids, err := eng.WrongQuestions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Ints(ids)
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("got wrong set %v, want [2]", ids)
	}
}

func TestReviewPath(t *testing.T) {
	eng, repo := testEngine()
	ctx := context.Background()

	// Strong algebra, untouched geometry.
	repo.attempts["ada"] = []record.Attempt{
		{QuestionID: 1, Correct: true, Timestamp: 100},
		{QuestionID: 2, Correct: true, Timestamp: 200},
	}

	steps, err := eng.ReviewPath(ctx, "geometry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	if steps[0].Topic != "algebra" || steps[0].Status != knowledge.StatusMastered {
		t.Errorf("step 0: got %+v, want mastered algebra", steps[0])
	}
	if steps[1].Topic != "geometry" || steps[1].Status != knowledge.StatusNeedsStudy {
		t.Errorf("step 1: got %+v, want needs-study geometry", steps[1])
	}
}

func TestReviewPath_NoGraph(t *testing.T) {
	eng, _ := testEngine()
	eng.Graph = knowledge.NewGraph()
	_, err := eng.ReviewPath(context.Background(), "geometry")
	if !errors.Is(err, knowledge.ErrGraphUnavailable) {
		t.Errorf("got error %v, want ErrGraphUnavailable", err)
	}
}

func TestRankTopics(t *testing.T) {
	eng, repo := testEngine()
	ctx := context.Background()

	repo.attempts["ada"] = []record.Attempt{
		{QuestionID: 1, Correct: true, Timestamp: 100},
	}

	ranked, err := eng.RankTopics(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d topics, want 2", len(ranked))
	}
	if ranked[0].Topic != "geometry" {
		t.Errorf("weakest first: got %q, want geometry", ranked[0].Topic)
	}
}

package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/record"
	"github.com/keleoz/quizpath/internal/store"
)

// recordingRepo captures persisted events for assertions.
type recordingRepo struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
}

func (r *recordingRepo) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *recordingRepo) AppendSession(ctx context.Context, data store.SessionEventData) error {
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *recordingRepo) Attempts(ctx context.Context, userID string) ([]record.Attempt, error) {
	return nil, nil
}

func (r *recordingRepo) SessionSummaries(ctx context.Context, userID string, opts store.QueryOpts) ([]store.SessionSummary, error) {
	return nil, nil
}

func (r *recordingRepo) Reset(ctx context.Context, userID string) error { return nil }

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Question{
		{ID: 1, Text: "q1", Options: []string{"a", "b", "c", "d"}, Answer: 0, Topic: "algebra", Difficulty: 1},
		{ID: 2, Text: "q2", Options: []string{"a", "b", "c", "d"}, Answer: 1, Topic: "algebra", Difficulty: 2},
		{ID: 3, Text: "q3", Options: []string{"a", "b", "c", "d"}, Answer: 2, Topic: "geometry", Difficulty: 3},
	})
}

func fixtureScreen(queue []catalog.Question) (*Screen, *recordingRepo) {
	repo := &recordingRepo{}
	eng := &engine.Engine{Catalog: fixtureCatalog(), Repo: repo, User: "ada", Count: 5}
	return New(eng, ModeExam, queue), repo
}

// drain runs a command and feeds the resulting message back into the
// screen, mimicking the bubbletea runtime enough for these tests.
func drain(s *Screen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	s.Update(cmd())
}

func TestRandomQueue(t *testing.T) {
	cat := fixtureCatalog()
	queue := RandomQueue(cat)
	if len(queue) != 1 {
		t.Fatalf("got %d questions, want 1", len(queue))
	}
	if _, ok := cat.ByID(queue[0].ID); !ok {
		t.Errorf("queue question %d not from catalog", queue[0].ID)
	}
}

func TestRandomQueue_EmptyCatalog(t *testing.T) {
	if queue := RandomQueue(catalog.New(nil)); queue != nil {
		t.Errorf("got %v, want nil", queue)
	}
}

func TestWrongQueue(t *testing.T) {
	cat := fixtureCatalog()
	queue := WrongQueue(cat, []int{2, 3, 99})
	if len(queue) != 1 {
		t.Fatalf("got %d questions, want 1", len(queue))
	}
	if queue[0].ID != 2 && queue[0].ID != 3 {
		t.Errorf("got question %d, want 2 or 3", queue[0].ID)
	}
}

func TestWrongQueue_OnlyUnknownIDs(t *testing.T) {
	if queue := WrongQueue(fixtureCatalog(), []int{98, 99}); queue != nil {
		t.Errorf("got %v, want nil", queue)
	}
}

func TestExamQueue_NoRepeats(t *testing.T) {
	queue := ExamQueue(fixtureCatalog(), 3)
	if len(queue) != 3 {
		t.Fatalf("got %d questions, want 3", len(queue))
	}
	seen := make(map[int]bool)
	for _, q := range queue {
		if seen[q.ID] {
			t.Errorf("question %d repeated", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestExamQueue_ClampsRequestedSize(t *testing.T) {
	if queue := ExamQueue(fixtureCatalog(), 50); len(queue) != 3 {
		t.Errorf("oversized request: got %d, want 3", len(queue))
	}
	if queue := ExamQueue(fixtureCatalog(), 0); len(queue) != 1 {
		t.Errorf("zero request: got %d, want 1", len(queue))
	}
}

func TestInit_RecordsSessionStart(t *testing.T) {
	s, repo := fixtureScreen(fixtureCatalog().All())
	drain(s, s.Init())

	if len(repo.sessions) != 1 {
		t.Fatalf("got %d session events, want 1", len(repo.sessions))
	}
	if repo.sessions[0].Action != "start" || repo.sessions[0].Mode != ModeExam {
		t.Errorf("got event %+v, want exam start", repo.sessions[0])
	}
}

func TestSubmitAnswer_RecordsAttempt(t *testing.T) {
	s, repo := fixtureScreen(fixtureCatalog().All())

	// First question's answer is option A, already selected. Enter submits.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	drain(s, cmd)

	if len(repo.attempts) != 1 {
		t.Fatalf("got %d attempt events, want 1", len(repo.attempts))
	}
	a := repo.attempts[0]
	if a.QuestionID != 1 || !a.Correct {
		t.Errorf("got event %+v, want correct answer to question 1", a)
	}
	if a.UserID != "ada" {
		t.Errorf("got user %q, want ada", a.UserID)
	}
	if a.DurationSecs < 1 {
		t.Errorf("duration %d should be clamped to at least 1", a.DurationSecs)
	}
}

func TestAdvance_MovesThroughQueue(t *testing.T) {
	s, repo := fixtureScreen(fixtureCatalog().All())

	// Answer question 1, then advance to question 2.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	drain(s, cmd)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.idx != 1 {
		t.Errorf("got index %d, want 1", s.idx)
	}
	if s.choice.Submitted {
		t.Error("fresh question should not start submitted")
	}

	// Wrong answer to question 2 (correct is B, we submit A).
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	drain(s, cmd)
	if len(repo.attempts) != 2 {
		t.Fatalf("got %d attempt events, want 2", len(repo.attempts))
	}
	if repo.attempts[1].Correct {
		t.Error("answer A to question 2 should be wrong")
	}
}

func TestEscape_EndsSession(t *testing.T) {
	s, repo := fixtureScreen(fixtureCatalog().All())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a finish command on Esc")
	}
	cmd()

	if len(repo.sessions) != 1 {
		t.Fatalf("got %d session events, want 1", len(repo.sessions))
	}
	if repo.sessions[0].Action != "end" {
		t.Errorf("got action %q, want end", repo.sessions[0].Action)
	}
}

func TestEmptyQueue_View(t *testing.T) {
	s, _ := fixtureScreen(nil)
	if view := s.View(80, 24); view == "" {
		t.Error("empty queue should still render a message")
	}
}

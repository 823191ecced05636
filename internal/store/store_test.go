package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) AttemptRepo {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.AttemptRepo()
	if err != nil {
		t.Fatalf("init attempt repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndReadAttempts(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []AttemptEventData{
		{UserID: "ada", SessionID: "s1", QuestionID: 3, Correct: true, DurationSecs: 12},
		{UserID: "ada", SessionID: "s1", QuestionID: 7, Correct: false, DurationSecs: 30},
		{UserID: "grace", SessionID: "s2", QuestionID: 3, Correct: true, DurationSecs: 5},
	}
	for _, e := range events {
		if err := repo.AppendAttempt(ctx, e); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	attempts, err := repo.Attempts(ctx, "ada")
	if err != nil {
		t.Fatalf("read attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts for ada, want 2", len(attempts))
	}
	// Append order preserved.
	if attempts[0].QuestionID != 3 || attempts[1].QuestionID != 7 {
		t.Errorf("got order %d, %d; want 3, 7", attempts[0].QuestionID, attempts[1].QuestionID)
	}
	if attempts[1].Correct {
		t.Error("second attempt should be incorrect")
	}
}

func TestAppendAttempt_ClampsDuration(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		UserID: "ada", SessionID: "s1", QuestionID: 1, Correct: true, DurationSecs: 0,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	attempts, err := repo.Attempts(ctx, "ada")
	if err != nil {
		t.Fatalf("read attempts: %v", err)
	}
	if attempts[0].DurationSecs != 1 {
		t.Errorf("got duration %d, want clamped to 1", attempts[0].DurationSecs)
	}
}

func TestSessionSummaries(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	sessions := []SessionEventData{
		{UserID: "ada", SessionID: "s1", Mode: "random", Action: "start"},
		{UserID: "ada", SessionID: "s1", Mode: "random", Action: "end", QuestionsServed: 5, CorrectAnswers: 4, DurationSecs: 90},
		{UserID: "ada", SessionID: "s2", Mode: "exam", Action: "start"},
		{UserID: "ada", SessionID: "s2", Mode: "exam", Action: "end", QuestionsServed: 10, CorrectAnswers: 7, DurationSecs: 300},
	}
	for _, e := range sessions {
		if err := repo.AppendSession(ctx, e); err != nil {
			t.Fatalf("append session: %v", err)
		}
	}

	summaries, err := repo.SessionSummaries(ctx, "ada", QueryOpts{})
	if err != nil {
		t.Fatalf("read summaries: %v", err)
	}
	// Only "end" events count, most recent first.
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].SessionID != "s2" || summaries[1].SessionID != "s1" {
		t.Errorf("got order %s, %s; want s2, s1", summaries[0].SessionID, summaries[1].SessionID)
	}
	if summaries[0].CorrectAnswers != 7 {
		t.Errorf("got %d correct, want 7", summaries[0].CorrectAnswers)
	}

	limited, err := repo.SessionSummaries(ctx, "ada", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("read limited summaries: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d summaries with limit 1, want 1", len(limited))
	}
}

func TestReset_OnlyTargetUser(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, user := range []string{"ada", "grace"} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			UserID: user, SessionID: "s", QuestionID: 1, Correct: true, DurationSecs: 3,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
		err = repo.AppendSession(ctx, SessionEventData{
			UserID: user, SessionID: "s", Mode: "random", Action: "end",
		})
		if err != nil {
			t.Fatalf("append session: %v", err)
		}
	}

	if err := repo.Reset(ctx, "ada"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	adaAttempts, _ := repo.Attempts(ctx, "ada")
	if len(adaAttempts) != 0 {
		t.Errorf("ada should have no attempts after reset, got %d", len(adaAttempts))
	}
	adaSessions, _ := repo.SessionSummaries(ctx, "ada", QueryOpts{})
	if len(adaSessions) != 0 {
		t.Errorf("ada should have no sessions after reset, got %d", len(adaSessions))
	}
	graceAttempts, _ := repo.Attempts(ctx, "grace")
	if len(graceAttempts) != 1 {
		t.Errorf("grace should keep their attempt, got %d", len(graceAttempts))
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("init counter: %v", err)
	}

	ctx := context.Background()
	prev := int64(-1)
	for i := 0; i < 10; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}

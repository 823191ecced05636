package store

import (
	"context"

	"github.com/keleoz/quizpath/internal/record"
)

// AttemptEventData captures one answered question for persistence.
type AttemptEventData struct {
	UserID       string
	SessionID    string
	QuestionID   int
	Correct      bool
	DurationSecs int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	UserID          string
	SessionID       string
	Mode            string // random, wrongbook, recommend or exam
	Action          string // start or end
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionSummary is a finished session as read back for display.
type SessionSummary struct {
	SessionID       string
	Mode            string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	EndedAtUnix     int64
}

// QueryOpts configures read queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// AttemptRepo is the record store for practice attempts. The engine only
// ever reads full snapshots through Attempts; writes happen one event at
// a time as the learner answers.
type AttemptRepo interface {
	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// Attempts returns the full attempt log snapshot for a user, in
	// append order.
	Attempts(ctx context.Context, userID string) ([]record.Attempt, error)

	// SessionSummaries returns finished sessions for a user, most
	// recent first.
	SessionSummaries(ctx context.Context, userID string, opts QueryOpts) ([]SessionSummary, error)

	// Reset deletes all attempt and session data for a user.
	Reset(ctx context.Context, userID string) error
}

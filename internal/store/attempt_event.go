package store

import (
	"context"
	"fmt"

	"github.com/keleoz/quizpath/ent"
	"github.com/keleoz/quizpath/ent/attemptevent"
	"github.com/keleoz/quizpath/ent/sessionevent"
	"github.com/keleoz/quizpath/internal/record"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCorrect(data.Correct).
		SetDurationSecs(record.ClampDuration(data.DurationSecs)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Attempts(ctx context.Context, userID string) ([]record.Attempt, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]record.Attempt, 0, len(events))
	for _, e := range events {
		attempts = append(attempts, record.Attempt{
			QuestionID:   e.QuestionID,
			Correct:      e.Correct,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp.Unix(),
		})
	}
	return attempts, nil
}

func (r *attemptRepo) SessionSummaries(ctx context.Context, userID string, opts QueryOpts) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.Action("end"),
		).
		Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:       e.SessionID,
			Mode:            e.Mode,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			DurationSecs:    e.DurationSecs,
			EndedAtUnix:     e.Timestamp.Unix(),
		})
	}
	return summaries, nil
}

func (r *attemptRepo) Reset(ctx context.Context, userID string) error {
	if _, err := r.client.AttemptEvent.Delete().
		Where(attemptevent.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := r.client.SessionEvent.Delete().
		Where(sessionevent.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

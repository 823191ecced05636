// Package engine ties the pure computation packages to the attempt
// store. It bundles the loaded catalog, prerequisite graph and record
// repository into one explicit object so nothing relies on process-wide
// state, and re-reads the attempt snapshot before every computation so
// results always reflect the latest attempts.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/knowledge"
	"github.com/keleoz/quizpath/internal/recommend"
	"github.com/keleoz/quizpath/internal/record"
	"github.com/keleoz/quizpath/internal/stats"
	"github.com/keleoz/quizpath/internal/store"
)

// ErrNoQuestions is returned when the catalog has nothing to recommend.
var ErrNoQuestions = errors.New("question catalog is empty")

// Engine evaluates recommendations, stats and review paths for one user.
type Engine struct {
	Catalog *catalog.Catalog
	Graph   *knowledge.Graph
	Repo    store.AttemptRepo
	User    string
	Count   int // top-K size for recommendations
}

// Snapshot reads the full attempt log for the engine's user.
func (e *Engine) Snapshot(ctx context.Context) ([]record.Attempt, error) {
	return e.Repo.Attempts(ctx, e.User)
}

// Recommend returns the top-K questions to practice next, best first.
func (e *Engine) Recommend(ctx context.Context, now time.Time) ([]recommend.Item, error) {
	if e.Catalog == nil || e.Catalog.Len() == 0 {
		return nil, ErrNoQuestions
	}
	attempts, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	k := e.Count
	if k <= 0 {
		k = recommend.DefaultCount
	}
	return recommend.TopK(e.Catalog, stats.Questions(attempts), now, k), nil
}

// QuestionStats aggregates the current log per question.
func (e *Engine) QuestionStats(ctx context.Context) (map[int]stats.QuestionStat, error) {
	attempts, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Questions(attempts), nil
}

// TopicStats aggregates the current log per topic.
func (e *Engine) TopicStats(ctx context.Context) (map[string]stats.TopicStat, error) {
	attempts, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Topics(attempts, e.Catalog), nil
}

// Overview summarizes the whole log.
func (e *Engine) Overview(ctx context.Context) (stats.Overview, int, error) {
	attempts, err := e.Snapshot(ctx)
	if err != nil {
		return stats.Overview{}, 0, err
	}
	return stats.Summarize(attempts), len(record.WrongSet(attempts)), nil
}

// WrongQuestions returns the IDs currently in the wrong-question book.
func (e *Engine) WrongQuestions(ctx context.Context) ([]int, error) {
	attempts, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	wrong := record.WrongSet(attempts)
	ids := make([]int, 0, len(wrong))
	for id := range wrong {
		ids = append(ids, id)
	}
	return ids, nil
}

// ReviewPath builds the annotated prerequisite-ordered path to target.
func (e *Engine) ReviewPath(ctx context.Context, target string) ([]knowledge.PathStep, error) {
	topicStats, err := e.TopicStats(ctx)
	if err != nil {
		return nil, err
	}
	return knowledge.NewPlanner(e.Graph).AnnotatedPath(target, topicStats)
}

// RankTopics lists all known topics, weakest first, for target selection.
func (e *Engine) RankTopics(ctx context.Context) ([]knowledge.RankedTopic, error) {
	topicStats, err := e.TopicStats(ctx)
	if err != nil {
		return nil, err
	}
	return knowledge.NewPlanner(e.Graph).RankTopics(topicStats)
}

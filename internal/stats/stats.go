// Package stats derives per-question and per-topic statistics from a
// snapshot of the attempt log. All functions are pure: they read the
// slice they are handed and allocate fresh result maps.
package stats

import (
	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/record"
)

// QuestionStat aggregates every attempt at a single question.
type QuestionStat struct {
	Attempts     int
	Correct      int
	DurationSecs int   // cumulative answer time
	LastAttempt  int64 // unix seconds of the latest attempt, 0 if never
}

// TopicStat aggregates attempts across all questions tagged with a topic.
type TopicStat struct {
	Attempts int
	Correct  int
	Accuracy float64 // percent, 0 when Attempts == 0
}

// Overview is the whole-log summary shown on stats screens and reports.
type Overview struct {
	Attempts int
	Correct  int
	Accuracy float64 // percent
}

// Questions groups attempts by question and folds each group into a
// QuestionStat. Input order is irrelevant; runs in O(len(attempts)).
func Questions(attempts []record.Attempt) map[int]QuestionStat {
	result := make(map[int]QuestionStat)
	for _, a := range attempts {
		st := result[a.QuestionID]
		st.Attempts++
		if a.Correct {
			st.Correct++
		}
		st.DurationSecs += a.DurationSecs
		if a.Timestamp > st.LastAttempt {
			st.LastAttempt = a.Timestamp
		}
		result[a.QuestionID] = st
	}
	return result
}

// Topics resolves each attempt to its question's topic and accumulates
// per-topic counts. Attempts referencing questions no longer in the
// catalog are skipped; they belong to removed questions, not errors.
func Topics(attempts []record.Attempt, cat *catalog.Catalog) map[string]TopicStat {
	result := make(map[string]TopicStat)
	for _, a := range attempts {
		q, ok := cat.ByID(a.QuestionID)
		if !ok {
			continue
		}
		st := result[q.Topic]
		st.Attempts++
		if a.Correct {
			st.Correct++
		}
		result[q.Topic] = st
	}

	for topic, st := range result {
		if st.Attempts > 0 {
			st.Accuracy = float64(st.Correct) * 100.0 / float64(st.Attempts)
		}
		result[topic] = st
	}
	return result
}

// Accuracy returns the question-level accuracy in percent.
func (s QuestionStat) AccuracyPercent() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) * 100.0 / float64(s.Attempts)
}

// Summarize computes the overall attempt/correct totals for a log snapshot.
func Summarize(attempts []record.Attempt) Overview {
	var o Overview
	for _, a := range attempts {
		o.Attempts++
		if a.Correct {
			o.Correct++
		}
	}
	if o.Attempts > 0 {
		o.Accuracy = float64(o.Correct) * 100.0 / float64(o.Attempts)
	}
	return o
}

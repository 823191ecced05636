// Package report builds learning reports from an attempt log snapshot.
package report

import (
	"sort"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/record"
	"github.com/keleoz/quizpath/internal/stats"
)

// Data is everything a report renderer needs, assembled once so the
// Markdown and XLSX writers stay in sync.
type Data struct {
	User        string
	GeneratedAt time.Time

	Overview   stats.Overview
	WrongCount int

	Topics []TopicRow

	// Wrong-question distribution.
	WrongByTopic      []CountRow
	WrongByDifficulty []DifficultyRow

	// Weakest topics (accuracy below 60% with at least one attempt).
	WeakTopics []string
}

// TopicRow is one line of the per-topic table.
type TopicRow struct {
	Topic    string
	Attempts int
	Correct  int
	Accuracy float64
}

// CountRow pairs a label with a count.
type CountRow struct {
	Label string
	Count int
}

// DifficultyRow counts wrong questions at one difficulty level.
type DifficultyRow struct {
	Difficulty int
	Count      int
}

// Build assembles report data from a full attempt snapshot.
func Build(user string, attempts []record.Attempt, cat *catalog.Catalog, now time.Time) Data {
	topicStats := stats.Topics(attempts, cat)
	wrong := record.WrongSet(attempts)

	d := Data{
		User:        user,
		GeneratedAt: now,
		Overview:    stats.Summarize(attempts),
		WrongCount:  len(wrong),
	}

	for topic, st := range topicStats {
		d.Topics = append(d.Topics, TopicRow{
			Topic:    topic,
			Attempts: st.Attempts,
			Correct:  st.Correct,
			Accuracy: st.Accuracy,
		})
		if st.Attempts > 0 && st.Accuracy < 60.0 {
			d.WeakTopics = append(d.WeakTopics, topic)
		}
	}
	sort.Slice(d.Topics, func(i, j int) bool { return d.Topics[i].Topic < d.Topics[j].Topic })
	sort.Strings(d.WeakTopics)

	wrongByTopic := make(map[string]int)
	wrongByDifficulty := make(map[int]int)
	for id := range wrong {
		q, ok := cat.ByID(id)
		if !ok {
			continue
		}
		wrongByTopic[q.Topic]++
		wrongByDifficulty[q.Difficulty]++
	}
	for topic, n := range wrongByTopic {
		d.WrongByTopic = append(d.WrongByTopic, CountRow{Label: topic, Count: n})
	}
	sort.Slice(d.WrongByTopic, func(i, j int) bool { return d.WrongByTopic[i].Label < d.WrongByTopic[j].Label })
	for diff := 1; diff <= 5; diff++ {
		if n := wrongByDifficulty[diff]; n > 0 {
			d.WrongByDifficulty = append(d.WrongByDifficulty, DifficultyRow{Difficulty: diff, Count: n})
		}
	}

	return d
}

// FileStamp formats a timestamp for report file names: YYYYMMDD_HHMM.
func FileStamp(t time.Time) string {
	return t.Format("20060102_1504")
}

package recommend

import (
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/stats"
)

// Signal weights. Error rate dominates; recency and difficulty nudge.
const (
	weightErrorRate  = 0.6
	weightRecency    = 0.3
	weightDifficulty = 0.1
	unseenBonus      = 0.2

	// A question never attempted scores as if last seen a week ago.
	defaultGapDays  = 7.0
	recencyCapDays  = 7.0
	secondsPerDay   = 86400.0
	minScore        = 0.0
	maxScore        = 2.0
)

// Score computes the practice priority of a question given its aggregated
// stat and the current time. The result is always within [0, 2].
func Score(q catalog.Question, st stats.QuestionStat, now time.Time) float64 {
	// Never attempted counts as fully wrong: the learner knows nothing yet.
	errorRate := 1.0
	if st.Attempts > 0 {
		errorRate = float64(st.Attempts-st.Correct) / float64(st.Attempts)
	}

	gapDays := defaultGapDays
	if st.LastAttempt > 0 {
		seconds := float64(now.Unix() - st.LastAttempt)
		if seconds < 0 {
			// Clock skew: a "future" attempt counts as just now.
			seconds = 0
		}
		gapDays = seconds / secondsPerDay
	}
	recency := gapDays / recencyCapDays
	if recency > 1.0 {
		recency = 1.0
	}

	difficulty := 0.2 + float64(q.Difficulty-1)*0.2
	if difficulty < 0.2 {
		difficulty = 0.2
	}
	if difficulty > 1.0 {
		difficulty = 1.0
	}

	bonus := 0.0
	if st.Attempts == 0 {
		bonus = unseenBonus
	}

	score := weightErrorRate*errorRate + weightRecency*recency + weightDifficulty*difficulty + bonus
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

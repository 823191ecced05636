package knowledge

import (
	"sort"

	"github.com/keleoz/quizpath/internal/stats"
)

// TopicStatus classifies how well a learner knows a topic on the path.
type TopicStatus string

const (
	StatusNeedsStudy TopicStatus = "needs-study" // never attempted
	StatusWeak       TopicStatus = "weak"        // attempted, accuracy < 60%
	StatusMastered   TopicStatus = "mastered"
)

// weakAccuracyThreshold is the percent accuracy below which an attempted
// topic still counts as weak.
const weakAccuracyThreshold = 60.0

// PathStep is one topic on an annotated review path.
type PathStep struct {
	Topic    string
	Status   TopicStatus
	Attempts int
	Accuracy float64
}

// RankedTopic pairs a topic with its accuracy for target selection.
type RankedTopic struct {
	Topic    string
	Attempts int
	Correct  int
	Accuracy float64
}

// Planner builds annotated review paths over a prerequisite graph.
type Planner struct {
	graph *Graph
}

// NewPlanner wraps a loaded graph. The graph is read-only from here on.
func NewPlanner(g *Graph) *Planner {
	return &Planner{graph: g}
}

// AnnotatedPath produces the post-order review path for target, with each
// topic tagged by the learner's mastery of it. Returns ErrGraphUnavailable
// when no graph was loaded; an unknown target yields an empty path.
func (p *Planner) AnnotatedPath(target string, topicStats map[string]stats.TopicStat) ([]PathStep, error) {
	if p.graph == nil || p.graph.Len() == 0 {
		return nil, ErrGraphUnavailable
	}

	path := p.graph.PostOrderPath(target)
	steps := make([]PathStep, 0, len(path))
	for _, topic := range path {
		st := topicStats[topic]
		steps = append(steps, PathStep{
			Topic:    topic,
			Status:   statusFor(st),
			Attempts: st.Attempts,
			Accuracy: st.Accuracy,
		})
	}
	return steps, nil
}

// RankTopics lists every known topic sorted ascending by accuracy, so the
// weakest topic comes first when picking a review target. Topics never
// attempted rank at accuracy zero. Ties order by topic name.
func (p *Planner) RankTopics(topicStats map[string]stats.TopicStat) ([]RankedTopic, error) {
	if p.graph == nil || p.graph.Len() == 0 {
		return nil, ErrGraphUnavailable
	}

	ranked := make([]RankedTopic, 0, p.graph.Len())
	for _, topic := range p.graph.Nodes() {
		st := topicStats[topic]
		ranked = append(ranked, RankedTopic{
			Topic:    topic,
			Attempts: st.Attempts,
			Correct:  st.Correct,
			Accuracy: st.Accuracy,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Accuracy != ranked[j].Accuracy {
			return ranked[i].Accuracy < ranked[j].Accuracy
		}
		return ranked[i].Topic < ranked[j].Topic
	})
	return ranked, nil
}

func statusFor(st stats.TopicStat) TopicStatus {
	switch {
	case st.Attempts == 0:
		return StatusNeedsStudy
	case st.Accuracy < weakAccuracyThreshold:
		return StatusWeak
	default:
		return StatusMastered
	}
}

package knowledge

import (
	"errors"
	"testing"

	"github.com/keleoz/quizpath/internal/stats"
)

func plannerFixture() *Planner {
	g := NewGraph()
	g.Declare("functions", []string{"algebra"})
	g.Declare("calculus", []string{"algebra", "functions"})
	return NewPlanner(g)
}

func TestAnnotatedPath_Statuses(t *testing.T) {
	p := plannerFixture()
	topicStats := map[string]stats.TopicStat{
		"algebra":   {Attempts: 10, Correct: 9, Accuracy: 90},
		"functions": {Attempts: 10, Correct: 4, Accuracy: 40},
		// calculus never attempted
	}

	steps, err := p.AnnotatedPath("calculus", topicStats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}

	want := []struct {
		topic  string
		status TopicStatus
	}{
		{"algebra", StatusMastered},
		{"functions", StatusWeak},
		{"calculus", StatusNeedsStudy},
	}
	for i, w := range want {
		if steps[i].Topic != w.topic {
			t.Errorf("step %d: got topic %q, want %q", i, steps[i].Topic, w.topic)
		}
		if steps[i].Status != w.status {
			t.Errorf("step %d (%s): got status %q, want %q", i, w.topic, steps[i].Status, w.status)
		}
	}
}

func TestAnnotatedPath_ThresholdBoundary(t *testing.T) {
	p := plannerFixture()
	topicStats := map[string]stats.TopicStat{
		"algebra": {Attempts: 5, Correct: 3, Accuracy: 60},
	}
	steps, err := p.AnnotatedPath("algebra", topicStats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Exactly 60% counts as mastered; weak is strictly below.
	if steps[0].Status != StatusMastered {
		t.Errorf("60%% accuracy: got %q, want %q", steps[0].Status, StatusMastered)
	}
}

func TestAnnotatedPath_EmptyGraph(t *testing.T) {
	p := NewPlanner(NewGraph())
	_, err := p.AnnotatedPath("anything", nil)
	if !errors.Is(err, ErrGraphUnavailable) {
		t.Errorf("got error %v, want ErrGraphUnavailable", err)
	}
}

func TestAnnotatedPath_UnknownTarget(t *testing.T) {
	p := plannerFixture()
	steps, err := p.AnnotatedPath("chemistry", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("got %d steps for unknown target, want 0", len(steps))
	}
}

func TestRankTopics_WeakestFirst(t *testing.T) {
	p := plannerFixture()
	topicStats := map[string]stats.TopicStat{
		"algebra":   {Attempts: 10, Correct: 9, Accuracy: 90},
		"functions": {Attempts: 10, Correct: 4, Accuracy: 40},
	}
	ranked, err := p.RankTopics(topicStats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("got %d topics, want 3", len(ranked))
	}
	// calculus (unattempted, 0%) first, then functions, then algebra.
	want := []string{"calculus", "functions", "algebra"}
	for i, topic := range want {
		if ranked[i].Topic != topic {
			t.Errorf("rank %d: got %q, want %q", i, ranked[i].Topic, topic)
		}
	}
}

func TestRankTopics_TieByName(t *testing.T) {
	g := NewGraph()
	g.Declare("b", nil)
	g.Declare("a", nil)
	g.Declare("c", nil)
	ranked, err := NewPlanner(g).RankTopics(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, topic := range want {
		if ranked[i].Topic != topic {
			t.Errorf("rank %d: got %q, want %q", i, ranked[i].Topic, topic)
		}
	}
}

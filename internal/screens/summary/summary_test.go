package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testScreen() *Screen {
	return New("Random Practice", 10, 7, 180, []TopicResult{
		{Topic: "geometry", Attempts: 4, Correct: 1},
		{Topic: "algebra", Attempts: 6, Correct: 6},
	})
}

func TestSummaryScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testScreen().View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Answered:  10", "Correct:   7", "70.0%", "algebra", "geometry"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_TopicsSorted(t *testing.T) {
	view := testScreen().View(80, 24)
	if strings.Index(view, "algebra") > strings.Index(view, "geometry") {
		t.Error("topics should render in name order")
	}
}

func TestSummaryScreen_NoAnswers(t *testing.T) {
	s := New("Exam", 0, 0, 0, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions answered") {
		t.Error("empty session should say nothing was answered")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		s := testScreen()
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Errorf("expected a command (pop) for key %v", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	hints := testScreen().KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}

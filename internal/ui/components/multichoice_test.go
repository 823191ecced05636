package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMultiChoice_Navigation(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b", "c"}, 1)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("after down: got %d, want 1", m.Selected)
	}

	// Does not run off the end.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("at bottom: got %d, want 2", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("after up: got %d, want 1", m.Selected)
	}
}

func TestMultiChoice_SubmitLocks(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b"}, 0)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Submitted {
		t.Fatal("enter should submit")
	}
	if !m.IsCorrect() {
		t.Error("option a is correct")
	}

	// Input after submission is ignored.
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("selection moved after submit: got %d", m.Selected)
	}
}

func TestMultiChoice_WrongAnswer(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b"}, 1)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.IsCorrect() {
		t.Error("option a is wrong")
	}
}

func TestMultiChoice_ViewLabels(t *testing.T) {
	m := NewMultiChoice("which one", []string{"first", "second"}, 0)
	view := m.View()
	for _, want := range []string{"which one", "A)", "B)", "first", "second"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

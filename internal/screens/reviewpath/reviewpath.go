package reviewpath

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/knowledge"
	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/ui/layout"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

type topicsLoadedMsg struct {
	ranked []knowledge.RankedTopic
	err    error
}

type pathLoadedMsg struct {
	target string
	steps  []knowledge.PathStep
	err    error
}

// Screen lets the learner pick a target topic (weakest first) and shows
// the prerequisite-ordered review path toward it.
type Screen struct {
	eng      *engine.Engine
	ranked   []knowledge.RankedTopic
	selected int
	target   string
	steps    []knowledge.PathStep
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the review path screen.
func New(eng *engine.Engine) *Screen {
	return &Screen{eng: eng}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ranked, err := s.eng.RankTopics(context.Background())
		return topicsLoadedMsg{ranked: ranked, err: err}
	}
}

func (s *Screen) Title() string { return "Review Path" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.target != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Topic list"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Plan path"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			if errors.Is(msg.err, knowledge.ErrGraphUnavailable) {
				s.errMsg = "No prerequisite graph loaded; review paths are unavailable."
			} else {
				s.errMsg = msg.err.Error()
			}
		} else {
			s.ranked = msg.ranked
		}
		return s, nil

	case pathLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.target = msg.target
			s.steps = msg.steps
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.target != "" {
				s.target = ""
				s.steps = nil
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.target == "" && s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.target == "" && s.selected < len(s.ranked)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.target == "" && s.selected < len(s.ranked) {
				target := s.ranked[s.selected].Topic
				return s, func() tea.Msg {
					steps, err := s.eng.ReviewPath(context.Background(), target)
					return pathLoadedMsg{target: target, steps: steps, err: err}
				}
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading…")
	}
	if s.errMsg != "" {
		return theme.Hint.Render("\n  " + s.errMsg)
	}
	if s.target != "" {
		return s.viewPath()
	}
	return s.viewTopics()
}

func (s *Screen) viewTopics() string {
	out := "\n" + theme.Title.Render("Pick a topic to review") + "\n"
	out += theme.Subtitle.Render("Weakest topics first") + "\n\n"

	for i, rt := range s.ranked {
		suffix := fmt.Sprintf("  %d attempts, %.1f%%", rt.Attempts, rt.Accuracy)
		if rt.Attempts == 0 {
			suffix = "  not practiced yet"
		}
		line := fmt.Sprintf("%-24s%s", rt.Topic, suffix)
		if i == s.selected {
			out += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			out += theme.Unselected.Render("  "+line) + "\n"
		}
	}
	return out
}

func (s *Screen) viewPath() string {
	out := "\n" + theme.Title.Render("Review path to: "+s.target) + "\n"
	out += theme.Subtitle.Render("Prerequisites first; work top to bottom") + "\n\n"

	if len(s.steps) == 0 {
		out += theme.Hint.Render("  No path found for this topic.")
		return out
	}

	for i, step := range s.steps {
		line := fmt.Sprintf("  %d. %-24s", i+1, step.Topic)
		switch step.Status {
		case knowledge.StatusNeedsStudy:
			out += theme.Hint.Render(line+"  [not practiced — needs study]") + "\n"
		case knowledge.StatusWeak:
			out += theme.Incorrect.Render(line+
				fmt.Sprintf("  [weak — %.1f%% over %d attempts]", step.Accuracy, step.Attempts)) + "\n"
		default:
			out += theme.Correct.Render(line+
				fmt.Sprintf("  [mastered — %.1f%%]", step.Accuracy)) + "\n"
		}
	}

	out += "\n" + theme.Hint.Render("  Solidify the prerequisites before moving down the list.")
	return out
}

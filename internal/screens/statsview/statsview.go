package statsview

import (
	"context"
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/stats"
	"github.com/keleoz/quizpath/internal/ui/layout"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

type loadedMsg struct {
	overview stats.Overview
	wrong    int
	topics   map[string]stats.TopicStat
	err      error
}

// Screen shows overall and per-topic statistics.
type Screen struct {
	eng      *engine.Engine
	overview stats.Overview
	wrong    int
	topics   map[string]stats.TopicStat
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the statistics screen.
func New(eng *engine.Engine) *Screen {
	return &Screen{eng: eng}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		overview, wrong, err := s.eng.Overview(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		topics, err := s.eng.TopicStats(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{overview: overview, wrong: wrong, topics: topics}
	}
}

func (s *Screen) Title() string { return "Statistics" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.overview = msg.overview
			s.wrong = msg.wrong
			s.topics = msg.topics
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading…")
	}
	if s.errMsg != "" {
		return theme.Incorrect.Render("\n  " + s.errMsg)
	}
	if s.overview.Attempts == 0 {
		return theme.Hint.Render("\n  No attempts recorded yet. Go practice!")
	}

	out := "\n" + theme.Title.Render("Overall") + "\n\n"
	out += fmt.Sprintf("  Total attempts:   %d\n", s.overview.Attempts)
	out += fmt.Sprintf("  Correct:          %d\n", s.overview.Correct)
	out += fmt.Sprintf("  Accuracy:         %.1f%%\n", s.overview.Accuracy)
	out += fmt.Sprintf("  Wrong book size:  %d\n", s.wrong)

	if len(s.topics) > 0 {
		names := make([]string, 0, len(s.topics))
		for t := range s.topics {
			names = append(names, t)
		}
		sort.Strings(names)

		out += "\n" + theme.Subtitle.Render("By topic") + "\n"
		for _, name := range names {
			st := s.topics[name]
			line := fmt.Sprintf("  %-24s %3d attempts  %3d correct  %5.1f%%",
				name, st.Attempts, st.Correct, st.Accuracy)
			if st.Accuracy < 60 {
				out += theme.Incorrect.Render(line) + "\n"
			} else {
				out += theme.Body.Render(line) + "\n"
			}
		}
	}
	return out
}

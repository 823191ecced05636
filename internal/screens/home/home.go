package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/recommend"
	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/screens/examsetup"
	"github.com/keleoz/quizpath/internal/screens/practice"
	"github.com/keleoz/quizpath/internal/screens/reviewpath"
	"github.com/keleoz/quizpath/internal/screens/statsview"
	"github.com/keleoz/quizpath/internal/stats"
	"github.com/keleoz/quizpath/internal/ui/components"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

type overviewMsg struct {
	overview stats.Overview
	wrong    int
	err      error
}

// Screen is the main menu.
type Screen struct {
	eng      *engine.Engine
	menu     components.Menu
	overview stats.Overview
	wrong    int
	loaded   bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen and its menu.
func New(eng *engine.Engine) *Screen {
	s := &Screen{eng: eng}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "RANDOM PRACTICE", Action: push(func() screen.Screen {
			return practice.New(eng, practice.ModeRandom, practice.RandomQueue(eng.Catalog))
		})},
		{Label: "WRONG BOOK", Action: func() tea.Cmd {
			return func() tea.Msg {
				ids, err := eng.WrongQuestions(context.Background())
				if err != nil || len(ids) == 0 {
					return nil
				}
				return router.PushScreenMsg{
					Screen: practice.New(eng, practice.ModeWrongbook, practice.WrongQueue(eng.Catalog, ids)),
				}
			}
		}},
		{Label: "SMART RECOMMEND", Action: func() tea.Cmd {
			return func() tea.Msg {
				items, err := eng.Recommend(context.Background(), time.Now())
				if err != nil || len(items) == 0 {
					return nil
				}
				return router.PushScreenMsg{
					Screen: practice.New(eng, practice.ModeRecommend, recommendQueue(eng, items)),
				}
			}
		}},
		{Label: "EXAM MODE", Action: push(func() screen.Screen { return examsetup.New(eng) })},
		{Label: "STATISTICS", Action: push(func() screen.Screen { return statsview.New(eng) })},
		{Label: "REVIEW PATH", Action: push(func() screen.Screen { return reviewpath.New(eng) })},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	s.menu = components.NewMenu(items)
	return s
}

// recommendQueue resolves ranked recommendation IDs back to questions,
// preserving rank order.
func recommendQueue(eng *engine.Engine, items []recommend.Item) []catalog.Question {
	queue := make([]catalog.Question, 0, len(items))
	for _, item := range items {
		if q, ok := eng.Catalog.ByID(item.QuestionID); ok {
			queue = append(queue, q)
		}
	}
	return queue
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		overview, wrong, err := s.eng.Overview(context.Background())
		return overviewMsg{overview: overview, wrong: wrong, err: err}
	}
}

func (s *Screen) Title() string { return "Home" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		if msg.err == nil {
			s.overview = msg.overview
			s.wrong = msg.wrong
			s.loaded = true
		}
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	out := "\n" + theme.Title.Render("QuizPath") + "\n"
	out += theme.Subtitle.Render("Adaptive self-study quizzing") + "\n\n"

	if s.loaded && s.overview.Attempts > 0 {
		out += theme.Hint.Render(fmt.Sprintf(
			"  %d attempts · %.1f%% accuracy · %d in the wrong book\n\n",
			s.overview.Attempts, s.overview.Accuracy, s.wrong))
	}

	out += s.menu.View()
	return out
}

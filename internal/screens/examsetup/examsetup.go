package examsetup

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/screens/practice"
	"github.com/keleoz/quizpath/internal/ui/components"
	"github.com/keleoz/quizpath/internal/ui/layout"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

// Screen asks how many questions the exam should have before starting it.
type Screen struct {
	eng    *engine.Engine
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the exam setup prompt.
func New(eng *engine.Engine) *Screen {
	return &Screen{
		eng:   eng,
		input: components.NewTextInput("question count", true, 3),
	}
}

func (s *Screen) Init() tea.Cmd { return s.input.Init() }

func (s *Screen) Title() string { return "Exam Setup" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start exam"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			n, err := s.input.NumericValue()
			if err != nil || n < 1 {
				s.errMsg = "enter a number of at least 1"
				return s, nil
			}
			queue := practice.ExamQueue(s.eng.Catalog, n)
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: practice.New(s.eng, practice.ModeExam, queue)}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	out := "\n" + theme.Title.Render("Exam Mode") + "\n\n"
	out += theme.Body.Render(fmt.Sprintf("  The catalog has %d questions.", s.eng.Catalog.Len())) + "\n"
	out += theme.Hint.Render("  No time limit; answer times are still recorded.") + "\n\n"
	out += "  How many questions? " + s.input.View() + "\n"
	if s.errMsg != "" {
		out += "\n" + theme.Incorrect.Render("  "+s.errMsg)
	}
	return out
}

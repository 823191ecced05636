package summary

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"

	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/ui/layout"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

// TopicResult is the per-topic breakdown of one session.
type TopicResult struct {
	Topic    string
	Attempts int
	Correct  int
}

// Screen shows the results of a finished practice session.
type Screen struct {
	mode     string
	answered int
	correct  int
	duration int
	topics   []TopicResult
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen for a finished session.
func New(mode string, answered, correct, durationSecs int, topics []TopicResult) *Screen {
	sort.Slice(topics, func(i, j int) bool { return topics[i].Topic < topics[j].Topic })
	return &Screen{
		mode:     mode,
		answered: answered,
		correct:  correct,
		duration: durationSecs,
		topics:   topics,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Session Summary" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc/Enter", Description: "Back to menu"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	out := "\n" + theme.Title.Render(s.mode+" finished") + "\n\n"

	if s.answered == 0 {
		out += theme.Hint.Render("  No questions answered this round.")
		return out
	}

	accuracy := float64(s.correct) * 100.0 / float64(s.answered)
	out += fmt.Sprintf("  Answered:  %d\n", s.answered)
	out += fmt.Sprintf("  Correct:   %d\n", s.correct)
	out += fmt.Sprintf("  Accuracy:  %.1f%%\n", accuracy)
	out += fmt.Sprintf("  Duration:  %ds\n", s.duration)

	if len(s.topics) > 0 {
		out += "\n" + theme.Subtitle.Render("By topic") + "\n"
		for _, tr := range s.topics {
			acc := float64(tr.Correct) * 100.0 / float64(tr.Attempts)
			line := fmt.Sprintf("  %-24s %d/%d  (%.0f%%)", tr.Topic, tr.Correct, tr.Attempts, acc)
			if acc < 60 {
				out += theme.Incorrect.Render(line) + "\n"
			} else {
				out += theme.Body.Render(line) + "\n"
			}
		}
	}

	return out
}

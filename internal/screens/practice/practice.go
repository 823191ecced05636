package practice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/engine"
	"github.com/keleoz/quizpath/internal/record"
	"github.com/keleoz/quizpath/internal/router"
	"github.com/keleoz/quizpath/internal/screen"
	"github.com/keleoz/quizpath/internal/screens/summary"
	"github.com/keleoz/quizpath/internal/store"
	"github.com/keleoz/quizpath/internal/ui/components"
	"github.com/keleoz/quizpath/internal/ui/layout"
	"github.com/keleoz/quizpath/internal/ui/theme"
)

// Mode names match the session_event mode column.
const (
	ModeRandom    = "random"
	ModeWrongbook = "wrongbook"
	ModeRecommend = "recommend"
	ModeExam      = "exam"
)

type attemptSavedMsg struct{ err error }
type sessionStartedMsg struct{ err error }

// Screen runs a fixed queue of questions, recording every answer.
type Screen struct {
	eng       *engine.Engine
	mode      string
	queue     []catalog.Question
	idx       int
	choice    components.MultiChoice
	shownAt   time.Time
	sessionID string
	startedAt time.Time
	answered  int
	correct   int
	perTopic  map[string]*summary.TopicResult
	errMsg    string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice session over the given question queue.
func New(eng *engine.Engine, mode string, queue []catalog.Question) *Screen {
	s := &Screen{
		eng:       eng,
		mode:      mode,
		queue:     queue,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		perTopic:  make(map[string]*summary.TopicResult),
	}
	if len(queue) > 0 {
		s.choice = newChoice(queue[0])
		s.shownAt = time.Now()
	}
	return s
}

// RandomQueue picks one random question, the original single-shot
// random practice round.
func RandomQueue(cat *catalog.Catalog) []catalog.Question {
	all := cat.All()
	if len(all) == 0 {
		return nil
	}
	return []catalog.Question{all[rand.Intn(len(all))]}
}

// WrongQueue picks one random question from the wrong-question book.
func WrongQueue(cat *catalog.Catalog, wrongIDs []int) []catalog.Question {
	var pool []catalog.Question
	for _, id := range wrongIDs {
		if q, ok := cat.ByID(id); ok {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return []catalog.Question{pool[rand.Intn(len(pool))]}
}

// ExamQueue shuffles the catalog and takes the first n questions, so an
// exam never repeats a question.
func ExamQueue(cat *catalog.Catalog, n int) []catalog.Question {
	all := cat.All()
	if n < 1 {
		n = 1
	}
	if n > len(all) {
		n = len(all)
	}
	shuffled := make([]catalog.Question, len(all))
	copy(shuffled, all)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func newChoice(q catalog.Question) components.MultiChoice {
	title := fmt.Sprintf("[%s · difficulty %d]  %s", q.Topic, q.Difficulty, q.Text)
	return components.NewMultiChoice(title, q.Options, q.Answer)
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		err := s.eng.Repo.AppendSession(context.Background(), store.SessionEventData{
			UserID:    s.eng.User,
			SessionID: s.sessionID,
			Mode:      s.mode,
			Action:    "start",
		})
		return sessionStartedMsg{err: err}
	}
}

func (s *Screen) Title() string {
	switch s.mode {
	case ModeWrongbook:
		return "Wrong Book"
	case ModeRecommend:
		return "Recommended Practice"
	case ModeExam:
		return "Exam"
	default:
		return "Practice"
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg, attemptSavedMsg:
		if m, ok := msg.(attemptSavedMsg); ok && m.err != nil {
			s.errMsg = m.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if len(s.queue) == 0 {
			return s, s.finish()
		}

		switch {
		case msg.String() == "esc":
			return s, s.finish()

		case s.choice.Submitted && msg.String() == "enter":
			return s, s.advance()

		case !s.choice.Submitted:
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			if s.choice.Submitted {
				return s, s.recordAnswer()
			}
			return s, cmd
		}
	}
	return s, nil
}

// recordAnswer persists the just-submitted answer and updates tallies.
func (s *Screen) recordAnswer() tea.Cmd {
	q := s.queue[s.idx]
	correct := s.choice.IsCorrect()
	duration := record.ClampDuration(int(time.Since(s.shownAt).Seconds()))

	s.answered++
	if correct {
		s.correct++
	}
	tr := s.perTopic[q.Topic]
	if tr == nil {
		tr = &summary.TopicResult{Topic: q.Topic}
		s.perTopic[q.Topic] = tr
	}
	tr.Attempts++
	if correct {
		tr.Correct++
	}

	return func() tea.Msg {
		err := s.eng.Repo.AppendAttempt(context.Background(), store.AttemptEventData{
			UserID:       s.eng.User,
			SessionID:    s.sessionID,
			QuestionID:   q.ID,
			Correct:      correct,
			DurationSecs: duration,
		})
		return attemptSavedMsg{err: err}
	}
}

// advance moves to the next question or hands off to the summary.
func (s *Screen) advance() tea.Cmd {
	if s.idx+1 >= len(s.queue) {
		return s.finish()
	}
	s.idx++
	s.choice = newChoice(s.queue[s.idx])
	s.shownAt = time.Now()
	return nil
}

// finish records the session end and replaces this screen with a summary.
func (s *Screen) finish() tea.Cmd {
	duration := int(time.Since(s.startedAt).Seconds())
	end := func() tea.Msg {
		_ = s.eng.Repo.AppendSession(context.Background(), store.SessionEventData{
			UserID:          s.eng.User,
			SessionID:       s.sessionID,
			Mode:            s.mode,
			Action:          "end",
			QuestionsServed: s.answered,
			CorrectAnswers:  s.correct,
			DurationSecs:    duration,
		})
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.Title(), s.answered, s.correct, duration, s.topicResults()),
		}
	}
	return end
}

func (s *Screen) topicResults() []summary.TopicResult {
	results := make([]summary.TopicResult, 0, len(s.perTopic))
	for _, tr := range s.perTopic {
		results = append(results, *tr)
	}
	return results
}

func (s *Screen) View(width, height int) string {
	if len(s.queue) == 0 {
		return theme.Hint.Render("\n  Nothing to practice here right now.")
	}

	header := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.idx+1, len(s.queue)))
	bar := components.ProgressBar{
		Percent: float64(s.idx) / float64(len(s.queue)),
		Width:   40,
	}

	body := s.choice.View()
	if s.choice.Submitted {
		if s.choice.IsCorrect() {
			body += "\n" + theme.Correct.Render("Correct!")
		} else {
			q := s.queue[s.idx]
			body += "\n" + theme.Incorrect.Render(
				fmt.Sprintf("Wrong. The answer is %c) %s", 'A'+q.Answer, q.Options[q.Answer]))
		}
	}
	if s.errMsg != "" {
		body += "\n" + theme.Incorrect.Render("save failed: "+s.errMsg)
	}

	return "\n" + header + "\n" + bar.View() + "\n\n" + body
}

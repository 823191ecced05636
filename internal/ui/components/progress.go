package components

import (
	"fmt"
	"strings"

	"github.com/keleoz/quizpath/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional label.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0.0 to 1.0
	ShowPercent bool
	Width       int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	width := p.Width
	if width <= 0 {
		width = 30
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	bar := theme.Selected.Render(strings.Repeat("█", filled)) +
		theme.Hint.Render(strings.Repeat("░", width-filled))

	s := bar
	if p.Label != "" {
		s = p.Label + " " + s
	}
	if p.ShowPercent {
		s += fmt.Sprintf(" %3.0f%%", pct*100)
	}
	return s
}

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteMarkdown renders the report as a Markdown document.
func WriteMarkdown(w io.Writer, d Data) error {
	var b strings.Builder

	b.WriteString("# QuizPath Learning Report\n\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**User**: %s\n\n", d.User)
	fmt.Fprintf(&b, "**Generated**: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("---\n\n")

	b.WriteString("## Overview\n\n")
	if d.Overview.Attempts == 0 {
		b.WriteString("> No attempts recorded yet; nothing to report.\n\n")
	} else {
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		fmt.Fprintf(&b, "| Total attempts | %d |\n", d.Overview.Attempts)
		fmt.Fprintf(&b, "| Correct | %d |\n", d.Overview.Correct)
		fmt.Fprintf(&b, "| Incorrect | %d |\n", d.Overview.Attempts-d.Overview.Correct)
		fmt.Fprintf(&b, "| Overall accuracy | %.1f%% |\n", d.Overview.Accuracy)
		fmt.Fprintf(&b, "| Open wrong questions | %d |\n\n", d.WrongCount)
	}

	if len(d.Topics) > 0 {
		b.WriteString("## By Topic\n\n")
		b.WriteString("| Topic | Attempts | Correct | Accuracy |\n")
		b.WriteString("|-------|----------|---------|----------|\n")
		for _, row := range d.Topics {
			fmt.Fprintf(&b, "| %s | %d | %d | %.1f%% |\n", row.Topic, row.Attempts, row.Correct, row.Accuracy)
		}
		b.WriteString("\n")
	}

	if len(d.WrongByTopic) > 0 {
		b.WriteString("## Wrong-Question Distribution\n\n")
		b.WriteString("By topic:\n\n")
		for _, row := range d.WrongByTopic {
			fmt.Fprintf(&b, "- %s: %d\n", row.Label, row.Count)
		}
		b.WriteString("\nBy difficulty:\n\n")
		for _, row := range d.WrongByDifficulty {
			fmt.Fprintf(&b, "- Level %d: %d\n", row.Difficulty, row.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Suggestions\n\n")
	if len(d.WeakTopics) > 0 {
		fmt.Fprintf(&b, "- Weak topics (accuracy below 60%%): %s. Review these first.\n",
			strings.Join(d.WeakTopics, ", "))
	}
	if d.WrongCount > 0 {
		b.WriteString("- Work through the wrong-question book; questions leave it once answered correctly.\n")
	}
	b.WriteString("- Use `quizpath recommend` for a ranked practice list and `quizpath path <topic>` for a prerequisite-ordered review plan.\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveMarkdown writes the report to dir/report_<user>_<stamp>.md and
// returns the file path.
func SaveMarkdown(dir string, d Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s_%s.md", d.User, FileStamp(d.GeneratedAt)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, d); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

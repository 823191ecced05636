// Package logging sets up the diagnostic log. The TUI owns the terminal,
// so diagnostics go to a file under the state directory instead of stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New opens a file-backed logger. Pass verbose=true to include debug
// output. Falls back to a no-op logger when the state dir can't be
// created, so logging never blocks the tool itself.
func New(verbose bool) *zap.Logger {
	path, err := logPath()
	if err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// logPath resolves $XDG_STATE_HOME/quizpath/quizpath.log, creating the
// directory as needed.
func logPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	dir := filepath.Join(stateHome, "quizpath")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return filepath.Join(dir, "quizpath.log"), nil
}

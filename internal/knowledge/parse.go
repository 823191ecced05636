package knowledge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Parse reads the line-oriented graph format:
//
//	topic|prereq1,prereq2,...
//
// Fields are trimmed of surrounding whitespace. Lines without the pipe
// separator and lines with an empty topic are skipped with a diagnostic.
// A declared cycle is logged as a warning but does not fail the load;
// traversal stays safe through the visited guard.
func Parse(r io.Reader, log *zap.Logger) (*Graph, error) {
	if log == nil {
		log = zap.NewNop()
	}

	g := NewGraph()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		topic, prereqStr, ok := strings.Cut(line, "|")
		if !ok {
			log.Warn("graph line missing separator, skipped", zap.Int("line", lineNum))
			continue
		}

		topic = strings.TrimSpace(topic)
		if topic == "" {
			log.Warn("graph line has empty topic, skipped", zap.Int("line", lineNum))
			continue
		}

		var prereqs []string
		for _, p := range strings.Split(prereqStr, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				prereqs = append(prereqs, p)
			}
		}
		g.Declare(topic, prereqs)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}

	if cycle := g.DetectCycle(); cycle != nil {
		log.Warn("prerequisite graph contains a cycle; review order may be unreliable for these topics",
			zap.Strings("topics", cycle))
	}

	log.Info("prerequisite graph loaded", zap.Int("topics", g.Len()))
	return g, nil
}

// ParseFile loads a graph from disk. A missing file is not an error:
// the planner simply reports the graph as unavailable, matching the
// behavior of running without a knowledge map.
func ParseFile(path string, log *zap.Logger) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if log != nil {
				log.Warn("prerequisite graph file not found, review paths unavailable",
					zap.String("path", path))
			}
			return NewGraph(), nil
		}
		return nil, fmt.Errorf("open graph %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, log)
}

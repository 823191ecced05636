package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CSV row layout: id,text,optA,optB,optC,optD,answer,topic,difficulty
const csvFieldCount = 9

// LoadCSV reads a question catalog in the flat comma-separated format.
// Malformed rows are skipped and logged; they never abort the load.
// Returns an error only when the catalog ends up empty.
func LoadCSV(r io.Reader, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var questions []Question
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < csvFieldCount {
			log.Warn("catalog row has too few fields, skipped",
				zap.Int("line", lineNum),
				zap.Int("fields", len(fields)))
			continue
		}

		q, err := parseRow(fields)
		if err != nil {
			log.Warn("catalog row failed to parse, skipped",
				zap.Int("line", lineNum),
				zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog is empty after parsing %d lines", lineNum)
	}

	log.Info("catalog loaded", zap.Int("questions", len(questions)))
	return New(questions), nil
}

// LoadCSVFile opens and loads a CSV catalog from disk.
func LoadCSVFile(path string, log *zap.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f, log)
}

func parseRow(fields []string) (Question, error) {
	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Question{}, fmt.Errorf("question id: %w", err)
	}
	answer, err := strconv.Atoi(strings.TrimSpace(fields[6]))
	if err != nil {
		return Question{}, fmt.Errorf("answer index: %w", err)
	}
	difficulty, err := strconv.Atoi(strings.TrimSpace(fields[8]))
	if err != nil {
		return Question{}, fmt.Errorf("difficulty: %w", err)
	}

	options := []string{fields[2], fields[3], fields[4], fields[5]}
	if answer < 0 || answer >= len(options) {
		return Question{}, fmt.Errorf("answer index %d out of range", answer)
	}
	if difficulty < 1 || difficulty > 5 {
		return Question{}, fmt.Errorf("difficulty %d out of range [1,5]", difficulty)
	}

	topic := strings.TrimSpace(fields[7])
	if topic == "" {
		return Question{}, fmt.Errorf("empty topic")
	}

	return Question{
		ID:         id,
		Text:       fields[1],
		Options:    options,
		Answer:     answer,
		Topic:      topic,
		Difficulty: difficulty,
	}, nil
}

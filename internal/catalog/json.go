package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// catalogSchema describes the JSON catalog document. Validation happens
// up front so the row loop below can assume well-typed fields.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "integer", "minimum": 0},
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"answer":     map[string]any{"type": "integer", "minimum": 0},
					"topic":      map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				},
				"required":             []any{"id", "text", "options", "answer", "topic", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

type jsonQuestion struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Answer     int      `json:"answer"`
	Topic      string   `json:"topic"`
	Difficulty int      `json:"difficulty"`
}

type jsonCatalog struct {
	Questions []jsonQuestion `json:"questions"`
}

// LoadJSON reads a question catalog from a JSON document and validates it
// against the catalog schema before decoding.
func LoadJSON(r io.Reader, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var doc jsonCatalog
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, jq := range doc.Questions {
		if jq.Answer >= len(jq.Options) {
			// Inter-field constraint the schema can't express.
			log.Warn("answer index out of range, question skipped",
				zap.Int("id", jq.ID), zap.Int("answer", jq.Answer))
			continue
		}
		questions = append(questions, Question{
			ID:         jq.ID,
			Text:       jq.Text,
			Options:    jq.Options,
			Answer:     jq.Answer,
			Topic:      jq.Topic,
			Difficulty: jq.Difficulty,
		})
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	log.Info("catalog loaded", zap.Int("questions", len(questions)))
	return New(questions), nil
}

// LoadFile loads a catalog from disk, picking the format by extension
// (.json for the JSON document, anything else parses as CSV).
func LoadFile(path string, log *zap.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	if len(path) > 5 && path[len(path)-5:] == ".json" {
		return LoadJSON(f, log)
	}
	return LoadCSV(f, log)
}

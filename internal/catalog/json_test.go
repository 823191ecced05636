package catalog

import (
	"strings"
	"testing"
)

const sampleJSON = `{
	"questions": [
		{"id": 1, "text": "What is 2+2?", "options": ["3", "4", "5", "6"], "answer": 1, "topic": "arithmetic", "difficulty": 1},
		{"id": 2, "text": "Solve x+1=3", "options": ["1", "2"], "answer": 1, "topic": "algebra", "difficulty": 2}
	]
}`

func TestLoadJSON(t *testing.T) {
	cat, err := LoadJSON(strings.NewReader(sampleJSON), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("got %d questions, want 2", cat.Len())
	}
	q, ok := cat.ByID(2)
	if !ok {
		t.Fatal("question 2 not found")
	}
	if len(q.Options) != 2 || q.Answer != 1 {
		t.Errorf("got options=%v answer=%d", q.Options, q.Answer)
	}
}

func TestLoadJSON_RejectsInvalidDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{{{"},
		{"missing questions", `{}`},
		{"missing field", `{"questions": [{"id": 1, "text": "q", "options": ["a","b"], "answer": 0, "topic": "t"}]}`},
		{"difficulty out of range", `{"questions": [{"id": 1, "text": "q", "options": ["a","b"], "answer": 0, "topic": "t", "difficulty": 6}]}`},
		{"too few options", `{"questions": [{"id": 1, "text": "q", "options": ["a"], "answer": 0, "topic": "t", "difficulty": 1}]}`},
		{"extra property", `{"questions": [{"id": 1, "text": "q", "options": ["a","b"], "answer": 0, "topic": "t", "difficulty": 1, "hint": "no"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadJSON(strings.NewReader(tt.input), nil); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestLoadJSON_SkipsOutOfRangeAnswer(t *testing.T) {
	// answer passes the schema (non-negative) but exceeds the option
	// count, which only the loader can check.
	input := `{"questions": [
		{"id": 1, "text": "q", "options": ["a", "b"], "answer": 5, "topic": "t", "difficulty": 1},
		{"id": 2, "text": "q", "options": ["a", "b"], "answer": 1, "topic": "t", "difficulty": 1}
	]}`
	cat, err := LoadJSON(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("got %d questions, want 1", cat.Len())
	}
	if _, ok := cat.ByID(1); ok {
		t.Error("question 1 has an impossible answer and should be skipped")
	}
}

func TestLoadJSON_EmptyIsError(t *testing.T) {
	if _, err := LoadJSON(strings.NewReader(`{"questions": []}`), nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

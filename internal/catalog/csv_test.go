package catalog

import (
	"strings"
	"testing"
)

const sampleCSV = `1,What is 2+2?,3,4,5,6,1,arithmetic,1
2,Derivative of x^2?,x,2x,x^2,2,1,calculus,3
3,Solve x+1=3,1,2,3,4,1,algebra,2
`

func TestLoadCSV(t *testing.T) {
	cat, err := LoadCSV(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("got %d questions, want 3", cat.Len())
	}

	q, ok := cat.ByID(2)
	if !ok {
		t.Fatal("question 2 not found")
	}
	if q.Text != "Derivative of x^2?" {
		t.Errorf("got text %q", q.Text)
	}
	if q.Answer != 1 || q.Topic != "calculus" || q.Difficulty != 3 {
		t.Errorf("got answer=%d topic=%q difficulty=%d", q.Answer, q.Topic, q.Difficulty)
	}
	if len(q.Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.Options))
	}
}

func TestLoadCSV_SkipsMalformedRows(t *testing.T) {
	input := `1,ok,a,b,c,d,0,algebra,2
too,few,fields
2,bad answer,a,b,c,d,9,algebra,2
3,bad difficulty,a,b,c,d,0,algebra,7
4,empty topic,a,b,c,d,0,,2
5,ok too,a,b,c,d,3,geometry,5
`
	cat, err := LoadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("got %d questions, want 2", cat.Len())
	}
	if _, ok := cat.ByID(5); !ok {
		t.Error("question 5 should have survived")
	}
}

func TestLoadCSV_SkipsBlankLines(t *testing.T) {
	input := "\n1,q,a,b,c,d,0,algebra,1\n\n\n"
	cat, err := LoadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("got %d questions, want 1", cat.Len())
	}
}

func TestLoadCSV_EmptyIsError(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("not,a,row\n"), nil); err == nil {
		t.Fatal("expected error for catalog with no valid rows")
	}
}

func TestByID_Missing(t *testing.T) {
	cat := New([]Question{{ID: 1}})
	if _, ok := cat.ByID(42); ok {
		t.Error("ByID(42) should report absent")
	}
}

package knowledge

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	input := "algebra|\nfunctions|algebra\ncalculus|algebra,functions\n"
	g, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Len() != 3 {
		t.Errorf("got %d topics, want 3", g.Len())
	}
	want := []string{"algebra", "functions"}
	if got := g.Prerequisites("calculus"); !reflect.DeepEqual(got, want) {
		t.Errorf("calculus prereqs: got %v, want %v", got, want)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	input := "  calculus  |  algebra , functions  \n"
	g, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"algebra", "functions"}
	if got := g.Prerequisites("calculus"); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	input := "no separator here\n|orphan prereq\n\ngeometry|algebra\n"
	g, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"algebra", "geometry"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("got nodes %v, want %v", got, want)
	}
}

func TestParse_EmptyPrereqList(t *testing.T) {
	g, err := Parse(strings.NewReader("algebra|\n"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Contains("algebra") {
		t.Error("algebra should be a node")
	}
	if got := g.Prerequisites("algebra"); len(got) != 0 {
		t.Errorf("got prereqs %v, want none", got)
	}
}

func TestParse_CycleStillLoads(t *testing.T) {
	input := "A|B\nB|A\n"
	g, err := Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("cycle should load without error, got: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("got %d topics, want 2", g.Len())
	}
}

func TestParseFile_Missing(t *testing.T) {
	g, err := ParseFile("testdata/does-not-exist.txt", nil)
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("got %d topics, want empty graph", g.Len())
	}
}

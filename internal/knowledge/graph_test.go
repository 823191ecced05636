package knowledge

import (
	"reflect"
	"testing"
)

func TestPostOrderPath_PrereqsFirst(t *testing.T) {
	g := NewGraph()
	g.Declare("B", []string{"A"})
	g.Declare("C", []string{"A", "B"})

	got := g.PostOrderPath("C")
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got path %v, want %v", got, want)
	}
}

func TestPostOrderPath_NoDuplicates(t *testing.T) {
	// Diamond: D needs B and C, both need A. A must appear once.
	g := NewGraph()
	g.Declare("B", []string{"A"})
	g.Declare("C", []string{"A"})
	g.Declare("D", []string{"B", "C"})

	path := g.PostOrderPath("D")
	seen := make(map[string]int)
	for _, topic := range path {
		seen[topic]++
	}
	for topic, n := range seen {
		if n > 1 {
			t.Errorf("topic %q appears %d times in path %v", topic, n, path)
		}
	}
	if len(path) != 4 {
		t.Errorf("got %d steps, want 4: %v", len(path), path)
	}
	if path[len(path)-1] != "D" {
		t.Errorf("path should end at target, got %v", path)
	}
}

func TestPostOrderPath_UnknownTarget(t *testing.T) {
	g := NewGraph()
	g.Declare("B", []string{"A"})
	if path := g.PostOrderPath("Z"); len(path) != 0 {
		t.Errorf("unknown target: got %v, want empty", path)
	}
}

func TestPostOrderPath_CycleTerminates(t *testing.T) {
	g := NewGraph()
	g.Declare("A", []string{"B"})
	g.Declare("B", []string{"A"})

	path := g.PostOrderPath("A")
	if len(path) != 2 {
		t.Errorf("got %d steps, want 2: %v", len(path), path)
	}
}

func TestDeclare_LastWriteWins(t *testing.T) {
	g := NewGraph()
	g.Declare("C", []string{"A"})
	g.Declare("C", []string{"B"})

	got := g.Prerequisites("C")
	if !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("got prereqs %v, want [B]", got)
	}
	// A stays in the node set even though no edge points at it anymore.
	if !g.Contains("A") {
		t.Error("topic A should remain in the node set")
	}
}

func TestNodes_IncludesPrereqOnlyTopics(t *testing.T) {
	g := NewGraph()
	g.Declare("calculus", []string{"algebra", "functions"})

	want := []string{"algebra", "calculus", "functions"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("got nodes %v, want %v", got, want)
	}
}

func TestDetectCycle(t *testing.T) {
	g := NewGraph()
	g.Declare("B", []string{"A"})
	g.Declare("C", []string{"B"})
	if cycle := g.DetectCycle(); cycle != nil {
		t.Errorf("DAG reported cycle: %v", cycle)
	}

	g.Declare("A", []string{"C"})
	cycle := g.DetectCycle()
	if len(cycle) != 3 {
		t.Errorf("got cycle members %v, want all of A, B, C", cycle)
	}
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	g := NewGraph()
	g.Declare("A", []string{"A"})
	cycle := g.DetectCycle()
	if !reflect.DeepEqual(cycle, []string{"A"}) {
		t.Errorf("got %v, want [A]", cycle)
	}
}

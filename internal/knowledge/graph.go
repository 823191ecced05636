// Package knowledge holds the topic prerequisite graph and the review
// path planner built on top of it.
package knowledge

import (
	"errors"
	"sort"
	"strings"
)

// ErrGraphUnavailable is returned when no prerequisite graph was loaded.
var ErrGraphUnavailable = errors.New("prerequisite graph unavailable")

// Graph maps each topic to its ordered prerequisite list. The node set
// covers every topic mentioned anywhere: keys and prerequisite values
// alike, so a topic referenced only as someone's prerequisite still
// exists in the graph.
type Graph struct {
	prereqs map[string][]string
	nodes   map[string]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		prereqs: make(map[string][]string),
		nodes:   make(map[string]bool),
	}
}

// Declare sets the prerequisite list for a topic. Re-declaring a topic
// overwrites its previous list wholesale; lists never merge.
func (g *Graph) Declare(topic string, prereqs []string) {
	g.nodes[topic] = true
	for _, p := range prereqs {
		g.nodes[p] = true
	}
	g.prereqs[topic] = prereqs
}

// Prerequisites returns the declared prerequisite list for a topic, in
// declaration order. Topics without a declaration have none.
func (g *Graph) Prerequisites(topic string) []string {
	return g.prereqs[topic]
}

// Contains reports whether the topic is in the node set.
func (g *Graph) Contains(topic string) bool {
	return g.nodes[topic]
}

// Nodes returns all topics in the graph, sorted by name.
func (g *Graph) Nodes() []string {
	result := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of topics in the node set.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// PostOrderPath walks the graph depth-first from target, emitting every
// prerequisite before the topic that depends on it. Each reachable topic
// appears exactly once; the visited guard also bounds recursion on
// cyclic input, though a cycle's back-edge can no longer honor the
// prerequisite-first ordering. An unknown target yields an empty path.
func (g *Graph) PostOrderPath(target string) []string {
	if !g.nodes[target] {
		return nil
	}
	visited := make(map[string]bool, len(g.nodes))
	var path []string
	g.postOrder(target, visited, &path)
	return path
}

func (g *Graph) postOrder(topic string, visited map[string]bool, path *[]string) {
	if visited[topic] {
		return
	}
	visited[topic] = true
	for _, p := range g.prereqs[topic] {
		g.postOrder(p, visited, path)
	}
	*path = append(*path, topic)
}

// DetectCycle looks for a dependency cycle using Kahn's algorithm and
// returns the topics left with unresolved prerequisites, sorted by name.
// An empty result means the graph is a DAG.
func (g *Graph) DetectCycle() []string {
	// Out-degree here is "unresolved prerequisites remaining".
	degree := make(map[string]int, len(g.nodes))
	dependents := make(map[string][]string)
	for n := range g.nodes {
		degree[n] = len(g.prereqs[n])
		for _, p := range g.prereqs[n] {
			dependents[p] = append(dependents[p], n)
		}
	}

	var queue []string
	for n, d := range degree {
		if d == 0 {
			queue = append(queue, n)
		}
	}

	resolved := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		resolved++
		for _, dep := range dependents[n] {
			degree[dep]--
			if degree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if resolved == len(g.nodes) {
		return nil
	}
	var cycle []string
	for n, d := range degree {
		if d > 0 {
			cycle = append(cycle, n)
		}
	}
	sort.Strings(cycle)
	return cycle
}

// String renders the adjacency list in load format, mostly for debugging.
func (g *Graph) String() string {
	var b strings.Builder
	for _, n := range g.Nodes() {
		b.WriteString(n)
		b.WriteByte('|')
		b.WriteString(strings.Join(g.prereqs[n], ","))
		b.WriteByte('\n')
	}
	return b.String()
}

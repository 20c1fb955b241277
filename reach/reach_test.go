package reach_test

import (
	"github.com/vorenkamp/featuregraph/reach"
)

// testGraph is a minimal reach.Graph[string] implementation for tests:
// nodes are plain ints, edges carry a string label.
type testGraph struct {
	n   int
	out map[int][]reach.Edge[string]
	in  map[int][]reach.Edge[string]
}

func newTestGraph(n int) *testGraph {
	return &testGraph{n: n, out: make(map[int][]reach.Edge[string]), in: make(map[int][]reach.Edge[string])}
}

func (g *testGraph) addEdge(from, to int, label string) {
	ix := len(g.out[from]) + len(g.in[to]) // not a real edge index scheme, just unique-ish
	e := reach.Edge[string]{Ix: ix, From: from, To: to, Payload: label}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
}

func (g *testGraph) NodeCount() int                      { return g.n }
func (g *testGraph) OutEdges(ix int) []reach.Edge[string] { return g.out[ix] }
func (g *testGraph) InEdges(ix int) []reach.Edge[string]  { return g.in[ix] }

package reach

// SCCs holds the strongly connected components of a graph, computed once
// and reused across queries (the feature graph façade memoises exactly one
// instance, per spec). Components are stored in "leaves-first" order: a
// component with no outgoing edge to any other component (a sink of the
// condensation) appears before one that depends on it. This falls out of
// Tarjan's algorithm directly -- a component is only popped off the
// recursion stack once every node reachable from it has already been
// popped -- and matches this module's Forward iteration convention
// (dependencies before dependents).
type SCCs[E any] struct {
	// components[i] lists the node indices belonging to component i, in
	// leaves-first order across components.
	components [][]int
	// nodeComponent[n] is the component index containing node n.
	nodeComponent []int
}

// NewSCCs computes the strongly connected components of g using Tarjan's
// algorithm (iterative, to avoid recursion-depth limits on large graphs).
func NewSCCs[E any](g Graph[E]) *SCCs[E] {
	n := g.NodeCount()
	t := &tarjanState[E]{
		g:       g,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
		visited: make([]bool, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < n; v++ {
		if !t.visited[v] {
			t.strongConnect(v)
		}
	}
	return &SCCs[E]{components: t.components, nodeComponent: t.nodeComponent(n)}
}

// tarjanState is the mutable state of one Tarjan run, kept explicit
// (rather than as recursion-frame locals) so the traversal can be driven
// with an explicit stack and avoid deep recursion on large graphs.
type tarjanState[E any] struct {
	g          Graph[E]
	counter    int
	index      []int
	low        []int
	onStack    []bool
	visited    []bool
	stack      []int
	components [][]int
}

// frame is one level of the simulated call stack for strongConnect(v):
// it resumes iterating v's out-edges from edgeIx on re-entry.
type frame struct {
	v      int
	edges  []int // successor node indices
	edgeIx int
}

func (t *tarjanState[E]) strongConnect(start int) {
	var call []frame
	push := func(v int) {
		t.index[v] = t.counter
		t.low[v] = t.counter
		t.counter++
		t.visited[v] = true
		t.onStack[v] = true
		t.stack = append(t.stack, v)

		outs := t.g.OutEdges(v)
		succs := make([]int, len(outs))
		for i, e := range outs {
			succs[i] = e.To
		}
		call = append(call, frame{v: v, edges: succs})
	}

	push(start)
	for len(call) > 0 {
		top := &call[len(call)-1]
		if top.edgeIx < len(top.edges) {
			w := top.edges[top.edgeIx]
			top.edgeIx++
			if !t.visited[w] {
				push(w)
				continue
			}
			if t.onStack[w] {
				if t.index[w] < t.low[top.v] {
					t.low[top.v] = t.index[w]
				}
			}
			continue
		}

		// All of top.v's successors are processed; pop this frame.
		v := top.v
		call = call[:len(call)-1]
		if len(call) > 0 {
			parent := &call[len(call)-1]
			if t.low[v] < t.low[parent.v] {
				t.low[parent.v] = t.low[v]
			}
		}

		if t.low[v] == t.index[v] {
			var comp []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			t.components = append(t.components, comp)
		}
	}
}

func (t *tarjanState[E]) nodeComponent(n int) []int {
	nc := make([]int, n)
	for ci, comp := range t.components {
		for _, v := range comp {
			nc[v] = ci
		}
	}
	return nc
}

// ComponentOf returns the component index containing node v.
func (s *SCCs[E]) ComponentOf(v int) int {
	return s.nodeComponent[v]
}

// Components returns the components in leaves-first order. Callers must
// not mutate the returned slices.
func (s *SCCs[E]) Components() [][]int {
	return s.components
}

// Externals returns the node indices forming the "roots" of the
// node-filtered graph's condensation, direction-aware:
//
//   - Forward: nodes with no included predecessor -- packages nothing in
//     the selected graph depends on (top-level/workspace-style packages).
//   - Reverse: nodes with no included successor -- packages with no
//     dependents inside the selected graph (base/leaf packages).
//
// This deliberately reuses the SCCs of the *unfiltered* graph (computed
// once and cached): under a resolver that filters individual edges, a
// component can be split across included/excluded nodes, which makes this
// check run at the node level rather than assuming whole-component
// in/out-ness. The ordering of returned nodes follows component order
// (reversed for Reverse), then ascending node index within a component.
func Externals[E any](g Graph[E], sccs *SCCs[E], included *Bitset, direction Direction) []int {
	order := sccs.components
	if direction == Reverse {
		order = reversedComponents(order)
	}

	var out []int
	for _, comp := range order {
		crosses := false
		for _, n := range comp {
			if !included.Contains(n) {
				continue
			}
			// Forward roots have no included predecessor, so check
			// in-edges; Reverse roots have no included successor, so
			// check out-edges -- the opposite of which adjacency list
			// the traversal itself walks in that direction.
			edges := g.InEdges(n)
			other := func(e Edge[E]) int { return e.From }
			if direction == Reverse {
				edges = g.OutEdges(n)
				other = func(e Edge[E]) int { return e.To }
			}
			for _, e := range edges {
				o := other(e)
				if included.Contains(o) && sccs.ComponentOf(o) != sccs.ComponentOf(n) {
					crosses = true
					break
				}
			}
			if crosses {
				break
			}
		}
		if crosses {
			continue
		}
		for _, n := range sortedInts(comp) {
			if included.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

func reversedComponents(comps [][]int) [][]int {
	out := make([][]int, len(comps))
	for i, c := range comps {
		out[len(comps)-1-i] = c
	}
	return out
}

func sortedInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

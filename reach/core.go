package reach

// Params selects the initial frontier and direction for a reachability
// computation.
type Params struct {
	Direction Direction
	Initials  []int
}

// ForwardFrom builds Params that follow dependency edges from initials.
func ForwardFrom(initials []int) Params { return Params{Direction: Forward, Initials: initials} }

// ReverseFrom builds Params that follow dependent edges from initials.
func ReverseFrom(initials []int) Params { return Params{Direction: Reverse, Initials: initials} }

// Core is the reachable-node bitset for one graph, computed once and then
// queried and combined via set algebra. It carries no reference to the
// host graph; callers combine it with the graph and its SCCs explicitly
// when they need Roots/Topo/Links.
type Core[E any] struct {
	included *Bitset
	len      int
}

// New computes every node reachable from params.Initials, following edges
// forward or in reverse according to params.Direction.
func New[E any](g Graph[E], params Params) *Core[E] {
	return WithEdgeFilter(g, params, func(int, int, E) bool { return true })
}

// WithEdgeFilter is like New, but a traversal edge is only followed when
// filter(source, target, payload) returns true. source and target are
// always the un-reversed (logical from, to) pair, even under Reverse --
// the traversal itself flips which adjacency list is walked.
func WithEdgeFilter[E any](g Graph[E], params Params, filter func(source, target int, payload E) bool) *Core[E] {
	n := g.NodeCount()
	included := NewBitset(n)
	queue := make([]int, 0, len(params.Initials))
	for _, v := range params.Initials {
		if !included.Contains(v) {
			included.Set(v)
			queue = append(queue, v)
		}
	}
	for head := 0; head < len(queue); head++ {
		v := queue[head]

		var edges []Edge[E]
		if params.Direction == Forward {
			edges = g.OutEdges(v)
		} else {
			edges = g.InEdges(v)
		}
		for _, e := range edges {
			src, dst := e.From, e.To
			next := e.To
			if params.Direction == Reverse {
				next = e.From
			}
			if !filter(src, dst, e.Payload) {
				continue
			}
			if !included.Contains(next) {
				included.Set(next)
				queue = append(queue, next)
			}
		}
	}
	return &Core[E]{included: included, len: included.Len()}
}

// AllNodes returns a Core containing every node of g.
func AllNodes[E any](g Graph[E]) *Core[E] {
	n := g.NodeCount()
	included := NewBitset(n)
	for i := 0; i < n; i++ {
		included.Set(i)
	}
	return &Core[E]{included: included, len: n}
}

// FromIncluded adopts an externally built bitset as a Core.
func FromIncluded[E any](included *Bitset) *Core[E] {
	return &Core[E]{included: included, len: included.Len()}
}

// Len reports the number of included nodes.
func (c *Core[E]) Len() int { return c.len }

// IsEmpty reports whether no nodes are included.
func (c *Core[E]) IsEmpty() bool { return c.len == 0 }

// Contains reports whether ix is included.
func (c *Core[E]) Contains(ix int) bool { return c.included.Contains(ix) }

// Included exposes the underlying bitset read-only, for callers (such as
// resolve.Set) that need to build a NodeFiltered view over the host graph.
func (c *Core[E]) Included() *Bitset { return c.included }

// UnionWith mutates c to include every node in c or other.
func (c *Core[E]) UnionWith(other *Core[E]) {
	c.included.UnionWith(other.included)
	c.len = c.included.Len()
}

// IntersectWith mutates c to include only nodes present in both c and other.
func (c *Core[E]) IntersectWith(other *Core[E]) {
	c.included.IntersectWith(other.included)
	c.len = c.included.Len()
}

// SymmetricDifferenceWith mutates c to include nodes present in exactly
// one of c and other.
func (c *Core[E]) SymmetricDifferenceWith(other *Core[E]) {
	c.included.SymmetricDifferenceWith(other.included)
	c.len = c.included.Len()
}

// Difference returns a new Core with nodes of c that are not in other.
func (c *Core[E]) Difference(other *Core[E]) *Core[E] {
	diff := c.included.Difference(other.included)
	return &Core[E]{included: diff, len: diff.Len()}
}

// Roots returns the root node indices of this resolved set in the given
// direction; see Externals for the precise semantics.
func (c *Core[E]) Roots(g Graph[E], sccs *SCCs[E], direction Direction) []int {
	return Externals(g, sccs, c.included, direction)
}

// Topo returns a lazy iterator over the included nodes in topological
// order (Forward: leaves-first; Reverse: its mirror). It uses the SCCs of
// the full (unfiltered) graph for speed -- under a custom edge filter the
// order is still a valid topological extension of the unfiltered SCC DAG,
// but may not be optimally tight. See Externals for the same
// documented trade-off.
func (c *Core[E]) Topo(sccs *SCCs[E], direction Direction) *Topo {
	order := sccs.components
	if direction == Reverse {
		order = reversedComponents(order)
	}
	flat := make([]int, 0, len(order))
	for _, comp := range order {
		flat = append(flat, sortedInts(comp)...)
	}
	return &Topo{nodes: flat, included: c.included, remaining: c.len}
}

// Links returns a lazy iterator over (from, to, payload) edges reachable
// by an edge-DFS rooted at this set's externals, in the given direction.
func (c *Core[E]) Links(g Graph[E], sccs *SCCs[E], direction Direction) *Links[E] {
	roots := c.Roots(g, sccs, direction)
	return newLinks(g, c.included, roots, direction)
}

// Topo is a lazy, exact-size iterator over included node indices in
// topological order.
type Topo struct {
	nodes     []int
	pos       int
	included  *Bitset
	remaining int
}

// Next returns the next node index, or ok=false when exhausted.
func (t *Topo) Next() (ix int, ok bool) {
	for t.pos < len(t.nodes) {
		n := t.nodes[t.pos]
		t.pos++
		if !t.included.Contains(n) {
			continue
		}
		t.remaining--
		return n, true
	}
	return 0, false
}

// Remaining reports how many elements are left to yield (exact).
func (t *Topo) Remaining() int { return t.remaining }

// Links is a lazy iterator over edge-DFS-ordered (from, to, payload) triples.
type Links[E any] struct {
	g         Graph[E]
	included  *Bitset
	direction Direction
	visited   *Bitset
	stack     []*linkFrame[E]
}

type linkFrame[E any] struct {
	node  int
	edges []Edge[E]
	pos   int
}

func newLinks[E any](g Graph[E], included *Bitset, roots []int, direction Direction) *Links[E] {
	l := &Links[E]{g: g, included: included, direction: direction, visited: NewBitset(included.n)}
	for _, r := range roots {
		if !l.visited.Contains(r) {
			l.visited.Set(r)
			l.stack = append(l.stack, l.frameFor(r))
		}
	}
	return l
}

func (l *Links[E]) frameFor(node int) *linkFrame[E] {
	if l.direction == Forward {
		return &linkFrame[E]{node: node, edges: l.g.OutEdges(node)}
	}
	return &linkFrame[E]{node: node, edges: l.g.InEdges(node)}
}

// Next returns the next (from, to, payload) triple in logical (un-reversed)
// order, or ok=false when the DFS is exhausted.
func (l *Links[E]) Next() (from, to int, payload E, ok bool) {
	for len(l.stack) > 0 {
		top := l.stack[len(l.stack)-1]
		if top.pos >= len(top.edges) {
			l.stack = l.stack[:len(l.stack)-1]
			continue
		}
		e := top.edges[top.pos]
		top.pos++

		other := e.To
		if l.direction == Reverse {
			other = e.From
		}
		if !l.included.Contains(other) {
			continue
		}
		if !l.visited.Contains(other) {
			l.visited.Set(other)
			l.stack = append(l.stack, l.frameFor(other))
		}
		if l.direction == Forward {
			return top.node, other, e.Payload, true
		}
		return other, top.node, e.Payload, true
	}
	var zero E
	return 0, 0, zero, false
}

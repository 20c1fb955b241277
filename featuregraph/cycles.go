package featuregraph

// Cycles reports on strongly-connected components of a feature graph
// larger than a single node: features that depend, directly or
// transitively, on each other. Such cycles are accepted when the graph is
// built -- for example two mutually linked packages whose named features
// reference each other through "dep/feature" entries -- and this view only
// reports them.
type Cycles struct {
	graph *Graph
}

// NewCycles returns a Cycles view over g.
func NewCycles(g *Graph) Cycles {
	return Cycles{graph: g}
}

// IsCyclic reports whether id participates in a multi-node strongly
// connected component. ok is false if id is unknown.
func (c Cycles) IsCyclic(id FeatureID) (cyclic bool, ok bool) {
	ix, ok := c.graph.Ix(id)
	if !ok {
		return false, false
	}
	sccs := c.graph.SCCs()
	comp := sccs.Components()[sccs.ComponentOf(ix)]
	return len(comp) > 1, true
}

// MembersOf returns every FeatureID in id's strongly connected component
// (including id itself), or ok=false if id is unknown. A non-cyclic
// feature's component contains only itself.
func (c Cycles) MembersOf(id FeatureID) (members []FeatureID, ok bool) {
	ix, ok := c.graph.Ix(id)
	if !ok {
		return nil, false
	}
	sccs := c.graph.SCCs()
	comp := sccs.Components()[sccs.ComponentOf(ix)]
	members = make([]FeatureID, 0, len(comp))
	for _, m := range comp {
		fid, ok := c.graph.FeatureIDAt(m)
		if !ok {
			continue
		}
		members = append(members, fid)
	}
	return members, true
}

// Cycles returns a Cycles view of g.
func (g *Graph) Cycles() Cycles {
	return NewCycles(g)
}

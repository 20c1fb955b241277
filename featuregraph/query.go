package featuregraph

import (
	"github.com/vorenkamp/featuregraph/reach"
	"github.com/vorenkamp/featuregraph/resolve"
	"github.com/vorenkamp/featuregraph/resolver"
)

// FeatureResolver lets a caller accept or reject individual feature edges
// while resolving a query into a FeatureSet.
type FeatureResolver = resolver.Resolver[*Query, FeatureEdge]

// Query describes a pending feature resolution: a direction and an
// initial frontier of features.
type Query struct {
	graph     *Graph
	direction reach.Direction
	initials  []int
}

// QueryForward builds a forward feature query (follow feature
// dependencies) from the given starting features.
func (g *Graph) QueryForward(ids ...FeatureID) (*Query, error) {
	return g.newQuery(reach.Forward, ids)
}

// QueryReverse builds a reverse feature query (follow feature dependents)
// from the given starting features.
func (g *Graph) QueryReverse(ids ...FeatureID) (*Query, error) {
	return g.newQuery(reach.Reverse, ids)
}

func (g *Graph) newQuery(direction reach.Direction, ids []FeatureID) (*Query, error) {
	initials := make([]int, 0, len(ids))
	for _, id := range ids {
		ix, ok := g.Ix(id)
		if !ok {
			return nil, newUnknownFeatureIDError(id)
		}
		initials = append(initials, ix)
	}
	return &Query{graph: g, direction: direction, initials: initials}, nil
}

// Resolve computes the FeatureSet reachable from this query's initial
// frontier, in its direction.
func (q *Query) Resolve() *FeatureSet {
	core := reach.New[FeatureEdge](q.graph, reach.Params{Direction: q.direction, Initials: q.initials})
	return newFeatureSet(q.graph, core)
}

// ResolveWith is like Resolve, but a feature edge is only followed when
// r.Accept returns true for it.
func (q *Query) ResolveWith(r FeatureResolver) *FeatureSet {
	core := reach.WithEdgeFilter[FeatureEdge](q.graph, reach.Params{Direction: q.direction, Initials: q.initials},
		func(_, _ int, edge FeatureEdge) bool {
			return r.Accept(q, edge)
		})
	return newFeatureSet(q.graph, core)
}

// ResolveAll returns a FeatureSet containing every feature in the graph.
func (g *Graph) ResolveAll() *FeatureSet {
	return newFeatureSet(g, reach.AllNodes[FeatureEdge](g))
}

func newFeatureSet(g *Graph, core *reach.Core[FeatureEdge]) *FeatureSet {
	return &FeatureSet{
		graph: g,
		set:   resolve.New[*FeatureMetadata, FeatureEdge](g, viewAdapter{g: g}, core),
	}
}

// FeatureSet is a resolved, direction-agnostic set of features: the
// result of a Query or of ResolveAll.
type FeatureSet struct {
	graph *Graph
	set   *resolve.Set[*FeatureMetadata, FeatureEdge]
}

// Len returns the number of features in this set.
func (s *FeatureSet) Len() int { return s.set.Len() }

// IsEmpty reports whether this set has no features.
func (s *FeatureSet) IsEmpty() bool { return s.set.IsEmpty() }

// Contains reports whether id is in this set, or ok=false if id is not a
// feature of the underlying graph at all.
func (s *FeatureSet) Contains(id FeatureID) (contained bool, ok bool) {
	ix, ok := s.graph.Ix(id)
	if !ok {
		return false, false
	}
	return s.set.ContainsIx(ix), true
}

// Union returns the set of features in s or other.
func (s *FeatureSet) Union(other *FeatureSet) *FeatureSet {
	return &FeatureSet{graph: s.graph, set: s.set.Union(other.set)}
}

// Intersection returns the set of features in both s and other.
func (s *FeatureSet) Intersection(other *FeatureSet) *FeatureSet {
	return &FeatureSet{graph: s.graph, set: s.set.Intersection(other.set)}
}

// Difference returns the set of features in s but not other.
func (s *FeatureSet) Difference(other *FeatureSet) *FeatureSet {
	return &FeatureSet{graph: s.graph, set: s.set.Difference(other.set)}
}

// SymmetricDifference returns the set of features in exactly one of s and other.
func (s *FeatureSet) SymmetricDifference(other *FeatureSet) *FeatureSet {
	return &FeatureSet{graph: s.graph, set: s.set.SymmetricDifference(other.set)}
}

// FeatureIDs returns every feature ID in this set, in topological order.
func (s *FeatureSet) FeatureIDs(direction reach.Direction) []FeatureID {
	metas := s.set.Items(direction)
	out := make([]FeatureID, len(metas))
	for i, m := range metas {
		out[i] = m.ID()
	}
	return out
}

// Features returns every feature's metadata in this set, in topological order.
func (s *FeatureSet) Features(direction reach.Direction) []*FeatureMetadata {
	return s.set.Items(direction)
}

// RootIDs returns the root feature IDs in the given direction.
func (s *FeatureSet) RootIDs(direction reach.Direction) []FeatureID {
	metas := s.set.RootItems(direction)
	out := make([]FeatureID, len(metas))
	for i, m := range metas {
		out[i] = m.ID()
	}
	return out
}

// ToPackageSet projects this feature set down to the set of packages
// that own at least one feature in it.
func (s *FeatureSet) ToPackageSet() *pkgSetProjection {
	seen := make(map[int]struct{})
	ixs := s.set.Ixs(reach.Forward)
	for {
		ix, ok := ixs.Next()
		if !ok {
			break
		}
		node := s.graph.nodes[ix]
		seen[node.packageIx] = struct{}{}
	}
	return &pkgSetProjection{packageIxs: seen}
}

// pkgSetProjection is the set of package indices backing a feature set;
// exposed as a minimal read-only view rather than a full PackageSet,
// since a feature-derived package set has no single resolution direction
// of its own to drive a further pkggraph query.
type pkgSetProjection struct {
	packageIxs map[int]struct{}
}

// Len returns the number of distinct packages represented.
func (p *pkgSetProjection) Len() int { return len(p.packageIxs) }

// ContainsPackageIx reports whether packageIx is represented.
func (p *pkgSetProjection) ContainsPackageIx(packageIx int) bool {
	_, ok := p.packageIxs[packageIx]
	return ok
}

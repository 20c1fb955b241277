package pkggraph

import (
	"github.com/vorenkamp/featuregraph/reach"
	"github.com/vorenkamp/featuregraph/resolve"
	"github.com/vorenkamp/featuregraph/resolver"
)

// PackageResolver lets a caller accept or reject individual links while
// resolving a query into a PackageSet.
type PackageResolver = resolver.Resolver[*Query, PackageLink]

// ResolverFunc adapts a plain function to PackageResolver.
type ResolverFunc = resolver.Func[*Query, PackageLink]

// Query describes a pending resolution: a direction and an initial
// frontier of packages.
type Query struct {
	graph     *Graph
	direction reach.Direction
	initials  []int
}

// QueryForward builds a forward query (follow dependencies) from the
// given starting packages.
func (g *Graph) QueryForward(ids ...PackageID) (*Query, error) {
	return g.newQuery(reach.Forward, ids)
}

// QueryReverse builds a reverse query (follow dependents) from the given
// starting packages.
func (g *Graph) QueryReverse(ids ...PackageID) (*Query, error) {
	return g.newQuery(reach.Reverse, ids)
}

func (g *Graph) newQuery(direction reach.Direction, ids []PackageID) (*Query, error) {
	initials := make([]int, 0, len(ids))
	for _, id := range ids {
		ix, ok := g.PackageIx(id)
		if !ok {
			return nil, ErrPackageNotFound
		}
		initials = append(initials, ix)
	}
	return &Query{graph: g, direction: direction, initials: initials}, nil
}

// Resolve computes the PackageSet reachable from this query's initial
// frontier, in its direction.
func (q *Query) Resolve() *PackageSet {
	core := reach.New[PackageLink](q.graph, reach.Params{Direction: q.direction, Initials: q.initials})
	return newPackageSet(q.graph, core)
}

// ResolveWith is like Resolve, but a link is only followed when r.Accept
// returns true for it.
func (q *Query) ResolveWith(r PackageResolver) *PackageSet {
	core := reach.WithEdgeFilter[PackageLink](q.graph, reach.Params{Direction: q.direction, Initials: q.initials},
		func(_, _ int, link PackageLink) bool {
			return r.Accept(q, link)
		})
	return newPackageSet(q.graph, core)
}

// ResolveAll returns a PackageSet containing every package in the graph.
func (g *Graph) ResolveAll() *PackageSet {
	return newPackageSet(g, reach.AllNodes[PackageLink](g))
}

func newPackageSet(g *Graph, core *reach.Core[PackageLink]) *PackageSet {
	return &PackageSet{
		graph: g,
		set:   resolve.New[*PackageMetadata, PackageLink](g, viewAdapter{g: g}, core),
	}
}

// PackageSet is a resolved, direction-agnostic set of packages: the
// result of a Query or of ResolveAll.
type PackageSet struct {
	graph *Graph
	set   *resolve.Set[*PackageMetadata, PackageLink]
}

// Len returns the number of packages in this set.
func (s *PackageSet) Len() int { return s.set.Len() }

// IsEmpty reports whether this set has no packages.
func (s *PackageSet) IsEmpty() bool { return s.set.IsEmpty() }

// Contains reports whether id is in this set, or ok=false if id is not a
// package of the underlying graph at all.
func (s *PackageSet) Contains(id PackageID) (contained bool, ok bool) {
	ix, ok := s.graph.PackageIx(id)
	if !ok {
		return false, false
	}
	return s.set.ContainsIx(ix), true
}

// Union returns the set of packages in s or other. Panics if s and other
// were resolved against different graphs.
func (s *PackageSet) Union(other *PackageSet) *PackageSet {
	return &PackageSet{graph: s.graph, set: s.set.Union(other.set)}
}

// Intersection returns the set of packages in both s and other.
func (s *PackageSet) Intersection(other *PackageSet) *PackageSet {
	return &PackageSet{graph: s.graph, set: s.set.Intersection(other.set)}
}

// Difference returns the set of packages in s but not other.
func (s *PackageSet) Difference(other *PackageSet) *PackageSet {
	return &PackageSet{graph: s.graph, set: s.set.Difference(other.set)}
}

// SymmetricDifference returns the set of packages in exactly one of s and other.
func (s *PackageSet) SymmetricDifference(other *PackageSet) *PackageSet {
	return &PackageSet{graph: s.graph, set: s.set.SymmetricDifference(other.set)}
}

// PackageIDs returns every package ID in this set, in topological order.
func (s *PackageSet) PackageIDs(direction reach.Direction) []PackageID {
	metas := s.set.Items(direction)
	out := make([]PackageID, len(metas))
	for i, m := range metas {
		out[i] = m.ID()
	}
	return out
}

// Packages returns every package's metadata in this set, in topological order.
func (s *PackageSet) Packages(direction reach.Direction) []*PackageMetadata {
	return s.set.Items(direction)
}

// RootIDs returns the root package IDs in the given direction.
func (s *PackageSet) RootIDs(direction reach.Direction) []PackageID {
	metas := s.set.RootItems(direction)
	out := make([]PackageID, len(metas))
	for i, m := range metas {
		out[i] = m.ID()
	}
	return out
}

// RootPackages returns the root packages' metadata in the given direction.
func (s *PackageSet) RootPackages(direction reach.Direction) []*PackageMetadata {
	return s.set.RootItems(direction)
}

// Links drains the edge-DFS-ordered links of this set in the given
// direction into a slice. See LinkIter for the lazy form.
func (s *PackageSet) Links(direction reach.Direction) []PackageLink {
	it := s.LinkIter(direction)
	var out []PackageLink
	for {
		l, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, l)
	}
	return out
}

// LinkIter returns a lazy iterator over this set's links, in edge-DFS order.
func (s *PackageSet) LinkIter(direction reach.Direction) *LinkIter {
	return &LinkIter{inner: s.set.Links(direction)}
}

// LinkIter lazily yields PackageLink values in edge-DFS order.
type LinkIter struct {
	inner *reach.Links[PackageLink]
}

// Next returns the next link, or ok=false when exhausted.
func (it *LinkIter) Next() (PackageLink, bool) {
	_, _, payload, ok := it.inner.Next()
	return payload, ok
}

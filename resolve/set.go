// Package resolve provides the generic resolved-set wrapper used by both
// the package graph and the feature graph: a bitset of reachable nodes for
// one concrete graph, plus set algebra, root enumeration, and topological /
// edge iteration. See reach for the underlying reachability kernel.
package resolve

import (
	"fmt"

	"github.com/vorenkamp/featuregraph/reach"
)

// View is the capability a host graph exposes so a generic Set can turn
// raw node indices back into domain metadata and drive Roots/Topo/Links.
type View[N, E any] interface {
	Graph() reach.Graph[E]
	SCCs() *reach.SCCs[E]
	Metadata(ix int) (N, bool)
}

// Set wraps a reach.Core for one concrete graph (identified by identity,
// an opaque comparable token -- in practice the host graph's pointer) and
// exposes set algebra and iteration over it.
type Set[N, E any] struct {
	identity any
	view     View[N, E]
	core     *reach.Core[E]
}

// New wraps an already-computed Core for the given view/identity.
func New[N, E any](identity any, view View[N, E], core *reach.Core[E]) *Set[N, E] {
	return &Set[N, E]{identity: identity, view: view, core: core}
}

// Len returns the number of nodes in this set.
func (s *Set[N, E]) Len() int { return s.core.Len() }

// IsEmpty reports whether this set has no nodes.
func (s *Set[N, E]) IsEmpty() bool { return s.core.IsEmpty() }

// ContainsIx reports whether node index ix belongs to this set.
func (s *Set[N, E]) ContainsIx(ix int) bool { return s.core.Contains(ix) }

func (s *Set[N, E]) assertSameGraph(other *Set[N, E]) {
	if s.identity != other.identity {
		panic(fmt.Sprintf("resolve: set operation across different graphs (%v vs %v)", s.identity, other.identity))
	}
}

// Union returns a Set containing every node present in s or other. Panics
// if s and other were resolved against different graphs.
func (s *Set[N, E]) Union(other *Set[N, E]) *Set[N, E] {
	s.assertSameGraph(other)
	res := reach.FromIncluded[E](s.core.Included().Clone())
	res.UnionWith(other.core)
	return &Set[N, E]{identity: s.identity, view: s.view, core: res}
}

// Intersection returns a Set containing every node present in both s and other.
func (s *Set[N, E]) Intersection(other *Set[N, E]) *Set[N, E] {
	s.assertSameGraph(other)
	res := reach.FromIncluded[E](s.core.Included().Clone())
	res.IntersectWith(other.core)
	return &Set[N, E]{identity: s.identity, view: s.view, core: res}
}

// Difference returns a Set containing nodes present in s but not other.
func (s *Set[N, E]) Difference(other *Set[N, E]) *Set[N, E] {
	s.assertSameGraph(other)
	return &Set[N, E]{identity: s.identity, view: s.view, core: s.core.Difference(other.core)}
}

// SymmetricDifference returns a Set containing nodes present in exactly
// one of s and other.
func (s *Set[N, E]) SymmetricDifference(other *Set[N, E]) *Set[N, E] {
	s.assertSameGraph(other)
	res := reach.FromIncluded[E](s.core.Included().Clone())
	res.SymmetricDifferenceWith(other.core)
	return &Set[N, E]{identity: s.identity, view: s.view, core: res}
}

// Ixs returns a lazy iterator over included node indices in topological order.
func (s *Set[N, E]) Ixs(direction reach.Direction) *reach.Topo {
	return s.core.Topo(s.view.SCCs(), direction)
}

// Items returns the metadata of every included node, in topological order.
func (s *Set[N, E]) Items(direction reach.Direction) []N {
	topo := s.Ixs(direction)
	out := make([]N, 0, topo.Remaining())
	for {
		ix, ok := topo.Next()
		if !ok {
			break
		}
		n, found := s.view.Metadata(ix)
		if !found {
			panic(fmt.Sprintf("resolve: node %d missing metadata", ix))
		}
		out = append(out, n)
	}
	return out
}

// RootIxs returns the root node indices in the given direction.
func (s *Set[N, E]) RootIxs(direction reach.Direction) []int {
	return s.core.Roots(s.view.Graph(), s.view.SCCs(), direction)
}

// RootItems returns the metadata of every root node in the given direction.
func (s *Set[N, E]) RootItems(direction reach.Direction) []N {
	ixs := s.RootIxs(direction)
	out := make([]N, 0, len(ixs))
	for _, ix := range ixs {
		n, found := s.view.Metadata(ix)
		if !found {
			panic(fmt.Sprintf("resolve: node %d missing metadata", ix))
		}
		out = append(out, n)
	}
	return out
}

// Links returns a lazy iterator over (from, to, payload) edges in the
// given direction.
func (s *Set[N, E]) Links(direction reach.Direction) *reach.Links[E] {
	return s.core.Links(s.view.Graph(), s.view.SCCs(), direction)
}

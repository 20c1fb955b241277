package pkggraph

import (
	"sync"

	"github.com/vorenkamp/featuregraph/reach"
	"github.com/vorenkamp/featuregraph/resolve"
)

// Graph is an immutable, Builder-produced package dependency graph: dense
// package indices [0, PackageCount()), each with its declared features and
// optional deps, and directed links carrying per-kind dependency requests.
//
// Its SCCs are computed lazily behind a sync.Once on first query and then
// memoised -- the single-write, many-read initialisation this module's
// lazily built structures all use.
type Graph struct {
	packages []*PackageMetadata
	idIndex  map[PackageID]int
	links    []*PackageLink

	outEdges [][]int // package ix -> indices into links
	inEdges  [][]int

	sccsOnce sync.Once
	sccs     *reach.SCCs[PackageLink]
}

// PackageCount returns the number of packages in the graph.
func (g *Graph) PackageCount() int { return len(g.packages) }

// Packages returns every package's metadata, in index order.
func (g *Graph) Packages() []*PackageMetadata { return g.packages }

// Metadata returns the metadata for id, or ok=false if id is unknown.
func (g *Graph) Metadata(id PackageID) (*PackageMetadata, bool) {
	ix, ok := g.idIndex[id]
	if !ok {
		return nil, false
	}
	return g.packages[ix], true
}

// MetadataAt implements resolve.View's node lookup, by index rather than ID.
func (g *Graph) MetadataAt(ix int) (*PackageMetadata, bool) {
	if ix < 0 || ix >= len(g.packages) {
		return nil, false
	}
	return g.packages[ix], true
}

// PackageIx returns the dense index of id, or ok=false if unknown.
func (g *Graph) PackageIx(id PackageID) (int, bool) {
	ix, ok := g.idIndex[id]
	return ix, ok
}

// Link returns the full PackageLink metadata for a link originally
// reported by the reachability kernel as a bare payload.
func (g *Graph) Link(ix int) *PackageLink { return g.links[ix] }

// DirectLinksFrom returns every link whose source is the package at ix,
// in declaration order.
func (g *Graph) DirectLinksFrom(ix int) []*PackageLink {
	idxs := g.outEdges[ix]
	out := make([]*PackageLink, len(idxs))
	for i, li := range idxs {
		out[i] = g.links[li]
	}
	return out
}

// --- reach.Graph[PackageLink] ---

// NodeCount implements reach.Graph.
func (g *Graph) NodeCount() int { return len(g.packages) }

// OutEdges implements reach.Graph.
func (g *Graph) OutEdges(ix int) []reach.Edge[PackageLink] {
	idxs := g.outEdges[ix]
	out := make([]reach.Edge[PackageLink], len(idxs))
	for i, li := range idxs {
		l := g.links[li]
		out[i] = reach.Edge[PackageLink]{Ix: li, From: l.FromIx, To: l.ToIx, Payload: *l}
	}
	return out
}

// InEdges implements reach.Graph.
func (g *Graph) InEdges(ix int) []reach.Edge[PackageLink] {
	idxs := g.inEdges[ix]
	out := make([]reach.Edge[PackageLink], len(idxs))
	for i, li := range idxs {
		l := g.links[li]
		out[i] = reach.Edge[PackageLink]{Ix: li, From: l.FromIx, To: l.ToIx, Payload: *l}
	}
	return out
}

// SCCs returns the graph's strongly connected components, computing them
// on the first call and reusing the result thereafter.
func (g *Graph) SCCs() *reach.SCCs[PackageLink] {
	g.sccsOnce.Do(func() {
		g.sccs = reach.NewSCCs[PackageLink](g)
	})
	return g.sccs
}

// --- resolve.View[*PackageMetadata, PackageLink] ---

// viewAdapter implements resolve.View for a Graph; it exists separately
// from Graph because resolve.View.Metadata takes a node index, while
// Graph.Metadata (above) is keyed by PackageID for direct callers.
type viewAdapter struct{ g *Graph }

func (v viewAdapter) Graph() reach.Graph[PackageLink]    { return v.g }
func (v viewAdapter) SCCs() *reach.SCCs[PackageLink]     { return v.g.SCCs() }
func (v viewAdapter) Metadata(ix int) (*PackageMetadata, bool) { return v.g.MetadataAt(ix) }

var _ resolve.View[*PackageMetadata, PackageLink] = viewAdapter{}

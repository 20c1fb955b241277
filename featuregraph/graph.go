package featuregraph

import (
	"sync"

	"github.com/vorenkamp/featuregraph/pkggraph"
	"github.com/vorenkamp/featuregraph/reach"
	"github.com/vorenkamp/featuregraph/resolve"
)

// Graph is a derived graph representing every feature of every package
// in a pkggraph.Graph, and the dependency edges between them. Build it
// once with New and reuse it -- its SCCs are memoised lazily behind a
// sync.Once, the same single-write, many-read pattern pkggraph.Graph
// uses for its own SCCs.
type Graph struct {
	pg *pkggraph.Graph

	nodes   []featureNode
	types   []FeatureType
	byNode  map[featureNode]int
	baseIxs []int // len == pg.PackageCount()+1
	warns   []Warning

	outEdges [][]int
	inEdges  [][]int
	edges    []builtEdge

	sccsOnce sync.Once
	sccs     *reach.SCCs[FeatureEdge]
}

// New derives a feature Graph from pg. Construction happens in three
// passes: every feature node is added first (in package-index order, so
// base_ixs stays monotonic), then each named feature's own declared
// feature dependencies are wired, then each package link's dependency-
// unification edges are wired.
func New(pg *pkggraph.Graph) *Graph {
	b := newBuildState(pg)

	for _, pkg := range pg.Packages() {
		b.addNodes(pkg)
	}
	b.endNodes()

	for _, pkg := range pg.ResolveAll().Packages(reach.Reverse) {
		b.addNamedFeatureEdges(pkg)
	}
	for _, link := range pg.ResolveAll().Links(reach.Reverse) {
		b.addDependencyEdges(&link)
	}

	n := len(b.nodes)
	g := &Graph{
		pg:       pg,
		nodes:    b.nodes,
		types:    b.types,
		byNode:   b.byNode,
		baseIxs:  b.baseIxs,
		warns:    b.warnings,
		outEdges: make([][]int, n),
		inEdges:  make([][]int, n),
		edges:    b.edges,
	}
	for i, e := range b.edges {
		g.outEdges[e.from] = append(g.outEdges[e.from], i)
		g.inEdges[e.to] = append(g.inEdges[e.to], i)
	}
	return g
}

// PackageGraph returns the package graph this feature graph was derived from.
func (g *Graph) PackageGraph() *pkggraph.Graph { return g.pg }

// Warnings returns the non-fatal issues found while deriving this graph.
func (g *Graph) Warnings() []Warning { return g.warns }

// FeatureCount returns the total number of (package, feature) nodes,
// including each package's base feature.
func (g *Graph) FeatureCount() int { return len(g.nodes) }

// LinkCount returns the number of edges in the graph.
func (g *Graph) LinkCount() int { return len(g.edges) }

// Ix returns the dense node index for id, or ok=false if id names a
// package or feature this graph doesn't know about.
func (g *Graph) Ix(id FeatureID) (ix int, ok bool) {
	packageIx, ok := g.pg.PackageIx(id.Package)
	if !ok {
		return 0, false
	}
	if id.IsBase() {
		node := baseFeatureNode(packageIx)
		ix, ok = g.byNode[node]
		return ix, ok
	}
	meta, ok := g.pg.MetadataAt(packageIx)
	if !ok {
		return 0, false
	}
	featureIdx, ok := meta.GetFeatureIdx(id.Feature)
	if !ok {
		return 0, false
	}
	ix, ok = g.byNode[namedFeatureNode(packageIx, featureIdx)]
	return ix, ok
}

// FeatureIDAt returns the FeatureID for node index ix.
func (g *Graph) FeatureIDAt(ix int) (FeatureID, bool) {
	if ix < 0 || ix >= len(g.nodes) {
		return FeatureID{}, false
	}
	node := g.nodes[ix]
	meta, ok := g.pg.MetadataAt(node.packageIx)
	if !ok {
		return FeatureID{}, false
	}
	if node.featureIdx == baseFeatureIdx {
		return BaseFeatureID(meta.ID()), true
	}
	name, ok := meta.FeatureIdxToName(node.featureIdx)
	if !ok {
		return FeatureID{}, false
	}
	return NewFeatureID(meta.ID(), name), true
}

// Metadata implements resolve.View's node lookup, by index.
func (g *Graph) Metadata(ix int) (*FeatureMetadata, bool) {
	id, ok := g.FeatureIDAt(ix)
	if !ok {
		return nil, false
	}
	return &FeatureMetadata{id: id, featureType: g.types[ix], ix: ix}, true
}

// MetadataFor returns the metadata for a FeatureID, or ok=false if unknown.
func (g *Graph) MetadataFor(id FeatureID) (*FeatureMetadata, bool) {
	ix, ok := g.Ix(id)
	if !ok {
		return nil, false
	}
	return g.Metadata(ix)
}

// FeatureIxsForPackage returns the dense node indices of every feature
// (including the base feature) of the package at packageIx.
func (g *Graph) FeatureIxsForPackage(packageIx int) []int {
	start, end := g.baseIxs[packageIx], g.baseIxs[packageIx+1]
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// --- reach.Graph[FeatureEdge] ---

// NodeCount implements reach.Graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// OutEdges implements reach.Graph.
func (g *Graph) OutEdges(ix int) []reach.Edge[FeatureEdge] {
	idxs := g.outEdges[ix]
	out := make([]reach.Edge[FeatureEdge], len(idxs))
	for i, ei := range idxs {
		e := g.edges[ei]
		out[i] = reach.Edge[FeatureEdge]{Ix: ei, From: e.from, To: e.to, Payload: e.edge}
	}
	return out
}

// InEdges implements reach.Graph.
func (g *Graph) InEdges(ix int) []reach.Edge[FeatureEdge] {
	idxs := g.inEdges[ix]
	out := make([]reach.Edge[FeatureEdge], len(idxs))
	for i, ei := range idxs {
		e := g.edges[ei]
		out[i] = reach.Edge[FeatureEdge]{Ix: ei, From: e.from, To: e.to, Payload: e.edge}
	}
	return out
}

// SCCs returns the graph's strongly connected components, computed once
// and memoised.
func (g *Graph) SCCs() *reach.SCCs[FeatureEdge] {
	g.sccsOnce.Do(func() {
		g.sccs = reach.NewSCCs[FeatureEdge](g)
	})
	return g.sccs
}

// --- resolve.View[*FeatureMetadata, FeatureEdge] ---

type viewAdapter struct{ g *Graph }

func (v viewAdapter) Graph() reach.Graph[FeatureEdge] { return v.g }
func (v viewAdapter) SCCs() *reach.SCCs[FeatureEdge]  { return v.g.SCCs() }
func (v viewAdapter) Metadata(ix int) (*FeatureMetadata, bool) { return v.g.Metadata(ix) }

var _ resolve.View[*FeatureMetadata, FeatureEdge] = viewAdapter{}

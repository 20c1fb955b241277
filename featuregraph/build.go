package featuregraph

import (
	"fmt"
	"strings"

	"github.com/vorenkamp/featuregraph/pkggraph"
	"github.com/vorenkamp/featuregraph/platform"
)

// buildState accumulates feature nodes and edges while deriving a Graph
// from a pkggraph.Graph. It mirrors the three-phase construction the
// package graph's links are unified into: add every node first, then
// wire named-feature edges, then wire dependency-unification edges --
// later phases need every node to already exist so edges can be looked
// up rather than created on demand.
type buildState struct {
	pg *pkggraph.Graph

	nodes    []featureNode
	types    []FeatureType
	byNode   map[featureNode]int
	baseIxs  []int // baseIxs[packageIx] is the ix of that package's base node; len == packageCount+1
	warnings []Warning

	edgeIx map[[2]int]int // (from,to) -> index into edges, for update-in-place semantics
	edges  []builtEdge
}

type builtEdge struct {
	from, to int
	edge     FeatureEdge
}

func newBuildState(pg *pkggraph.Graph) *buildState {
	n := pg.PackageCount()
	return &buildState{
		pg:      pg,
		byNode:  make(map[featureNode]int, n),
		baseIxs: make([]int, 0, n+1),
		edgeIx:  make(map[[2]int]int),
	}
}

func (b *buildState) addNode(node featureNode, ft FeatureType) int {
	ix := len(b.nodes)
	b.nodes = append(b.nodes, node)
	b.types = append(b.types, ft)
	b.byNode[node] = ix
	return ix
}

// addNodes adds a base node, one node per named feature, and one node
// per optional dep for pkg, plus FeatureToBase edges from each to base.
func (b *buildState) addNodes(pkg *pkggraph.PackageMetadata) {
	baseNode := baseFeatureNode(pkg.PackageIx())
	baseIx := b.addNode(baseNode, BasePackage)
	b.baseIxs = append(b.baseIxs, baseIx)

	for _, nf := range pkg.NamedFeaturesFull() {
		fIx := b.addNode(namedFeatureNode(pkg.PackageIx(), nf.Idx), NamedFeature)
		b.addSingleEdge(fIx, baseIx, FeatureEdge{Kind: FeatureToBase})
	}
	for _, od := range pkg.OptionalDepsFull() {
		combinedIdx := len(pkg.NamedFeaturesFull()) + od.Idx
		fIx := b.addNode(namedFeatureNode(pkg.PackageIx(), combinedIdx), OptionalDep)
		b.addSingleEdge(fIx, baseIx, FeatureEdge{Kind: FeatureToBase})
	}
}

func (b *buildState) endNodes() {
	b.baseIxs = append(b.baseIxs, len(b.nodes))
}

// splitFeatureDep splits "foo" into (nil, "foo") and "dep/foo" into
// (&"dep", "foo").
func splitFeatureDep(featureDep string) (depName *string, toFeature string) {
	if i := strings.LastIndexByte(featureDep, '/'); i >= 0 {
		d := featureDep[:i]
		return &d, featureDep[i+1:]
	}
	return nil, featureDep
}

// addNamedFeatureEdges wires a named feature's own declared feature
// dependencies (the ["b", "dep/feat"] entries of a [features] table).
func (b *buildState) addNamedFeatureEdges(pkg *pkggraph.PackageMetadata) {
	depNameToLink := make(map[string]*pkggraph.PackageLink)
	for _, l := range b.pg.DirectLinksFrom(pkg.PackageIx()) {
		depNameToLink[l.DepName] = l
	}

	for _, nf := range pkg.NamedFeaturesFull() {
		fromNode := namedFeatureNode(pkg.PackageIx(), nf.Idx)
		var toNodes []featureNode
		for _, raw := range nf.Deps {
			depName, toFeature := splitFeatureDep(raw)
			if depName == nil {
				toIdx, ok := pkg.GetFeatureIdx(toFeature)
				if !ok {
					b.warnings = append(b.warnings, Warning{
						Stage: AddNamedFeatureEdges, FromPackage: pkg.ID(), FromFeature: nf.Name,
						ToPackage: pkg.ID(), FeatureName: toFeature,
					})
					continue
				}
				toNodes = append(toNodes, namedFeatureNode(pkg.PackageIx(), toIdx))
				continue
			}
			link, ok := depNameToLink[*depName]
			if !ok {
				// Unresolved dependency: not included, silently dropped.
				continue
			}
			toMeta, ok := b.pg.MetadataAt(link.ToIx)
			if !ok {
				continue
			}
			toIdx, ok := toMeta.GetFeatureIdx(toFeature)
			if !ok {
				b.warnings = append(b.warnings, Warning{
					Stage: AddNamedFeatureEdges, FromPackage: pkg.ID(), FromFeature: nf.Name,
					ToPackage: toMeta.ID(), FeatureName: toFeature,
				})
				continue
			}
			toNodes = append(toNodes, namedFeatureNode(link.ToIx, toIdx))
		}
		for _, toNode := range toNodes {
			b.addEdge(fromNode, toNode, FeatureEdge{Kind: FeatureDependency})
		}
	}
}

// addDependencyEdges wires the feature-unification edges for one package
// link: a required edge from the base feature of link.From to whatever
// features link.To must build, and (only if any instance of this
// dependency is optional) an optional edge from the optional-dep
// pseudo-feature to the features that line enables.
func (b *buildState) addDependencyEdges(link *pkggraph.PackageLink) {
	fromMeta, ok := b.pg.MetadataAt(link.FromIx)
	if !ok {
		return
	}
	toMeta, ok := b.pg.MetadataAt(link.ToIx)
	if !ok {
		return
	}

	required := newFeatureReq(toMeta)
	optional := newFeatureReq(toMeta)

	required.addFeaturesFrom(depNormal, link.Normal.Required, &b.warnings, fromMeta, link.DepName)
	required.addFeaturesFrom(depBuild, link.Build.Required, &b.warnings, fromMeta, link.DepName)
	required.addFeaturesFrom(depDev, link.Dev.Required, &b.warnings, fromMeta, link.DepName)
	optional.addFeaturesFrom(depNormal, link.Normal.Optional, &b.warnings, fromMeta, link.DepName)
	optional.addFeaturesFrom(depBuild, link.Build.Optional, &b.warnings, fromMeta, link.DepName)
	optional.addFeaturesFrom(depDev, link.Dev.Optional, &b.warnings, fromMeta, link.DepName)

	baseFrom := baseFeatureNode(link.FromIx)
	for featureIdx, state := range required.features {
		toNode := featureNodeFor(link.ToIx, featureIdx)
		b.addEdge(baseFrom, toNode, state.finish())
	}

	if len(optional.features) > 0 {
		depIdx, ok := fromMeta.GetFeatureIdx(link.DepName)
		if !ok {
			panic(fmt.Sprintf("featuregraph: optional dependency request on link %s -> %q but %q is not a feature of %s",
				fromMeta.ID(), link.DepName, link.DepName, fromMeta.ID()))
		}
		fromNode := namedFeatureNode(link.FromIx, depIdx)
		for featureIdx, state := range optional.features {
			toNode := featureNodeFor(link.ToIx, featureIdx)
			b.addEdge(fromNode, toNode, state.finish())
		}
	}
}

func featureNodeFor(packageIx int, featureIdx int) featureNode {
	if featureIdx == baseFeatureIdx {
		return baseFeatureNode(packageIx)
	}
	return namedFeatureNode(packageIx, featureIdx)
}

func (b *buildState) addSingleEdge(fromIx, toIx int, edge FeatureEdge) {
	key := [2]int{fromIx, toIx}
	if i, ok := b.edgeIx[key]; ok {
		b.edges[i].edge = edge
		return
	}
	b.edgeIx[key] = len(b.edges)
	b.edges = append(b.edges, builtEdge{from: fromIx, to: toIx, edge: edge})
}

func (b *buildState) addEdge(from, to featureNode, edge FeatureEdge) {
	fromIx, ok := b.byNode[from]
	if !ok {
		panic("featuregraph: missing 'from' node while adding feature edges")
	}
	toIx, ok := b.byNode[to]
	if !ok {
		panic("featuregraph: missing 'to' node while adding feature edges")
	}
	b.addSingleEdge(fromIx, toIx, edge)
}

// featureReq accumulates, for one package link and one unification pass
// (required or optional), the per-feature platform statuses across the
// three dependency kinds, so that multiple [dependencies]/[build-
// dependencies]/[dev-dependencies] stanzas collapse into a single edge
// per destination feature.
type featureReq struct {
	to            *pkggraph.PackageMetadata
	toDefaultIdx  int
	hasDefaultIdx bool
	features      map[int]*dependencyBuildState // keyed by feature idx, baseFeatureIdx for base
}

func newFeatureReq(to *pkggraph.PackageMetadata) *featureReq {
	idx, ok := to.DefaultFeatureIdx()
	return &featureReq{to: to, toDefaultIdx: idx, hasDefaultIdx: ok, features: make(map[int]*dependencyBuildState)}
}

type depKind int

const (
	depNormal depKind = iota
	depBuild
	depDev
)

func (r *featureReq) extend(featureIdx int, hasFeature bool, kind depKind, status platform.Status) {
	if status.IsNever() {
		return
	}
	idx := baseFeatureIdx
	if hasFeature {
		idx = featureIdx
	}
	state, ok := r.features[idx]
	if !ok {
		state = &dependencyBuildState{}
		r.features[idx] = state
	}
	state.extend(kind, status)
}

// addFeaturesFrom processes one SubRequest (the required or optional half
// of a DependencyReq for one dependency kind) across all three of its
// sub-fields: BuildIf (base), DefaultFeaturesIf (default feature), and
// FeatureTargets (named features).
func (r *featureReq) addFeaturesFrom(kind depKind, sub pkggraph.SubRequest, warnings *[]Warning, from *pkggraph.PackageMetadata, depName string) {
	r.extend(baseFeatureIdx, true, kind, sub.BuildIf)
	r.extend(r.toDefaultIdx, r.hasDefaultIdx, kind, sub.DefaultFeaturesIf)

	for feature, status := range sub.FeatureTargets {
		idx, ok := r.to.GetFeatureIdx(feature)
		if !ok {
			*warnings = append(*warnings, Warning{
				Stage: AddDependencyEdges, FromPackage: from.ID(), FromFeature: depName,
				ToPackage: r.to.ID(), FeatureName: feature,
			})
			continue
		}
		r.extend(idx, true, kind, status)
	}
}

// dependencyBuildState unifies the normal/build/dev platform statuses
// for a single destination feature across every DependencyReq processed
// for one package link.
type dependencyBuildState struct {
	normal, build, dev platform.Status
}

func (s *dependencyBuildState) extend(kind depKind, status platform.Status) {
	switch kind {
	case depNormal:
		s.normal.Extend(status)
	case depBuild:
		s.build.Extend(status)
	case depDev:
		s.dev.Extend(status)
	default:
		panic("featuregraph: unknown dependency kind")
	}
}

func (s *dependencyBuildState) finish() FeatureEdge {
	return FeatureEdge{Kind: Dependency, Normal: s.normal, Build: s.build, Dev: s.dev}
}

package pkggraph

// Builder accumulates packages and links before producing an immutable
// Graph via Freeze. It mirrors the teacher library's constructor-style
// AddVertex/AddEdge API, adapted to the index-based, feature-aware
// package model this module needs.
type Builder struct {
	packages []*PackageMetadata
	idIndex  map[PackageID]int
	links    []*PackageLink
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{idIndex: make(map[PackageID]int)}
}

// AddPackage registers a new package and returns its dense index. Package
// indices are assigned in the order packages are added, which is also the
// order the feature-graph builder later requires (Phase A's package
// iterator must yield strictly increasing indices).
func (b *Builder) AddPackage(id PackageID) (int, error) {
	if id == "" {
		return 0, ErrEmptyPackageID
	}
	if _, exists := b.idIndex[id]; exists {
		return 0, ErrDuplicatePackage
	}
	ix := len(b.packages)
	b.packages = append(b.packages, &PackageMetadata{
		id:     id,
		ix:     ix,
		byName: make(map[string]int),
	})
	b.idIndex[id] = ix
	return ix, nil
}

// AddNamedFeature adds a [features]-table entry to id, with its raw,
// un-resolved feature-dependency tokens (e.g. "b", "dep/feat"). A feature
// literally named "default" becomes the package's default feature.
func (b *Builder) AddNamedFeature(id PackageID, name string, deps []string) error {
	pkg, err := b.mustPackage(id)
	if err != nil {
		return err
	}
	if _, exists := pkg.byName[name]; exists {
		return ErrDuplicateFeatureName
	}
	idx := len(pkg.named)
	pkg.named = append(pkg.named, NamedFeature{Idx: idx, Name: name, Deps: append([]string(nil), deps...)})
	pkg.byName[name] = idx
	// Optional deps follow the named features in the combined index space,
	// so each one already registered moves up by one.
	for _, od := range pkg.optional {
		pkg.byName[od.Name]++
	}
	if name == "default" {
		d := idx
		pkg.defaultIdx = &d
	}
	return nil
}

// AddOptionalDep registers name as an optional-dependency pseudo-feature
// of id. Call this once per optional dependency before any AddLink that
// marks that dependency optional.
func (b *Builder) AddOptionalDep(id PackageID, name string) error {
	pkg, err := b.mustPackage(id)
	if err != nil {
		return err
	}
	if _, exists := pkg.byName[name]; exists {
		return ErrDuplicateFeatureName
	}
	idx := len(pkg.named) + len(pkg.optional)
	pkg.optional = append(pkg.optional, OptionalDep{Idx: idx - len(pkg.named), Name: name})
	pkg.byName[name] = idx
	return nil
}

// AddLink records a dependency edge from -> to, with the given name as
// used by "from", and the three per-kind requests.
func (b *Builder) AddLink(from, to PackageID, depName string, normal, build, dev DependencyReq) error {
	fromIx, err := b.mustIx(from)
	if err != nil {
		return err
	}
	toIx, err := b.mustIx(to)
	if err != nil {
		return err
	}
	b.links = append(b.links, &PackageLink{
		From: from, To: to, FromIx: fromIx, ToIx: toIx,
		DepName: depName, Normal: normal, Build: build, Dev: dev,
	})
	return nil
}

func (b *Builder) mustPackage(id PackageID) (*PackageMetadata, error) {
	ix, err := b.mustIx(id)
	if err != nil {
		return nil, err
	}
	return b.packages[ix], nil
}

func (b *Builder) mustIx(id PackageID) (int, error) {
	ix, ok := b.idIndex[id]
	if !ok {
		return 0, ErrPackageNotFound
	}
	return ix, nil
}

// Freeze finalises the builder into an immutable Graph with adjacency
// lists for both traversal directions.
func (b *Builder) Freeze() *Graph {
	n := len(b.packages)
	g := &Graph{
		packages: b.packages,
		idIndex:  b.idIndex,
		links:    b.links,
		outEdges: make([][]int, n),
		inEdges:  make([][]int, n),
	}
	for i, l := range b.links {
		g.outEdges[l.FromIx] = append(g.outEdges[l.FromIx], i)
		g.inEdges[l.ToIx] = append(g.inEdges[l.ToIx], i)
	}
	return g
}

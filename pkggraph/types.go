// Package pkggraph is the package-graph input side of the feature graph:
// packages with named features and optional dependencies, and directed
// links between them carrying per-kind (normal/build/dev) dependency
// requests. Manifest parsing that would normally populate this graph is
// out of scope here -- callers build it directly via Builder, or feed it
// from their own lockfile reader.
package pkggraph

import "github.com/vorenkamp/featuregraph/platform"

// PackageID uniquely identifies a package within a Graph.
type PackageID string

// DependencyKind distinguishes the three sections a dependency can be
// declared in.
type DependencyKind uint8

const (
	// Normal is an ordinary [dependencies] entry.
	Normal DependencyKind = iota
	// Build is a [build-dependencies] entry.
	Build
	// Development is a [dev-dependencies] entry.
	Development
)

func (k DependencyKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Build:
		return "build"
	case Development:
		return "dev"
	default:
		panic("pkggraph: unknown dependency kind")
	}
}

// SubRequest is one half (required or optional) of a DependencyReq: the
// platform conditions under which the dependency, its default feature,
// and each explicitly named feature are pulled in.
type SubRequest struct {
	// BuildIf gates pulling the dependency in at all (its base feature).
	BuildIf platform.Status
	// DefaultFeaturesIf gates enabling the dependency's default feature.
	DefaultFeaturesIf platform.Status
	// FeatureTargets maps a feature name on the dependency to the
	// platform condition under which it is enabled.
	FeatureTargets map[string]platform.Status
}

// DependencyReq splits a dependency declaration into its required and
// optional sub-requests.
type DependencyReq struct {
	Required SubRequest
	Optional SubRequest
}

// NamedFeature is one entry of a package's [features] table.
type NamedFeature struct {
	Idx  int
	Name string
	// Deps are the raw feature-dependency tokens, e.g. "b", "dep/feat".
	Deps []string
}

// OptionalDep is an optional dependency exposed as a pseudo-feature of the
// same name.
type OptionalDep struct {
	Idx  int
	Name string
}

// PackageLink is a directed dependency edge between two packages.
type PackageLink struct {
	From, To PackageID
	FromIx   int
	ToIx     int
	DepName  string
	Normal   DependencyReq
	Build    DependencyReq
	Dev      DependencyReq
}

// ReqForKind returns the DependencyReq for the given kind.
func (l PackageLink) ReqForKind(kind DependencyKind) DependencyReq {
	switch kind {
	case Normal:
		return l.Normal
	case Build:
		return l.Build
	case Development:
		return l.Dev
	default:
		panic("pkggraph: unknown dependency kind")
	}
}

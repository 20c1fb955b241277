package featuregraph

import "github.com/vorenkamp/featuregraph/platform"

// FeatureType classifies a feature node.
type FeatureType int

const (
	// BasePackage is a package with no features enabled.
	BasePackage FeatureType = iota
	// NamedFeature is an entry in a package's [features] table.
	NamedFeature
	// OptionalDep is an optional dependency, treated as a pseudo-feature.
	OptionalDep
)

// String returns a human-readable name for t.
func (t FeatureType) String() string {
	switch t {
	case BasePackage:
		return "base"
	case NamedFeature:
		return "named"
	case OptionalDep:
		return "optional-dep"
	default:
		panic("featuregraph: unknown feature type")
	}
}

// FeatureMetadata describes one node of a Graph.
type FeatureMetadata struct {
	id          FeatureID
	featureType FeatureType
	ix          int
}

// ID returns the feature's identity.
func (m *FeatureMetadata) ID() FeatureID { return m.id }

// Type returns the kind of feature this node represents.
func (m *FeatureMetadata) Type() FeatureType { return m.featureType }

// FeatureEdgeKind classifies a FeatureEdge.
type FeatureEdgeKind int

const (
	// FeatureToBase connects a feature to its package's base feature.
	FeatureToBase FeatureEdgeKind = iota
	// Dependency connects a package's base feature (or an optional-dep
	// pseudo-feature) to features enabled in a dependency.
	Dependency
	// FeatureDependency connects a named feature to another feature it
	// lists in its own [features] entry.
	FeatureDependency
)

// FeatureEdge carries the reason one feature depends on another.
type FeatureEdge struct {
	Kind FeatureEdgeKind
	// Normal, Build, Dev are populated only for Kind == Dependency: the
	// unified build-status of this feature across each dependency kind.
	Normal, Build, Dev platform.Status
}

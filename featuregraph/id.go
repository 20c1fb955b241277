package featuregraph

import "github.com/vorenkamp/featuregraph/pkggraph"

// FeatureID identifies a (package, feature) pair: either a named feature
// or optional dep of a package, or that package's base feature (no
// feature enabled).
type FeatureID struct {
	Package pkggraph.PackageID
	Feature string
	isBase  bool
}

// NewFeatureID builds a FeatureID for a named feature or optional dep.
func NewFeatureID(pkg pkggraph.PackageID, feature string) FeatureID {
	return FeatureID{Package: pkg, Feature: feature}
}

// BaseFeatureID builds a FeatureID representing pkg's base feature.
func BaseFeatureID(pkg pkggraph.PackageID) FeatureID {
	return FeatureID{Package: pkg, isBase: true}
}

// IsBase reports whether this FeatureID is a package's base feature.
func (f FeatureID) IsBase() bool { return f.isBase }

// FeatureName returns the feature name, or ok=false if this is a base FeatureID.
func (f FeatureID) FeatureName() (name string, ok bool) {
	if f.isBase {
		return "", false
	}
	return f.Feature, true
}

// featureNode is the dense, index-based representation of a FeatureID
// inside a built Graph: packageIx identifies the package, featureIdx is
// -1 for the base feature or a combined feature index otherwise.
type featureNode struct {
	packageIx  int
	featureIdx int // -1 means base
}

const baseFeatureIdx = -1

func namedFeatureNode(packageIx, featureIdx int) featureNode {
	return featureNode{packageIx: packageIx, featureIdx: featureIdx}
}

func baseFeatureNode(packageIx int) featureNode {
	return featureNode{packageIx: packageIx, featureIdx: baseFeatureIdx}
}

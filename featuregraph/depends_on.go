package featuregraph

import "github.com/vorenkamp/featuregraph/reach"

// DependsOn reports whether a depends, directly or transitively, on b
// (including the case where a and b are the same feature). Returns an
// *UnknownFeatureIDError if either feature is unknown.
func (g *Graph) DependsOn(a, b FeatureID) (depends bool, err error) {
	aIx, ok := g.Ix(a)
	if !ok {
		return false, newUnknownFeatureIDError(a)
	}
	bIx, ok := g.Ix(b)
	if !ok {
		return false, newUnknownFeatureIDError(b)
	}
	if aIx == bIx {
		return true, nil
	}
	core := reach.New[FeatureEdge](g, reach.ForwardFrom([]int{aIx}))
	return core.Contains(bIx), nil
}

// DirectlyDependsOn reports whether a has a direct feature-dependency
// edge to b. Returns an *UnknownFeatureIDError if either feature is unknown.
func (g *Graph) DirectlyDependsOn(a, b FeatureID) (depends bool, err error) {
	aIx, ok := g.Ix(a)
	if !ok {
		return false, newUnknownFeatureIDError(a)
	}
	bIx, ok := g.Ix(b)
	if !ok {
		return false, newUnknownFeatureIDError(b)
	}
	for _, e := range g.OutEdges(aIx) {
		if e.To == bIx {
			return true, nil
		}
	}
	return false, nil
}

// IsDefaultFeature reports whether id is included in its package's
// default build -- that is, whether the package's default feature (its
// "default" named feature, or its base feature if it declares none)
// depends on id. Returns an *UnknownFeatureIDError if id is unknown.
func (g *Graph) IsDefaultFeature(id FeatureID) (isDefault bool, err error) {
	packageIx, ok := g.pg.PackageIx(id.Package)
	if !ok {
		return false, newUnknownFeatureIDError(id)
	}
	meta, ok := g.pg.MetadataAt(packageIx)
	if !ok {
		return false, newUnknownFeatureIDError(id)
	}
	defaultIdx, hasDefault := meta.DefaultFeatureIdx()
	var defaultID FeatureID
	if hasDefault {
		name, ok := meta.FeatureIdxToName(defaultIdx)
		if !ok {
			return false, newUnknownFeatureIDError(id)
		}
		defaultID = NewFeatureID(meta.ID(), name)
	} else {
		defaultID = BaseFeatureID(meta.ID())
	}
	return g.DependsOn(defaultID, id)
}

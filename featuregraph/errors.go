package featuregraph

import (
	"errors"
	"fmt"

	"github.com/vorenkamp/featuregraph/pkggraph"
)

// ErrUnknownFeatureID is the sentinel every UnknownFeatureIDError wraps,
// for callers that only want to errors.Is against the class of error
// rather than inspect which feature was unknown.
var ErrUnknownFeatureID = errors.New("featuregraph: unknown feature ID")

// UnknownFeatureIDError reports that a FeatureID named in a query does not
// correspond to any node of the graph: either Package itself is not in the
// underlying pkggraph.Graph, or it is but declares no such Feature (nil
// Feature means the base feature request failed, which only happens when
// Package itself is unknown).
type UnknownFeatureIDError struct {
	Package pkggraph.PackageID
	Feature *string
}

func newUnknownFeatureIDError(id FeatureID) *UnknownFeatureIDError {
	if name, ok := id.FeatureName(); ok {
		return &UnknownFeatureIDError{Package: id.Package, Feature: &name}
	}
	return &UnknownFeatureIDError{Package: id.Package}
}

func (e *UnknownFeatureIDError) Error() string {
	if e.Feature == nil {
		return fmt.Sprintf("featuregraph: unknown feature ID: %s (base feature)", e.Package)
	}
	return fmt.Sprintf("featuregraph: unknown feature ID: %s/%s", e.Package, *e.Feature)
}

// Unwrap lets callers match this error with errors.Is(err, ErrUnknownFeatureID).
func (e *UnknownFeatureIDError) Unwrap() error { return ErrUnknownFeatureID }

// BuildStage names the phase of graph construction a Warning was raised
// during, for diagnostic messages.
type BuildStage int

const (
	// AddNamedFeatureEdges is raised while wiring a named feature's own
	// declared feature dependencies.
	AddNamedFeatureEdges BuildStage = iota
	// AddDependencyEdges is raised while wiring a package link's
	// feature-unification edges.
	AddDependencyEdges
)

func (s BuildStage) String() string {
	switch s {
	case AddNamedFeatureEdges:
		return "add-named-feature-edges"
	case AddDependencyEdges:
		return "add-dependency-edges"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while building a Graph: a reference
// to a feature name that does not exist on the target package. Cargo
// itself tolerates this (a feature can be named but never resolved), so
// these are collected rather than treated as errors.
type Warning struct {
	Stage       BuildStage
	FromPackage pkggraph.PackageID
	FromFeature string // the referring named feature (AddNamedFeatureEdges) or the link's dependency name (AddDependencyEdges)
	ToPackage   pkggraph.PackageID
	FeatureName string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s[%s] references missing feature %q of %s",
		w.Stage, w.FromPackage, w.FromFeature, w.FeatureName, w.ToPackage)
}

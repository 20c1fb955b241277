package pkggraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorenkamp/featuregraph/pkggraph"
)

func TestBuilder_AddPackage_AssignsDenseIndices(t *testing.T) {
	b := pkggraph.NewBuilder()
	ixA, err := b.AddPackage("a")
	require.NoError(t, err)
	ixB, err := b.AddPackage("b")
	require.NoError(t, err)
	assert.Equal(t, 0, ixA)
	assert.Equal(t, 1, ixB)
}

func TestBuilder_AddPackage_RejectsEmptyAndDuplicate(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("")
	assert.ErrorIs(t, err, pkggraph.ErrEmptyPackageID)

	_, err = b.AddPackage("a")
	require.NoError(t, err)
	_, err = b.AddPackage("a")
	assert.ErrorIs(t, err, pkggraph.ErrDuplicatePackage)
}

func TestBuilder_AddNamedFeature_DefaultIsOrdinaryName(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("a")
	require.NoError(t, err)
	require.NoError(t, b.AddNamedFeature("a", "default", []string{"std"}))
	require.NoError(t, b.AddNamedFeature("a", "std", nil))

	g := b.Freeze()
	meta, ok := g.Metadata("a")
	require.True(t, ok)

	idx, ok := meta.DefaultFeatureIdx()
	require.True(t, ok)
	name, ok := meta.FeatureIdxToName(idx)
	require.True(t, ok)
	assert.Equal(t, "default", name)
}

func TestBuilder_NoDefaultFeature(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("a")
	require.NoError(t, err)

	g := b.Freeze()
	meta, ok := g.Metadata("a")
	require.True(t, ok)
	_, ok = meta.DefaultFeatureIdx()
	assert.False(t, ok)
}

func TestBuilder_OptionalDep_SharesFeatureIndexSpace(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("a")
	require.NoError(t, err)
	require.NoError(t, b.AddNamedFeature("a", "std", nil))
	require.NoError(t, b.AddOptionalDep("a", "serde"))

	g := b.Freeze()
	meta, ok := g.Metadata("a")
	require.True(t, ok)

	stdIdx, ok := meta.GetFeatureIdx("std")
	require.True(t, ok)
	assert.Equal(t, 0, stdIdx)

	serdeIdx, ok := meta.GetFeatureIdx("serde")
	require.True(t, ok)
	assert.Equal(t, 1, serdeIdx)
	assert.Equal(t, 2, meta.FeatureCount())
}

func TestBuilder_AddLink_RejectsUnknownPackages(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("a")
	require.NoError(t, err)

	err = b.AddLink("a", "missing", "missing", pkggraph.DependencyReq{}, pkggraph.DependencyReq{}, pkggraph.DependencyReq{})
	assert.ErrorIs(t, err, pkggraph.ErrPackageNotFound)
}

func TestBuilder_Freeze_BuildsAdjacency(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("app")
	require.NoError(t, err)
	_, err = b.AddPackage("lib")
	require.NoError(t, err)
	require.NoError(t, b.AddLink("app", "lib", "lib", pkggraph.DependencyReq{}, pkggraph.DependencyReq{}, pkggraph.DependencyReq{}))

	g := b.Freeze()
	appIx, ok := g.PackageIx("app")
	require.True(t, ok)

	links := g.DirectLinksFrom(appIx)
	require.Len(t, links, 1)
	assert.Equal(t, pkggraph.PackageID("lib"), links[0].To)
}

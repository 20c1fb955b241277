package featuregraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorenkamp/featuregraph/featuregraph"
	"github.com/vorenkamp/featuregraph/pkggraph"
	"github.com/vorenkamp/featuregraph/platform"
)

// app depends on lib; lib declares a "default" feature pulling in "std".
func demoPackageGraph(t *testing.T) *pkggraph.Graph {
	t.Helper()
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("app")
	require.NoError(t, err)
	_, err = b.AddPackage("lib")
	require.NoError(t, err)

	require.NoError(t, b.AddNamedFeature("lib", "default", []string{"std"}))
	require.NoError(t, b.AddNamedFeature("lib", "std", nil))

	always := platform.AlwaysStatus()
	require.NoError(t, b.AddLink("app", "lib", "lib",
		pkggraph.DependencyReq{Required: pkggraph.SubRequest{BuildIf: always, DefaultFeaturesIf: always}},
		pkggraph.DependencyReq{}, pkggraph.DependencyReq{}))

	return b.Freeze()
}

func TestNew_BuildsExpectedNodesAndEdges(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	assert.Equal(t, 4, g.FeatureCount()) // app-base, lib-base, lib-default, lib-std
	assert.Equal(t, 5, g.LinkCount())
	assert.Empty(t, g.Warnings())
}

func TestGraph_Ix_RoundTripsFeatureID(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	id := featuregraph.NewFeatureID("lib", "std")
	ix, ok := g.Ix(id)
	require.True(t, ok)

	got, ok := g.FeatureIDAt(ix)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGraph_DependsOn_Transitive(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	appBase := featuregraph.BaseFeatureID("app")
	libStd := featuregraph.NewFeatureID("lib", "std")

	depends, err := g.DependsOn(appBase, libStd)
	require.NoError(t, err)
	assert.True(t, depends, "app's base feature should transitively pull in lib's std feature via lib's default")
}

func TestGraph_DirectlyDependsOn(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	appBase := featuregraph.BaseFeatureID("app")
	libBase := featuregraph.BaseFeatureID("lib")
	libStd := featuregraph.NewFeatureID("lib", "std")

	direct, err := g.DirectlyDependsOn(appBase, libBase)
	require.NoError(t, err)
	assert.True(t, direct)

	direct, err = g.DirectlyDependsOn(appBase, libStd)
	require.NoError(t, err)
	assert.False(t, direct, "app only directly reaches lib's base and default feature, not std")
}

func TestGraph_IsDefaultFeature(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	isDefault, err := g.IsDefaultFeature(featuregraph.NewFeatureID("lib", "std"))
	require.NoError(t, err)
	assert.True(t, isDefault)

	isDefault, err = g.IsDefaultFeature(featuregraph.BaseFeatureID("app"))
	require.NoError(t, err)
	assert.True(t, isDefault, "a package with no declared default feature always builds its base feature by default")
}

func TestGraph_Cycles_NoneInDAG(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	cyclic, ok := g.Cycles().IsCyclic(featuregraph.BaseFeatureID("lib"))
	require.True(t, ok)
	assert.False(t, cyclic)
}

func TestNew_PanicsOnUnregisteredOptionalDep(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("app")
	require.NoError(t, err)
	_, err = b.AddPackage("lib")
	require.NoError(t, err)

	always := platform.AlwaysStatus()
	// "lib" is never registered via AddOptionalDep, so it is not a feature
	// of "app" -- an optional request against it is a fatal invariant
	// violation, not a silently dropped edge.
	require.NoError(t, b.AddLink("app", "lib", "lib",
		pkggraph.DependencyReq{}, pkggraph.DependencyReq{}, pkggraph.DependencyReq{
			Optional: pkggraph.SubRequest{BuildIf: always},
		}))
	pg := b.Freeze()

	assert.Panics(t, func() { featuregraph.New(pg) })
}

func TestGraph_MissingFeatureReference_WarnsNotErrors(t *testing.T) {
	b := pkggraph.NewBuilder()
	_, err := b.AddPackage("lone")
	require.NoError(t, err)
	require.NoError(t, b.AddNamedFeature("lone", "broken", []string{"nonexistent"}))
	pg := b.Freeze()

	g := featuregraph.New(pg)
	require.Len(t, g.Warnings(), 1)
	w := g.Warnings()[0]
	assert.Equal(t, featuregraph.AddNamedFeatureEdges, w.Stage)
	assert.Equal(t, pkggraph.PackageID("lone"), w.FromPackage)
	assert.Equal(t, "nonexistent", w.FeatureName)
}

func TestGraph_QueryForward_ResolvesFeatureSet(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	q, err := g.QueryForward(featuregraph.BaseFeatureID("app"))
	require.NoError(t, err)
	set := q.Resolve()

	// app's base feature reaches lib's base and default directly, and
	// lib's default pulls in lib's std feature transitively.
	assert.Equal(t, 4, set.Len())
	contained, ok := set.Contains(featuregraph.NewFeatureID("lib", "std"))
	require.True(t, ok)
	assert.True(t, contained)
}

func TestGraph_ToPackageSet(t *testing.T) {
	pg := demoPackageGraph(t)
	g := featuregraph.New(pg)

	q, err := g.QueryForward(featuregraph.BaseFeatureID("app"))
	require.NoError(t, err)
	pkgs := q.Resolve().ToPackageSet()

	assert.Equal(t, 2, pkgs.Len())
	libIx, ok := pg.PackageIx("lib")
	require.True(t, ok)
	assert.True(t, pkgs.ContainsPackageIx(libIx))
}

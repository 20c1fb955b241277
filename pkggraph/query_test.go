package pkggraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorenkamp/featuregraph/pkggraph"
	"github.com/vorenkamp/featuregraph/reach"
)

// app -> lib -> core, a 3-package chain.
func chainPackageGraph(t *testing.T) *pkggraph.Graph {
	t.Helper()
	b := pkggraph.NewBuilder()
	for _, id := range []pkggraph.PackageID{"app", "lib", "core"} {
		_, err := b.AddPackage(id)
		require.NoError(t, err)
	}
	require.NoError(t, b.AddLink("app", "lib", "lib", pkggraph.DependencyReq{}, pkggraph.DependencyReq{}, pkggraph.DependencyReq{}))
	require.NoError(t, b.AddLink("lib", "core", "core", pkggraph.DependencyReq{}, pkggraph.DependencyReq{}, pkggraph.DependencyReq{}))
	return b.Freeze()
}

func TestQueryForward_ResolvesTransitiveDeps(t *testing.T) {
	g := chainPackageGraph(t)
	q, err := g.QueryForward("app")
	require.NoError(t, err)

	set := q.Resolve()
	assert.Equal(t, 3, set.Len())
	ids := set.PackageIDs(reach.Forward)
	assert.Equal(t, []pkggraph.PackageID{"core", "lib", "app"}, ids)
}

func TestQueryForward_UnknownPackage(t *testing.T) {
	g := chainPackageGraph(t)
	_, err := g.QueryForward("missing")
	assert.ErrorIs(t, err, pkggraph.ErrPackageNotFound)
}

func TestQueryReverse_ResolvesDependents(t *testing.T) {
	g := chainPackageGraph(t)
	q, err := g.QueryReverse("core")
	require.NoError(t, err)

	set := q.Resolve()
	assert.Equal(t, 3, set.Len())
	contained, ok := set.Contains("app")
	assert.True(t, ok)
	assert.True(t, contained)
}

func TestQuery_PartialFrontier(t *testing.T) {
	g := chainPackageGraph(t)
	q, err := g.QueryForward("lib")
	require.NoError(t, err)

	set := q.Resolve()
	assert.Equal(t, 2, set.Len())
	contained, ok := set.Contains("app")
	require.True(t, ok)
	assert.False(t, contained)
}

func TestQuery_RootIDs(t *testing.T) {
	g := chainPackageGraph(t)
	set := g.ResolveAll()

	forwardRoots := set.RootIDs(reach.Forward)
	assert.Equal(t, []pkggraph.PackageID{"app"}, forwardRoots)

	reverseRoots := set.RootIDs(reach.Reverse)
	assert.Equal(t, []pkggraph.PackageID{"core"}, reverseRoots)
}

func TestQuery_ResolveWith_FiltersLinks(t *testing.T) {
	g := chainPackageGraph(t)
	q, err := g.QueryForward("app")
	require.NoError(t, err)

	set := q.ResolveWith(pkggraph.ResolverFunc(func(_ *pkggraph.Query, link pkggraph.PackageLink) bool {
		return link.DepName != "core"
	}))

	assert.Equal(t, 2, set.Len())
	contained, ok := set.Contains("core")
	require.True(t, ok)
	assert.False(t, contained)
}

func TestPackageSet_SetAlgebra(t *testing.T) {
	g := chainPackageGraph(t)
	all := g.ResolveAll()

	qApp, err := g.QueryForward("app")
	require.NoError(t, err)
	appSet := qApp.Resolve()

	qCore, err := g.QueryReverse("core")
	require.NoError(t, err)
	coreSet := qCore.Resolve()

	assert.Equal(t, 3, appSet.Union(coreSet).Len())
	assert.Equal(t, 3, all.Intersection(appSet).Len())
}

func TestPackageSet_WriteDOT(t *testing.T) {
	g := chainPackageGraph(t)
	set := g.ResolveAll()

	var buf strings.Builder
	require.NoError(t, set.WriteDOT(&buf, reach.Forward))

	out := buf.String()
	assert.Contains(t, out, `"app"`)
	assert.Contains(t, out, `"lib" -> "core"`)
}

package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vorenkamp/featuregraph/reach"
)

func TestBitset_SetContains(t *testing.T) {
	b := reach.NewBitset(10)
	assert.True(t, b.IsEmpty())
	b.Set(3)
	b.Set(7)
	assert.True(t, b.Contains(3))
	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(4))
	assert.Equal(t, 2, b.Len())
}

func TestBitset_UnionIntersectSymDiff(t *testing.T) {
	a := reach.NewBitset(8)
	a.Set(1)
	a.Set(2)
	b := reach.NewBitset(8)
	b.Set(2)
	b.Set(3)

	u := a.Clone()
	u.UnionWith(b)
	assert.Equal(t, 3, u.Len())
	assert.True(t, u.Contains(1))
	assert.True(t, u.Contains(2))
	assert.True(t, u.Contains(3))

	i := a.Clone()
	i.IntersectWith(b)
	assert.Equal(t, 1, i.Len())
	assert.True(t, i.Contains(2))

	sd := a.Clone()
	sd.SymmetricDifferenceWith(b)
	assert.Equal(t, 2, sd.Len())
	assert.True(t, sd.Contains(1))
	assert.True(t, sd.Contains(3))
	assert.False(t, sd.Contains(2))
}

func TestBitset_Difference(t *testing.T) {
	a := reach.NewBitset(8)
	a.Set(1)
	a.Set(2)
	b := reach.NewBitset(8)
	b.Set(2)

	d := a.Difference(b)
	assert.True(t, d.Contains(1))
	assert.False(t, d.Contains(2))
	// a is untouched.
	assert.True(t, a.Contains(2))
}

func TestBitset_Each(t *testing.T) {
	b := reach.NewBitset(70) // spans more than one word
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(69)

	var got []int
	b.Each(func(ix int) { got = append(got, ix) })
	assert.Equal(t, []int{0, 63, 64, 69}, got)
}

package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func TestSetOf(t *testing.T) {
	require := require.New(t)

	s1 := Of(intLess)
	require.Equal(0, s1.Len())

	s2 := Of(intLess, 3, 1, 2, 2)
	require.Equal(3, s2.Len())
	require.Equal([]int{1, 2, 3}, s2.List())
}

func TestSetAddRemove(t *testing.T) {
	require := require.New(t)

	s := NewSet[string](0, nil)
	s.Add("a", "b")
	require.Equal(2, s.Len())
	require.True(s.Contains("a"))

	s.Remove("a")
	require.False(s.Contains("a"))
	require.Equal(1, s.Len())
}

func TestSetUnionIntersectionDifference(t *testing.T) {
	require := require.New(t)

	a := Of(intLess, 1, 2, 3)
	b := Of(intLess, 2, 3, 4)

	union := a.Clone()
	union.Union(b)
	require.Equal([]int{1, 2, 3, 4}, union.List())

	inter := a.Intersection(b)
	require.Equal([]int{2, 3}, inter.List())

	diff := a.Clone()
	diff.Difference(b)
	require.Equal([]int{1}, diff.List())

	require.True(a.Overlaps(b))
}

func TestSetEqualsAndClone(t *testing.T) {
	require := require.New(t)

	a := Of(intLess, 1, 2, 3)
	clone := a.Clone()
	require.True(a.Equals(clone))

	clone.Add(4)
	require.False(a.Equals(clone))
}

func TestSetDeterministicIteration(t *testing.T) {
	require := require.New(t)

	a := Of(intLess, 5, 1, 4, 2, 3)
	require.Equal([]int{1, 2, 3, 4, 5}, a.List())
	require.Equal("{1, 2, 3, 4, 5}", a.String())
}

func TestReleaseSetOfSets(t *testing.T) {
	require := require.New(t)

	outer := NewSet[*Set[int]](0, nil)
	inner1 := Of(intLess, 1, 2)
	inner2 := Of(intLess, 3, 4)
	outer.Add(inner1, inner2)

	ReleaseSetOfSets(outer)
	require.Equal(0, outer.Len())
	require.Equal(0, inner1.Len())
	require.Equal(0, inner2.Len())
}

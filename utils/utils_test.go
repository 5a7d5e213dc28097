package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicGetSetAndZeroValue(t *testing.T) {
	require := require.New(t)

	var a Atomic[string]
	require.Equal("", a.Get())

	a.Set("ready")
	require.Equal("ready", a.Get())

	b := NewAtomic(7)
	require.Equal(7, b.Get())
}

func TestAtomicBool(t *testing.T) {
	require := require.New(t)

	a := NewAtomicBool(false)
	require.False(a.Get())
	a.Set(true)
	require.True(a.Get())
}

func TestAtomicIntAddIncDec(t *testing.T) {
	require := require.New(t)

	a := NewAtomicInt(10)
	require.Equal(int64(11), a.Inc())
	require.Equal(int64(10), a.Dec())
	require.Equal(int64(15), a.Add(5))
}

func TestSortWithExplicitLess(t *testing.T) {
	require := require.New(t)

	s := []int{3, 1, 2}
	Sort(s, func(i, j int) bool { return s[i] < s[j] })
	require.Equal([]int{1, 2, 3}, s)
}

func TestZeroReturnsTypeZeroValue(t *testing.T) {
	require := require.New(t)

	require.Equal(0, Zero[int]())
	require.Equal("", Zero[string]())
}

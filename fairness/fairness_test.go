package fairness

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symcore/bdd"
)

func TestJusticeListAppendAndIterate(t *testing.T) {
	require := require.New(t)

	m := bdd.NewRefManager([]string{"s0", "s1"}, nil, nil)
	l := NewJusticeList()
	require.True(l.IsEmpty())

	l.Append(m.Var("s0"))
	l.Append(m.Var("s1"))
	require.Equal(2, l.Len())

	var seen []bdd.States
	for it := l.Begin(); !it.IsEnd(); it.Next() {
		seen = append(seen, it.P())
	}
	require.Len(seen, 2)
}

func TestJusticeListSynchronousProduct(t *testing.T) {
	require := require.New(t)

	m := bdd.NewRefManager([]string{"s0", "s1"}, nil, nil)
	a := NewJusticeList()
	a.Append(m.Var("s0"))
	b := NewJusticeList()
	b.Append(m.Var("s1"))

	a.ApplySynchronousProduct(b)
	require.Equal(2, a.Len())
}

func TestCompassionListAppendAndIterate(t *testing.T) {
	require := require.New(t)

	m := bdd.NewRefManager([]string{"s0", "s1"}, nil, nil)
	l := NewCompassionList()
	require.True(l.IsEmpty())

	l.Append(m.Var("s0"), m.Var("s1"))
	require.Equal(1, l.Len())

	it := l.Begin()
	require.False(it.IsEnd())
	_ = it.P()
	_ = it.Q()
	it.Next()
	require.True(it.IsEnd())
}

func TestCompassionListSynchronousProduct(t *testing.T) {
	require := require.New(t)

	m := bdd.NewRefManager([]string{"s0", "s1"}, nil, nil)
	a := NewCompassionList()
	a.Append(m.Var("s0"), m.Var("s1"))
	b := NewCompassionList()
	b.Append(m.Var("s1"), m.Var("s0"))

	a.ApplySynchronousProduct(b)
	require.Equal(2, a.Len())
}

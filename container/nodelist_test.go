package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeListPushAndSlice(t *testing.T) {
	require := require.New(t)

	l := NewNodeList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)
	require.Equal(3, l.Len())
	require.Equal([]int{0, 1, 2}, l.Slice())
}

func TestNodeListIteratorBidirectional(t *testing.T) {
	require := require.New(t)

	l := NewNodeList[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	it := l.Begin()
	require.Equal("a", it.Elem())
	it = it.Next()
	require.Equal("b", it.Elem())

	it = l.End()
	require.Equal("c", it.Elem())
	it = it.Prev()
	require.Equal("b", it.Elem())
}

func TestNodeListRemoveAt(t *testing.T) {
	require := require.New(t)

	l := NewNodeList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	it := l.Begin().Next() // points at 2
	next := l.RemoveAt(it)
	require.Equal(2, l.Len())
	require.Equal([]int{1, 3}, l.Slice())
	require.Equal(3, next.Elem())
}

func TestNodeListClear(t *testing.T) {
	require := require.New(t)

	l := NewNodeList[int]()
	l.PushBack(1)
	l.Clear()
	require.Equal(0, l.Len())
	require.True(l.Begin().IsDone())
}

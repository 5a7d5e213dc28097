package base

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symcore/symtab"
)

func TestCommitLayerAndNames(t *testing.T) {
	require := require.New(t)

	tbl := symtab.NewTable()
	b := New(tbl)

	b.CommitLayer("first")
	b.CommitLayer("second")
	require.Equal([]string{"first", "second"}, b.CommittedLayerNames())
	require.True(b.LayerOccurs("first"))
}

func TestCommittedLayerNamesCacheInvalidatesOnRemove(t *testing.T) {
	require := require.New(t)

	tbl := symtab.NewTable()
	b := New(tbl)
	b.CommitLayer("a")
	b.CommitLayer("b")

	names := b.CommittedLayerNames()
	require.Equal([]string{"a", "b"}, names)

	require.NoError(b.RemoveLayer("a"))
	require.Equal([]string{"b"}, b.CommittedLayerNames())
}

func TestRequireLayer(t *testing.T) {
	require := require.New(t)

	tbl := symtab.NewTable()
	b := New(tbl)
	require.Error(b.RequireLayer("op", "missing"))

	b.CommitLayer("present")
	require.NoError(b.RequireLayer("op", "present"))
}

func TestMultipleCommitsShareRefcount(t *testing.T) {
	require := require.New(t)

	tbl := symtab.NewTable()
	b := New(tbl)
	b.CommitLayer("shared")
	b.CommitLayer("shared")

	require.NoError(b.RemoveLayer("shared"))
	require.True(b.LayerOccurs("shared"))
	require.NoError(b.RemoveLayer("shared"))
	require.False(b.LayerOccurs("shared"))
}

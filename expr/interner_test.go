package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternerStructuralSharing(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	a := in.Name("x")
	b := in.Name("x")
	require.True(Equal(a, b), "same name must intern to the same node")

	c := in.Name("y")
	require.False(Equal(a, c))

	sum1 := in.Binary(KindAdd, a, c)
	sum2 := in.Binary(KindAdd, in.Name("x"), in.Name("y"))
	require.True(Equal(sum1, sum2))
}

func TestInternerDistinguishesKindAndLiteral(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	t1 := in.BoolConst(true)
	t2 := in.BoolConst(true)
	f := in.BoolConst(false)
	require.True(Equal(t1, t2))
	require.False(Equal(t1, f))

	i1 := in.IntConst(5)
	i2 := in.IntConst(5)
	i3 := in.IntConst(6)
	require.True(Equal(i1, i2))
	require.False(Equal(i1, i3))
}

func TestInternerBitOf(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	b0 := in.BitOf("v", 0)
	b0Again := in.BitOf("v", 0)
	b1 := in.BitOf("v", 1)
	require.True(Equal(b0, b0Again))
	require.False(Equal(b0, b1))
	require.Equal(KindBitOf, b0.Kind)
}

func TestIfThenElseRoundTrip(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	cond := in.Name("p")
	then := in.IntConst(1)
	els := in.IntConst(0)

	ite := in.IfThenElse(cond, then, els)
	require.Equal(KindIfThenElse, ite.Kind)
	require.True(Equal(cond, ite.Left))

	gotThen, gotEls := ITEBranches(ite)
	require.True(Equal(then, gotThen))
	require.True(Equal(els, gotEls))

	// Interning the same shape again returns the same node.
	ite2 := in.IfThenElse(in.Name("p"), in.IntConst(1), in.IntConst(0))
	require.True(Equal(ite, ite2))
}

func TestNodeArityAndLeaf(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	leaf := in.Name("x")
	require.True(leaf.IsLeaf())
	require.Equal(0, leaf.Arity())

	unary := in.Unary(KindNot, leaf)
	require.Equal(1, unary.Arity())
	require.False(unary.IsLeaf())

	binary := in.Binary(KindAnd, leaf, leaf)
	require.Equal(2, binary.Arity())
}

func TestKindPredicates(t *testing.T) {
	require := require.New(t)

	require.True(KindIntConst.IsConstant())
	require.False(KindAdd.IsConstant())
	require.True(KindEG.IsTemporal())
	require.False(KindEq.IsTemporal())
	require.True(KindLe.IsRelational())
	require.False(KindAdd.IsRelational())
}

func TestInternerLenGrows(t *testing.T) {
	require := require.New(t)

	in := NewInterner()
	require.Equal(0, in.Len())
	in.Name("a")
	require.Equal(1, in.Len())
	in.Name("a")
	require.Equal(1, in.Len(), "re-interning must not grow the table")
	in.Name("b")
	require.Equal(2, in.Len())
}

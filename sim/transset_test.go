package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symcore/bdd"
	"github.com/luxfi/symcore/diag"
	"github.com/luxfi/symcore/fsm"
)

// toggleFsm builds a two-state toggle machine: one boolean state var s,
// one boolean input i, trans s' <-> (s XOR i).
func toggleFsm(t *testing.T) (*bdd.RefManager, *fsm.BddFsm) {
	t.Helper()
	m := bdd.NewRefManager([]string{"s"}, []string{"i"}, nil)

	s, i, sNext := m.Var("s"), m.Var("i"), m.Var("s'")
	xor := m.Or(m.And(s, m.Not(i)), m.And(m.Not(s), i))
	iff := m.Or(m.And(sNext, xor), m.And(m.Not(sNext), m.Not(xor)))

	init := m.Not(s)
	invar := m.True()

	f, err := fsm.New(m, init, invar, m.True(), iff, nil, nil, diag.NoOp(), nil)
	require.NoError(t, err)
	return m, f
}

func TestNewTransSetForInitialStatesQuery(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	ts, err := New(f, nil, f.Init(), 10)
	require.NoError(err)

	_, isSuccessorQuery := ts.FromState()
	require.False(isSuccessorQuery)
	require.Equal(1, ts.NextStateCount())
	require.Equal(0, ts.InputCount(0))
}

func TestNewTransSetEnumeratesSuccessorsAndInputs(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(err)

	require.Equal(2, ts.NextStateCount())
	for s := 0; s < ts.NextStateCount(); s++ {
		require.Equal(1, ts.InputCount(s), "toggle machine has exactly one input leading to each successor")
	}
	_ = m
}

func TestNewTransSetCapsAtRequestedCount(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 1)
	require.NoError(err)
	require.Equal(1, ts.NextStateCount())
}

func TestNewTransSetRejectsNonPositiveCount(t *testing.T) {
	_, f := toggleFsm(t)
	_, err := New(f, nil, f.Init(), 0)
	require.Error(t, err)
}

func TestStateInputAtRejectsOutOfRange(t *testing.T) {
	_, f := toggleFsm(t)
	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(t, err)

	_, _, err = ts.StateInputAt(1000)
	require.Error(t, err)
}

func TestStateInputAtMatchesFlatIndexing(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(err)

	total := ts.flatCount()
	require.Equal(2, total)

	seen := make(map[int]bool)
	for idx := 0; idx < total; idx++ {
		state, _, err := ts.StateInputAt(idx)
		require.NoError(err)
		require.NotNil(state)
		seen[idx] = true
	}
	require.Len(seen, total)
}

func TestStateInputDeterministicPicksFirst(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(err)

	state, _, err := ts.StateInputDeterministic()
	require.NoError(err)

	first, err := ts.NextState(0)
	require.NoError(err)
	require.Equal(first, state)
}

func TestStateInputRandomPicksWithinRange(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(err)

	state, _, err := ts.StateInputRandom()
	require.NoError(err)
	require.NotNil(state)
}

func TestPrintListsEveryIndex(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	successors := f.FwdImg(f.Init())
	ts, err := New(f, f.Init(), successors, 10)
	require.NoError(err)

	var sb strings.Builder
	maxIdx, err := ts.Print(&sb)
	require.NoError(err)
	require.Equal(ts.flatCount()-1, maxIdx)
	require.Contains(sb.String(), "available states")
}

func TestNewTransSetOverUnsatisfiableSetFallsBackToTrueTerm(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	ts, err := New(f, f.Init(), m.False(), 10)
	require.NoError(err)
	require.Equal(1, ts.NextStateCount(), "PickAllTermsStates on false yields no terms, degenerating to [true]")
}

package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/symcore/bdd"
	"github.com/luxfi/symcore/diag"
	"github.com/luxfi/symcore/fairness"
)

// toggleFsm builds a two-state toggle machine: one boolean state var s,
// one boolean input i, trans s' <-> (s XOR i). Every legal state has a
// successor for both input values, so it is total.
func toggleFsm(t *testing.T) (*bdd.RefManager, *BddFsm) {
	t.Helper()
	m := bdd.NewRefManager([]string{"s"}, []string{"i"}, nil)

	s, i, sNext := m.Var("s"), m.Var("i"), m.Var("s'")
	xor := m.Or(m.And(s, m.Not(i)), m.And(m.Not(s), i))
	iff := m.Or(m.And(sNext, xor), m.And(m.Not(sNext), m.Not(xor)))

	init := m.Not(s) // s = false initially
	invar := m.True()

	f, err := New(m, init, invar, m.True(), iff, nil, nil, diag.NoOp(), nil)
	require.NoError(t, err)
	return m, f
}

func TestFwdImgOneStep(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	img := f.FwdImg(f.Init())
	// From s=false, toggling with either input reaches both s=true and
	// s=false, so the image is the whole state space.
	require.True(m.Entailed(m.True(), img))
}

func TestIsTotal(t *testing.T) {
	_, f := toggleFsm(t)
	require.True(t, f.IsTotal())
}

func TestReachabilityFixpoint(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	f.ComputeReachable()
	require.True(t, f.Reached())
	require.True(m.Entailed(m.True(), f.ReachableStates()))
}

func TestReachableStatesAtDistance(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	f.ComputeReachable()
	d0 := f.ReachableStatesAtDistance(0)
	require.True(m.Entailed(d0, f.Init()))
}

func TestExpandCachedReachableStatesStepLimit(t *testing.T) {
	require := require.New(t)
	_, f := toggleFsm(t)

	f.ExpandCachedReachableStates(1, -1)
	require.LessOrEqual(f.Diameter(), 1)
}

func TestDeadlockFree(t *testing.T) {
	_, f := toggleFsm(t)
	require.True(t, f.IsDeadlockFree())
}

func TestFairStatesWithNoConstraintsIsEverything(t *testing.T) {
	require := require.New(t)
	m, f := toggleFsm(t)

	fair := f.FairStates(BWD)
	require.False(m.IsFalse(fair))
}

func TestFairnessReportListsAllConstraints(t *testing.T) {
	require := require.New(t)
	m, _ := toggleFsm(t)

	justice := fairness.NewJusticeList()
	justice.Append(m.Var("s"))
	justice.Append(m.Not(m.Var("s")))
	compassion := fairness.NewCompassionList()
	compassion.Append(m.Var("s"), m.Not(m.Var("s")))

	f, err := New(m, m.Not(m.Var("s")), m.True(), m.True(),
		m.Or(m.And(m.Var("s'"), m.Not(m.Var("s"))), m.And(m.Not(m.Var("s'")), m.Var("s"))),
		justice, compassion, diag.NoOp(), nil)
	require.NoError(err)

	report := f.FairnessReport()
	require.Len(report, 3)
}

func TestSynchronousProductRejectsMismatchedManagers(t *testing.T) {
	require := require.New(t)
	_, f1 := toggleFsm(t)
	_, f2 := toggleFsm(t)

	err := f1.SynchronousProduct(f2)
	require.Error(err)
}

func TestSynchronousProductSameManager(t *testing.T) {
	require := require.New(t)
	m, f1 := toggleFsm(t)

	init2 := m.True()
	f2, err := New(m, init2, m.True(), m.True(), m.True(), nil, nil, diag.NoOp(), nil)
	require.NoError(err)

	require.NoError(f1.SynchronousProduct(f2))
	require.False(f1.Reached())
}

// counterVars builds the state bits and transition relation of a 3-bit
// counter: state x0 (lsb), x1, x2, trans x' = (x+1) mod 8, init x = 0.
func counterVars(t *testing.T) (m *bdd.RefManager, x0, x1, x2, trans, init bdd.BDD) {
	t.Helper()
	m = bdd.NewRefManager([]string{"x0", "x1", "x2"}, nil, nil)

	x0, x1, x2 = m.Var("x0"), m.Var("x1"), m.Var("x2")
	x0n, x1n, x2n := m.Var("x0'"), m.Var("x1'"), m.Var("x2'")

	iff := func(a, b bdd.BDD) bdd.BDD {
		return m.Or(m.And(a, b), m.And(m.Not(a), m.Not(b)))
	}
	xor := func(a, b bdd.BDD) bdd.BDD {
		return m.Or(m.And(a, m.Not(b)), m.And(m.Not(a), b))
	}

	trans = m.And(
		m.And(iff(x0n, m.Not(x0)), iff(x1n, xor(x1, x0))),
		iff(x2n, xor(x2, m.And(x0, x1))),
	)
	init = m.And(m.Not(x0), m.And(m.Not(x1), m.Not(x2)))
	return m, x0, x1, x2, trans, init
}

// TestS3ThreeBitCounterReachability is scenario S3: diameter=8, R_7=⊤,
// distance_of_states(⊤)=7, is_total, is_deadlock_free.
func TestS3ThreeBitCounterReachability(t *testing.T) {
	require := require.New(t)
	m, _, _, _, trans, init := counterVars(t)

	f, err := New(m, init, m.True(), m.True(), trans, nil, nil, diag.NoOp(), nil)
	require.NoError(err)

	f.ComputeReachable()
	require.True(f.Reached())
	require.Equal(8, f.Diameter())
	require.Equal(7, f.DistanceOfStates(m.True()))
	require.True(m.Entailed(m.True(), f.ReachableStates()))
	require.True(f.IsTotal())
	require.True(f.IsDeadlockFree())
}

// TestS4JusticeFairness is scenario S4: two states reachable from each
// other, justice=[s1]. Expected fair_states=⊤, init ∩ fair ≠ ⊥.
func TestS4JusticeFairness(t *testing.T) {
	require := require.New(t)
	m := bdd.NewRefManager([]string{"s"}, nil, nil)
	s := m.Var("s")
	trans := m.True() // every state can reach either s0 or s1
	init := m.Not(s)  // start at s0

	justice := fairness.NewJusticeList()
	justice.Append(s) // justice = [s1]

	f, err := New(m, init, m.True(), m.True(), trans, justice, nil, diag.NoOp(), nil)
	require.NoError(err)

	fair := f.FairStates(BWD)
	require.True(m.Entailed(m.True(), fair))
	require.False(m.IsFalse(m.And(f.Init(), fair)))
}

// recordingDiag collects every Warn call so a test can assert one fired.
type recordingDiag struct {
	warnings []string
}

func (d *recordingDiag) Warn(msg string, _ ...any)  { d.warnings = append(d.warnings, msg) }
func (d *recordingDiag) Error(msg string, _ ...any) {}

// TestS5DeadlockWithRestrictingInvariant is scenario S5: S3 plus
// invar=(x≠3). Expected deadlock_states={x=2} (its only successor, x=3,
// is excluded by the invariant) and a diagnostics warning on construction.
func TestS5DeadlockWithRestrictingInvariant(t *testing.T) {
	require := require.New(t)
	m, x0, x1, x2, trans, init := counterVars(t)

	three := m.And(x0, m.And(x1, m.Not(x2))) // x = 3 (011)
	invar := m.Not(three)
	two := m.And(m.Not(x0), m.And(x1, m.Not(x2))) // x = 2 (010)

	rec := &recordingDiag{}
	f, err := New(m, init, invar, m.True(), trans, nil, nil, rec, nil)
	require.NoError(err)
	require.NotEmpty(rec.warnings)

	f.ComputeReachable()
	deadlocks := f.DeadlockStates()
	require.True(m.Entailed(deadlocks, two))
	require.True(m.Entailed(two, deadlocks))
	require.False(f.IsDeadlockFree())
}

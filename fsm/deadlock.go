package fsm

import "github.com/luxfi/symcore/bdd"

// notSuccessorStates returns I ∧ ¬BwdImg(⊤): the legal states that have no
// transition into a state satisfying the invariant.
func (f *BddFsm) notSuccessorStates() bdd.States {
	m := f.mgr
	hasSuccessor := f.BwdImg(m.True())
	return m.And(f.invar, m.Not(hasSuccessor))
}

// IsTotal reports whether every legal state has at least one successor.
func (f *BddFsm) IsTotal() bool {
	return f.mgr.IsFalse(f.notSuccessorStates())
}

// DeadlockStates returns the reachable states with no successor. Computing
// it requires reachability; callers should call ComputeReachable first if
// they want it restricted to truly reachable states, otherwise the legal
// invariant is used in its place.
func (f *BddFsm) DeadlockStates() bdd.States {
	if f.cache.deadlockValid {
		return f.cache.deadlockStates
	}
	base := f.invar
	if f.cache.reachable != nil {
		base = f.cache.reachable.all
	}
	m := f.mgr
	deadlocks := m.And(base, m.Not(f.BwdImg(m.True())))
	f.cache.deadlockStates = deadlocks
	f.cache.deadlockValid = true
	return deadlocks
}

// IsDeadlockFree reports whether DeadlockStates is empty.
func (f *BddFsm) IsDeadlockFree() bool {
	return f.mgr.IsFalse(f.DeadlockStates())
}

package fsm

import "github.com/luxfi/symcore/bdd"

// FwdImg computes the forward image of s: states reachable from s in one
// step, restricted by the state invariant.
//
// FwdImg(S)(x') = (∃x,i. S(x) ∧ I(x) ∧ J(i) ∧ T(x,i,x'))[x'/x] ∧ I(x)
func (f *BddFsm) FwdImg(s bdd.States) bdd.States {
	return f.fwdImgConstrained(s, nil)
}

// FwdImgC is FwdImg with an extra constraint C(x,i[,x']) conjoined before
// quantification.
func (f *BddFsm) FwdImgC(s bdd.States, c bdd.BDD) bdd.States {
	return f.fwdImgConstrained(s, c)
}

func (f *BddFsm) fwdImgConstrained(s bdd.States, c bdd.BDD) bdd.States {
	m := f.mgr
	stop := func() func() {
		if f.metrics == nil {
			return func() {}
		}
		return func() { f.metrics.ForwardImageSteps.Inc() }
	}()
	defer stop()

	acc := m.And(s, f.invar)
	if f.inputInvar != nil {
		acc = m.And(acc, f.inputInvar)
	}
	acc = m.And(acc, f.trans)
	if c != nil {
		acc = m.And(acc, c)
	}
	cube := m.And(m.StateCube(), m.InputCube())
	next := m.Exists(acc, cube)
	cur := m.NextToState(next)
	return m.And(cur, f.invar)
}

// StateInputFwdImg computes the state-input pairs of the next step: the
// successor states together with the input that produced them, masked by
// I(x') ∧ J(i').
func (f *BddFsm) StateInputFwdImg(si bdd.StateInputs) bdd.StateInputsNext {
	m := f.mgr
	acc := m.Exists(m.And(si, f.trans), m.StateCube())
	next := m.NextToState(acc)
	masked := m.And(next, f.invar)
	if f.inputInvar != nil {
		masked = m.And(masked, f.inputInvar)
	}
	return masked
}

// WbwdImg computes the weak backward image; successors outside the state
// invariant do not count:
// WbwdImg(S)(x,i) = ∃x'. T ∧ (S ∧ I)[x'/x] ∧ I(x) ∧ J(i)
func (f *BddFsm) WbwdImg(s bdd.States) bdd.BDD {
	m := f.mgr
	sNext := m.StateToNext(m.And(s, f.invar))
	acc := m.And(f.trans, sNext)
	result := m.Exists(acc, f.nextStateCube())
	result = m.And(result, f.invar)
	if f.inputInvar != nil {
		result = m.And(result, f.inputInvar)
	}
	return result
}

// nextStateCube approximates the next-state variable cube as the state
// cube renamed forward, since bdd.Manager exposes only the state/input/
// frozen cubes over the current layer.
func (f *BddFsm) nextStateCube() bdd.BDD {
	return f.mgr.StateToNext(f.mgr.StateCube())
}

// SbwdImg computes the strong backward image:
// SbwdImg(S) = legal_state_input ∧ ¬WbwdImg(¬S)
func (f *BddFsm) SbwdImg(s bdd.States) bdd.BDD {
	m := f.mgr
	notS := m.Not(s)
	return m.And(f.legalStateInput(), m.Not(f.WbwdImg(notS)))
}

// BwdImg is the plain backward image used by totality/deadlock checks:
// the state-input pairs having at least one successor in s.
func (f *BddFsm) BwdImg(s bdd.States) bdd.BDD {
	return f.WbwdImg(s)
}

// StatesToStatesGetInputs returns the inputs labeling a transition from
// from (a single state, or ⊤ for the initial-states query) to to (a single
// successor state), masked by the input invariant.
func (f *BddFsm) StatesToStatesGetInputs(from, to bdd.States) bdd.BDD {
	m := f.mgr
	toNext := m.StateToNext(to)
	acc := m.And(m.And(from, f.trans), toNext)
	cube := m.And(m.StateCube(), f.nextStateCube())
	result := m.Exists(acc, cube)
	if f.inputInvar != nil {
		result = m.And(result, f.inputInvar)
	}
	return result
}

// KBwdImg returns the state-input pairs having at least k distinct
// successor states in s, by a combinatorial expansion over the state
// minterms of s: each minterm contributes its own weak backward image, and
// a pair qualifies once k of those images contain it.
func (f *BddFsm) KBwdImg(s bdd.States, k int) (bdd.BDD, error) {
	m := f.mgr
	if k <= 0 {
		return m.True(), nil
	}
	if k == 1 {
		return f.WbwdImg(s), nil
	}

	terms, err := m.PickAllTermsStates(s)
	if err != nil {
		return nil, err
	}
	if len(terms) < k {
		return m.False(), nil
	}

	// atLeast[j] holds the state-input pairs with at least j distinct
	// successors among the minterms of s visited so far.
	atLeast := make([]bdd.BDD, k+1)
	atLeast[0] = f.legalStateInput()
	for j := 1; j <= k; j++ {
		atLeast[j] = m.False()
	}
	for _, term := range terms {
		pre := f.WbwdImg(term)
		for j := k; j >= 1; j-- {
			atLeast[j] = m.Or(atLeast[j], m.And(atLeast[j-1], pre))
		}
	}
	return atLeast[k], nil
}

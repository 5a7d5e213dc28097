// Package fsm implements BddFsm, the symbolic finite-state machine hub:
// image operators, a cached reachability fixpoint, deadlock/totality
// checks, the Emerson-Lei fair-states fixpoint and synchronous product.
package fsm

import (
	"github.com/luxfi/symcore/bdd"
	"github.com/luxfi/symcore/diag"
	"github.com/luxfi/symcore/fairness"
	"github.com/luxfi/symcore/metrics"
	"github.com/luxfi/symcore/symerr"
)

// BddFsm is a symbolic finite-state machine: state invariant, input
// invariant, transition relation, and fairness constraints, all carrying
// frozen variables (frozen vars are never quantified away by any operator
// below).
type BddFsm struct {
	mgr bdd.Manager

	init       bdd.States
	invar      bdd.States
	inputInvar bdd.BDD
	trans      bdd.BDD // T(x,i,x')

	justice    *fairness.JusticeList
	compassion *fairness.CompassionList

	diagnostics diag.Diagnostics
	metrics     *metrics.Engine

	cache cacheState
}

// cacheState holds every derived value spec.md §4.G.5 says a synchronous
// product must detach and reset.
type cacheState struct {
	reachable      *reachableCache
	fairStates     bdd.States
	fairComputed   bool
	deadlockStates bdd.States
	deadlockValid  bool
	legalStateInput bdd.BDD
	legalValid      bool
}

// New constructs a BddFsm, ref-incrementing init and invar and taking
// ownership of trans, justice and compassion. It warns (never errors) if
// init ∧ invar is empty, matching spec.md §4.G's construction contract.
func New(
	mgr bdd.Manager,
	init, invar bdd.States,
	inputInvar, trans bdd.BDD,
	justice *fairness.JusticeList,
	compassion *fairness.CompassionList,
	diagnostics diag.Diagnostics,
	eng *metrics.Engine,
) (*BddFsm, error) {
	if mgr == nil {
		return nil, symerr.NewContract("fsm.New", "nil BDD manager")
	}
	if diagnostics == nil {
		diagnostics = diag.NoOp()
	}
	if justice == nil {
		justice = fairness.NewJusticeList()
	}
	if compassion == nil {
		compassion = fairness.NewCompassionList()
	}

	f := &BddFsm{
		mgr:         mgr,
		init:        mgr.Ref(init),
		invar:       mgr.Ref(invar),
		inputInvar:  inputInvar,
		trans:       trans,
		justice:     justice,
		compassion:  compassion,
		diagnostics: diagnostics,
		metrics:     eng,
	}

	if mgr.IsFalse(mgr.And(f.init, f.invar)) {
		diagnostics.Warn("initial states restricted by invariant are empty")
	}
	if !f.IsTotal() {
		diagnostics.Warn("some legal state-input pair has no successor")
	}

	return f, nil
}

// Manager returns the BDD manager this FSM was built against.
func (f *BddFsm) Manager() bdd.Manager { return f.mgr }

// Init returns the initial-states predicate.
func (f *BddFsm) Init() bdd.States { return f.init }

// Invar returns the state-invariant predicate I(x).
func (f *BddFsm) Invar() bdd.States { return f.invar }

// Trans returns the transition relation T(x,i,x').
func (f *BddFsm) Trans() bdd.BDD { return f.trans }

func (f *BddFsm) legalStateInput() bdd.BDD {
	if f.cache.legalValid {
		return f.cache.legalStateInput
	}
	f.cache.legalStateInput = f.WbwdImg(f.mgr.True())
	f.cache.legalValid = true
	return f.cache.legalStateInput
}

func (f *BddFsm) invalidateCaches() {
	f.cache = cacheState{}
}

// Package bdd declares the BDD package collaborator contract spec.md §6
// names: symcore treats the BDD engine itself as an external, opaque
// dependency (a Non-goal to implement) and depends only on this
// interface. A small reference Manager backs package tests; production
// callers wire in a real BDD package behind the same interface.
package bdd

// BDD is an opaque, refcounted handle into a shared Manager. States,
// StateInputs and StateInputsNext are thin refinement aliases that carry
// intent but add no runtime checks, per spec.md §9's design note.
type BDD any

type States = BDD
type StateInputs = BDD
type StateInputsNext = BDD

// Manager is the BDD package collaborator contract spec.md §6 requires:
// boolean connectives, quantification, minterm pickers, state counting
// and the standing cube/mask accessors the FSM layer needs.
type Manager interface {
	True() BDD
	False() BDD

	And(a, b BDD) BDD
	Or(a, b BDD) BDD
	Not(a BDD) BDD
	Ite(cond, then, els BDD) BDD

	// Exists, ForSome and ForAll existentially/universally quantify a
	// over the variables named by cube, a BDD built via Cube.
	Exists(a BDD, cube BDD) BDD
	ForSome(a BDD, cube BDD) BDD
	ForAll(a BDD, cube BDD) BDD
	AndAbstract(a, b BDD, cube BDD) BDD

	// Entailed reports whether a implies b (a ⊆ b as state sets).
	Entailed(a, b BDD) bool
	IsFalse(a BDD) bool

	Ref(a BDD) BDD
	Deref(a BDD)

	// StateToNext and NextToState rename between the state and next-state
	// variable layers.
	StateToNext(a BDD) BDD
	NextToState(a BDD) BDD

	StateCube() BDD
	InputCube() BDD
	FrozenCube() BDD

	PickOneState(a BDD) (BDD, error)
	PickOneInput(a BDD) (BDD, error)
	PickAllTermsStates(a BDD) ([]BDD, error)
	PickAllTermsInputs(a BDD) ([]BDD, error)

	StateCount(a BDD) float64

	MaskState() BDD
	MaskInput() BDD
	MaskStateFrozen() BDD
	MaskStateFrozenInput() BDD
}

package fsm

import "github.com/luxfi/symcore/bdd"

// Direction selects which image operator the inner Emerson-Lei fixpoint
// uses: BWD walks backward (pre-image), FWD walks forward (state-input
// image), yielding reverse-fair states.
type Direction int

const (
	BWD Direction = iota
	FWD
)

// FairStates computes the set of fair state-input pairs via the outer
// GFP / inner EUorES Emerson-Lei fixpoint (spec.md §4.G.4). The BWD result
// is cached, and on its first computation it warns if no fair state/input
// exists, or if init has an empty intersection with the fair set. The FWD
// (reverse-fair) result is recomputed on every call and emits no warning.
func (f *BddFsm) FairStates(dir Direction) bdd.BDD {
	if dir == BWD && f.cache.fairComputed {
		return f.cache.fairStates
	}

	m := f.mgr
	z := f.legalStateInput()
	if f.cache.reachable != nil {
		z = m.And(z, f.cache.reachable.all)
	}

	for {
		old := z
		z = m.And(z, f.innerFixpoint(z, dir))
		if m.Entailed(z, old) && m.Entailed(old, z) {
			break
		}
	}

	if dir == FWD {
		return z
	}
	f.cache.fairStates = z
	f.cache.fairComputed = true

	if m.IsFalse(z) {
		f.diagnostics.Warn("no fair state-input pair exists")
	} else if m.IsFalse(m.And(f.init, z)) {
		f.diagnostics.Warn("initial states do not intersect the fair states")
	}

	return z
}

// innerFixpoint computes inner(Z) per spec.md §4.G.4:
//
//	EXorEY(Z ∧ ⋀_{p∈justice} EUorES(Z, Z∧p)
//	         ∧ ⋀_{(p,q)∈compassion} ((Z ∧ ¬p) ∨ EUorES(Z, Z∧q)))
func (f *BddFsm) innerFixpoint(z bdd.BDD, dir Direction) bdd.BDD {
	m := f.mgr
	acc := z

	for it := f.justice.Begin(); !it.IsEnd(); it.Next() {
		p := it.P()
		acc = m.And(acc, f.euOrEs(z, m.And(z, p), dir))
	}
	for it := f.compassion.Begin(); !it.IsEnd(); it.Next() {
		p, q := it.P(), it.Q()
		term := m.Or(m.And(z, m.Not(p)), f.euOrEs(z, m.And(z, q), dir))
		acc = m.And(acc, term)
	}

	return f.exOrEy(acc, dir)
}

// exOrEy is the (weak) pre-image for BWD, or the state-input forward image
// for FWD.
func (f *BddFsm) exOrEy(z bdd.BDD, dir Direction) bdd.BDD {
	if dir == FWD {
		return f.StateInputFwdImg(z)
	}
	return f.WbwdImg(z)
}

// euOrEs is the greatest-fixpoint reachability of g inside f, visiting
// fair targets: repeatedly take the (weak) pre-image/forward image of g
// restricted to fBound, unioning in g itself, until closure.
func (f *BddFsm) euOrEs(fBound, g bdd.BDD, dir Direction) bdd.BDD {
	m := f.mgr
	z := g
	for {
		old := z
		step := m.And(f.exOrEy(z, dir), fBound)
		z = m.Or(g, step)
		if m.Entailed(z, old) && m.Entailed(old, z) {
			return z
		}
	}
}

// FairnessConstraint names one justice or compassion constraint cluster
// for reporting purposes.
type FairnessConstraint struct {
	Kind string // "justice" or "compassion"
	P, Q bdd.States
}

// FairnessReport returns every justice and compassion constraint in
// order, justice first. It lists the constraints only; it does not
// evaluate them against the fair states. Unlike the original engine
// (which returned after the first cluster), this iterates every
// constraint.
func (f *BddFsm) FairnessReport() []FairnessConstraint {
	var out []FairnessConstraint
	for it := f.justice.Begin(); !it.IsEnd(); it.Next() {
		out = append(out, FairnessConstraint{Kind: "justice", P: it.P()})
	}
	for it := f.compassion.Begin(); !it.IsEnd(); it.Next() {
		out = append(out, FairnessConstraint{Kind: "compassion", P: it.P(), Q: it.Q()})
	}
	return out
}

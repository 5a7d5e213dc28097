package fsm

import "github.com/luxfi/symcore/symerr"

// SynchronousProduct mutates f into self ⊗ other: conjoins init,
// invariants and transitions, concatenates the fairness lists, and
// detaches every cache entry a product invalidates (reachable, fair
// states, deadlock states, legal-state-input). Fails fast if the two
// FSMs were not built against the same BDD manager.
func (f *BddFsm) SynchronousProduct(other *BddFsm) error {
	if other == nil {
		return symerr.NewContract("fsm.SynchronousProduct", "nil operand")
	}
	if f.mgr != other.mgr {
		return symerr.NewInvariant("fsm.SynchronousProduct", "operands use different BDD managers")
	}

	m := f.mgr
	f.init = m.Ref(m.And(f.init, other.init))
	f.invar = m.Ref(m.And(f.invar, other.invar))
	f.trans = m.And(f.trans, other.trans)
	if other.inputInvar != nil {
		if f.inputInvar == nil {
			f.inputInvar = other.inputInvar
		} else {
			f.inputInvar = m.And(f.inputInvar, other.inputInvar)
		}
	}

	f.justice.ApplySynchronousProduct(other.justice)
	f.compassion.ApplySynchronousProduct(other.compassion)

	f.invalidateCaches()
	return nil
}

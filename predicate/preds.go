// Package predicate implements the predicate extractor, spec.md §4.D:
// a post-order walk over an expression that collapses boolean-shaped
// subtrees to one of four sentinels and non-boolean subtrees to a set of
// atomic predicates, then clusters the coupled variables under
// union-find. Grounded on original_source's compile/PredicateExtractor.c.
package predicate

import (
	"github.com/luxfi/symcore/container"
	"github.com/luxfi/symcore/expr"
)

// SentinelKind distinguishes the four special extraction results from an
// ordinary set of atoms. Grounded on spec.md §9's design note replacing
// the original's out-of-band sentinel pointers with a sum type.
type SentinelKind int

const (
	PSet SentinelKind = iota
	PTrue
	PFalse
	PArbitrary
	POverApprox
)

// Preds is the result of extracting predicates from one expression: the
// boolean-context sentinels carry no payload; PSet carries the atom set.
type Preds struct {
	Kind SentinelKind
	Atoms *container.Set[*expr.Node]
}

func nodeLess(a, b *expr.Node) bool {
	// Pointer identity has no natural order; fall back to the interner's
	// insertion-independent field comparisons, then to the children, so two
	// runs over the same program still print predicate sets in the same order.
	if a == b || b == nil {
		return false
	}
	if a == nil {
		return true
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Lit.Str != b.Lit.Str {
		return a.Lit.Str < b.Lit.Str
	}
	if a.Lit.Int != b.Lit.Int {
		return a.Lit.Int < b.Lit.Int
	}
	if a.Lit.Bool != b.Lit.Bool {
		return !a.Lit.Bool
	}
	if a.Left != b.Left {
		return nodeLess(a.Left, b.Left)
	}
	return nodeLess(a.Right, b.Right)
}

func newAtomSet(atoms ...*expr.Node) *container.Set[*expr.Node] {
	return container.Of(nodeLess, atoms...)
}

// True, False, Arbitrary and OverApprox are the four sentinel results.
func True() Preds       { return Preds{Kind: PTrue} }
func False() Preds      { return Preds{Kind: PFalse} }
func Arbitrary() Preds  { return Preds{Kind: PArbitrary} }
func OverApprox() Preds { return Preds{Kind: POverApprox} }

// Set wraps an atom set as a PSet result.
func Set(atoms *container.Set[*expr.Node]) Preds {
	return Preds{Kind: PSet, Atoms: atoms}
}

// IsSentinel reports whether p is one of the four boolean-context
// sentinels rather than an atom set.
func (p Preds) IsSentinel() bool { return p.Kind != PSet }

// toBooleanContext collapses OverApprox into Arbitrary the moment a
// result re-enters a boolean-returning construct, per spec.md §4.D:
// "OVER-APPROX ... collapses to ARBITRARY-PREDS once it re-enters a
// boolean context."
func toBooleanContext(p Preds) Preds {
	if p.Kind == POverApprox {
		return Arbitrary()
	}
	return p
}

// notPreds applies logical negation pointwise to a sentinel.
func notPreds(p Preds) Preds {
	switch p.Kind {
	case PTrue:
		return False()
	case PFalse:
		return True()
	default:
		return toBooleanContext(p)
	}
}

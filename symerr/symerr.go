// Package symerr defines the two fatal error families spec.md §7 names:
// contract violations (caller misuse — null handle, out-of-range index,
// wrong kind on an interned node, double commit of a layer) and invariant
// breaches (internal consistency failures — incompatible BDD managers in a
// synchronous product, a bit symbol that does not belong to its declared
// variable, conflicting solver-group state). Both are fatal per spec.md's
// error taxonomy and the library does not attempt to recover the call.
// Calls with an error result return them as typed errors; calls without
// one (sat.CNF.ConstantValue, and bdd.RefManager's checks on foreign
// handles and unknown variable names) panic with a *Contract instead.
package symerr

import "fmt"

// Contract reports that a caller violated a documented precondition.
type Contract struct {
	Op     string
	Reason string
}

func (e *Contract) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Reason)
}

// NewContract builds a Contract error.
func NewContract(op, reason string) error {
	return &Contract{Op: op, Reason: reason}
}

// Invariant reports that an internal consistency invariant was broken.
type Invariant struct {
	Op     string
	Reason string
}

func (e *Invariant) Error() string {
	return fmt.Sprintf("invariant breach in %s: %s", e.Op, e.Reason)
}

// NewInvariant builds an Invariant error.
func NewInvariant(op, reason string) error {
	return &Invariant{Op: op, Reason: reason}
}

// Unsupported reports that a capability a caller asked for is optional and
// the concrete backend/variant in use does not implement it (spec.md §9's
// open questions on per-backend conflict extraction and per-variant
// scalar encodings).
type Unsupported struct {
	Feature string
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s", e.Feature)
}

// NewUnsupported builds an Unsupported error.
func NewUnsupported(feature string) error {
	return &Unsupported{Feature: feature}
}

// IsContract reports whether err is a *Contract.
func IsContract(err error) bool {
	_, ok := err.(*Contract)
	return ok
}

// IsInvariant reports whether err is a *Invariant.
func IsInvariant(err error) bool {
	_, ok := err.(*Invariant)
	return ok
}

// Package fairness holds justice and compassion constraint lists: ordered
// sequences of BDD-encoded state predicates consumed by the fair-states
// fixpoint in package fsm.
package fairness

import "github.com/luxfi/symcore/bdd"

// JusticeList is an ordered sequence of states-predicates p, each requiring
// that p holds infinitely often along a fair path.
type JusticeList struct {
	p []bdd.States
}

// NewJusticeList returns an empty justice list.
func NewJusticeList() *JusticeList {
	return &JusticeList{}
}

// IsEmpty reports whether the list holds no constraints.
func (l *JusticeList) IsEmpty() bool {
	return len(l.p) == 0
}

// Len returns the number of constraints in the list.
func (l *JusticeList) Len() int {
	return len(l.p)
}

// Append adds a justice constraint p to the end of the list.
func (l *JusticeList) Append(p bdd.States) {
	l.p = append(l.p, p)
}

// At returns the i-th constraint. It panics if i is out of range, mirroring
// the iterator contract's assumption that callers never walk past End.
func (l *JusticeList) At(i int) bdd.States {
	return l.p[i]
}

// ApplySynchronousProduct concatenates other's constraints onto l, the Go
// shape of the product of two modules' fairness conditions.
func (l *JusticeList) ApplySynchronousProduct(other *JusticeList) {
	l.p = append(l.p, other.p...)
}

// JusticeListIterator walks a JusticeList front to back.
type JusticeListIterator struct {
	list *JusticeList
	pos  int
}

// Begin returns an iterator positioned at the first constraint.
func (l *JusticeList) Begin() *JusticeListIterator {
	return &JusticeListIterator{list: l, pos: 0}
}

// IsEnd reports whether the iterator has passed the last constraint.
func (it *JusticeListIterator) IsEnd() bool {
	return it.pos >= len(it.list.p)
}

// P returns the constraint at the iterator's current position.
func (it *JusticeListIterator) P() bdd.States {
	return it.list.p[it.pos]
}

// Next advances the iterator and returns it, for chained-call style loops.
func (it *JusticeListIterator) Next() *JusticeListIterator {
	it.pos++
	return it
}

// compassionPair is one (p, q) compassion constraint: along a fair path, if
// p holds infinitely often then q must also hold infinitely often.
type compassionPair struct {
	p, q bdd.States
}

// CompassionList is an ordered sequence of (p, q) compassion constraints.
type CompassionList struct {
	pairs []compassionPair
}

// NewCompassionList returns an empty compassion list.
func NewCompassionList() *CompassionList {
	return &CompassionList{}
}

// IsEmpty reports whether the list holds no constraints.
func (l *CompassionList) IsEmpty() bool {
	return len(l.pairs) == 0
}

// Len returns the number of constraints in the list.
func (l *CompassionList) Len() int {
	return len(l.pairs)
}

// Append adds a compassion constraint (p, q).
func (l *CompassionList) Append(p, q bdd.States) {
	l.pairs = append(l.pairs, compassionPair{p: p, q: q})
}

// ApplySynchronousProduct concatenates other's constraints onto l.
func (l *CompassionList) ApplySynchronousProduct(other *CompassionList) {
	l.pairs = append(l.pairs, other.pairs...)
}

// CompassionListIterator walks a CompassionList front to back.
type CompassionListIterator struct {
	list *CompassionList
	pos  int
}

// Begin returns an iterator positioned at the first constraint.
func (l *CompassionList) Begin() *CompassionListIterator {
	return &CompassionListIterator{list: l, pos: 0}
}

// IsEnd reports whether the iterator has passed the last constraint.
func (it *CompassionListIterator) IsEnd() bool {
	return it.pos >= len(it.list.pairs)
}

// P returns the p half of the constraint at the iterator's position.
func (it *CompassionListIterator) P() bdd.States {
	return it.list.pairs[it.pos].p
}

// Q returns the q half of the constraint at the iterator's position.
func (it *CompassionListIterator) Q() bdd.States {
	return it.list.pairs[it.pos].q
}

// Next advances the iterator and returns it.
func (it *CompassionListIterator) Next() *CompassionListIterator {
	it.pos++
	return it
}

// Package container provides the ordered containers the symbolic engine
// builds everything else on top of: a deterministic set of comparable
// elements and a doubly linked, order-preserving list.
package container

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// The minimum capacity a Set is allocated with.
const minSetSize = 16

// Set is a set of elements ordered, on iteration, by an explicit less
// function rather than map order. Unlike a plain hash set, two Sets built
// from the same elements always produce the same List(), which matters
// here: predicate sets and cluster supports are compared and printed
// across runs and must not depend on map iteration order.
type Set[T comparable] struct {
	m    map[T]struct{}
	less func(a, b T) bool
}

// NewSet returns an empty Set with initial capacity size, ordered by less.
// A nil less leaves List() in whatever order maps.Keys reports, which is
// not deterministic; callers that need determinism (predicate sets,
// cluster supports) must supply less.
func NewSet[T comparable](size int, less func(a, b T) bool) *Set[T] {
	if size < minSetSize {
		size = minSetSize
	}
	return &Set[T]{m: make(map[T]struct{}, size), less: less}
}

// Of returns a Set containing elts, ordered by less.
func Of[T comparable](less func(a, b T) bool, elts ...T) *Set[T] {
	s := NewSet[T](len(elts), less)
	s.Add(elts...)
	return s
}

// Add inserts elts into the set. Re-adding an element is a no-op.
func (s *Set[T]) Add(elts ...T) {
	for _, elt := range elts {
		s.m[elt] = struct{}{}
	}
}

// Remove deletes elts from the set, if present.
func (s *Set[T]) Remove(elts ...T) {
	for _, elt := range elts {
		delete(s.m, elt)
	}
}

// Contains reports whether elt is a member of the set.
func (s *Set[T]) Contains(elt T) bool {
	_, ok := s.m[elt]
	return ok
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// Clear empties the set in place.
func (s *Set[T]) Clear() {
	clear(s.m)
}

// Union adds every element of other into s, in place.
func (s *Set[T]) Union(other *Set[T]) {
	for elt := range other.m {
		s.m[elt] = struct{}{}
	}
}

// Intersection returns a new set of the elements common to both sets.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	result := NewSet[T](small.Len(), s.less)
	for elt := range small.m {
		if big.Contains(elt) {
			result.Add(elt)
		}
	}
	return result
}

// Difference removes every element of other from s, in place.
func (s *Set[T]) Difference(other *Set[T]) {
	for elt := range other.m {
		delete(s.m, elt)
	}
}

// Overlaps reports whether s and other share at least one element.
func (s *Set[T]) Overlaps(other *Set[T]) bool {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	for elt := range small.m {
		if big.Contains(elt) {
			return true
		}
	}
	return false
}

// Equals reports whether s and other contain exactly the same elements.
func (s *Set[T]) Equals(other *Set[T]) bool {
	return maps.Equal(s.m, other.m)
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	result := NewSet[T](s.Len(), s.less)
	maps.Copy(result.m, s.m)
	return result
}

// List returns the elements of the set as a slice. If the set was
// constructed with a less function the result is sorted by it; otherwise
// the order is whatever the underlying map produces.
func (s *Set[T]) List() []T {
	elts := maps.Keys(s.m)
	if s.less != nil {
		sort.Slice(elts, func(i, j int) bool { return s.less(elts[i], elts[j]) })
	}
	return elts
}

// String renders the set as "{elt, elt, ...}" in List() order.
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, elt := range s.List() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", elt)
	}
	sb.WriteString("}")
	return sb.String()
}

// ReleaseSetOfSets releases every member set of a set of sets, then the
// outer set itself. Mirrors spec.md 4.A's "deep-release-of-set-of-sets":
// a Set[*Set[T]] owns its member sets and nothing else does.
func ReleaseSetOfSets[T comparable](outer *Set[*Set[T]]) {
	for inner := range outer.m {
		inner.Clear()
	}
	outer.Clear()
}

package fsm

import (
	"time"

	"github.com/luxfi/symcore/bdd"
)

// reachableCache holds the onion-ring expansion of the reachable state
// space: rings[i] is the frontier discovered at distance i, all is their
// union, and fixpoint records whether the expansion has reached closure.
type reachableCache struct {
	rings    []bdd.States
	all      bdd.States
	fixpoint bool
}

// ComputeReachable runs the reachability fixpoint to closure (no step or
// time bound). It is equivalent to ExpandCachedReachableStates(-1, -1).
func (f *BddFsm) ComputeReachable() {
	f.ExpandCachedReachableStates(-1, -1)
}

// ExpandCachedReachableStates resumes the onion-ring expansion from the
// cache. A negative k means no step bound; a negative sec means no time
// bound. If both are negative the expansion runs to fixpoint.
func (f *BddFsm) ExpandCachedReachableStates(k int, sec float64) {
	m := f.mgr

	if f.cache.reachable == nil {
		r0 := m.And(f.init, f.invar)
		f.cache.reachable = &reachableCache{
			rings: []bdd.States{r0},
			all:   r0,
		}
	}
	rc := f.cache.reachable
	if rc.fixpoint {
		return
	}

	var deadline time.Time
	hasDeadline := sec >= 0
	if hasDeadline {
		deadline = time.Now().Add(time.Duration(sec * float64(time.Second)))
	}

	steps := 0
	frontier := rc.rings[len(rc.rings)-1]
	for {
		if m.IsFalse(frontier) {
			rc.fixpoint = true
			break
		}
		if k >= 0 && steps >= k {
			break
		}
		if hasDeadline && time.Now().After(deadline) {
			break
		}

		img := f.FwdImg(frontier)
		newAll := m.Or(rc.all, img)
		newFrontier := m.And(img, m.Not(rc.all))

		rc.rings = append(rc.rings, newFrontier)
		rc.all = newAll
		frontier = newFrontier
		steps++

		if f.metrics != nil {
			f.metrics.OnionRingDepth.Set(float64(len(rc.rings) - 1))
		}
	}
}

// Diameter returns the number of expansion steps taken so far, i.e. the
// number of onion rings after the initial one (the reachability diameter
// once Reached() is true).
func (f *BddFsm) Diameter() int {
	if f.cache.reachable == nil {
		return 0
	}
	return len(f.cache.reachable.rings) - 1
}

// Reached reports whether the reachability fixpoint has closed.
func (f *BddFsm) Reached() bool {
	return f.cache.reachable != nil && f.cache.reachable.fixpoint
}

// ReachableStates returns the union of reachable states computed so far.
// Callers that need the full reachable set should call ComputeReachable
// first.
func (f *BddFsm) ReachableStates() bdd.States {
	if f.cache.reachable == nil {
		return f.mgr.False()
	}
	return f.cache.reachable.all
}

// DistanceOfStates returns the largest i with s ⊆ R_i, or -1 if no such i
// exists among the rings computed so far. Once the fixpoint loop confirms
// closure it appends one trailing empty ring (the probe frontier that
// found nothing new); that ring never grows union, so it must not be
// allowed to advance best past the last ring that actually did.
func (f *BddFsm) DistanceOfStates(s bdd.States) int {
	rc := f.cache.reachable
	if rc == nil {
		return -1
	}
	union := f.mgr.False()
	best := -1
	for i, ring := range rc.rings {
		if f.mgr.IsFalse(ring) {
			continue
		}
		union = f.mgr.Or(union, ring)
		if f.mgr.Entailed(s, union) {
			best = i
		}
	}
	return best
}

// MinimumDistanceOfStates returns the smallest i with s ∩ R_i ≠ ⊥, or -1
// if s never intersects any ring computed so far.
func (f *BddFsm) MinimumDistanceOfStates(s bdd.States) int {
	rc := f.cache.reachable
	if rc == nil {
		return -1
	}
	union := f.mgr.False()
	for i, ring := range rc.rings {
		if f.mgr.IsFalse(ring) {
			continue
		}
		union = f.mgr.Or(union, ring)
		if !f.mgr.IsFalse(f.mgr.And(s, union)) {
			return i
		}
	}
	return -1
}

// ReachableStatesAtDistance returns R_d \ R_{d-1}, the frontier discovered
// exactly at distance d, or False if d is out of the range computed so
// far.
func (f *BddFsm) ReachableStatesAtDistance(d int) bdd.States {
	rc := f.cache.reachable
	if rc == nil || d < 0 || d >= len(rc.rings) {
		return f.mgr.False()
	}
	return rc.rings[d]
}

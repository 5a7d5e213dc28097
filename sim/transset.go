// Package sim implements the interactive simulator core: given a current
// state (or none, for an initial-states query) and a pre-picked set of
// candidate next states, enumerate the concrete next states and, per next
// state, the concrete inputs that label a transition to it, then let a
// caller pick one state-input pair by index, uniformly at random, or
// deterministically (the first).
package sim

import (
	"fmt"
	"io"

	"github.com/luxfi/symcore/bdd"
	"github.com/luxfi/symcore/fsm"
	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/utils/sampler"
)

// TransSet holds, for one simulation step, the enumerated next states and,
// for each, the enumerated inputs that lead to it from the current state.
// A nil fromState means the initial states are being queried, in which
// case no inputs are collected.
type TransSet struct {
	fsm       *fsm.BddFsm
	fromState bdd.States // nil for an initial-states query

	nextStates     []bdd.States
	inputsPerState [][]bdd.States
}

// New builds a TransSet over nextStatesSet, capped at count entries
// (count must be in (0, INT_MAX]; the caller has already picked
// nextStatesSet and bounded its size). If the model has no state/frozen
// variables at all, PickAllTermsStates degenerates to nothing to
// enumerate and the set becomes the single sentinel ⊤ term, matching
// the "[⊤] if no state/frozen variables exist" case.
func New(f *fsm.BddFsm, fromState bdd.States, nextStatesSet bdd.States, count int) (*TransSet, error) {
	if f == nil {
		return nil, symerr.NewContract("sim.New", "nil fsm")
	}
	if count <= 0 {
		return nil, symerr.NewContract("sim.New", "next state count must be positive")
	}

	mgr := f.Manager()
	terms, err := mgr.PickAllTermsStates(nextStatesSet)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		terms = []bdd.States{mgr.True()}
	}
	if len(terms) > count {
		terms = terms[:count]
	}

	ts := &TransSet{fsm: f, fromState: fromState, nextStates: terms}
	if fromState != nil {
		ts.inputsPerState = make([][]bdd.States, len(terms))
		for i, next := range terms {
			inputs := f.StatesToStatesGetInputs(fromState, next)
			picked, err := mgr.PickAllTermsInputs(inputs)
			if err != nil {
				return nil, err
			}
			ts.inputsPerState[i] = picked
		}
	}
	return ts, nil
}

// FromState returns the state this set's transitions originate from, and
// false if this is an initial-states query.
func (ts *TransSet) FromState() (bdd.States, bool) {
	if ts.fromState == nil {
		return nil, false
	}
	return ts.fromState, true
}

// NextStateCount returns the cardinality of the target set of states.
func (ts *TransSet) NextStateCount() int {
	return len(ts.nextStates)
}

// NextState returns the stateIndex-th element of the target set.
func (ts *TransSet) NextState(stateIndex int) (bdd.States, error) {
	if stateIndex < 0 || stateIndex >= len(ts.nextStates) {
		return nil, symerr.NewContract("sim.TransSet.NextState", "state index out of range")
	}
	return ts.nextStates[stateIndex], nil
}

// InputCount returns the number of inputs leading to the stateIndex-th
// next state. Zero both when the transition needs no input and when this
// set is an initial-states query.
func (ts *TransSet) InputCount(stateIndex int) int {
	if ts.inputsPerState == nil || stateIndex < 0 || stateIndex >= len(ts.inputsPerState) {
		return 0
	}
	return len(ts.inputsPerState[stateIndex])
}

// InputAt returns the inputIndex-th input leading to the stateIndex-th
// next state.
func (ts *TransSet) InputAt(stateIndex, inputIndex int) (bdd.States, error) {
	if stateIndex < 0 || stateIndex >= len(ts.nextStates) {
		return nil, symerr.NewContract("sim.TransSet.InputAt", "state index out of range")
	}
	if ts.inputsPerState == nil || inputIndex < 0 || inputIndex >= len(ts.inputsPerState[stateIndex]) {
		return nil, symerr.NewContract("sim.TransSet.InputAt", "input index out of range")
	}
	return ts.inputsPerState[stateIndex][inputIndex], nil
}

// flatCount returns the total number of distinct state-input pairs (a
// next state with zero inputs still counts once, matching the original
// indexing scheme where an input-less state occupies one slot).
func (ts *TransSet) flatCount() int {
	count := 0
	for s := range ts.nextStates {
		n := ts.InputCount(s)
		if n > 0 {
			count += n
		} else {
			count++
		}
	}
	return count
}

// stateInputAtFlatIndex resolves a flat index over every state-input pair
// (or bare state, if input-less) into its (state, input) components.
func (ts *TransSet) stateInputAtFlatIndex(index int) (bdd.States, bdd.States, error) {
	count := 0
	for s := range ts.nextStates {
		n := ts.InputCount(s)
		if n > 0 {
			if index < count+n {
				state, _ := ts.NextState(s)
				input, err := ts.InputAt(s, index-count)
				if err != nil {
					return nil, nil, err
				}
				return state, input, nil
			}
			count += n
		} else {
			if index == count {
				state, _ := ts.NextState(s)
				return state, nil, nil
			}
			count++
		}
	}
	return nil, nil, symerr.NewContract("sim.TransSet.stateInputAtFlatIndex", "index out of range")
}

// StateInputAt picks the state-input pair at the given index, as shown by
// Print, rejecting an out-of-range index.
func (ts *TransSet) StateInputAt(index int) (state, input bdd.States, err error) {
	if index < 0 || index >= ts.flatCount() {
		return nil, nil, symerr.NewContract("sim.TransSet.StateInputAt", "index out of range")
	}
	return ts.stateInputAtFlatIndex(index)
}

// StateInputRandom picks a state-input pair uniformly at random over the
// set of state-input pairs (a state reached by no input is its own
// singleton choice).
func (ts *TransSet) StateInputRandom() (state, input bdd.States, err error) {
	total := ts.flatCount()
	if total == 0 {
		return nil, nil, symerr.NewContract("sim.TransSet.StateInputRandom", "no state-input pairs to pick from")
	}
	u := sampler.NewUniform()
	if err := u.Initialize(total); err != nil {
		return nil, nil, err
	}
	picked, ok := u.Sample(1)
	if !ok {
		return nil, nil, symerr.NewContract("sim.TransSet.StateInputRandom", "sampler could not pick an index")
	}
	return ts.stateInputAtFlatIndex(picked[0])
}

// StateInputDeterministic picks the first state-input pair.
func (ts *TransSet) StateInputDeterministic() (state, input bdd.States, err error) {
	if len(ts.nextStates) == 0 {
		return nil, nil, symerr.NewContract("sim.TransSet.StateInputDeterministic", "no next states to pick from")
	}
	state, _ = ts.NextState(0)
	if ts.InputCount(0) > 0 {
		input, err = ts.InputAt(0, 0)
		return state, input, err
	}
	return state, nil, nil
}

// Print writes the enumerated states and their labeling inputs to w, with
// the flat index shown next to each choice so a caller can refer to it by
// number (via StateInputAt). Returns the highest index printed, or -1 if
// there is nothing to print.
func (ts *TransSet) Print(w io.Writer) (int, error) {
	if len(ts.nextStates) == 0 {
		if _, err := fmt.Fprintln(w, "there are no available states"); err != nil {
			return -1, err
		}
		return -1, nil
	}

	if _, err := fmt.Fprintln(w, "available states"); err != nil {
		return -1, err
	}

	count := 0
	for s := range ts.nextStates {
		n := ts.InputCount(s)
		if _, err := fmt.Fprintf(w, "state %d\n", s); err != nil {
			return -1, err
		}
		if n == 0 {
			if _, err := fmt.Fprintf(w, "%d) -------------------------\n", count); err != nil {
				return -1, err
			}
			count++
			continue
		}
		for i := 0; i < n; i++ {
			if _, err := fmt.Fprintf(w, "%d) input %d for state %d\n", count, i, s); err != nil {
				return -1, err
			}
			if i < n-1 {
				count++
			}
		}
		count++
	}
	return count - 1, nil
}

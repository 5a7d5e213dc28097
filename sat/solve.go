package sat

import (
	"time"

	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/utils/wrappers"
)

// Add asserts cnf into group: each clause is translated to internal
// variables and, for a non-permanent group, extended with the group's
// switch literal so destroying the group can vacuously satisfy it.
func (s *Solver) Add(cnf CNF, group Group) error {
	if cnf.IsConstant() {
		return nil
	}
	if !s.groupExists(group) {
		return symerr.NewContract("sat.Solver.Add", "unknown group")
	}
	sw, nonPermanent := s.groupSwitch[group]

	for _, clause := range cnf.Clauses {
		lits := s.vars.translateClause(clause)
		if nonPermanent {
			lits = append(lits, sw)
		}
		s.backend.AddClause(lits)
	}
	return nil
}

// SetPolarity asserts a unit clause pol*lit(cnf), extended with the group
// switch when non-permanent. Special-cases a constant cnf: a constant
// true added to a group is a no-op; a constant false marks the group
// unsatisfiable (unless interpolation is enabled, in which case it is
// asserted like any other formula so proof logging still sees it).
func (s *Solver) SetPolarity(cnf CNF, polarity int, group Group) error {
	if polarity != 1 && polarity != -1 {
		return symerr.NewContract("sat.Solver.SetPolarity", "polarity must be 1 or -1")
	}
	if !s.groupExists(group) {
		return symerr.NewContract("sat.Solver.SetPolarity", "unknown group")
	}

	if cnf.IsConstant() {
		value := 1
		if !cnf.ConstantValue() {
			value = -1
		}
		value *= polarity
		if value == 1 {
			return nil
		}
		if !s.interpolation {
			s.unsatGroups[group] = true
			return nil
		}
	}

	sw, nonPermanent := s.groupSwitch[group]
	lit := Literal(polarity) * s.vars.translateLiteral(cnf.FormulaLiteral)
	lits := []Literal{lit}
	if nonPermanent {
		lits = append(lits, sw)
	}
	s.backend.AddClause(lits)
	return nil
}

func (s *Solver) resetResult() {
	s.model = nil
	s.modelValid = false
	s.conflicts = nil
	s.conflictValid = false
}

func (s *Solver) enabledSwitchAssumptions() []Literal {
	var assumptions []Literal
	for _, g := range s.existingGroups {
		sw, ok := s.groupSwitch[g]
		if !ok {
			continue
		}
		assumptions = append(assumptions, -sw)
	}
	return assumptions
}

func (s *Solver) timed(fn func() (Outcome, error)) (Outcome, error) {
	start := time.Now()
	outcome, err := fn()
	s.lastSolveTime = time.Since(start)
	if s.eng != nil && s.eng.SATSolveSeconds != nil {
		s.eng.SATSolveSeconds.Observe(s.lastSolveTime.Seconds())
	}
	return outcome, err
}

// SolveAllGroups solves every existing group together.
func (s *Solver) SolveAllGroups() (Outcome, error) {
	s.resetResult()
	if len(s.unsatGroups) > 0 {
		s.diagnostics.Warn("solve_all_groups short-circuited: group already unsatisfiable", "groups", len(s.unsatGroups))
		return UNSAT, nil
	}
	outcome, err := s.timed(func() (Outcome, error) {
		return s.backend.Solve(s.enabledSwitchAssumptions())
	})
	if outcome == SAT {
		s.model = s.backend.Model()
		s.modelValid = true
	}
	return outcome, err
}

// SolveGroups solves the permanent group plus exactly the given groups,
// disabling every other non-permanent group via its switch literal.
func (s *Solver) SolveGroups(groups []Group) (Outcome, error) {
	s.resetResult()
	wanted := make(map[Group]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
		if s.unsatGroups[g] {
			s.diagnostics.Warn("solve_groups short-circuited: requested group already unsatisfiable", "group", int(g))
			return UNSAT, nil
		}
	}

	var assumptions []Literal
	for _, g := range s.existingGroups {
		sw, ok := s.groupSwitch[g]
		if !ok {
			continue
		}
		if wanted[g] {
			assumptions = append(assumptions, -sw)
		} else {
			assumptions = append(assumptions, sw)
		}
	}

	outcome, err := s.timed(func() (Outcome, error) {
		return s.backend.Solve(assumptions)
	})
	if outcome == SAT {
		s.model = s.backend.Model()
		s.modelValid = true
	}
	return outcome, err
}

// SolveWithoutGroups solves the permanent group plus every existing group
// except the given ones.
func (s *Solver) SolveWithoutGroups(excluded []Group) (Outcome, error) {
	exclude := make(map[Group]bool, len(excluded))
	for _, g := range excluded {
		exclude[g] = true
	}
	var keep []Group
	for _, g := range s.existingGroups {
		if g == s.PermanentGroup() || exclude[g] {
			continue
		}
		keep = append(keep, g)
	}
	return s.SolveGroups(keep)
}

// SolveAllGroupsAssume solves the permanent group under the given
// CNF-literal assumptions. No switch literal is assumed, so the clauses of
// non-permanent groups do not constrain the result.
func (s *Solver) SolveAllGroupsAssume(assumptions []Literal) (Outcome, error) {
	s.resetResult()
	internal := make([]Literal, len(assumptions))
	for i, lit := range assumptions {
		internal[i] = s.vars.translateLiteral(lit)
	}

	outcome, err := s.timed(func() (Outcome, error) {
		return s.backend.Solve(internal)
	})
	switch outcome {
	case SAT:
		s.model = s.backend.Model()
		s.modelValid = true
	case UNSAT:
		if cc, ok := s.backend.(ConflictCapable); ok {
			s.conflicts = cc.Conflicts(internal)
			s.conflictValid = true
		}
	}
	return outcome, err
}

// GetModel returns the last satisfying assignment, translated back to CNF
// variable ids. It is a contract violation to call before a SAT result.
func (s *Solver) GetModel() ([]Literal, error) {
	if !s.modelValid {
		return nil, symerr.NewContract("sat.Solver.GetModel", "no satisfiable result to read a model from")
	}
	return s.translateInternalLiterals(s.model), nil
}

// translateInternalLiterals maps a list of internal-id literals back to
// CNF-facing ids, dropping any that belong to group switch machinery and
// have no CNF counterpart.
func (s *Solver) translateInternalLiterals(lits []Literal) []Literal {
	out := make([]Literal, 0, len(lits))
	for _, lit := range lits {
		v := int(lit)
		neg := v < 0
		if neg {
			v = -v
		}
		cnfVar, ok := s.vars.InternalToCNF(v)
		if !ok {
			continue // belongs to group machinery
		}
		if neg {
			out = append(out, Literal(-cnfVar))
		} else {
			out = append(out, Literal(cnfVar))
		}
	}
	return out
}

// ModelDigest packs the last model's CNF literals into a compact byte
// string, each literal as a signed 4-byte big-endian int, for logging a
// satisfying assignment without printing it as a long literal list.
func (s *Solver) ModelDigest() ([]byte, error) {
	model, err := s.GetModel()
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(4 * len(model))
	for _, lit := range model {
		p.PackInt(uint32(int32(lit)))
	}
	return p.Bytes, p.Err
}

// GetConflicts returns the subset of the last assume-call's assumptions
// identified as the unsatisfiable core. Returns symerr.Unsupported if the
// backend does not implement ConflictCapable.
func (s *Solver) GetConflicts() ([]Literal, error) {
	if _, ok := s.backend.(ConflictCapable); !ok {
		return nil, symerr.NewUnsupported("backend does not support conflict extraction")
	}
	if !s.conflictValid {
		return nil, symerr.NewContract("sat.Solver.GetConflicts", "no UNSAT-under-assumptions result to read conflicts from")
	}
	return s.translateInternalLiterals(s.conflicts), nil
}

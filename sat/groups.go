package sat

import "github.com/luxfi/symcore/symerr"

// NewGroup allocates a fresh non-permanent group with its own switch
// variable.
func (s *Solver) NewGroup() Group {
	g := s.nextGroup
	s.nextGroup++
	s.existingGroups = append(s.existingGroups, g)
	sw := Literal(s.vars.newSwitchVariable())
	s.groupSwitch[g] = sw
	return g
}

// DestroyGroup removes a non-permanent group: its switch variable is
// asserted as a unit clause so all clauses bearing that switch become
// vacuously satisfied. Destroying the permanent group is a contract
// violation.
func (s *Solver) DestroyGroup(g Group) error {
	if g == s.PermanentGroup() {
		return symerr.NewContract("sat.Solver.DestroyGroup", "cannot destroy the permanent group")
	}
	sw, ok := s.groupSwitch[g]
	if !ok {
		return symerr.NewContract("sat.Solver.DestroyGroup", "unknown group")
	}
	s.backend.AddClause([]Literal{sw})
	delete(s.groupSwitch, g)
	delete(s.unsatGroups, g)
	s.removeGroup(g)
	return nil
}

// MakePermanent moves g's clauses permanently into the solver: the
// negated switch unit-clause is asserted, so the switch is always 0 and
// the switch literal no longer disables member clauses.
func (s *Solver) MakePermanent(g Group) error {
	sw, ok := s.groupSwitch[g]
	if !ok {
		return symerr.NewContract("sat.Solver.MakePermanent", "unknown group")
	}
	s.backend.AddClause([]Literal{-sw})
	delete(s.groupSwitch, g)
	return nil
}

func (s *Solver) removeGroup(g Group) {
	for i, existing := range s.existingGroups {
		if existing == g {
			s.existingGroups = append(s.existingGroups[:i], s.existingGroups[i+1:]...)
			return
		}
	}
}

func (s *Solver) groupExists(g Group) bool {
	for _, existing := range s.existingGroups {
		if existing == g {
			return true
		}
	}
	return false
}

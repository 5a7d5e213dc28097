package sat

// Backend is the opaque CNF-solving engine collaborator. A Solver never
// runs DPLL/CDCL itself; it only manages groups, switch variables and the
// CNF<->internal variable mapping, then delegates to Backend.
type Backend interface {
	// AddClause asserts a clause of internal-variable literals.
	AddClause(lits []Literal)
	// Solve runs the engine under the given internal-variable literal
	// assumptions and returns the outcome.
	Solve(assumptions []Literal) (Outcome, error)
	// Model returns the last satisfying assignment as internal-variable
	// literals. Valid only immediately after a Solve call returning SAT.
	Model() []Literal
}

// ConflictCapable is an optional Backend capability (spec.md §9 Open
// Question: "sat_minisat_make_conflicts-style optional conflict
// extraction"). A backend that does not implement it causes
// Solver.GetConflicts to return symerr.Unsupported.
type ConflictCapable interface {
	// Conflicts returns the subset of assumptions identified as the
	// unsatisfiable core of the last UNSAT solve-under-assumptions call.
	Conflicts(assumptions []Literal) []Literal
}

// Interpolating is an optional Backend capability for proof-logging
// solvers (spec.md §4.H "Interpolation hook (optional)"). A backend that
// does not implement it causes Solver's interpolation methods to return
// symerr.Unsupported.
type Interpolating interface {
	NewItpGroup() int
	CurrItpGroup() int
	ExtractInterpolant(groups []int) (any, error)
}

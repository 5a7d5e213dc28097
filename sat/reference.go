package sat

// BruteForceBackend is a small reference Backend that decides satisfiability
// by trying every assignment over the variables it has seen. Like
// bdd.RefManager, it trades scalability for being a direct, checkable
// implementation of the Backend contract; tests use it, production
// wiring swaps in a real SAT engine.
type BruteForceBackend struct {
	clauses [][]Literal
	nvars   int
	model   []Literal
}

// NewBruteForceBackend returns an empty brute-force backend.
func NewBruteForceBackend() *BruteForceBackend {
	return &BruteForceBackend{}
}

func (b *BruteForceBackend) AddClause(lits []Literal) {
	clause := append([]Literal(nil), lits...)
	b.clauses = append(b.clauses, clause)
	for _, lit := range lits {
		v := int(lit)
		if v < 0 {
			v = -v
		}
		if v > b.nvars {
			b.nvars = v
		}
	}
}

func (b *BruteForceBackend) Solve(assumptions []Literal) (Outcome, error) {
	for _, lit := range assumptions {
		v := int(lit)
		if v < 0 {
			v = -v
		}
		if v > b.nvars {
			b.nvars = v
		}
	}

	n := b.nvars
	for assignment := uint64(0); assignment < uint64(1)<<uint(n); assignment++ {
		if !satisfies(assignment, assumptions) {
			continue
		}
		if satisfiesAll(assignment, b.clauses) {
			b.model = modelFromAssignment(assignment, n)
			return SAT, nil
		}
	}
	b.model = nil
	return UNSAT, nil
}

func (b *BruteForceBackend) Model() []Literal {
	return b.model
}

func bitValue(assignment uint64, v int) bool {
	return assignment&(uint64(1)<<uint(v-1)) != 0
}

func litHolds(assignment uint64, lit Literal) bool {
	v := int(lit)
	if v < 0 {
		return !bitValue(assignment, -v)
	}
	return bitValue(assignment, v)
}

func satisfies(assignment uint64, lits []Literal) bool {
	for _, lit := range lits {
		if !litHolds(assignment, lit) {
			return false
		}
	}
	return true
}

func satisfiesAll(assignment uint64, clauses [][]Literal) bool {
	for _, clause := range clauses {
		if len(clause) == 0 {
			return false // empty clause: unsatisfiable
		}
		ok := false
		for _, lit := range clause {
			if litHolds(assignment, lit) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func modelFromAssignment(assignment uint64, n int) []Literal {
	out := make([]Literal, 0, n)
	for v := 1; v <= n; v++ {
		if bitValue(assignment, v) {
			out = append(out, Literal(v))
		} else {
			out = append(out, Literal(-v))
		}
	}
	return out
}

var _ Backend = (*BruteForceBackend)(nil)

package sat

// varMap is the bidirectional CNF<->internal variable mapping spec.md
// §4.H names: cnf2internal creates an internal variable on first
// reference; internal2cnf may be undefined for switch-variable ids
// (callers treat a missing mapping as "belongs to group machinery").
type varMap struct {
	cnf2internal map[int]int
	internal2cnf map[int]int
	next         int
}

func newVarMap() *varMap {
	return &varMap{
		cnf2internal: make(map[int]int),
		internal2cnf: make(map[int]int),
		next:         1,
	}
}

// CNFToInternal returns the internal variable for cnf, allocating one on
// first reference.
func (m *varMap) CNFToInternal(cnf int) int {
	if v, ok := m.cnf2internal[cnf]; ok {
		return v
	}
	v := m.next
	m.next++
	m.cnf2internal[cnf] = v
	m.internal2cnf[v] = cnf
	return v
}

// InternalToCNF returns the CNF variable for an internal variable, and
// whether it was found. A switch variable (allocated outside
// CNFToInternal) has no entry.
func (m *varMap) InternalToCNF(internal int) (int, bool) {
	cnf, ok := m.internal2cnf[internal]
	return cnf, ok
}

// newSwitchVariable allocates a fresh internal variable with no CNF
// counterpart, used as a group's enable/disable switch.
func (m *varMap) newSwitchVariable() int {
	v := m.next
	m.next++
	return v
}

func (m *varMap) translateLiteral(lit Literal) Literal {
	v := int(lit)
	neg := v < 0
	if neg {
		v = -v
	}
	internal := m.CNFToInternal(v)
	if neg {
		return Literal(-internal)
	}
	return Literal(internal)
}

func (m *varMap) translateClause(c Clause) []Literal {
	out := make([]Literal, len(c))
	for i, lit := range c {
		out[i] = m.translateLiteral(lit)
	}
	return out
}

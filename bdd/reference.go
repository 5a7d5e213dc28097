package bdd

import "github.com/luxfi/symcore/symerr"

// RefManager is a small, fully-enumerated Manager over a fixed variable
// universe. It is not a real BDD package — no sharing, no canonical form —
// but it satisfies Manager's semantics exactly, which is what the rest of
// this module depends on. Tests exercise the fsm and fairness packages
// against it; production wiring swaps in a real BDD engine.
type RefManager struct {
	vars       []string
	index      map[string]int
	stateVars  map[string]bool
	inputVars  map[string]bool
	frozenVars map[string]bool
}

// NewRefManager builds a manager over the union of state, input and frozen
// variables. Variable sets must be disjoint; universe size is 2^len(vars),
// so callers keep it small (this is a test fixture, not a solver).
func NewRefManager(stateVars, inputVars, frozenVars []string) *RefManager {
	m := &RefManager{
		index:      make(map[string]int),
		stateVars:  make(map[string]bool),
		inputVars:  make(map[string]bool),
		frozenVars: make(map[string]bool),
	}
	add := func(names []string, mark map[string]bool) {
		for _, n := range names {
			if _, ok := m.index[n]; ok {
				continue
			}
			m.index[n] = len(m.vars)
			m.vars = append(m.vars, n)
			mark[n] = true
		}
	}
	add(stateVars, m.stateVars)
	add(inputVars, m.inputVars)
	add(frozenVars, m.frozenVars)

	// Every state variable also gets a next-state sibling "<name>'" in the
	// universe, so StateToNext/NextToState have somewhere to rename bits
	// to/from; the sibling is not itself a member of stateVars/inputVars/
	// frozenVars, so cube accessors never see it directly.
	for _, s := range stateVars {
		next := s + "'"
		if _, ok := m.index[next]; ok {
			continue
		}
		m.index[next] = len(m.vars)
		m.vars = append(m.vars, next)
	}
	return m
}

func (m *RefManager) universe() uint64 {
	return uint64(1) << uint(len(m.vars))
}

// node is the concrete BDD representation: a total predicate over full
// variable assignments, encoded as a bitmask index in [0, universe).
type node struct {
	mgr      *RefManager
	eval     func(assignment uint64) bool
	refs     int
	isCube   bool
	cubeBits []int
}

func as(b BDD) *node {
	n, ok := b.(*node)
	if !ok {
		panic(symerr.NewContract("bdd.RefManager", "handle did not originate from this manager"))
	}
	return n
}

func (m *RefManager) bit(assignment uint64, varName string) bool {
	i, ok := m.index[varName]
	if !ok {
		panic(symerr.NewContract("bdd.RefManager", "unknown variable "+varName))
	}
	return assignment&(uint64(1)<<uint(i)) != 0
}

func (m *RefManager) True() BDD {
	return &node{mgr: m, eval: func(uint64) bool { return true }}
}

func (m *RefManager) False() BDD {
	return &node{mgr: m, eval: func(uint64) bool { return false }}
}

// Var returns the BDD for a single named variable being true. It is not
// part of Manager but is how tests and the encoder layer build leaves.
func (m *RefManager) Var(name string) BDD {
	return &node{mgr: m, eval: func(a uint64) bool { return m.bit(a, name) }}
}

// Cube returns the cube BDD over the given variables, used as the second
// argument to Exists/ForSome/ForAll/AndAbstract.
func (m *RefManager) Cube(names ...string) BDD {
	idx := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := m.index[n]
		if !ok {
			panic(symerr.NewContract("bdd.RefManager", "unknown variable "+n))
		}
		idx = append(idx, i)
	}
	return &node{mgr: m, isCube: true, cubeBits: idx}
}

func (m *RefManager) And(a, b BDD) BDD {
	x, y := as(a), as(b)
	if x.isCube && y.isCube {
		// Conjoining two cubes (each a product of positive literals) is
		// itself a cube over the union of their variables; building it as
		// an eval-closure would lose the cubeBits that Exists/ForSome/
		// ForAll/AndAbstract read directly.
		return m.unionCubes(x, y)
	}
	return &node{mgr: m, eval: func(v uint64) bool { return x.eval(v) && y.eval(v) }}
}

func (m *RefManager) unionCubes(x, y *node) BDD {
	seen := make(map[int]bool, len(x.cubeBits)+len(y.cubeBits))
	bits := make([]int, 0, len(x.cubeBits)+len(y.cubeBits))
	for _, bit := range x.cubeBits {
		if !seen[bit] {
			seen[bit] = true
			bits = append(bits, bit)
		}
	}
	for _, bit := range y.cubeBits {
		if !seen[bit] {
			seen[bit] = true
			bits = append(bits, bit)
		}
	}
	return &node{mgr: m, isCube: true, cubeBits: bits}
}

func (m *RefManager) Or(a, b BDD) BDD {
	x, y := as(a), as(b)
	return &node{mgr: m, eval: func(v uint64) bool { return x.eval(v) || y.eval(v) }}
}

func (m *RefManager) Not(a BDD) BDD {
	x := as(a)
	return &node{mgr: m, eval: func(v uint64) bool { return !x.eval(v) }}
}

func (m *RefManager) Ite(cond, then, els BDD) BDD {
	c, t, e := as(cond), as(then), as(els)
	return &node{mgr: m, eval: func(v uint64) bool {
		if c.eval(v) {
			return t.eval(v)
		}
		return e.eval(v)
	}}
}

func quantify(m *RefManager, a *node, cube *node, all bool) BDD {
	return &node{mgr: m, eval: func(v uint64) bool {
		return forEachAssignment(m, v, cube.cubeBits, 0, a.eval, all)
	}}
}

// forEachAssignment folds a.eval across every setting of the cube bits,
// holding the remaining bits of v fixed: OR for existential, AND for
// universal quantification.
func forEachAssignment(m *RefManager, v uint64, bits []int, pos int, pred func(uint64) bool, all bool) bool {
	if pos == len(bits) {
		return pred(v)
	}
	bit := uint64(1) << uint(bits[pos])
	with0 := v &^ bit
	with1 := v | bit
	r0 := forEachAssignment(m, with0, bits, pos+1, pred, all)
	if all && !r0 {
		return false
	}
	if !all && r0 {
		return true
	}
	return forEachAssignment(m, with1, bits, pos+1, pred, all)
}

func (m *RefManager) Exists(a BDD, cube BDD) BDD {
	return quantify(m, as(a), as(cube), false)
}

func (m *RefManager) ForSome(a BDD, cube BDD) BDD {
	return quantify(m, as(a), as(cube), false)
}

func (m *RefManager) ForAll(a BDD, cube BDD) BDD {
	return quantify(m, as(a), as(cube), true)
}

func (m *RefManager) AndAbstract(a, b BDD, cube BDD) BDD {
	return m.Exists(m.And(a, b), cube)
}

func (m *RefManager) Entailed(a, b BDD) bool {
	x, y := as(a), as(b)
	for v := uint64(0); v < m.universe(); v++ {
		if x.eval(v) && !y.eval(v) {
			return false
		}
	}
	return true
}

func (m *RefManager) IsFalse(a BDD) bool {
	x := as(a)
	for v := uint64(0); v < m.universe(); v++ {
		if x.eval(v) {
			return false
		}
	}
	return true
}

func (m *RefManager) Ref(a BDD) BDD {
	as(a).refs++
	return a
}

func (m *RefManager) Deref(a BDD) {
	n := as(a)
	if n.refs > 0 {
		n.refs--
	}
}

func renameBit(m *RefManager, a *node, from, to map[string]string, flip bool) BDD {
	return &node{mgr: m, eval: func(v uint64) bool {
		mapped := v
		for name, i := range m.index {
			var other string
			var ok bool
			if flip {
				other, ok = from[name]
			} else {
				other, ok = to[name]
			}
			if !ok {
				continue
			}
			j, ok2 := m.index[other]
			if !ok2 {
				continue
			}
			bit := v&(uint64(1)<<uint(j)) != 0
			if bit {
				mapped |= uint64(1) << uint(i)
			} else {
				mapped &^= uint64(1) << uint(i)
			}
		}
		return a.eval(mapped)
	}}
}

// StateToNext/NextToState rename by the "<name>'" next-variable naming
// convention: a state var s has a next counterpart named "s'".
func (m *RefManager) StateToNext(a BDD) BDD {
	n := as(a)
	if n.isCube {
		return m.renameCube(n, func(name string) string { return name + "'" })
	}
	fwd := make(map[string]string)
	for s := range m.stateVars {
		fwd[s] = s + "'"
	}
	return renameBit(m, n, nil, fwd, false)
}

func (m *RefManager) NextToState(a BDD) BDD {
	n := as(a)
	if n.isCube {
		return m.renameCube(n, func(name string) string {
			if len(name) > 0 && name[len(name)-1] == '\'' {
				return name[:len(name)-1]
			}
			return name
		})
	}
	back := make(map[string]string)
	for s := range m.stateVars {
		back[s+"'"] = s
	}
	return renameBit(m, n, back, nil, true)
}

// renameCube builds a new cube BDD whose bits are rename(name) for every
// variable bit in n's cube, skipping any name rename maps outside the
// universe (e.g. renaming a non-state variable is a no-op).
func (m *RefManager) renameCube(n *node, rename func(string) string) BDD {
	byIndex := make(map[int]string, len(m.index))
	for name, i := range m.index {
		byIndex[i] = name
	}
	idx := make([]int, 0, len(n.cubeBits))
	for _, bit := range n.cubeBits {
		name, ok := byIndex[bit]
		if !ok {
			continue
		}
		renamed := rename(name)
		j, ok := m.index[renamed]
		if !ok {
			continue
		}
		idx = append(idx, j)
	}
	return &node{mgr: m, isCube: true, cubeBits: idx}
}

func (m *RefManager) varCube(mark map[string]bool) BDD {
	var names []string
	for n := range mark {
		names = append(names, n)
	}
	c := m.Cube(names...)
	return c
}

func (m *RefManager) StateCube() BDD  { return m.varCube(m.stateVars) }
func (m *RefManager) InputCube() BDD  { return m.varCube(m.inputVars) }
func (m *RefManager) FrozenCube() BDD { return m.varCube(m.frozenVars) }

func (m *RefManager) pickOne(a BDD, mark map[string]bool) (BDD, error) {
	x := as(a)
	for v := uint64(0); v < m.universe(); v++ {
		if !x.eval(v) {
			continue
		}
		picked := v
		return &node{mgr: m, eval: func(w uint64) bool {
			for name, i := range m.index {
				if !mark[name] {
					continue
				}
				if (w&(uint64(1)<<uint(i)) != 0) != (picked&(uint64(1)<<uint(i)) != 0) {
					return false
				}
			}
			return true
		}}, nil
	}
	return nil, symerr.NewInvariant("bdd.RefManager.pickOne", "no satisfying assignment")
}

func (m *RefManager) PickOneState(a BDD) (BDD, error) { return m.pickOne(a, m.stateVars) }
func (m *RefManager) PickOneInput(a BDD) (BDD, error) { return m.pickOne(a, m.inputVars) }

func (m *RefManager) pickAllTerms(a BDD, mark map[string]bool) ([]BDD, error) {
	x := as(a)
	seen := make(map[uint64]bool)
	var out []BDD
	for v := uint64(0); v < m.universe(); v++ {
		if !x.eval(v) {
			continue
		}
		var key uint64
		for name, i := range m.index {
			if mark[name] && v&(uint64(1)<<uint(i)) != 0 {
				key |= uint64(1) << uint(i)
			}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		projected := key
		out = append(out, &node{mgr: m, eval: func(w uint64) bool {
			for name, i := range m.index {
				if !mark[name] {
					continue
				}
				if (w&(uint64(1)<<uint(i)) != 0) != (projected&(uint64(1)<<uint(i)) != 0) {
					return false
				}
			}
			return true
		}})
	}
	return out, nil
}

func (m *RefManager) PickAllTermsStates(a BDD) ([]BDD, error) { return m.pickAllTerms(a, m.stateVars) }
func (m *RefManager) PickAllTermsInputs(a BDD) ([]BDD, error) { return m.pickAllTerms(a, m.inputVars) }

// StateCount counts distinct state-variable minterms satisfying a,
// ignoring input and frozen variables. This enumerates the full universe;
// fine for the small fixtures this reference manager targets.
func (m *RefManager) StateCount(a BDD) float64 {
	x := as(a)
	seen := make(map[uint64]bool)
	for v := uint64(0); v < m.universe(); v++ {
		if !x.eval(v) {
			continue
		}
		var key uint64
		for name, i := range m.index {
			if m.stateVars[name] && v&(uint64(1)<<uint(i)) != 0 {
				key |= uint64(1) << uint(i)
			}
		}
		seen[key] = true
	}
	return float64(len(seen))
}

func (m *RefManager) maskOver(marks ...map[string]bool) BDD {
	return &node{mgr: m, eval: func(uint64) bool { return true }}
}

func (m *RefManager) MaskState() BDD            { return m.maskOver(m.stateVars) }
func (m *RefManager) MaskInput() BDD            { return m.maskOver(m.inputVars) }
func (m *RefManager) MaskStateFrozen() BDD      { return m.maskOver(m.stateVars, m.frozenVars) }
func (m *RefManager) MaskStateFrozenInput() BDD { return m.maskOver(m.stateVars, m.frozenVars, m.inputVars) }

var _ Manager = (*RefManager)(nil)

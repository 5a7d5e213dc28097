package expr

import "sync"

// Interner is the process-scoped hash-cons table: structurally identical
// nodes are folded onto one *Node, so expr.Equal reduces to pointer
// comparison everywhere downstream. Grounded on spec.md §9's "concurrent
// hash-map or arena+hashcons" design note; a mutex-guarded map backs it
// so concurrent extraction/encoding callers can share one table.
type Interner struct {
	mu     sync.Mutex
	nodes  map[key]*Node
	nextID uint64
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{nodes: make(map[key]*Node, 256)}
}

// Global is the default process-wide interner, shared by every caller
// that does not construct its own (spec.md §9's "process-wide instance
// counter" note, realised here as a package-level variable created at
// package initialisation).
var Global = NewInterner()

// intern returns the canonical *Node for (kind, left, right, lit),
// creating and storing one on first use.
func (in *Interner) intern(kind Kind, left, right *Node, lit Literal) *Node {
	k := key{kind: kind, left: left, right: right, lit: lit}

	in.mu.Lock()
	defer in.mu.Unlock()
	if n, ok := in.nodes[k]; ok {
		return n
	}
	n := &Node{Kind: kind, Left: left, Right: right, Lit: lit}
	in.nodes[k] = n
	in.nextID++
	return n
}

// Len reports the number of distinct interned nodes.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.nodes)
}

// Leaf interns a zero-arity node with no literal payload.
func (in *Interner) Leaf(kind Kind) *Node {
	return in.intern(kind, nil, nil, Literal{})
}

// LeafLit interns a zero-arity node carrying a literal payload.
func (in *Interner) LeafLit(kind Kind, lit Literal) *Node {
	return in.intern(kind, nil, nil, lit)
}

// Unary interns a one-child node.
func (in *Interner) Unary(kind Kind, child *Node) *Node {
	return in.intern(kind, child, nil, Literal{})
}

// Binary interns a two-child node.
func (in *Interner) Binary(kind Kind, left, right *Node) *Node {
	return in.intern(kind, left, right, Literal{})
}

// BoolConst interns the boolean constant true or false.
func (in *Interner) BoolConst(v bool) *Node {
	return in.LeafLit(KindBoolConst, Literal{Bool: v})
}

// IntConst interns an integer constant.
func (in *Interner) IntConst(v int64) *Node {
	return in.LeafLit(KindIntConst, Literal{Int: v})
}

// Name interns an identifier leaf by its resolved or unresolved text.
func (in *Interner) Name(s string) *Node {
	return in.LeafLit(KindName, Literal{Str: s})
}

// BitOf interns the bit-of-variable leaf "name.bit[index]".
func (in *Interner) BitOf(varName string, index int64) *Node {
	return in.LeafLit(KindBitOf, Literal{Str: varName, Int: index})
}

// IfThenElse interns an ITE node; cond, then and els are packed as
// cond -> (then, else) via a nested COLON pair on the right child, since Node
// carries at most two children.
func (in *Interner) IfThenElse(cond, then, els *Node) *Node {
	pair := in.intern(KindColon, then, els, Literal{})
	return in.intern(KindIfThenElse, cond, pair, Literal{})
}

// ITEBranches recovers the (then, else) pair packed by IfThenElse.
func ITEBranches(ite *Node) (then, els *Node) {
	if ite.Kind != KindIfThenElse || ite.Right == nil {
		return nil, nil
	}
	return ite.Right.Left, ite.Right.Right
}

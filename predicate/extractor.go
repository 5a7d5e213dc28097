package predicate

import (
	"fmt"

	"github.com/luxfi/symcore/container"
	"github.com/luxfi/symcore/expr"
	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/symtab"
	mathutil "github.com/luxfi/symcore/utils/math"
)

// DefaultThreshold is the Cartesian-product size above which the
// extractor gives up and returns an over-approximation, per spec.md
// §4.D's "default 600,000".
const DefaultThreshold = 600000

type memoKey struct {
	ctx  string
	node *expr.Node
}

// Extractor walks expressions to their extracted predicates, memoising
// on (context, expression-identity) and clustering the variables that
// co-occur in some extracted predicate.
type Extractor struct {
	table      *symtab.Table
	in         *expr.Interner
	threshold  int
	overApprox bool

	memo map[memoKey]Preds

	allPreds    *container.Set[*expr.Node]
	unclustered []*expr.Node

	varCluster map[string]*Cluster
}

// New returns an Extractor over table, interning new predicate nodes
// through in. threshold <= 0 uses DefaultThreshold.
func New(table *symtab.Table, in *expr.Interner, threshold int, overApprox bool) *Extractor {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Extractor{
		table:      table,
		in:         in,
		threshold:  threshold,
		overApprox: overApprox,
		memo:       make(map[memoKey]Preds),
		allPreds:   newAtomSet(),
		varCluster: make(map[string]*Cluster),
	}
}

// overThreshold reports whether the Cartesian product of two operand sets
// of sizes a and b exceeds the extractor's threshold, without letting a
// large product silently overflow past it: a raw int multiply can wrap to
// a small or negative value and pass a "> threshold" guard it should fail.
func (ex *Extractor) overThreshold(a, b int) bool {
	if !ex.overApprox {
		return false
	}
	product, err := mathutil.Mul64(uint64(a), uint64(b))
	if err != nil {
		return true
	}
	return product > uint64(ex.threshold)
}

// AllPreds returns every predicate atom committed so far.
func (ex *Extractor) AllPreds() *container.Set[*expr.Node] {
	return ex.allPreds
}

// Extract walks node under ctx (the resolution context for unflattened
// identifiers) and returns its extracted predicates.
func (ex *Extractor) Extract(node *expr.Node, ctx string) (Preds, error) {
	if node == nil {
		return Preds{}, symerr.NewContract("Extractor.Extract", "nil expression")
	}
	key := memoKey{ctx: ctx, node: node}
	if p, ok := ex.memo[key]; ok {
		return p, nil
	}
	p, err := ex.extract(node, ctx)
	if err != nil {
		return Preds{}, err
	}
	ex.memo[key] = p
	return p, nil
}

func (ex *Extractor) extract(node *expr.Node, ctx string) (Preds, error) {
	switch {
	case node.Kind == expr.KindBoolConst:
		if node.Lit.Bool {
			return True(), nil
		}
		return False(), nil

	case node.Kind.IsConstant():
		return Set(newAtomSet(node)), nil

	case node.Kind == expr.KindName, node.Kind == expr.KindDotted:
		return ex.extractSymbol(node, ctx)

	case node.Kind == expr.KindBitOf:
		return Set(newAtomSet(node)), nil

	case node.Kind == expr.KindNot:
		child, err := ex.Extract(node.Left, ctx)
		if err != nil {
			return Preds{}, err
		}
		return notPreds(child), nil

	case node.Kind == expr.KindAnd || node.Kind == expr.KindOr ||
		node.Kind == expr.KindXor || node.Kind == expr.KindIff || node.Kind == expr.KindImplies:
		return ex.extractBoolBinary(node, ctx)

	case node.Kind.IsRelational():
		return ex.extractRelational(node, ctx)

	case node.Kind == expr.KindCastBool:
		return ex.extractCastBool(node, ctx)

	case node.Kind == expr.KindCastInt:
		child, err := ex.Extract(node.Left, ctx)
		if err != nil {
			return Preds{}, err
		}
		return Set(ex.toIntSet(child)), nil

	case isPointwiseArithmetic(node.Kind):
		return ex.extractArithmetic(node, ctx)

	case node.Kind == expr.KindIfThenElse:
		return ex.extractITE(node, ctx)

	case node.Kind == expr.KindNext || node.Kind == expr.KindInit:
		return ex.Extract(node.Left, ctx)

	case node.Kind == expr.KindContext:
		return ex.Extract(node.Left, node.Lit.Str)

	case node.Kind == expr.KindAtTime:
		return ex.Extract(node.Left, ctx)

	case node.Kind == expr.KindSetIn:
		return ex.extractSetIn(node, ctx)

	case node.Kind == expr.KindUnion:
		return ex.extractUnion(node, ctx)

	case node.Kind.IsTemporal():
		return Preds{}, symerr.NewUnsupported("predicate extraction of temporal operators")

	default:
		return Preds{}, symerr.NewContract("Extractor.extract", fmt.Sprintf("malformed expression: unexpected kind %v", node.Kind))
	}
}

func (ex *Extractor) extractSymbol(node *expr.Node, ctx string) (Preds, error) {
	local := node.Lit.Str
	resolved, err := ex.table.Resolve(ctx, local)
	if err != nil {
		// Tolerate references the table was never told about: treat the
		// bare name as an opaque atom rather than aborting, since symcore
		// does not own model parsing/flattening.
		return Set(newAtomSet(node)), nil
	}
	sym, ok := ex.table.Lookup(resolved)
	if !ok {
		return Set(newAtomSet(node)), nil
	}
	switch sym.Kind {
	case symtab.Define:
		body, err := ex.Extract(sym.Body, resolved)
		if err != nil {
			return Preds{}, err
		}
		return body, nil
	case symtab.Parameter:
		return ex.Extract(sym.Body, resolved)
	default:
		if sym.Type == "bool" {
			return Arbitrary(), nil
		}
		return Set(newAtomSet(ex.in.Name(resolved))), nil
	}
}

func (ex *Extractor) extractBoolBinary(node *expr.Node, ctx string) (Preds, error) {
	left, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	left = toBooleanContext(left)

	switch node.Kind {
	case expr.KindAnd:
		if left.Kind == PFalse {
			return False(), nil
		}
	case expr.KindOr:
		if left.Kind == PTrue {
			return True(), nil
		}
	case expr.KindImplies:
		if left.Kind == PFalse {
			return True(), nil
		}
	}

	right, err := ex.Extract(node.Right, ctx)
	if err != nil {
		return Preds{}, err
	}
	right = toBooleanContext(right)

	return foldBoolBinary(node.Kind, left, right), nil
}

func foldBoolBinary(kind expr.Kind, l, r Preds) Preds {
	switch kind {
	case expr.KindAnd:
		switch {
		case l.Kind == PFalse || r.Kind == PFalse:
			return False()
		case l.Kind == PTrue:
			return r
		case r.Kind == PTrue:
			return l
		default:
			return Arbitrary()
		}
	case expr.KindOr:
		switch {
		case l.Kind == PTrue || r.Kind == PTrue:
			return True()
		case l.Kind == PFalse:
			return r
		case r.Kind == PFalse:
			return l
		default:
			return Arbitrary()
		}
	case expr.KindXor:
		switch {
		case l.Kind == PTrue && r.Kind == PTrue, l.Kind == PFalse && r.Kind == PFalse:
			return False()
		case l.Kind == PTrue && r.Kind == PFalse, l.Kind == PFalse && r.Kind == PTrue:
			return True()
		default:
			return Arbitrary()
		}
	case expr.KindIff:
		switch {
		case l.Kind == PTrue && r.Kind == PTrue, l.Kind == PFalse && r.Kind == PFalse:
			return True()
		case l.Kind == PTrue && r.Kind == PFalse, l.Kind == PFalse && r.Kind == PTrue:
			return False()
		default:
			return Arbitrary()
		}
	case expr.KindImplies:
		switch {
		case l.Kind == PFalse || r.Kind == PTrue:
			return True()
		case l.Kind == PTrue:
			return r
		default:
			return Arbitrary()
		}
	}
	return Arbitrary()
}

func (ex *Extractor) toIntSet(p Preds) *container.Set[*expr.Node] {
	if p.Kind == PSet {
		return p.Atoms
	}
	switch p.Kind {
	case PTrue:
		return newAtomSet(ex.in.IntConst(1))
	case PFalse:
		return newAtomSet(ex.in.IntConst(0))
	default:
		return newAtomSet(ex.in.IntConst(0), ex.in.IntConst(1))
	}
}

func (ex *Extractor) extractRelational(node *expr.Node, ctx string) (Preds, error) {
	left, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	right, err := ex.Extract(node.Right, ctx)
	if err != nil {
		return Preds{}, err
	}

	if left.IsSentinel() && right.IsSentinel() &&
		(left.Kind == PTrue || left.Kind == PFalse) &&
		(right.Kind == PTrue || right.Kind == PFalse) {
		return foldRelationalOnBooleans(node.Kind, left, right), nil
	}

	leftSet, rightSet := ex.toIntSet(left), ex.toIntSet(right)
	if ex.overThreshold(leftSet.Len(), rightSet.Len()) {
		return Arbitrary(), nil
	}
	for _, a := range leftSet.List() {
		for _, b := range rightSet.List() {
			ex.commit(ex.in.Binary(node.Kind, a, b))
		}
	}
	return Arbitrary(), nil
}

func foldRelationalOnBooleans(kind expr.Kind, l, r Preds) Preds {
	lv, rv := l.Kind == PTrue, r.Kind == PTrue
	var result bool
	switch kind {
	case expr.KindEq:
		result = lv == rv
	case expr.KindNeq:
		result = lv != rv
	case expr.KindLe, expr.KindIn:
		result = !lv || rv // false <= anything; true <= true only
	case expr.KindLt:
		result = !lv && rv
	case expr.KindGe:
		result = lv || !rv
	case expr.KindGt:
		result = lv && !rv
	default:
		return Arbitrary()
	}
	if result {
		return True()
	}
	return False()
}

func (ex *Extractor) extractCastBool(node *expr.Node, ctx string) (Preds, error) {
	child, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	set := ex.toIntSet(child)
	one := newAtomSet(ex.in.IntConst(1))
	if ex.overThreshold(set.Len(), one.Len()) {
		return Arbitrary(), nil
	}
	for _, a := range set.List() {
		ex.commit(ex.in.Binary(expr.KindEq, a, ex.in.IntConst(1)))
	}
	return Arbitrary(), nil
}

func isPointwiseArithmetic(k expr.Kind) bool {
	switch k {
	case expr.KindAdd, expr.KindSub, expr.KindMul, expr.KindDiv, expr.KindMod,
		expr.KindShiftL, expr.KindShiftR, expr.KindBitNot, expr.KindConcat,
		expr.KindBitSelect, expr.KindCastSigned, expr.KindCastUnsigned:
		return true
	}
	return false
}

func (ex *Extractor) extractArithmetic(node *expr.Node, ctx string) (Preds, error) {
	left, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	if left.Kind == POverApprox {
		return OverApprox(), nil
	}

	if node.Right == nil {
		// Unary arithmetic/bitwise (KindBitNot).
		leftSet := ex.toIntSet(left)
		result := newAtomSet()
		for _, a := range leftSet.List() {
			result.Add(ex.in.Unary(node.Kind, a))
		}
		return Set(result), nil
	}

	right, err := ex.Extract(node.Right, ctx)
	if err != nil {
		return Preds{}, err
	}
	if right.Kind == POverApprox {
		return OverApprox(), nil
	}

	leftSet, rightSet := ex.toIntSet(left), ex.toIntSet(right)
	if ex.overThreshold(leftSet.Len(), rightSet.Len()) {
		return OverApprox(), nil
	}
	result := newAtomSet()
	for _, a := range leftSet.List() {
		for _, b := range rightSet.List() {
			result.Add(ex.in.Binary(node.Kind, a, b))
		}
	}
	return Set(result), nil
}

func (ex *Extractor) extractITE(node *expr.Node, ctx string) (Preds, error) {
	cond, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	cond = toBooleanContext(cond)

	then, els := expr.ITEBranches(node)
	switch cond.Kind {
	case PTrue:
		return ex.Extract(then, ctx)
	case PFalse:
		return ex.Extract(els, ctx)
	}

	thenP, err := ex.Extract(then, ctx)
	if err != nil {
		return Preds{}, err
	}
	elsP, err := ex.Extract(els, ctx)
	if err != nil {
		return Preds{}, err
	}

	if thenP.Kind == PSet || elsP.Kind == PSet {
		thenSet, elsSet := ex.toIntSet(thenP), ex.toIntSet(elsP)
		union := thenSet.Clone()
		union.Union(elsSet)
		return Set(union), nil
	}

	thenP, elsP = toBooleanContext(thenP), toBooleanContext(elsP)
	switch {
	case thenP.Kind == PTrue && elsP.Kind == PTrue:
		return True(), nil
	case thenP.Kind == PFalse && elsP.Kind == PFalse:
		return False(), nil
	default:
		return Arbitrary(), nil
	}
}

func (ex *Extractor) extractSetIn(node *expr.Node, ctx string) (Preds, error) {
	left, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	right, err := ex.Extract(node.Right, ctx)
	if err != nil {
		return Preds{}, err
	}
	leftSet, rightSet := ex.toIntSet(left), ex.toIntSet(right)
	if ex.overThreshold(leftSet.Len(), rightSet.Len()) {
		return Arbitrary(), nil
	}
	for _, a := range leftSet.List() {
		for _, b := range rightSet.List() {
			ex.commit(ex.in.Binary(expr.KindSetIn, a, b))
		}
	}
	return Arbitrary(), nil
}

func (ex *Extractor) extractUnion(node *expr.Node, ctx string) (Preds, error) {
	left, err := ex.Extract(node.Left, ctx)
	if err != nil {
		return Preds{}, err
	}
	right, err := ex.Extract(node.Right, ctx)
	if err != nil {
		return Preds{}, err
	}
	result := ex.toIntSet(left).Clone()
	result.Union(ex.toIntSet(right))
	return Set(result), nil
}

// commit adds atom to the global predicate set and the unclustered
// queue, unless it is already present.
func (ex *Extractor) commit(atom *expr.Node) {
	if ex.allPreds.Contains(atom) {
		return
	}
	ex.allPreds.Add(atom)
	ex.unclustered = append(ex.unclustered, atom)
}

// Package boolenc implements the boolean encoder, spec.md §4.B's BoolEnc:
// it turns a declared scalar/word/boolean variable into fresh bit symbols
// and an encoding expression built over them, and can recover a concrete
// scalar value from a bit assignment. Grounded on original_source's
// enc/bool/BoolEnc.c and BitValues.c.
package boolenc

import (
	"fmt"

	"github.com/luxfi/symcore/enc/base"
	"github.com/luxfi/symcore/expr"
	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/symtab"
)

type varShape int

const (
	shapeBoolean varShape = iota
	shapeScalar
	shapeWord
)

type varInfo struct {
	shape       varShape
	symKind     symtab.SymbolKind
	sourceLayer string
	domain      []*expr.Node // scalar only, in declared order
	width       int          // word only
	signed      bool         // word only
}

// BoolEnc is the boolean encoder: a specialisation of BaseEnc that owns
// fresh bit allocation, the per-variable encoding cache and the
// per-variable mask cache. BaseEnc owns the committed-layer registry;
// BoolEnc is the one writing bit symbols into the sibling boolean layers
// it commits.
type BoolEnc struct {
	base *base.BaseEnc
	in   *expr.Interner

	vars map[string]*varInfo

	bits     map[string][]string // var -> bit names, MSB first
	bitOwner map[string]string   // bit name -> owning var
	bitIndex map[string]int      // bit name -> index within its var's bit list

	encCache  map[string]*expr.Node
	maskCache map[string]*expr.Node

	boolLayerOf map[string]string // source layer -> sibling bool layer

	variant Variant
}

// New returns a BoolEnc over b, interning encoding nodes through in, using
// the default HigherToLowerBalanced scalar-encoding variant.
func New(b *base.BaseEnc, in *expr.Interner) *BoolEnc {
	return NewWithVariant(b, in, HigherToLowerBalanced)
}

// NewWithVariant returns a BoolEnc that encodes scalars using variant.
// Selecting an unimplemented variant is not an error here: it is only
// reported once a scalar variable with a non-boolean domain is actually
// encoded, via symerr.Unsupported from CommitLayer.
func NewWithVariant(b *base.BaseEnc, in *expr.Interner, variant Variant) *BoolEnc {
	return &BoolEnc{
		base:        b,
		in:          in,
		vars:        make(map[string]*varInfo),
		bits:        make(map[string][]string),
		bitOwner:    make(map[string]string),
		bitIndex:    make(map[string]int),
		encCache:    make(map[string]*expr.Node),
		maskCache:   make(map[string]*expr.Node),
		boolLayerOf: make(map[string]string),
		variant:     variant,
	}
}

// DeclareBoolean registers name as a boolean-shaped variable of the given
// symbol table kind, living in sourceLayer.
func (e *BoolEnc) DeclareBoolean(sourceLayer, name string, symKind symtab.SymbolKind) error {
	if _, exists := e.vars[name]; exists {
		return symerr.NewContract("BoolEnc.DeclareBoolean", fmt.Sprintf("%q already declared", name))
	}
	e.vars[name] = &varInfo{shape: shapeBoolean, symKind: symKind, sourceLayer: sourceLayer}
	return nil
}

// DeclareWord registers name as a width-wide word variable.
func (e *BoolEnc) DeclareWord(sourceLayer, name string, width int, signed bool, symKind symtab.SymbolKind) error {
	if width <= 0 {
		return symerr.NewContract("BoolEnc.DeclareWord", fmt.Sprintf("%q: width must be positive", name))
	}
	if _, exists := e.vars[name]; exists {
		return symerr.NewContract("BoolEnc.DeclareWord", fmt.Sprintf("%q already declared", name))
	}
	e.vars[name] = &varInfo{shape: shapeWord, symKind: symKind, sourceLayer: sourceLayer, width: width, signed: signed}
	return nil
}

// DeclareScalar registers name as a finite scalar with the given domain,
// in declared order. Constant leaves not already present in sourceLayer
// are declared there as constants, per spec.md §4.B.
func (e *BoolEnc) DeclareScalar(sourceLayer, name string, domain []*expr.Node, symKind symtab.SymbolKind) error {
	if len(domain) == 0 {
		return symerr.NewContract("BoolEnc.DeclareScalar", fmt.Sprintf("%q: empty domain", name))
	}
	if _, exists := e.vars[name]; exists {
		return symerr.NewContract("BoolEnc.DeclareScalar", fmt.Sprintf("%q already declared", name))
	}
	for i, c := range domain {
		cname := fmt.Sprintf("%s.const[%d]", name, i)
		if _, ok := e.base.Table().Lookup(cname); !ok {
			_ = e.base.Table().Declare(sourceLayer, &symtab.Symbol{Name: cname, Kind: symtab.Constant, Type: "const", Body: c})
		}
	}
	e.vars[name] = &varInfo{
		shape:       shapeScalar,
		symKind:     symKind,
		sourceLayer: sourceLayer,
		domain:      append([]*expr.Node(nil), domain...),
	}
	return nil
}

// IsVarBit reports whether name is a bit symbol synthesised by this
// encoder (as opposed to a declared variable or constant).
func (e *BoolEnc) IsVarBit(name string) bool {
	_, ok := e.bitOwner[name]
	return ok
}

// ScalarOfBit returns the variable that owns bit, if bit is a bit symbol.
func (e *BoolEnc) ScalarOfBit(bit string) (string, bool) {
	v, ok := e.bitOwner[bit]
	return v, ok
}

// MakeBit returns the canonical name of the index'th bit of name. It does
// not allocate or register the bit; EncodeVar is the allocator.
func (e *BoolEnc) MakeBit(name string, index int) string {
	return fmt.Sprintf("%s.bit[%d]", name, index)
}

// IndexOfBit returns the position of bit within its owning variable's bit
// list, if bit is a known bit symbol.
func (e *BoolEnc) IndexOfBit(bit string) (int, bool) {
	idx, ok := e.bitIndex[bit]
	return idx, ok
}

// VarBits returns the canonical bit set supporting var, MSB first. For a
// boolean variable this is {var} itself; the variable must have been
// encoded via EncodeVar or CommitLayer first.
func (e *BoolEnc) VarBits(varName string) ([]string, error) {
	bits, ok := e.bits[varName]
	if !ok {
		return nil, symerr.NewContract("BoolEnc.VarBits", fmt.Sprintf("%q not encoded", varName))
	}
	return bits, nil
}

// CommitLayer wraps every variable declared (via DeclareBoolean/Scalar/
// Word) against sourceLayer: each is encoded and its bit symbols are
// declared into a sibling boolean layer named sourceLayer+".bool". The
// sibling layer's ownership is refcounted through the symbol table;
// CommitLayer may be called more than once for the same sourceLayer.
func (e *BoolEnc) CommitLayer(sourceLayer string) (string, error) {
	if !e.base.LayerOccurs(sourceLayer) {
		return "", symerr.NewContract("BoolEnc.CommitLayer", fmt.Sprintf("layer %q not committed", sourceLayer))
	}
	boolLayer := sourceLayer + ".bool"
	e.base.CommitLayer(boolLayer)
	e.boolLayerOf[sourceLayer] = boolLayer

	for name, vi := range e.vars {
		if vi.sourceLayer != sourceLayer {
			continue
		}
		if _, err := e.encodeVarInto(name, vi, boolLayer); err != nil {
			return "", err
		}
	}
	return boolLayer, nil
}

// RemoveLayer releases one reference to sourceLayer's sibling boolean
// layer; the last release also removes the sibling layer from the
// symbol table.
func (e *BoolEnc) RemoveLayer(sourceLayer string) error {
	boolLayer, ok := e.boolLayerOf[sourceLayer]
	if !ok {
		return symerr.NewContract("BoolEnc.RemoveLayer", fmt.Sprintf("layer %q not committed via this encoder", sourceLayer))
	}
	if err := e.base.RemoveLayer(boolLayer); err != nil {
		return err
	}
	if !e.base.LayerOccurs(boolLayer) {
		delete(e.boolLayerOf, sourceLayer)
	}
	return nil
}

func (e *BoolEnc) encodeVarInto(name string, vi *varInfo, boolLayer string) (*expr.Node, error) {
	if cached, ok := e.encCache[name]; ok {
		return cached, nil
	}

	switch vi.shape {
	case shapeBoolean:
		e.bits[name] = []string{name}
		e.bitOwner[name] = name
		e.bitIndex[name] = 0
		node := e.in.Name(name)
		e.encCache[name] = node
		return node, nil

	case shapeWord:
		bits := make([]string, vi.width)
		for i := 0; i < vi.width; i++ {
			bit := e.MakeBit(name, i)
			bits[i] = bit
			e.bitOwner[bit] = name
			e.bitIndex[bit] = i
			_ = e.base.Table().Declare(boolLayer, &symtab.Symbol{Name: bit, Kind: vi.symKind, Type: "bool"})
		}
		e.bits[name] = bits
		var chain *expr.Node
		for i := vi.width - 1; i >= 0; i-- {
			bitNode := e.in.Name(bits[i])
			if chain == nil {
				chain = e.in.Unary(expr.KindCons, bitNode)
			} else {
				chain = e.in.Binary(expr.KindCons, bitNode, chain)
			}
		}
		node := e.in.Unary(expr.KindWord, chain)
		e.encCache[name] = node
		return node, nil

	case shapeScalar:
		if !isBooleanDomain(vi.domain) && e.variant != HigherToLowerBalanced {
			return nil, symerr.NewUnsupported(fmt.Sprintf("scalar encoding variant %s", e.variant))
		}
		if isBooleanDomain(vi.domain) {
			// Tie-break: {false, true} reuses the variable itself.
			e.bits[name] = []string{name}
			e.bitOwner[name] = name
			e.bitIndex[name] = 0
			ite := e.in.IfThenElse(e.in.Name(name), boolValue(e.in, vi.domain, true), boolValue(e.in, vi.domain, false))
			e.encCache[name] = ite
			return ite, nil
		}
		nbits := bitsNeeded(len(vi.domain))
		// bits is most significant first, but a scalar bit's name carries
		// its significance: bits[0], the root of the tree, is
		// bit[nbits-1] and bit[0] is the least significant, so higher
		// indices sit higher in the tree.
		bits := make([]string, nbits)
		for i := range bits {
			bit := e.MakeBit(name, nbits-1-i)
			bits[i] = bit
			e.bitOwner[bit] = name
			e.bitIndex[bit] = i
			_ = e.base.Table().Declare(boolLayer, &symtab.Symbol{Name: bit, Kind: vi.symKind, Type: "bool"})
		}
		e.bits[name] = bits

		tree := buildBalancedTree(e.in, vi.domain, bits, 0)
		e.encCache[name] = tree
		return tree, nil
	}
	return nil, symerr.NewInvariant("BoolEnc.encodeVarInto", "unknown variable shape")
}

// VarEncoding returns var's encoding node: the ITE tree (scalars), the
// WORD node (words), or the variable itself (booleans). The variable
// must already have been encoded via CommitLayer.
func (e *BoolEnc) VarEncoding(varName string) (*expr.Node, error) {
	n, ok := e.encCache[varName]
	if !ok {
		return nil, symerr.NewContract("BoolEnc.VarEncoding", fmt.Sprintf("%q not encoded", varName))
	}
	return n, nil
}

// ValuesEncoding freshly encodes an ad-hoc value set under bitPrefix,
// appending the newly minted (but undeclared) bit names into bitsOut.
func (e *BoolEnc) ValuesEncoding(values []*expr.Node, bitPrefix string, bitsOut *[]string) (*expr.Node, error) {
	if len(values) == 0 {
		return nil, symerr.NewContract("BoolEnc.ValuesEncoding", "empty value set")
	}
	if isBooleanDomain(values) {
		*bitsOut = append(*bitsOut, bitPrefix)
		return e.in.IfThenElse(e.in.Name(bitPrefix), boolValue(e.in, values, true), boolValue(e.in, values, false)), nil
	}
	nbits := bitsNeeded(len(values))
	bits := make([]string, nbits)
	for i := 0; i < nbits; i++ {
		bits[i] = fmt.Sprintf("%s[%d]", bitPrefix, nbits-1-i)
	}
	*bitsOut = append(*bitsOut, bits...)
	return buildBalancedTree(e.in, values, bits, 0), nil
}

// ValueFromBits recovers the scalar/word value an assignment encodes, by
// walking var's cached encoding guided by bv. Don't-care bits are treated
// as false, matching the mask's canonical-representative convention.
func (e *BoolEnc) ValueFromBits(varName string, bv *BitValues) (*expr.Node, error) {
	vi, ok := e.vars[varName]
	if !ok {
		return nil, symerr.NewContract("BoolEnc.ValueFromBits", fmt.Sprintf("%q not declared", varName))
	}
	switch vi.shape {
	case shapeBoolean:
		if bv.Size() != 1 {
			return nil, symerr.NewContract("BoolEnc.ValueFromBits", "boolean variable expects exactly one bit")
		}
		if bv.Get(0) == BitTrue {
			return e.in.BoolConst(true), nil
		}
		return e.in.BoolConst(false), nil
	case shapeScalar:
		return resolveTree(vi.domain, bv, 0), nil
	case shapeWord:
		if bv.Size() != vi.width {
			return nil, symerr.NewContract("BoolEnc.ValueFromBits", fmt.Sprintf("%q: expected %d bits, got %d", varName, vi.width, bv.Size()))
		}
		var v int64
		for i := 0; i < vi.width; i++ {
			v <<= 1
			if bv.Get(i) == BitTrue {
				v |= 1
			}
		}
		if vi.signed && bv.Get(0) == BitTrue {
			v -= int64(1) << uint(vi.width)
		}
		return e.in.IntConst(v), nil
	}
	return nil, symerr.NewInvariant("BoolEnc.ValueFromBits", "unknown variable shape")
}

// VarMask returns the memoised mask M(var): a boolean expression true iff
// a bit assignment is the canonical representative of a concrete value.
// Boolean and word variables have mask ⊤.
func (e *BoolEnc) VarMask(varName string) (*expr.Node, error) {
	if cached, ok := e.maskCache[varName]; ok {
		return cached, nil
	}
	vi, ok := e.vars[varName]
	if !ok {
		return nil, symerr.NewContract("BoolEnc.VarMask", fmt.Sprintf("%q not declared", varName))
	}
	if vi.shape != shapeScalar || isBooleanDomain(vi.domain) {
		m := e.in.BoolConst(true)
		e.maskCache[varName] = m
		return m, nil
	}
	bits := e.bits[varName]
	m := buildMask(e.in, vi.domain, bits, 0)
	e.maskCache[varName] = m
	return m, nil
}

func isBooleanDomain(domain []*expr.Node) bool {
	if len(domain) != 2 {
		return false
	}
	a, b := domain[0], domain[1]
	return a.Kind == expr.KindBoolConst && b.Kind == expr.KindBoolConst && a.Lit.Bool != b.Lit.Bool
}

func boolValue(in *expr.Interner, domain []*expr.Node, want bool) *expr.Node {
	for _, d := range domain {
		if d.Kind == expr.KindBoolConst && d.Lit.Bool == want {
			return d
		}
	}
	return in.BoolConst(want)
}

// bitsNeeded returns ceil(log2(n)) for n >= 1.
func bitsNeeded(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// splitHalves divides values into two matched-pair halves, the first
// half sized ceil(len/2), matching the balanced-tree construction spec.md
// §4.B describes.
func splitHalves[T any](values []T) (left, right []T) {
	mid := (len(values) + 1) / 2
	return values[:mid], values[mid:]
}

// buildBalancedTree builds the higher-bits-high balanced ITE tree over
// values, consuming bits[depth:] as needed.
func buildBalancedTree(in *expr.Interner, values []*expr.Node, bits []string, depth int) *expr.Node {
	if len(values) == 1 {
		return values[0]
	}
	left, right := splitHalves(values)
	l := buildBalancedTree(in, left, bits, depth+1)
	r := buildBalancedTree(in, right, bits, depth+1)
	return in.IfThenElse(in.Name(bits[depth]), l, r)
}

// buildMask mirrors buildBalancedTree's recursion, emitting "if bit then
// false else recur" for every bit position reached in the cube but not
// consumed by the current sub-tree (spec.md §4.B's mask algorithm).
func buildMask(in *expr.Interner, values []*expr.Node, bits []string, depth int) *expr.Node {
	if len(values) == 1 {
		result := in.BoolConst(true)
		for i := len(bits) - 1; i >= depth; i-- {
			result = in.IfThenElse(in.Name(bits[i]), in.BoolConst(false), result)
		}
		return result
	}
	left, right := splitHalves(values)
	l := buildMask(in, left, bits, depth+1)
	r := buildMask(in, right, bits, depth+1)
	return in.IfThenElse(in.Name(bits[depth]), l, r)
}

// resolveTree recovers the value selected by bv, treating don't-care
// bits as false.
func resolveTree(values []*expr.Node, bv *BitValues, depth int) *expr.Node {
	if len(values) == 1 {
		return values[0]
	}
	left, right := splitHalves(values)
	if bv.Get(depth) == BitTrue {
		return resolveTree(left, bv, depth+1)
	}
	return resolveTree(right, bv, depth+1)
}

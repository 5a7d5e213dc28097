// Package symtab implements the process-wide symbol registry spec.md §3
// describes: symbols live in refcounted layers, and a Table resolves a
// (context, local name) pair to a fully qualified symbol. Parsing and
// flattening an input model into symbols is out of scope (spec.md's
// Non-goals) — symcore owns a concrete Table sufficient to drive the
// boolean encoder and predicate extractor. Those packages take a *Table,
// so there is no interface through which another implementation can be
// substituted.
package symtab

import (
	"fmt"

	"github.com/luxfi/symcore/expr"
	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/utils"
	"github.com/luxfi/symcore/utils/linked"
)

// SymbolKind is the fixed set of declaration kinds spec.md §3 names.
type SymbolKind int

const (
	StateVar SymbolKind = iota
	InputVar
	FrozenVar
	Define
	ArrayDefine
	Parameter
	Constant
	Function
)

func (k SymbolKind) String() string {
	switch k {
	case StateVar:
		return "state-var"
	case InputVar:
		return "input-var"
	case FrozenVar:
		return "frozen-var"
	case Define:
		return "define"
	case ArrayDefine:
		return "array-define"
	case Parameter:
		return "parameter"
	case Constant:
		return "constant"
	case Function:
		return "function"
	default:
		return "symbol-kind(?)"
	}
}

// Symbol is a single declaration: its fully qualified name, kind, type
// tag (caller-defined, opaque here) and, for defines/parameters, the body
// expression it stands for.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type string
	Body *expr.Node
}

// Layer is a named, refcounted collection of symbols. A layer may be
// committed to several encoders at once (enc/base §4.C); the refcount
// tracks how many, and the symbol table reclaims the layer once it drops
// to zero. InsertionOrder fixes the layer's position in the table's
// committed-layer list on first commit.
type Layer struct {
	Name           string
	InsertionOrder int
	symbols        map[string]*Symbol
	refs           *utils.AtomicInt
}

func newLayer(name string, order int) *Layer {
	return &Layer{
		Name:           name,
		InsertionOrder: order,
		symbols:        make(map[string]*Symbol),
		refs:           utils.NewAtomicInt(0),
	}
}

// Declare adds sym to the layer. Redeclaring a name under a different
// kind or type is a contract violation.
func (l *Layer) Declare(sym *Symbol) error {
	if existing, ok := l.symbols[sym.Name]; ok {
		if existing.Kind != sym.Kind || existing.Type != sym.Type {
			return symerr.NewContract("Layer.Declare",
				fmt.Sprintf("redeclaration of %q with a different kind/type", sym.Name))
		}
		return nil
	}
	l.symbols[sym.Name] = sym
	return nil
}

// Lookup returns the symbol declared under name in this layer, if any.
func (l *Layer) Lookup(name string) (*Symbol, bool) {
	s, ok := l.symbols[name]
	return s, ok
}

// Remove deletes name from the layer.
func (l *Layer) Remove(name string) {
	delete(l.symbols, name)
}

// ByKind returns every symbol in the layer of kind k, in a deterministic
// order (sorted by name) so repeated iteration is stable across runs.
func (l *Layer) ByKind(k SymbolKind) []*Symbol {
	var out []*Symbol
	for _, s := range l.symbols {
		if s.Kind == k {
			out = append(out, s)
		}
	}
	utils.Sort(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Ref increments the layer's sharing refcount; a layer committed to N
// encoders carries refcount N.
func (l *Layer) Ref() int64 { return l.refs.Inc() }

// Unref decrements the refcount and returns the value after decrement;
// zero means the last encoder released the layer.
func (l *Layer) Unref() int64 { return l.refs.Dec() }

// RefCount reports the current refcount.
func (l *Layer) RefCount() int64 { return l.refs.Get() }

// Table is the process-wide symbol registry: it owns every Layer and
// resolves (context, local name) pairs to fully qualified names.
// committed is a linked.Hashmap so insertion-policy order and O(1)
// name lookup/removal come from the same structure instead of a
// map-plus-slice pair that must be kept in sync by hand.
type Table struct {
	committed *linked.Hashmap[string, *Layer]
	nextOrder int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{committed: linked.NewHashmap[string, *Layer]()}
}

// CommitLayer creates (if absent) and returns the named layer, appending
// it to the committed-layer order on first creation and bumping its
// refcount on every call — mirroring enc/base's commit_layer contract
// (spec.md §4.C): "a layer may be committed to multiple encoders; a
// commit locks the layer."
func (t *Table) CommitLayer(name string) *Layer {
	l, ok := t.committed.Get(name)
	if !ok {
		l = newLayer(name, t.nextOrder)
		t.nextOrder++
		t.committed.Put(name, l)
	}
	l.Ref()
	return l
}

// RemoveLayer unrefs the named layer; once the refcount reaches zero the
// layer is detached from the table entirely.
func (t *Table) RemoveLayer(name string) error {
	l, ok := t.committed.Get(name)
	if !ok {
		return symerr.NewContract("Table.RemoveLayer", fmt.Sprintf("layer %q not committed", name))
	}
	if l.Unref() > 0 {
		return nil
	}
	t.committed.Delete(name)
	return nil
}

// LayerOccurs reports whether name is currently a committed layer.
func (t *Table) LayerOccurs(name string) bool {
	_, ok := t.committed.Get(name)
	return ok
}

// CommittedLayers returns every committed layer, in insertion-policy
// order.
func (t *Table) CommittedLayers() []*Layer {
	out := make([]*Layer, 0, t.committed.Len())
	t.committed.Iterate(func(_ string, l *Layer) bool {
		out = append(out, l)
		return true
	})
	return out
}

// CommittedLayerNames returns the names of every committed layer, in
// insertion-policy order.
func (t *Table) CommittedLayerNames() []string {
	out := make([]string, 0, t.committed.Len())
	t.committed.Iterate(func(name string, _ *Layer) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Resolve implements "context ⊕ local-name → fully qualified name"
// (spec.md §3): a local name already declared in some committed layer
// under exactly that spelling resolves to itself; otherwise it is
// qualified by ctx with a "." separator and re-checked. The empty
// context resolves names at the top level.
func (t *Table) Resolve(ctx, local string) (string, error) {
	if t.declaredAnywhere(local) {
		return local, nil
	}
	qualified := local
	if ctx != "" {
		qualified = ctx + "." + local
	}
	if t.declaredAnywhere(qualified) {
		return qualified, nil
	}
	return "", symerr.NewContract("Table.Resolve", fmt.Sprintf("undeclared symbol %q in context %q", local, ctx))
}

func (t *Table) declaredAnywhere(name string) bool {
	found := false
	t.committed.Iterate(func(_ string, l *Layer) bool {
		if _, ok := l.Lookup(name); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// Declare declares sym in the named committed layer.
func (t *Table) Declare(layerName string, sym *Symbol) error {
	l, ok := t.committed.Get(layerName)
	if !ok {
		return symerr.NewContract("Table.Declare", fmt.Sprintf("layer %q not committed", layerName))
	}
	return l.Declare(sym)
}

// Lookup searches every committed layer, most recently committed first,
// for name, returning the first match.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	var sym *Symbol
	found := false
	t.committed.ReverseIterate(func(_ string, l *Layer) bool {
		if s, ok := l.Lookup(name); ok {
			sym, found = s, true
			return false
		}
		return true
	})
	if found {
		return sym, true
	}
	return nil, false
}

// ByKind returns every symbol of kind k across all committed layers, in
// insertion-policy-then-name order.
func (t *Table) ByKind(k SymbolKind) []*Symbol {
	var out []*Symbol
	t.committed.Iterate(func(_ string, l *Layer) bool {
		out = append(out, l.ByKind(k)...)
		return true
	})
	return out
}

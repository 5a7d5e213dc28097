// Package base implements the base encoder, spec.md §4.C's BaseEnc: it
// owns the list of committed layers in insertion-policy order and never
// writes into a layer itself — specialisations (enc/bool's BoolEnc and
// whatever else a caller builds) do the writing.
package base

import (
	"fmt"

	"github.com/luxfi/symcore/symerr"
	"github.com/luxfi/symcore/symtab"
)

// BaseEnc wraps a symbol table's layer registry, adding a cached,
// invalidate-on-write view of the committed layer names.
type BaseEnc struct {
	table *symtab.Table

	namesCache []string
	namesValid bool
}

// New returns a BaseEnc over table.
func New(table *symtab.Table) *BaseEnc {
	return &BaseEnc{table: table}
}

// Table exposes the underlying symbol table for specialisations that need
// to declare symbols into a committed layer; BaseEnc itself never calls
// Declare.
func (b *BaseEnc) Table() *symtab.Table {
	return b.table
}

// CommitLayer locks name, creating it if this is the first commit. A
// layer may be committed to multiple encoders; each commit increments
// the shared refcount.
func (b *BaseEnc) CommitLayer(name string) *symtab.Layer {
	l := b.table.CommitLayer(name)
	b.namesValid = false
	return l
}

// RemoveLayer unlocks name. The last release detaches the layer from the
// symbol table entirely.
func (b *BaseEnc) RemoveLayer(name string) error {
	if err := b.table.RemoveLayer(name); err != nil {
		return err
	}
	b.namesValid = false
	return nil
}

// LayerOccurs reports whether name is currently committed.
func (b *BaseEnc) LayerOccurs(name string) bool {
	return b.table.LayerOccurs(name)
}

// CommittedLayers returns every committed layer, in insertion-policy
// order.
func (b *BaseEnc) CommittedLayers() []*symtab.Layer {
	return b.table.CommittedLayers()
}

// CommittedLayerNames returns the names of every committed layer, in
// insertion-policy order. The result is cached and only recomputed after
// a CommitLayer/RemoveLayer call changes the committed set.
func (b *BaseEnc) CommittedLayerNames() []string {
	if b.namesValid {
		return b.namesCache
	}
	b.namesCache = b.table.CommittedLayerNames()
	b.namesValid = true
	return b.namesCache
}

// RequireLayer returns a contract error if name is not currently
// committed; specialisations call this before writing into a layer.
func (b *BaseEnc) RequireLayer(op, name string) error {
	if !b.LayerOccurs(name) {
		return symerr.NewContract(op, fmt.Sprintf("layer %q not committed", name))
	}
	return nil
}

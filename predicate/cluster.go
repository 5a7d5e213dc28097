package predicate

import "github.com/luxfi/symcore/expr"

// Cluster is a set of variables that co-occur in some extracted
// predicate, maintained under union-find (spec.md §3/§9). Only the root
// of a cluster's tree carries valid Vars/Preds; non-root clusters are
// internal union-find nodes reachable only through find.
type Cluster struct {
	parent *Cluster
	vars   map[string]struct{}
	preds  []*expr.Node
}

func newCluster(v string) *Cluster {
	c := &Cluster{vars: map[string]struct{}{v: {}}}
	c.parent = c
	return c
}

// find returns the root of c's cluster, compressing the path as it goes.
func (c *Cluster) find() *Cluster {
	root := c
	for root.parent != root {
		root = root.parent
	}
	for c.parent != root {
		next := c.parent
		c.parent = root
		c = next
	}
	return root
}

// Vars returns the cluster's member variables.
func (c *Cluster) Vars() []string {
	root := c.find()
	out := make([]string, 0, len(root.vars))
	for v := range root.vars {
		out = append(out, v)
	}
	return out
}

// Predicates returns the predicates that justified this cluster's
// formation, mirroring original_source's cluster->preds bag.
func (c *Cluster) Predicates() []*expr.Node {
	root := c.find()
	return append([]*expr.Node(nil), root.preds...)
}

// union merges the clusters of a and b by folding the smaller into the
// larger, rewriting the smaller cluster's var->cluster mapping via the
// caller-supplied index, moving its predicate bag into the survivor, and
// returning the survivor.
func union(index map[string]*Cluster, a, b *Cluster) *Cluster {
	ra, rb := a.find(), b.find()
	if ra == rb {
		return ra
	}
	small, big := ra, rb
	if len(big.vars) < len(small.vars) {
		small, big = big, small
	}
	for v := range small.vars {
		big.vars[v] = struct{}{}
		index[v] = big
	}
	big.preds = append(big.preds, small.preds...)
	small.parent = big
	small.vars = nil
	small.preds = nil
	return big
}

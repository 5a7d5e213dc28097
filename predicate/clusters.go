package predicate

import "github.com/luxfi/symcore/expr"

// Clusters processes every predicate still in the unclustered queue,
// merging variable clusters via union-find, and returns the current
// distinct clusters. After a call the queue is empty; a later call merges
// only predicates committed since, but still walks every clustered
// variable to collect the current roots.
func (ex *Extractor) Clusters() []*Cluster {
	for _, pred := range ex.unclustered {
		vars := collectVars(pred)
		if len(vars) == 0 {
			continue
		}
		var merged *Cluster
		for _, v := range vars {
			c, ok := ex.varCluster[v]
			if !ok {
				c = newCluster(v)
				ex.varCluster[v] = c
			}
			if merged == nil {
				merged = c.find()
			} else {
				merged = union(ex.varCluster, merged, c)
			}
		}
		merged.preds = append(merged.preds, pred)
	}
	ex.unclustered = ex.unclustered[:0]

	seen := make(map[*Cluster]bool)
	var out []*Cluster
	for _, c := range ex.varCluster {
		root := c.find()
		if !seen[root] {
			seen[root] = true
			out = append(out, root)
		}
	}
	return out
}

// collectVars returns the distinct KindName/KindBitOf leaves reachable
// from node, treating them as the node's variable support.
func collectVars(node *expr.Node) []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(n *expr.Node)
	walk = func(n *expr.Node) {
		if n == nil {
			return
		}
		if (n.Kind == expr.KindName || n.Kind == expr.KindBitOf) && !seen[n.Lit.Str] {
			seen[n.Lit.Str] = true
			out = append(out, n.Lit.Str)
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(node)
	return out
}

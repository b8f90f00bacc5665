package table

// Node is one entry in a synthesized parent/child graph. An empty Parent
// marks a root.
type Node struct {
	ID     string
	Parent string
	Size   float64
}

// Hierarchy synthesizes a deduplicated node graph from flat rows for the
// tree-like chart types.
//
// Nodes are keyed by the id column's display text; repeated ids keep
// their first position but take the fields of the last occurrence. Rows
// with an empty id are skipped. Parent references that do not resolve to
// any known node id are rewritten to "" so orphans become roots. When
// valueCol is negative the node size defaults to 1, as it does when the
// value cell fails numeric coercion.
//
// The synthesis is idempotent on node identity: the same input always
// yields the same graph.
func (t *Table) Hierarchy(idCol, parentCol, valueCol int) []Node {
	index := make(map[string]int, len(t.Rows))
	nodes := make([]Node, 0, len(t.Rows))

	for r := range t.Rows {
		id := t.Cell(r, idCol).Text()
		if id == "" {
			continue
		}

		size := 1.0
		if valueCol >= 0 {
			if f, ok := t.Cell(r, valueCol).Float(); ok {
				size = f
			}
		}

		node := Node{
			ID:     id,
			Parent: t.Cell(r, parentCol).Text(),
			Size:   size,
		}

		if i, seen := index[id]; seen {
			nodes[i] = node
			continue
		}
		index[id] = len(nodes)
		nodes = append(nodes, node)
	}

	// Orphaned parents become roots.
	for i := range nodes {
		if nodes[i].Parent == "" {
			continue
		}
		if _, known := index[nodes[i].Parent]; !known {
			nodes[i].Parent = ""
		}
	}

	return nodes
}

// NodeRecords converts a node graph into the record form hierarchical
// chart specifications expect. Root parents are omitted rather than
// serialized as empty strings so stratify-style transforms treat them as
// graph roots.
func NodeRecords(nodes []Node) []Record {
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		rec := Record{
			"id":   n.ID,
			"size": n.Size,
		}
		if n.Parent != "" {
			rec["parent"] = n.Parent
		}
		out = append(out, rec)
	}
	return out
}

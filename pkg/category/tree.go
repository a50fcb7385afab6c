package category

// TreeNode is a category with its child categories attached.
type TreeNode struct {
	Record
	Children []*TreeNode `json:"children" yaml:"children"`
}

// Materialize turns a flat category list into a forest. Children keep input
// order. A record whose parent is missing from the input becomes a root.
//
// Cycles are not broken: a record that names itself as parent ends up as its
// own child and never as a root, and records in a longer cycle only appear
// under each other. Use Walk to traverse such a forest safely.
//
// Duplicate ids keep the position of their first occurrence and the contents
// of their last. The input is never modified.
func Materialize(records []Record) []*TreeNode {
	roots, _ := materialize(records)
	return roots
}

func materialize(records []Record) ([]*TreeNode, map[int64]*TreeNode) {
	nodes := make(map[int64]*TreeNode, len(records))
	order := make([]int64, 0, len(records))

	for _, r := range records {
		if _, seen := nodes[r.ID]; !seen {
			order = append(order, r.ID)
		}
		nodes[r.ID] = &TreeNode{Record: r, Children: []*TreeNode{}}
	}

	roots := []*TreeNode{}
	for _, id := range order {
		node := nodes[id]
		if node.HasParent() {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots, nodes
}

// Walk visits the forest depth-first, calling fn with each node and its depth
// (roots are depth 0). Nodes already visited are skipped, so cyclic trees
// terminate. Returning false from fn skips that node's children.
func Walk(forest []*TreeNode, fn func(node *TreeNode, depth int) bool) {
	visited := make(map[*TreeNode]struct{})

	var visit func(nodes []*TreeNode, depth int)
	visit = func(nodes []*TreeNode, depth int) {
		for _, n := range nodes {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			if fn(n, depth) {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(forest, 0)
}

// Flatten returns the records of the forest in Walk order.
func Flatten(forest []*TreeNode) []Record {
	var out []Record
	Walk(forest, func(n *TreeNode, _ int) bool {
		out = append(out, n.Record)
		return true
	})
	return out
}

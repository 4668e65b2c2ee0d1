package trie

type visit struct {
	node  *Node
	depth int
}

// Walk calls fn for every node, depth first, in insertion order. Roots have
// depth 0. Walk stops when fn returns false.
func (t *Trie) Walk(fn func(n *Node, depth int) bool) {
	stack := make([]visit, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, visit{t.roots[i], 0})
	}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(v.node, v.depth) {
			return
		}

		children := v.node.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, visit{children[i], v.depth + 1})
		}
	}
}

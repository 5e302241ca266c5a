package tree

import "strconv"

// Balanced builds a complete tree of the given depth where every internal
// node has arity children. Nodes are named by their path from the root,
// e.g. "0.2.1"; the root is named "0".
func Balanced(depth, arity int) *Node {
	root := New("0")
	grow(root, depth, arity)
	return root
}

func grow(n *Node, depth, arity int) {
	if depth <= 0 {
		return
	}
	for i := 0; i < arity; i++ {
		c := n.AddChild(n.name + "." + strconv.Itoa(i))
		grow(c, depth-1, arity)
	}
}

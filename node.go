package highlight

import "reflect"

// NodeID identifies a node across redraws. It tags every drawing call so
// that the caller can hit-test highlights later.
type NodeID string

// Node is the read-only view of a tree node consumed by the highlighter.
// The tree itself is owned by the caller; package tree provides a
// reference implementation.
type Node interface {
	// ID returns the node's unique identity.
	ID() NodeID
	// Parent returns the parent node, or nil for the root.
	Parent() Node
	// Children returns the ordered children.
	Children() []Node
	// Descendants returns every node below this one in pre-order,
	// excluding the node itself.
	Descendants() []Node
	// Leaves returns the descendant leaves in traversal order. A leaf
	// returns itself.
	Leaves() []Node
}

// isNilNode reports whether n is nil or an interface holding a nil pointer.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// isLeaf reports whether n has no children.
func isLeaf(n Node) bool {
	return len(n.Children()) == 0
}

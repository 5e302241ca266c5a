// Package tree provides a minimal in-memory tree implementing
// highlight.Node, used by tests and the demo command.
package tree

import (
	"github.com/google/uuid"

	"github.com/treeviewer/highlight"
)

// Node is a tree node with a random UUID identity.
type Node struct {
	id       highlight.NodeID
	name     string
	parent   *Node
	children []*Node
}

var _ highlight.Node = (*Node)(nil)

// New creates a detached node with a fresh identity.
func New(name string) *Node {
	return &Node{
		id:   highlight.NodeID(uuid.NewString()),
		name: name,
	}
}

// NewWithID creates a detached node with the given identity.
func NewWithID(id highlight.NodeID, name string) *Node {
	return &Node{id: id, name: name}
}

// AddChild creates a child node, appends it and returns it.
func (n *Node) AddChild(name string) *Node {
	child := New(name)
	n.Attach(child)
	return child
}

// Attach appends child to n, detaching it from any previous parent.
func (n *Node) Attach(child *Node) {
	if child.parent != nil {
		siblings := child.parent.children
		for i, s := range siblings {
			if s == child {
				child.parent.children = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
	}
	child.parent = n
	n.children = append(n.children, child)
}

// ID implements highlight.Node.
func (n *Node) ID() highlight.NodeID { return n.id }

// Name returns the node label.
func (n *Node) Name() string { return n.name }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Parent implements highlight.Node.
func (n *Node) Parent() highlight.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children implements highlight.Node.
func (n *Node) Children() []highlight.Node {
	out := make([]highlight.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Nodes returns the concrete children.
func (n *Node) Nodes() []*Node { return n.children }

// Descendants implements highlight.Node.
func (n *Node) Descendants() []highlight.Node {
	var out []highlight.Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			out = append(out, d)
			return true
		})
	}
	return out
}

// Leaves implements highlight.Node.
func (n *Node) Leaves() []highlight.Node {
	var out []highlight.Node
	n.Walk(func(d *Node) bool {
		if d.IsLeaf() {
			out = append(out, d)
		}
		return true
	})
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Depth returns the number of edges between n and the root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Find returns the first node in pre-order whose name matches.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(d *Node) bool {
		if found != nil {
			return false
		}
		if d.name == name {
			found = d
			return false
		}
		return true
	})
	return found
}

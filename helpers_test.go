package highlight

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertPoints(t *testing.T, got, want []Point, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !got[i].Approx(want[i], tol) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// testNode is a minimal in-memory Node.
type testNode struct {
	id       NodeID
	parent   *testNode
	children []*testNode
}

// tn builds a node and adopts the given children.
func tn(id string, children ...*testNode) *testNode {
	n := &testNode{id: NodeID(id), children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *testNode) ID() NodeID { return n.id }

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) Descendants() []Node {
	var out []Node
	for _, c := range n.children {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

func (n *testNode) Leaves() []Node {
	if len(n.children) == 0 {
		return []Node{n}
	}
	var out []Node
	for _, c := range n.children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// sinkCall records one call made on recordingSink.
type sinkCall struct {
	kind     string
	id       NodeID
	path     *Path
	color    RGBA
	gradient Gradient
	style    StrokeStyle
}

// recordingSink is a Sink that remembers every call.
type recordingSink struct {
	calls []sinkCall
}

func (s *recordingSink) FillSolid(id NodeID, path *Path, color RGBA) {
	s.calls = append(s.calls, sinkCall{kind: "solid", id: id, path: path, color: color})
}

func (s *recordingSink) FillGradient(id NodeID, path *Path, gradient Gradient) {
	s.calls = append(s.calls, sinkCall{kind: "gradient", id: id, path: path, gradient: gradient})
}

func (s *recordingSink) Stroke(id NodeID, path *Path, style StrokeStyle) {
	s.calls = append(s.calls, sinkCall{kind: "stroke", id: id, path: path, style: style})
}

package highlight

import (
	"fmt"
	"log/slog"
)

// ShapeKind identifies the geometry produced by a shape assembler.
type ShapeKind uint8

const (
	// ShapeRectangle is the inflated local-frame rectangle of a
	// rectangular layout.
	ShapeRectangle ShapeKind = iota
	// ShapeCircle is the circle drawn around a radial leaf, or around a
	// clade whose points all coincide.
	ShapeCircle
	// ShapeHull is the inflated convex hull of a radial clade.
	ShapeHull
	// ShapeEnvelope is the raw outline through a radial node and its leaves.
	ShapeEnvelope
	// ShapeWedge is the annular wedge of a circular layout.
	ShapeWedge
)

// Shape is the output of a shape assembler.
type Shape struct {
	// Boundary is the closed outline in world coordinates.
	Boundary *Path

	// Polygon holds the boundary vertices when the outline is polygonal
	// (rectangle, hull, envelope) and is nil for circles and wedges.
	Polygon []Point

	// Bounds folds every emitted boundary point.
	Bounds BoundingBox

	Meta ShapeMeta
}

// ShapeMeta carries the data the gradient resolver needs to orient a fill.
type ShapeMeta struct {
	Kind ShapeKind

	// Node is the highlighted node's point; Parent is its parent's point
	// when HasParent is set.
	Node      Point
	Parent    Point
	HasParent bool

	// FirstLeaf and LastLeaf are the points of the first and last leaf in
	// traversal order.
	FirstLeaf Point
	LastLeaf  Point

	// Rectangular frame: unit axes and inflated extents relative to Node.
	AxisU, AxisV           Point
	MinU, MaxU, MinV, MaxV float64

	// Radius of a ShapeCircle.
	Radius float64

	// Center of a radial or circular layout.
	Center Point

	// Circular wedge. NodeRadius is the smallest clade radius before
	// margins; angles are in radians with EndAngle >= StartAngle.
	InnerRadius, OuterRadius float64
	NodeRadius               float64
	StartAngle, EndAngle     float64
}

// clade gathers the points one assembler works on.
type clade struct {
	self   Point
	points []Point // self followed by every descendant with a coordinate
	leaves []Point // leaf points in traversal order
	meta   ShapeMeta
}

// BuildShape computes the highlight boundary of node in the active layout.
// The request is not validated here; Draw validates before calling it.
func (h *Highlighter) BuildShape(node Node, coords CoordinateMap, req Request) (*Shape, error) {
	c, err := h.gatherClade(node, coords)
	if err != nil {
		return nil, err
	}

	switch l := coords.Layout.(type) {
	case RectangularLayout:
		return h.rectangularShape(c, l, req), nil
	case RadialLayout:
		return h.radialShape(c, l, req, isLeaf(node)), nil
	case CircularLayout:
		return h.circularShape(c, l, req), nil
	case nil:
		return nil, ErrUnknownLayout
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownLayout, l)
	}
}

func (h *Highlighter) gatherClade(node Node, coords CoordinateMap) (clade, error) {
	if isNilNode(node) {
		return clade{}, ErrNilNode
	}
	self, ok := coords.Point(node.ID())
	if !ok {
		return clade{}, fmt.Errorf("%w: %s", ErrMissingCoordinate, node.ID())
	}

	c := clade{self: self, points: []Point{self}}
	c.meta.Node = self

	if parent := node.Parent(); !isNilNode(parent) {
		if p, ok := coords.Point(parent.ID()); ok {
			c.meta.Parent = p
			c.meta.HasParent = true
		}
	}

	missing := 0
	for _, d := range node.Descendants() {
		if p, ok := coords.Point(d.ID()); ok {
			c.points = append(c.points, p)
		} else {
			missing++
		}
	}
	for _, leaf := range node.Leaves() {
		if p, ok := coords.Point(leaf.ID()); ok {
			c.leaves = append(c.leaves, p)
		}
	}
	if missing > 0 {
		h.logger().Debug("highlight: descendants without coordinates skipped",
			slog.String("node", string(node.ID())), slog.Int("missing", missing))
	}

	if len(c.leaves) == 0 {
		c.leaves = []Point{self}
	}
	c.meta.FirstLeaf = c.leaves[0]
	c.meta.LastLeaf = c.leaves[len(c.leaves)-1]
	return c, nil
}

// polygonShape wraps a vertex list into a closed Shape.
func polygonShape(poly []Point, meta ShapeMeta) *Shape {
	path := NewPath()
	path.Polygon(poly)
	return &Shape{
		Boundary: path,
		Polygon:  poly,
		Bounds:   NewBoundingBox(poly...),
		Meta:     meta,
	}
}

// circleShape is the boundary of a circle of radius r around center.
func circleShape(center Point, r float64, meta ShapeMeta) *Shape {
	meta.Kind = ShapeCircle
	meta.Radius = r
	path := NewPath()
	path.Circle(center.X, center.Y, r)
	return &Shape{
		Boundary: path,
		Bounds:   path.Bounds(BoundingBox{}),
		Meta:     meta,
	}
}

package highlight

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a closed boundary made of straight and cubic segments in world
// coordinates. Highlight shapes are always emitted as closed subpaths.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Polygon adds a closed polygon through the given vertices.
func (p *Path) Polygon(vertices []Point) {
	if len(vertices) == 0 {
		return
	}
	p.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		p.LineTo(v.X, v.Y)
	}
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// ArcTo continues the current subpath with a circular arc around (cx, cy)
// from angle1 to angle2. The sweep follows the sign of angle2-angle1, so
// clockwise arcs are drawn by passing angle2 < angle1. A line joins the
// current point to the arc start; on an empty path the arc starts a new
// subpath.
func (p *Path) ArcTo(cx, cy, r, angle1, angle2 float64) {
	start := Polar(Pt(cx, cy), r, angle1)
	if len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else if !p.current.Approx(start, 1e-12) {
		p.LineTo(start.X, start.Y)
	}

	sweep := angle2 - angle1
	if sweep == 0 || r == 0 {
		return
	}

	// Maximum 90 degrees per segment
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep) / maxAngle))
	step := sweep / float64(numSegments)
	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcBulge bounds the relative outward deviation of ArcTo curves from
// their circle.
const arcBulge = 3e-4

// arcSegment adds a single arc segment of at most 90 degrees in either
// direction, starting at the current point.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	// The curve touches the circle at both ends and bulges outward by at
	// most 0.03% of r in between, so it never cuts inside the arc.
	alpha := 4.0 / 3 * math.Tan((a2-a1)/4)

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Points returns every on-curve and control point of the path in order.
// The Bezier convex hull property makes them a conservative envelope.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements)*2)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return pts
}

// Bounds folds every path point into b and returns the result.
func (p *Path) Bounds(b BoundingBox) BoundingBox {
	for _, pt := range p.Points() {
		b = b.Include(pt)
	}
	return b
}

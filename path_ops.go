package highlight

import "math"

// Path operations used for hit-testing and rasterization: flattening,
// winding numbers, containment and polygon area.

// defaultFlattenTolerance is the maximum distance between a curve and its
// flattened polyline when the caller passes a non-positive tolerance.
const defaultFlattenTolerance = 0.1

// Flatten converts the path to closed polylines, one per subpath.
// tolerance is the maximum distance from the curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = defaultFlattenTolerance
	}

	var polys [][]Point
	var cur []Point
	var current Point

	flush := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
			current = e.Point
		case LineTo:
			cur = append(cur, e.Point)
			current = e.Point
		case CubicTo:
			cur = flattenCubic(cur, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case Close:
			flush()
		}
	}
	flush()
	return polys
}

// flattenCubic appends the polyline approximation of a cubic Bezier
// (excluding p0) to dst. The segment count is derived from the second
// differences of the control polygon.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	dd := math.Max(
		p0.Sub(p1.Mul(2)).Add(p2).Length(),
		p1.Sub(p2.Mul(2)).Add(p3).Length(),
	)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tolerance)))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = append(dst, Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right over the flattened path.
func (p *Path) Winding(pt Point) int {
	var winding int
	for _, poly := range p.Flatten(defaultFlattenTolerance / 10) {
		winding += polygonWinding(poly, pt)
	}
	return winding
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// polygonWinding returns the winding number of pt around a closed polygon.
func polygonWinding(poly []Point, pt Point) int {
	var winding int
	for i := range poly {
		winding += lineWinding(poly[i], poly[(i+1)%len(poly)], pt)
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// SignedArea returns the shoelace area of a closed polygon.
// Positive for counter-clockwise vertices in a y-up frame.
func SignedArea(poly []Point) float64 {
	var area float64
	for i := range poly {
		area += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return area / 2
}

// PolygonContains reports whether pt lies inside or on the boundary of poly
// within tolerance.
func PolygonContains(poly []Point, pt Point, tolerance float64) bool {
	for i := range poly {
		if segmentDistance(poly[i], poly[(i+1)%len(poly)], pt) <= tolerance {
			return true
		}
	}
	return polygonWinding(poly, pt) != 0
}

// segmentDistance returns the distance from pt to the segment a-b.
func segmentDistance(a, b, pt Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return pt.Distance(a)
	}
	t := math.Max(0, math.Min(1, pt.Sub(a).Dot(ab)/l2))
	return pt.Distance(a.Add(ab.Mul(t)))
}

// DistanceTo returns the distance from pt to the nearest point of the
// path outline (not its interior).
func (p *Path) DistanceTo(pt Point) float64 {
	best := math.Inf(1)
	for _, poly := range p.Flatten(defaultFlattenTolerance / 10) {
		for i := range poly {
			best = math.Min(best, segmentDistance(poly[i], poly[(i+1)%len(poly)], pt))
		}
	}
	return best
}

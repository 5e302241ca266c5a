package highlight

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// Positive when q is counter-clockwise from p in a y-up frame.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length (modulus) of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if p has zero length.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated by +90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// PerpCW returns the vector rotated by -90 degrees.
func (p Point) PerpCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Angle returns the polar angle of the vector in radians, in (-pi, pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Approx returns true if two points are equal within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Polar returns the point at the given radius and angle around center.
func Polar(center Point, r, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: center.X + r*cos, Y: center.Y + r*sin}
}

// LineIntersection intersects the lines p1 + t*d1 and p2 + s*d2.
// It returns false when the directions are parallel within tolerance,
// measured on the normalized cross product.
func LineIntersection(p1, d1, p2, d2 Point, tolerance float64) (Point, bool) {
	denom := d1.Cross(d2)
	scale := d1.Length() * d2.Length()
	if scale == 0 || math.Abs(denom) <= tolerance*scale {
		return Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t)), true
}

package highlight

import "math"

// BoundingBox is an axis-aligned box accumulated by folding points into it.
// The zero value is empty and absorbs the first included point.
type BoundingBox struct {
	Min, Max Point
	valid    bool
}

// NewBoundingBox returns the box spanning the given points.
func NewBoundingBox(points ...Point) BoundingBox {
	var b BoundingBox
	for _, p := range points {
		b = b.Include(p)
	}
	return b
}

// Empty reports whether no point has been folded into the box.
func (b BoundingBox) Empty() bool {
	return !b.valid
}

// Include returns the box grown to contain p.
func (b BoundingBox) Include(p Point) BoundingBox {
	if !b.valid {
		return BoundingBox{Min: p, Max: p, valid: true}
	}
	return BoundingBox{
		Min:   Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max:   Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
		valid: true,
	}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if !o.valid {
		return b
	}
	if !b.valid {
		return o
	}
	return b.Include(o.Min).Include(o.Max)
}

// Inflate grows the box by d on every side. Empty boxes stay empty.
func (b BoundingBox) Inflate(d float64) BoundingBox {
	if !b.valid {
		return b
	}
	return BoundingBox{
		Min:   Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max:   Point{X: b.Max.X + d, Y: b.Max.Y + d},
		valid: true,
	}
}

// Contains reports whether p lies inside or on the box.
func (b BoundingBox) Contains(p Point) bool {
	return b.valid && p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent.
func (b BoundingBox) Width() float64 {
	if !b.valid {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b BoundingBox) Height() float64 {
	if !b.valid {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return b.Min.Lerp(b.Max, 0.5)
}

// Corners returns the min and max corners, the pair handed back to callers
// to grow their redraw-invalidation region.
func (b BoundingBox) Corners() (Point, Point) {
	return b.Min, b.Max
}

package highlight

import (
	"cmp"
	"slices"
)

// comparePoints orders points lexicographically, first by X then by Y.
func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// ConvexHull returns the convex hull of points as a vertex list without a
// repeated closing vertex. Vertices are a subset of the input, ordered
// counter-clockwise in a y-up frame and starting at the lexicographically
// smallest point. Collinear boundary points are dropped.
//
// Inputs of one or two distinct points are returned as-is (a point or a
// segment). The input slice is not modified.
//
// This is Andrew's monotone chain, the O(n log n) form of gift wrapping.
func ConvexHull(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, comparePoints)
	sorted = slices.Compact(sorted)

	if len(sorted) <= 2 {
		return sorted
	}

	hull := make([]Point, 0, 2*len(sorted))

	// Lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first.
	hull = hull[:len(hull)-1]

	// All points collinear: the chains collapse onto the two extremes.
	if len(hull) < 3 {
		return []Point{sorted[0], sorted[len(sorted)-1]}
	}
	return hull
}

// turn returns the signed area of the triangle (o, a, b): positive for a
// counter-clockwise turn.
func turn(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

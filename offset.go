package highlight

import (
	"log/slog"
	"math"
	"slices"
)

// DefaultParallelTolerance is the normalized cross product below which two
// consecutive offset edges are treated as parallel.
const DefaultParallelTolerance = 1e-9

// Offset inflates a closed polygon by a margin with mitered corners.
//
// Each vertex is pushed outward by Margin scaled with a per-vertex weight
// that blends a uniform offset with one proportional to the vertex
// distance from Center. Balance 0.5 is uniform; lower values favor
// vertices near Center and higher values favor distant ones.
type Offset struct {
	Center  Point
	Margin  float64
	Balance float64

	// MaxDistance is the largest Center-to-vertex distance. When zero it
	// is computed from the polygon.
	MaxDistance float64

	// ParallelTolerance overrides DefaultParallelTolerance when positive.
	ParallelTolerance float64

	// Log receives fallback diagnostics; nil uses the package logger.
	Log *slog.Logger
}

// OffsetPolygon is a shorthand for Offset{...}.Apply(poly).
func OffsetPolygon(poly []Point, center Point, margin, balance, maxDist float64) []Point {
	return Offset{Center: center, Margin: margin, Balance: balance, MaxDistance: maxDist}.Apply(poly)
}

// Weight returns the offset weight of a vertex at distance d from Center.
// The result lies in [0, 1].
func (o Offset) Weight(d, maxDist float64) float64 {
	r := 1.0
	if maxDist > 0 {
		r = d / maxDist
	}
	w := 2*o.Balance*r + 2*(1-o.Balance)*(1-r)
	return math.Max(0, math.Min(1, w))
}

// Apply returns the offset polygon.
//
// A zero margin returns a copy of poly unchanged. Otherwise consecutive
// duplicate vertices are dropped and the winding is made counter-clockwise
// (y-up) so that outward normals are edge directions rotated by -90
// degrees. A single distinct vertex cannot be offset and yields nil.
//
// Consecutive offset edges meet at the intersection of their supporting
// lines. When those lines are parallel and point the same way the shared
// offset endpoints are averaged; when they point in opposite directions
// (a spike, such as a two-vertex polygon) the corner becomes a square cap
// extended by the weighted margin.
func (o Offset) Apply(poly []Point) []Point {
	if o.Margin == 0 {
		return slices.Clone(poly)
	}

	pts := dedupeRing(poly)
	n := len(pts)
	if n < 2 {
		return nil
	}
	if n >= 3 && SignedArea(pts) < 0 {
		slices.Reverse(pts)
	}

	tol := o.ParallelTolerance
	if tol <= 0 {
		tol = DefaultParallelTolerance
	}

	maxDist := o.MaxDistance
	if maxDist <= 0 {
		for _, p := range pts {
			maxDist = math.Max(maxDist, p.Distance(o.Center))
		}
	}

	shift := make([]float64, n)
	for i, p := range pts {
		shift[i] = o.Margin * o.Weight(p.Distance(o.Center), maxDist)
	}

	type segment struct {
		a, b Point // offset endpoints
		dir  Point // unit direction of the source edge
	}
	segs := make([]segment, n)
	for i := range pts {
		j := (i + 1) % n
		dir := pts[j].Sub(pts[i]).Normalize()
		normal := dir.PerpCW()
		segs[i] = segment{
			a:   pts[i].Add(normal.Mul(shift[i])),
			b:   pts[j].Add(normal.Mul(shift[j])),
			dir: dir,
		}
	}

	out := make([]Point, 0, n+2)
	for i := range segs {
		prev := segs[(i+n-1)%n]
		cur := segs[i]

		d1 := prev.b.Sub(prev.a)
		if d1.LengthSquared() == 0 {
			d1 = prev.dir
		}
		d2 := cur.b.Sub(cur.a)
		if d2.LengthSquared() == 0 {
			d2 = cur.dir
		}

		spike := math.Abs(prev.dir.Cross(cur.dir)) <= tol && prev.dir.Dot(cur.dir) < 0
		if !spike {
			if miter, ok := LineIntersection(prev.a, d1, cur.a, d2, tol); ok {
				out = append(out, miter)
				continue
			}
		}

		o.logger().Debug("highlight: parallel offset edges", "vertex", i, "spike", spike)
		if !spike {
			out = append(out, prev.b.Lerp(cur.a, 0.5))
			continue
		}
		ext := prev.dir.Mul(shift[i])
		out = append(out, prev.b.Add(ext), cur.a.Add(ext))
	}
	return out
}

func (o Offset) logger() *slog.Logger {
	if o.Log != nil {
		return o.Log
	}
	return Logger()
}

// dedupeRing copies poly without consecutive duplicates, including the
// wrap-around from the last vertex to the first.
func dedupeRing(poly []Point) []Point {
	out := make([]Point, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

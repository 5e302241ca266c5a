package highlight

import (
	"log/slog"
	"math"
)

// radialShape builds the highlight of a radial layout: a circle around a
// leaf, the inflated convex hull of the clade, or the raw envelope through
// the node and its leaves.
func (h *Highlighter) radialShape(c clade, l RadialLayout, req Request, leaf bool) *Shape {
	meta := c.meta
	meta.Center = l.Center

	if leaf {
		return circleShape(c.self, req.Margin, meta)
	}

	if !req.ConvexHull {
		meta.Kind = ShapeEnvelope
		poly := make([]Point, 0, len(c.leaves)+1)
		poly = append(poly, c.self)
		poly = append(poly, c.leaves...)
		return polygonShape(poly, meta)
	}

	hull := ConvexHull(c.points)
	if len(hull) == 1 {
		h.logger().Debug("highlight: clade collapses to a point, drawing a circle",
			slog.Float64("margin", req.Margin))
		return circleShape(hull[0], req.Margin, meta)
	}

	maxDist := 0.0
	for _, p := range hull {
		maxDist = math.Max(maxDist, p.Distance(c.self))
	}

	poly := Offset{
		Center:            c.self,
		Margin:            req.Margin,
		Balance:           req.Balance,
		MaxDistance:       maxDist,
		ParallelTolerance: h.opts.parallelTolerance,
		Log:               h.logger(),
	}.Apply(hull)

	meta.Kind = ShapeHull
	return polygonShape(poly, meta)
}

package highlight

import (
	"log/slog"
	"math"
)

const twoPi = 2 * math.Pi

// circularShape builds the annular wedge covering a clade in a circular
// layout. Radial margins widen the ring; angular margins are divided by
// the mean radius so that they approximate a constant linear width.
func (h *Highlighter) circularShape(c clade, l CircularLayout, req Request) *Shape {
	center := l.Center

	minR, maxR := math.Inf(1), math.Inf(-1)
	for _, p := range c.points {
		r := p.Distance(center)
		minR, maxR = math.Min(minR, r), math.Max(maxR, r)
	}

	var startMargin, endMargin float64
	if meanR := (minR + maxR) / 2; meanR > 0 {
		startMargin = req.Margins.Top / meanR
		endMargin = req.Margins.Bottom / meanR
	}

	start, end, clamped := normalizeWedge(
		c.meta.FirstLeaf.Sub(center).Angle(),
		c.meta.LastLeaf.Sub(center).Angle(),
		startMargin, endMargin, h.opts.angleEpsilon,
	)
	if clamped {
		h.logger().Debug("highlight: wedge span exceeds a full turn, clamped",
			slog.Float64("start", start), slog.Float64("end", end))
	}

	inner := math.Max(0, minR-req.Margins.Left)
	outer := maxR + req.Margins.Right

	meta := c.meta
	meta.Kind = ShapeWedge
	meta.Center = center
	meta.InnerRadius, meta.OuterRadius = inner, outer
	meta.NodeRadius = minR
	meta.StartAngle, meta.EndAngle = start, end

	path := NewPath()
	path.ArcTo(center.X, center.Y, outer, start, end)
	// The inner arc bulges into the wedge; pull it in so it stays inside minR.
	path.ArcTo(center.X, center.Y, inner*(1-arcBulge), end, start)
	path.Close()

	return &Shape{
		Boundary: path,
		Bounds:   path.Bounds(BoundingBox{}),
		Meta:     meta,
	}
}

// normalizeWedge orders the polar angles of the first and last leaf into a
// span [start, end] with end >= start, both shifted to be non-negative,
// then widens it by the angular margins. A span that ends up wider than a
// full turn is clamped to [eps, 2pi+eps] and clamped is reported.
func normalizeWedge(theta1, theta2, startMargin, endMargin, eps float64) (start, end float64, clamped bool) {
	if theta2 < theta1 {
		theta2 += twoPi
	}
	for theta1 < 0 {
		theta1 += twoPi
		theta2 += twoPi
	}

	start = theta1 - startMargin
	end = theta2 + endMargin
	if end-start > twoPi {
		return eps, twoPi + eps, true
	}
	return start, end, false
}

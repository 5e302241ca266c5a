package highlight

import "math"

// rectangularShape projects the clade into the node's local frame (branch
// direction and its perpendicular), takes the extents there, inflates them
// by the four margins and maps the corners back to world space.
func (h *Highlighter) rectangularShape(c clade, l RectangularLayout, req Request) *Shape {
	u := l.Direction.Normalize()
	if u == (Point{}) {
		u = Pt(1, 0)
	}
	v := u.Perp()

	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, p := range c.points {
		d := p.Sub(c.self)
		pu, pv := d.Dot(u), d.Dot(v)
		minU, maxU = math.Min(minU, pu), math.Max(maxU, pu)
		minV, maxV = math.Min(minV, pv), math.Max(maxV, pv)
	}

	minU -= req.Margins.Left
	maxU += req.Margins.Right
	minV -= req.Margins.Top
	maxV += req.Margins.Bottom

	meta := c.meta
	meta.Kind = ShapeRectangle
	meta.AxisU, meta.AxisV = u, v
	meta.MinU, meta.MaxU, meta.MinV, meta.MaxV = minU, maxU, minV, maxV

	corners := []Point{
		meta.unproject(minU, minV),
		meta.unproject(maxU, minV),
		meta.unproject(maxU, maxV),
		meta.unproject(minU, maxV),
	}
	return polygonShape(corners, meta)
}

// unproject maps local-frame coordinates back to world space.
func (m ShapeMeta) unproject(pu, pv float64) Point {
	return m.Node.Add(m.AxisU.Mul(pu)).Add(m.AxisV.Mul(pv))
}

package highlight

// ResolveGradient derives a gradient paint aligned with a finished shape.
//
// RootToLeaves runs along the branch (from the parent side of the clade to
// its far side); LeafToLeaf runs across it, oriented from the first leaf to
// the last. Circular wedges use a radial gradient for RootToLeaves so that
// the color follows the rings of the layout.
func ResolveGradient(s *Shape, req Request) Gradient {
	m := s.Meta
	stops := GradientStops(req.GradientStart, req.GradientEnd, req.GradientMidpoint)
	target := m.targetDirection(req.GradientDirection)

	switch m.Kind {
	case ShapeRectangle:
		cu, cv := (m.MinU+m.MaxU)/2, (m.MinV+m.MaxV)/2
		var start, end Point
		if req.GradientDirection == RootToLeaves {
			start, end = m.unproject(m.MinU, cv), m.unproject(m.MaxU, cv)
		} else {
			start, end = m.unproject(cu, m.MinV), m.unproject(cu, m.MaxV)
		}
		if end.Sub(start).Dot(target) < 0 {
			start, end = end, start
		}
		return &LinearGradient{Start: start, End: end, Stops: stops}

	case ShapeCircle:
		axis := target.Normalize()
		return &LinearGradient{
			Start: m.Node.Sub(axis.Mul(m.Radius)),
			End:   m.Node.Add(axis.Mul(m.Radius)),
			Stops: stops,
		}

	case ShapeWedge:
		if req.GradientDirection == RootToLeaves {
			return wedgeRadialGradient(m, req)
		}
		mid := (m.InnerRadius + m.OuterRadius) / 2
		return &LinearGradient{
			Start: Polar(m.Center, mid, m.StartAngle),
			End:   Polar(m.Center, mid, m.EndAngle),
			Stops: stops,
		}

	default: // ShapeHull, ShapeEnvelope
		start, end := principalPair(s.Polygon, target)
		return &LinearGradient{Start: start, End: end, Stops: stops}
	}
}

// wedgeRadialGradient keeps the start color constant inside the node's own
// radius and spreads the transition over the rest of the wedge.
func wedgeRadialGradient(m ShapeMeta, req Request) *RadialGradient {
	inner := 0.0
	if m.OuterRadius > 0 {
		inner = clamp01(m.NodeRadius / m.OuterRadius)
	}
	mid := inner + (1-inner)*clamp01(req.GradientMidpoint)
	return &RadialGradient{
		Center:      m.Center,
		StartRadius: 0,
		EndRadius:   m.OuterRadius,
		Stops: []ColorStop{
			{Offset: 0, Color: req.GradientStart},
			{Offset: inner, Color: req.GradientStart},
			{Offset: mid, Color: MidpointLab(req.GradientStart, req.GradientEnd)},
			{Offset: 1, Color: req.GradientEnd},
		},
	}
}

// principalPair picks, among the edge-midpoint pairs of the principal-frame
// bounding box, the directed pair that best matches target.
func principalPair(poly []Point, target Point) (start, end Point) {
	left, right, top, bottom := principalAxes(poly)
	candidates := [][2]Point{
		{left, right},
		{right, left},
		{top, bottom},
		{bottom, top},
	}

	best := -2.0
	for _, c := range candidates {
		score := c[1].Sub(c[0]).Normalize().Dot(target)
		if score > best {
			best = score
			start, end = c[0], c[1]
		}
	}
	return start, end
}

// targetDirection returns the unit direction a gradient should follow.
// The branch direction is parent to node, falling back to layout center to
// node and finally to +X. LeafToLeaf uses its perpendicular, flipped to
// point from the first leaf towards the last.
func (m ShapeMeta) targetDirection(dir GradientDirection) Point {
	var branch Point
	if m.HasParent {
		branch = m.Node.Sub(m.Parent).Normalize()
	}
	if branch == (Point{}) {
		branch = m.Node.Sub(m.Center).Normalize()
	}
	if branch == (Point{}) {
		branch = Pt(1, 0)
	}
	if m.Kind == ShapeRectangle {
		// Rectangular branches are elbows: only the sign along the
		// layout direction is meaningful.
		if branch.Dot(m.AxisU) < 0 {
			branch = m.AxisU.Mul(-1)
		} else {
			branch = m.AxisU
		}
	}

	if dir == RootToLeaves {
		return branch
	}
	across := branch.Perp()
	if across.Dot(m.LastLeaf.Sub(m.FirstLeaf)) < 0 {
		across = across.Mul(-1)
	}
	return across
}

package highlight

import (
	"math"
	"slices"
	"sort"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a paint descriptor aligned to a highlight shape. It is
// implemented by *LinearGradient and *RadialGradient.
type Gradient interface {
	// ColorAt returns the paint color at a world-space point.
	ColorAt(x, y float64) RGBA
	// ColorStops returns the ordered color stops.
	ColorStops() []ColorStop
	isGradient()
}

// GradientStops returns the three stops used for highlight fills: start at
// 0, the CIE L*a*b* midpoint of start and end at midpoint, and end at 1.
func GradientStops(start, end RGBA, midpoint float64) []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: start},
		{Offset: clamp01(midpoint), Color: MidpointLab(start, end)},
		{Offset: 1, Color: end},
	}
}

// LinearGradient is a color transition along the segment Start-End.
// Colors are padded beyond both ends.
type LinearGradient struct {
	Start Point
	End   Point
	Stops []ColorStop
}

func (*LinearGradient) isGradient() {}

// ColorStops implements Gradient.
func (g *LinearGradient) ColorStops() []ColorStop { return g.Stops }

// ColorAt implements Gradient.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lengthSq := d.LengthSquared()
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Pt(x, y).Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(g.Stops, t)
}

// RadialGradient is a concentric color transition around Center, from
// StartRadius (t=0) to EndRadius (t=1). Colors are padded outside.
type RadialGradient struct {
	Center      Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop
}

func (*RadialGradient) isGradient() {}

// ColorStops implements Gradient.
func (g *RadialGradient) ColorStops() []ColorStop { return g.Stops }

// ColorAt implements Gradient.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}
	distance := Pt(x, y).Distance(g.Center)
	return colorAtOffset(g.Stops, (distance-g.StartRadius)/radiusDiff)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// sortStops returns the stops ordered by offset without modifying the input.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return sorted
}

// firstStopColor returns the lowest-offset stop color or Transparent.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// colorAtOffset returns the color at t, interpolating neighboring stops in
// CIE L*a*b* space. t is clamped to [0, 1].
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	if math.IsNaN(t) {
		t = 0
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == t {
		return stop2.Color
	}
	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.LerpLab(stop2.Color, localT)
}

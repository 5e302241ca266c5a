package highlight

import (
	"fmt"
	"math"
)

// FillMode selects how the highlight boundary is filled.
type FillMode uint8

const (
	// FillSolid fills with Request.FillColor.
	FillSolid FillMode = iota
	// FillGradient fills with a gradient from GradientStart to GradientEnd.
	FillGradient
)

// GradientDirection selects the axis of a gradient fill.
type GradientDirection uint8

const (
	// RootToLeaves runs the gradient from the clade root out to its leaves.
	RootToLeaves GradientDirection = iota
	// LeafToLeaf runs the gradient across the clade, from the first leaf
	// to the last one.
	LeafToLeaf
)

// Margins are four independent margins expressed in the node's local frame.
// In rectangular layouts Left/Right lie along the branch direction and
// Top/Bottom across it; in circular layouts Left/Right are radial (inner,
// outer) and Top/Bottom angular (start, end).
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns Margins with the same value on every side.
func Uniform(m float64) Margins {
	return Margins{Left: m, Top: m, Right: m, Bottom: m}
}

// Request holds the per-node parameters of one highlight computation.
type Request struct {
	// Margins apply to rectangular and circular layouts.
	Margins Margins

	// Margin and Balance apply to radial layouts. Balance in [0, 1]
	// weights the margin towards vertices near (0) or far from (1) the
	// node; 0.5 is uniform.
	Margin  float64
	Balance float64

	// ConvexHull selects the inflated convex hull in radial layouts;
	// otherwise the raw leaf envelope is drawn without margin.
	ConvexHull bool

	Fill              FillMode
	FillColor         RGBA
	GradientStart     RGBA
	GradientEnd       RGBA
	GradientMidpoint  float64
	GradientDirection GradientDirection

	Stroke StrokeStyle
}

// DefaultRequest returns a request with a translucent solid fill, no
// stroke, uniform 5-unit margins and an inflated convex hull.
func DefaultRequest() Request {
	return Request{
		Margins:          Uniform(5),
		Margin:           5,
		Balance:          0.5,
		ConvexHull:       true,
		Fill:             FillSolid,
		FillColor:        RGBA2(0, 0.635, 0.909, 0.35),
		GradientStart:    RGBA2(0, 0.635, 0.909, 0.35),
		GradientEnd:      RGBA2(0.886, 0.2, 0.4, 0.35),
		GradientMidpoint: 0.5,
		Stroke:           StrokeStyle{Join: LineJoinRound, MiterLimit: 4},
	}
}

// Validate reports whether the request can be computed. Every failure
// wraps ErrInvalidConfig.
func (r Request) Validate() error {
	margins := []struct {
		name  string
		value float64
	}{
		{"left margin", r.Margins.Left},
		{"top margin", r.Margins.Top},
		{"right margin", r.Margins.Right},
		{"bottom margin", r.Margins.Bottom},
		{"margin", r.Margin},
		{"stroke width", r.Stroke.Width},
	}
	for _, m := range margins {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative finite number, got %v", ErrInvalidConfig, m.name, m.value)
		}
	}

	if !inUnitRange(r.Balance) {
		return fmt.Errorf("%w: balance must be in [0, 1], got %v", ErrInvalidConfig, r.Balance)
	}
	if r.Fill == FillGradient && !inUnitRange(r.GradientMidpoint) {
		return fmt.Errorf("%w: gradient midpoint must be in [0, 1], got %v", ErrInvalidConfig, r.GradientMidpoint)
	}
	if r.Fill > FillGradient {
		return fmt.Errorf("%w: unknown fill mode %d", ErrInvalidConfig, r.Fill)
	}
	if r.GradientDirection > LeafToLeaf {
		return fmt.Errorf("%w: unknown gradient direction %d", ErrInvalidConfig, r.GradientDirection)
	}
	if r.Stroke.Dash != nil {
		for _, l := range r.Stroke.Dash.Array {
			if math.IsNaN(l) || l < 0 {
				return fmt.Errorf("%w: dash lengths must be non-negative, got %v", ErrInvalidConfig, l)
			}
		}
	}
	return nil
}

// Visible reports whether the request would draw anything: a fill with
// some opacity or a stroke with positive width and opacity.
func (r Request) Visible() bool {
	return r.fillVisible() || r.Stroke.Visible()
}

func (r Request) fillVisible() bool {
	if r.Fill == FillGradient {
		return !r.GradientStart.IsTransparent() || !r.GradientEnd.IsTransparent()
	}
	return !r.FillColor.IsTransparent()
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

package highlight

import "math"

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeStyle defines how a highlight boundary is outlined.
type StrokeStyle struct {
	// Color of the outline. A transparent color disables the stroke.
	Color RGBA

	// Width is the line width in world units. Zero disables the stroke.
	Width float64

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (common default, matches SVG)
	MiterLimit float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStroke returns a solid 1-unit black outline with miter joins.
func DefaultStroke() StrokeStyle {
	return StrokeStyle{
		Color:      Black,
		Width:      1.0,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Visible reports whether the stroke would draw anything.
func (s StrokeStyle) Visible() bool {
	return s.Width > 0 && !s.Color.IsTransparent()
}

// defaultMiterLimit applies when MiterLimit is not positive.
const defaultMiterLimit = 4.0

// Reach returns how far the outline can extend beyond the path: half the
// width, or up to MiterLimit times that for miter joins.
func (s StrokeStyle) Reach() float64 {
	if !s.Visible() {
		return 0
	}
	hw := s.Width / 2
	if s.Join != LineJoinMiter {
		return hw
	}
	limit := s.MiterLimit
	if limit <= 0 {
		limit = defaultMiterLimit
	}
	return hw * math.Max(limit, 1)
}

// WithDashPattern returns a copy of the style with a dash pattern created
// from the given lengths.
//
// Example:
//
//	style.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s StrokeStyle) WithDashPattern(lengths ...float64) StrokeStyle {
	s.Dash = NewDash(lengths...)
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone creates a deep copy of the style.
func (s StrokeStyle) Clone() StrokeStyle {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

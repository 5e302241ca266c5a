package highlight

import "fmt"

// LayoutKind identifies which coordinate system produced a CoordinateMap.
type LayoutKind uint8

const (
	// LayoutRectangular is an axis-aligned (cladogram/phylogram) layout.
	LayoutRectangular LayoutKind = iota
	// LayoutRadial is an unrooted radial layout whose clades form wedges.
	LayoutRadial
	// LayoutCircular is a polar layout around a fixed center.
	LayoutCircular
)

// layoutKindNames maps LayoutKind values to their string representation.
var layoutKindNames = [...]string{
	LayoutRectangular: "Rectangular",
	LayoutRadial:      "Radial",
	LayoutCircular:    "Circular",
}

// String returns the name of the layout kind.
func (k LayoutKind) String() string {
	if int(k) < len(layoutKindNames) {
		return layoutKindNames[k]
	}
	return fmt.Sprintf("LayoutKind(%d)", k)
}

// Layout carries the per-redraw data of the active layout engine. It is
// implemented by RectangularLayout, RadialLayout and CircularLayout only.
type Layout interface {
	Kind() LayoutKind
	isLayout()
}

// RectangularLayout describes an axis-aligned tree. Direction is the
// branch direction (from root towards leaves) in world space; its
// perpendicular spans the leaf axis.
type RectangularLayout struct {
	Direction Point
}

// Kind implements Layout.
func (RectangularLayout) Kind() LayoutKind { return LayoutRectangular }
func (RectangularLayout) isLayout()        {}

// RadialLayout describes an unrooted radial tree around Center.
type RadialLayout struct {
	Center Point
}

// Kind implements Layout.
func (RadialLayout) Kind() LayoutKind { return LayoutRadial }
func (RadialLayout) isLayout()        {}

// CircularLayout describes a polar tree whose root sits at Center.
type CircularLayout struct {
	Center Point
}

// Kind implements Layout.
func (CircularLayout) Kind() LayoutKind { return LayoutCircular }
func (CircularLayout) isLayout()        {}

// CoordinateMap maps node identities to world-space points for one redraw.
// It is owned by the caller and never mutated by this package.
type CoordinateMap struct {
	Layout Layout
	Points map[NodeID]Point
}

// Point returns the coordinate of a node.
func (m CoordinateMap) Point(id NodeID) (Point, bool) {
	p, ok := m.Points[id]
	return p, ok
}

// Reserved dictionary keys used by the tree application's layout modules to
// mark which coordinate system is active. The value stored under the key is
// the branch direction (rectangular) or the layout center (radial, circular).
const (
	SentinelRectangular = "68e25ec6-5911-4741-8547-317597e1b792"
	SentinelRadial      = "d0ab64ba-3bcd-443f-9150-48f6e85e97f3"
	SentinelCircular    = "92aac276-3af7-4506-a263-7220e0df5797"
)

// CoordinatesFromSentinel converts a sentinel-keyed coordinate dictionary
// into a CoordinateMap. Exactly one sentinel key must be present; every
// other key is treated as a node identity.
func CoordinatesFromSentinel(raw map[string]Point) (CoordinateMap, error) {
	var layouts []Layout
	if p, ok := raw[SentinelRectangular]; ok {
		layouts = append(layouts, RectangularLayout{Direction: p})
	}
	if p, ok := raw[SentinelRadial]; ok {
		layouts = append(layouts, RadialLayout{Center: p})
	}
	if p, ok := raw[SentinelCircular]; ok {
		layouts = append(layouts, CircularLayout{Center: p})
	}

	switch len(layouts) {
	case 0:
		return CoordinateMap{}, ErrUnknownLayout
	case 1:
	default:
		return CoordinateMap{}, fmt.Errorf("%w: %d sentinels", ErrAmbiguousLayout, len(layouts))
	}

	points := make(map[NodeID]Point, len(raw)-1)
	for k, p := range raw {
		switch k {
		case SentinelRectangular, SentinelRadial, SentinelCircular:
			continue
		}
		points[NodeID(k)] = p
	}
	return CoordinateMap{Layout: layouts[0], Points: points}, nil
}

// Package highlight computes clade highlights for tree drawings.
//
// # Overview
//
// For a chosen node of a tree, highlight builds a closed boundary covering
// the node and all of its descendants, inflated by configurable margins, in
// whichever coordinate system the tree was laid out with, plus an
// automatically oriented gradient to fill it.
//
// # Quick Start
//
//	h := highlight.New()
//	coords := highlight.CoordinateMap{
//	    Layout: highlight.RadialLayout{Center: highlight.Pt(400, 300)},
//	    Points: positions, // map[highlight.NodeID]highlight.Point
//	}
//	req := highlight.DefaultRequest()
//	box, err := h.Draw(sink, node, coords, req)
//
// The sink receives at most one fill and one stroke call per node, tagged
// with the node identity; package recording provides a Sink that records
// them for hit-testing and playback to raster backends.
//
// # Layouts
//
//   - RectangularLayout: the clade's extents in the local frame of the
//     branch direction, inflated by four independent margins.
//   - RadialLayout: a circle around leaves; for internal nodes either the
//     convex hull inflated with mitered corners, or the raw envelope
//     through the node and its leaves.
//   - CircularLayout: an annular wedge between the clade's smallest and
//     largest radius and the angles of its first and last leaf.
//
// # Coordinate System
//
// Angles are in radians, measured from +X towards +Y. Winding terms such as
// "counter-clockwise" refer to a y-up frame; on a y-down canvas they appear
// mirrored.
//
// # Concurrency
//
// A Highlighter only holds configuration and may be shared. Each Draw call
// is synchronous and keeps all intermediate values local. The convex hull
// costs O(L log L) and the offset O(L) in the number L of clade points.
package highlight

package highlight

// Sink receives the drawing calls produced by a Highlighter. Every call is
// tagged with the identity of the node it highlights so that the sink can
// hit-test highlights later.
//
// Paths passed to a Sink are owned by the sink after the call.
type Sink interface {
	// FillSolid fills path with a single color.
	FillSolid(id NodeID, path *Path, color RGBA)
	// FillGradient fills path with a gradient.
	FillGradient(id NodeID, path *Path, gradient Gradient)
	// Stroke outlines path.
	Stroke(id NodeID, path *Path, style StrokeStyle)
}

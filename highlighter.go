package highlight

import (
	"log/slog"
)

// Highlighter computes clade highlights and emits them to a Sink.
//
// A Highlighter holds only configuration; every computation is local to
// one call, so a single Highlighter may be shared between goroutines.
type Highlighter struct {
	opts options
}

// New creates a Highlighter.
func New(opts ...Option) *Highlighter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Highlighter{opts: o}
}

func (h *Highlighter) logger() *slog.Logger {
	if h.opts.logger != nil {
		return h.opts.logger
	}
	return Logger()
}

// Draw highlights node: it validates req, builds the boundary for the
// active layout and issues at most one fill call and one stroke call on
// sink. The returned box covers everything drawn, including the stroke's
// reach (see StrokeStyle.Reach), and is empty when nothing was drawn.
//
// Requests that would draw nothing (transparent fill and invisible stroke)
// are skipped before any geometry runs.
func (h *Highlighter) Draw(sink Sink, node Node, coords CoordinateMap, req Request) (BoundingBox, error) {
	if err := req.Validate(); err != nil {
		h.logger().Warn("highlight: request rejected", slog.String("error", err.Error()))
		return BoundingBox{}, err
	}
	if isNilNode(node) {
		return BoundingBox{}, ErrNilNode
	}
	if !req.Visible() {
		h.logger().Debug("highlight: invisible request skipped", slog.String("node", string(node.ID())))
		return BoundingBox{}, nil
	}

	shape, err := h.BuildShape(node, coords, req)
	if err != nil {
		return BoundingBox{}, err
	}

	id := node.ID()
	if req.fillVisible() {
		if req.Fill == FillGradient {
			sink.FillGradient(id, shape.Boundary.Clone(), ResolveGradient(shape, req))
		} else {
			sink.FillSolid(id, shape.Boundary.Clone(), req.FillColor)
		}
	}

	bounds := shape.Bounds
	if req.Stroke.Visible() {
		sink.Stroke(id, shape.Boundary.Clone(), req.Stroke.Clone())
		bounds = bounds.Inflate(req.Stroke.Reach())
	}
	return bounds, nil
}

// DrawAll walks the clade rooted at root in pre-order and highlights every
// node for which requestFor returns true. It returns the union of all
// drawn boxes. The first error aborts the pass.
func (h *Highlighter) DrawAll(sink Sink, root Node, coords CoordinateMap, requestFor func(Node) (Request, bool)) (BoundingBox, error) {
	if isNilNode(root) {
		return BoundingBox{}, ErrNilNode
	}

	var total BoundingBox
	nodes := append([]Node{root}, root.Descendants()...)
	for _, n := range nodes {
		req, ok := requestFor(n)
		if !ok {
			continue
		}
		b, err := h.Draw(sink, n, coords, req)
		if err != nil {
			return total, err
		}
		total = total.Union(b)
	}
	return total, nil
}

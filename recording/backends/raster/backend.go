// Package raster provides a software raster backend for recording playback.
//
// This backend renders recorded highlight commands to an *image.RGBA using
// the golang.org/x/image/vector rasterizer. It supports all paint types
// (solid colors, linear and radial gradients) and dashed strokes.
//
// # Registration
//
// The backend is automatically registered when this package is imported:
//
//	import _ "github.com/treeviewer/highlight/recording/backends/raster"
//
// Then create it via the registry:
//
//	backend, err := recording.NewBackend("raster")
//
// # Usage
//
//	rec := recorder.Finish()
//	backend := raster.NewBackend()
//	view := recording.Fit(rec.Bounds(), 800, 600, 16)
//	if err := rec.Playback(backend, 800, 600, view); err != nil {
//	    return err
//	}
//	backend.SavePNG("output.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/treeviewer/highlight"
	"github.com/treeviewer/highlight/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// ErrInvalidSize is returned by Begin for non-positive dimensions.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// flattenTolerance is the maximum curve deviation in device pixels.
const flattenTolerance = 0.25

// roundJoinSegments is the number of sides used to approximate round joins.
const roundJoinSegments = 16

// Backend is a raster backend that renders to an *image.RGBA.
// It implements the recording.Backend, recording.WriterBackend,
// recording.FileBackend and recording.ImageBackend interfaces.
type Backend struct {
	dst        *image.RGBA
	rast       *vector.Rasterizer
	width      int
	height     int
	view       recording.Matrix
	inverse    recording.Matrix
	background highlight.RGBA
}

// Ensure Backend implements the required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color the canvas is cleared to in Begin.
// The default is fully transparent.
func WithBackground(c highlight.RGBA) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// NewBackend creates a new raster backend.
// The backend is not ready for use until Begin is called.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		view:    recording.Identity(),
		inverse: recording.Identity(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.width = width
	b.height = height
	b.dst = image.NewRGBA(image.Rect(0, 0, width, height))
	b.rast = vector.NewRasterizer(width, height)
	b.SetTransform(recording.Identity())

	if !b.background.IsTransparent() {
		draw.Draw(b.dst, b.dst.Bounds(), image.NewUniform(b.background.Color()), image.Point{}, draw.Src)
	}
	return nil
}

// End finalizes the rendering.
// For raster backend, this is a no-op as rendering is immediate.
func (b *Backend) End() error {
	return nil
}

// SetTransform sets the world-to-device transformation matrix.
func (b *Backend) SetTransform(m recording.Matrix) {
	b.view = m
	b.inverse = m.Invert()
}

// FillPath fills the boundary with paint using the non-zero winding rule.
func (b *Backend) FillPath(_ highlight.NodeID, path *highlight.Path, paint recording.Paint) {
	if b.dst == nil || path == nil || path.IsEmpty() || paint == nil {
		return
	}

	b.rast.Reset(b.width, b.height)
	for _, ring := range b.deviceRings(path) {
		addPolygon(b.rast, ring, false)
	}
	b.rast.Draw(b.dst, b.dst.Bounds(), b.source(paint), image.Point{})
}

// StrokePath outlines every subpath of the boundary. Subpaths are treated
// as closed rings, which is what highlight shapes produce.
func (b *Backend) StrokePath(_ highlight.NodeID, path *highlight.Path, style highlight.StrokeStyle) {
	if b.dst == nil || path == nil || path.IsEmpty() || !style.Visible() {
		return
	}

	scale := b.view.ScaleFactor()
	hw := style.Width * scale / 2
	dash := scaleDash(style.Dash, scale)

	b.rast.Reset(b.width, b.height)
	for _, ring := range b.deviceRings(path) {
		ring = dropDuplicates(ring)
		if len(ring) < 2 {
			continue
		}
		closed := append(append([]highlight.Point(nil), ring...), ring[0])
		if dash == nil {
			strokePolyline(b.rast, closed, hw, style, true)
			continue
		}
		for _, piece := range dash.Apply(closed) {
			strokePolyline(b.rast, piece, hw, style, false)
		}
	}
	src := image.NewUniform(style.Color.Color())
	b.rast.Draw(b.dst, b.dst.Bounds(), src, image.Point{})
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.dst == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.dst)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	if b.dst == nil {
		return ErrNotStarted
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, b.dst); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// SavePNG is a convenience method to save the image as PNG.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// deviceRings flattens path in world space with a tolerance matching the
// device resolution and maps the result to device space.
func (b *Backend) deviceRings(path *highlight.Path) [][]highlight.Point {
	tol := flattenTolerance
	if s := b.view.ScaleFactor(); s > 0 {
		tol /= s
	}
	rings := path.Flatten(tol)
	for _, ring := range rings {
		for i, p := range ring {
			ring[i] = b.view.TransformPoint(p)
		}
	}
	return rings
}

// source returns the image the rasterizer samples for paint.
func (b *Backend) source(paint recording.Paint) image.Image {
	if solid, ok := paint.(recording.SolidPaint); ok {
		return image.NewUniform(solid.Color.Color())
	}
	return &paintImage{paint: paint, inverse: b.inverse, bounds: b.dst.Bounds()}
}

// paintImage samples a world-space paint at device pixel centers.
type paintImage struct {
	paint   recording.Paint
	inverse recording.Matrix
	bounds  image.Rectangle
}

func (p *paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p *paintImage) Bounds() image.Rectangle { return p.bounds }

func (p *paintImage) At(x, y int) color.Color {
	w := p.inverse.TransformPoint(highlight.Pt(float64(x)+0.5, float64(y)+0.5))
	return p.paint.ColorAt(w.X, w.Y).Color()
}

// addPolygon feeds a closed polygon to the rasterizer. With positive set,
// the polygon is reoriented first so that overlapping stroke pieces add up
// instead of cancelling out.
func addPolygon(r *vector.Rasterizer, poly []highlight.Point, positive bool) {
	if len(poly) < 3 {
		return
	}
	if positive && highlight.SignedArea(poly) < 0 {
		rev := make([]highlight.Point, len(poly))
		for i, p := range poly {
			rev[len(poly)-1-i] = p
		}
		poly = rev
	}
	r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}

// strokePolyline adds the outline of a polyline of half-width hw as a set
// of positively oriented quads and join polygons. Butt caps are used for
// open pieces; closed ones also join their last segment to the first.
func strokePolyline(r *vector.Rasterizer, pts []highlight.Point, hw float64, style highlight.StrokeStyle, closed bool) {
	pts = dropDuplicates(pts)
	if len(pts) < 2 || hw <= 0 {
		return
	}

	for i := 0; i+1 < len(pts); i++ {
		a, c := pts[i], pts[i+1]
		n := c.Sub(a).Normalize().Perp().Mul(hw)
		addPolygon(r, []highlight.Point{a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)}, true)
	}

	for i := 1; i+1 < len(pts); i++ {
		addJoin(r, pts[i-1], pts[i], pts[i+1], hw, style)
	}
	if closed && len(pts) > 2 {
		addJoin(r, pts[len(pts)-2], pts[0], pts[1], hw, style)
	}
}

// addJoin fills the outer gap between the segments prev-v and v-next.
func addJoin(r *vector.Rasterizer, prev, v, next highlight.Point, hw float64, style highlight.StrokeStyle) {
	d1 := v.Sub(prev).Normalize()
	d2 := next.Sub(v).Normalize()
	cross := d1.Cross(d2)
	if math.Abs(cross) < 1e-12 && d1.Dot(d2) > 0 {
		return
	}

	if style.Join == highlight.LineJoinRound {
		circle := make([]highlight.Point, roundJoinSegments)
		for i := range circle {
			circle[i] = highlight.Polar(v, hw, 2*math.Pi*float64(i)/roundJoinSegments)
		}
		addPolygon(r, circle, true)
		return
	}

	// The outer side of the turn is opposite to the turning direction.
	side := -1.0
	if cross < 0 {
		side = 1
	}
	n1 := d1.Perp().Mul(hw * side)
	n2 := d2.Perp().Mul(hw * side)
	addPolygon(r, []highlight.Point{v, v.Add(n1), v.Add(n2)}, true)

	if style.Join != highlight.LineJoinMiter {
		return
	}
	bisector := n1.Add(n2).Normalize()
	cosHalf := n1.Normalize().Dot(bisector)
	if cosHalf <= 0 {
		return
	}
	limit := style.MiterLimit
	if limit <= 0 {
		limit = 4
	}
	if 1/cosHalf > limit {
		return
	}
	miter := v.Add(bisector.Mul(hw / cosHalf))
	addPolygon(r, []highlight.Point{v, v.Add(n1), miter, v.Add(n2)}, true)
}

// dropDuplicates removes consecutive coincident points.
func dropDuplicates(pts []highlight.Point) []highlight.Point {
	out := make([]highlight.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Approx(p, 1e-9) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// scaleDash maps a world-space dash pattern to device space.
func scaleDash(d *highlight.Dash, scale float64) *highlight.Dash {
	if !d.IsDashed() {
		return nil
	}
	out := d.Clone()
	for i := range out.Array {
		out.Array[i] *= scale
	}
	out.Offset *= scale
	return out
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

package recording

import (
	"image"
	"io"

	"github.com/treeviewer/highlight"
)

// Backend is the interface that all playback backends must implement.
// Backends receive tagged drawing calls and translate them to their output
// format (raster pixels, vector documents, hit maps, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Apply the transform set with SetTransform to every path
//  3. Scale stroke widths by the transform's ScaleFactor
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// SetTransform sets the world-to-device transformation matrix.
	SetTransform(m Matrix)

	// FillPath fills the given boundary with paint using the non-zero rule.
	FillPath(id highlight.NodeID, path *highlight.Path, paint Paint)

	// StrokePath outlines the given boundary.
	StrokePath(id highlight.NodeID, path *highlight.Path, style highlight.StrokeStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
// WriteTo should only be called after End().
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
// SaveToFile should only be called after End().
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered image.
type ImageBackend interface {
	Backend
	Image() *image.RGBA
}

package recording

import (
	"github.com/treeviewer/highlight"
)

// Recorder captures highlight drawing calls as commands. It implements
// highlight.Sink. Use Finish to obtain an immutable Recording that can be
// hit-tested and replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder()
//	_, err := highlight.New().Draw(rec, node, coords, req)
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

var _ highlight.Sink = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// FillSolid implements highlight.Sink.
func (r *Recorder) FillSolid(id highlight.NodeID, path *highlight.Path, color highlight.RGBA) {
	r.commands = append(r.commands, FillSolidCommand{
		ID:    id,
		Path:  r.resources.AddPath(path),
		Color: color,
	})
}

// FillGradient implements highlight.Sink.
func (r *Recorder) FillGradient(id highlight.NodeID, path *highlight.Path, gradient highlight.Gradient) {
	r.commands = append(r.commands, FillGradientCommand{
		ID:    id,
		Path:  r.resources.AddPath(path),
		Paint: r.resources.AddPaint(gradient),
	})
}

// Stroke implements highlight.Sink.
func (r *Recorder) Stroke(id highlight.NodeID, path *highlight.Path, style highlight.StrokeStyle) {
	r.commands = append(r.commands, StrokeCommand{
		ID:    id,
		Path:  r.resources.AddPath(path),
		Style: style.Clone(),
	})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards every recorded command, keeping allocated capacity.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// Finish returns an immutable Recording containing all recorded commands
// and leaves the Recorder empty, ready for the next redraw.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, cap(rec.commands))
	r.resources = NewResourcePool()
	return rec
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Bounds returns the world-space box covering every recorded command,
// including half of each stroke width.
func (r *Recording) Bounds() highlight.BoundingBox {
	var box highlight.BoundingBox
	for _, cmd := range r.commands {
		path := r.pathOf(cmd)
		if path == nil {
			continue
		}
		b := path.Bounds(highlight.BoundingBox{})
		if s, ok := cmd.(StrokeCommand); ok {
			b = b.Inflate(s.Style.Width / 2)
		}
		box = box.Union(b)
	}
	return box
}

// HitTest returns the identities of the nodes whose highlights cover pt,
// topmost (last drawn) first and without duplicates. Fills match points
// inside their boundary; strokes match points within half their width of
// the outline.
func (r *Recording) HitTest(pt highlight.Point) []highlight.NodeID {
	var hits []highlight.NodeID
	seen := make(map[highlight.NodeID]bool)

	for i := len(r.commands) - 1; i >= 0; i-- {
		cmd := r.commands[i]
		if seen[cmd.Node()] {
			continue
		}
		path := r.pathOf(cmd)
		if path == nil {
			continue
		}

		var hit bool
		switch c := cmd.(type) {
		case StrokeCommand:
			hit = path.DistanceTo(pt) <= c.Style.Width/2
		default:
			hit = path.Contains(pt)
		}
		if hit {
			seen[cmd.Node()] = true
			hits = append(hits, cmd.Node())
		}
	}
	return hits
}

// Playback replays the recording to the given backend through the view
// transform.
func (r *Recording) Playback(backend Backend, width, height int, view Matrix) error {
	if err := backend.Begin(width, height); err != nil {
		return err
	}
	backend.SetTransform(view)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillSolidCommand:
			backend.FillPath(c.ID, r.resources.GetPath(c.Path), SolidPaint{Color: c.Color})
		case FillGradientCommand:
			backend.FillPath(c.ID, r.resources.GetPath(c.Path), r.resources.GetPaint(c.Paint))
		case StrokeCommand:
			backend.StrokePath(c.ID, r.resources.GetPath(c.Path), c.Style)
		}
	}

	highlight.Logger().Debug("recording: playback finished", "commands", len(r.commands))
	return backend.End()
}

func (r *Recording) pathOf(cmd Command) *highlight.Path {
	switch c := cmd.(type) {
	case FillSolidCommand:
		return r.resources.GetPath(c.Path)
	case FillGradientCommand:
		return r.resources.GetPath(c.Path)
	case StrokeCommand:
		return r.resources.GetPath(c.Path)
	}
	return nil
}

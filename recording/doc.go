// Package recording captures highlight drawing calls as typed commands.
//
// A Recorder implements highlight.Sink. Every command keeps the identity
// of the node it was drawn for, so a finished Recording can answer
// hit-tests ("which highlights lie under this point?") and be replayed to
// any registered Backend.
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a binary serialization format.
//
// # Architecture
//
// Commands capture the three calls a Sink receives:
//   - FillSolidCommand: fill a boundary with one color
//   - FillGradientCommand: fill a boundary with a gradient
//   - StrokeCommand: outline a boundary
//
// Boundaries and paints are stored in a ResourcePool and referenced by
// typed handles (PathRef, PaintRef).
//
// # Example
//
//	rec := recording.NewRecorder()
//	h := highlight.New()
//	box, err := h.Draw(rec, node, coords, req)
//	...
//	r := rec.Finish()
//	hits := r.HitTest(highlight.Pt(120, 80))
//
//	backend, _ := recording.NewBackend("raster")
//	err = r.Playback(backend, 800, 600, recording.Fit(r.Bounds(), 800, 600, 10))
package recording

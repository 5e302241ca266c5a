package recording

import (
	"slices"
	"testing"

	"github.com/treeviewer/highlight"
)

func square(x0, y0, x1, y1 float64) *highlight.Path {
	p := highlight.NewPath()
	p.Polygon([]highlight.Point{
		highlight.Pt(x0, y0), highlight.Pt(x1, y0),
		highlight.Pt(x1, y1), highlight.Pt(x0, y1),
	})
	return p
}

func TestRecorderCapturesCommands(t *testing.T) {
	rec := NewRecorder()
	grad := &highlight.LinearGradient{
		Start: highlight.Pt(0, 0),
		End:   highlight.Pt(1, 0),
		Stops: highlight.GradientStops(highlight.Red, highlight.Blue, 0.5),
	}

	rec.FillSolid("a", unitSquare(), highlight.Red)
	rec.FillGradient("b", unitSquare(), grad)
	rec.Stroke("b", unitSquare(), highlight.DefaultStroke())

	if rec.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rec.Len())
	}

	r := rec.Finish()
	cmds := r.Commands()
	wantTypes := []CommandType{CmdFillSolid, CmdFillGradient, CmdStroke}
	for i, cmd := range cmds {
		if cmd.Type() != wantTypes[i] {
			t.Errorf("command %d type = %v, want %v", i, cmd.Type(), wantTypes[i])
		}
	}

	fg := cmds[1].(FillGradientCommand)
	if r.Resources().GetPaint(fg.Paint) != highlight.Gradient(grad) {
		t.Error("gradient command does not reference the recorded gradient")
	}
	if r.Resources().PathCount() != 3 {
		t.Errorf("PathCount() = %d, want 3", r.Resources().PathCount())
	}
}

func TestRecorderClonesStrokeStyle(t *testing.T) {
	rec := NewRecorder()
	style := highlight.DefaultStroke().WithDashPattern(4, 2)
	rec.Stroke("a", unitSquare(), style)

	style.Dash.Array[0] = 99

	got := rec.Finish().Commands()[0].(StrokeCommand)
	if got.Style.Dash.Array[0] != 4 {
		t.Errorf("recorded dash = %v, want unchanged", got.Style.Dash.Array)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.FillSolid("a", unitSquare(), highlight.Red)
	rec.Reset()

	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
	if rec.Finish().Resources().PathCount() != 0 {
		t.Error("Reset kept pooled paths")
	}
}

func TestRecorderFinishStartsFresh(t *testing.T) {
	rec := NewRecorder()
	rec.FillSolid("a", unitSquare(), highlight.Red)
	first := rec.Finish()

	if rec.Len() != 0 {
		t.Errorf("Len() after Finish = %d, want 0", rec.Len())
	}
	rec.FillSolid("b", unitSquare(), highlight.Blue)
	rec.Reset()

	cmds := first.Commands()
	if len(cmds) != 1 || cmds[0].Node() != "a" {
		t.Errorf("earlier recording changed: %v", cmds)
	}
	if first.Resources().PathCount() != 1 {
		t.Errorf("earlier recording lost its path: %d", first.Resources().PathCount())
	}
}

func TestRecordingBounds(t *testing.T) {
	rec := NewRecorder()
	rec.FillSolid("a", square(0, 0, 10, 10), highlight.Red)
	style := highlight.DefaultStroke()
	style.Width = 4
	rec.Stroke("b", square(20, 20, 30, 30), style)

	box := rec.Finish().Bounds()
	if !box.Min.Approx(highlight.Pt(0, 0), epsilon) {
		t.Errorf("Bounds().Min = %v, want (0, 0)", box.Min)
	}
	if !box.Max.Approx(highlight.Pt(32, 32), epsilon) {
		t.Errorf("Bounds().Max = %v, want (32, 32)", box.Max)
	}
}

func TestRecordingBoundsEmpty(t *testing.T) {
	if !NewRecorder().Finish().Bounds().Empty() {
		t.Error("empty recording should have empty bounds")
	}
}

func TestHitTest(t *testing.T) {
	rec := NewRecorder()
	rec.FillSolid("outer", square(0, 0, 100, 100), highlight.Red)
	rec.FillSolid("inner", square(40, 40, 60, 60), highlight.Blue)
	style := highlight.DefaultStroke()
	style.Width = 2
	rec.Stroke("ring", square(200, 200, 300, 300), style)
	rec.Stroke("inner", square(40, 40, 60, 60), style)
	r := rec.Finish()

	tests := []struct {
		name string
		pt   highlight.Point
		want []highlight.NodeID
	}{
		{"nested topmost first", highlight.Pt(50, 50), []highlight.NodeID{"inner", "outer"}},
		{"outer only", highlight.Pt(10, 10), []highlight.NodeID{"outer"}},
		{"on stroke", highlight.Pt(250, 200.5), []highlight.NodeID{"ring"}},
		{"inside stroked ring", highlight.Pt(250, 250), nil},
		{"miss", highlight.Pt(-5, -5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.HitTest(tt.pt)
			if !slices.Equal(got, tt.want) {
				t.Errorf("HitTest(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder()
	rec.FillSolid("a", unitSquare(), highlight.Green)
	rec.Stroke("a", unitSquare(), highlight.DefaultStroke())
	r := rec.Finish()

	mock := newMockBackend("playback")
	view := Scale(10, 10)
	if err := r.Playback(mock, 40, 30, view); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.width != 40 || mock.height != 30 {
		t.Errorf("size = %dx%d, want 40x30", mock.width, mock.height)
	}
	if mock.transform != view {
		t.Errorf("transform = %+v, want %+v", mock.transform, view)
	}
	if len(mock.calls) != 2 {
		t.Fatalf("got %d draw calls, want 2", len(mock.calls))
	}
	fill := mock.calls[0]
	if fill.kind != "fill" || fill.id != "a" {
		t.Errorf("first call = %+v, want fill of a", fill)
	}
	if sp, ok := fill.paint.(SolidPaint); !ok || sp.Color != highlight.Green {
		t.Errorf("fill paint = %v, want green SolidPaint", fill.paint)
	}
	if mock.calls[1].kind != "stroke" {
		t.Errorf("second call = %+v, want stroke", mock.calls[1])
	}
}

package raster

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/treeviewer/highlight"
	"github.com/treeviewer/highlight/recording"
)

func square(x0, y0, x1, y1 float64) *highlight.Path {
	p := highlight.NewPath()
	p.Polygon([]highlight.Point{
		highlight.Pt(x0, y0), highlight.Pt(x1, y0),
		highlight.Pt(x1, y1), highlight.Pt(x0, y1),
	})
	return p
}

func TestBackendRegistration(t *testing.T) {
	// Verify the backend is registered
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(100, 80); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 {
		t.Errorf("Width = %d, want 100", backend.Width())
	}
	if backend.Height() != 80 {
		t.Errorf("Height = %d, want 80", backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("Image bounds = %v, want 100x80", b)
	}
}

func TestBackendInvalidSize(t *testing.T) {
	err := NewBackend().Begin(0, 10)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Begin(0, 10) error = %v, want ErrInvalidSize", err)
	}
}

func TestBackendNotStarted(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewBackend().WriteTo(&buf); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo before Begin error = %v, want ErrNotStarted", err)
	}
}

func TestBackendFillSolid(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	backend.FillPath("n", square(10, 10, 60, 60), recording.SolidPaint{Color: highlight.Red})

	img := backend.Image()
	if c := img.RGBAAt(35, 35); c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("inside pixel = %v, want opaque red", c)
	}
	if c := img.RGBAAt(80, 80); c.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", c)
	}
}

func TestBackendTransform(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.SetTransform(recording.Translate(50, 50).Multiply(recording.Scale(10, 10)))

	// World square [0,2]^2 maps to device [50,70]^2.
	backend.FillPath("n", square(0, 0, 2, 2), recording.SolidPaint{Color: highlight.Blue})

	img := backend.Image()
	if c := img.RGBAAt(60, 60); c.B != 255 || c.A != 255 {
		t.Errorf("transformed inside pixel = %v, want opaque blue", c)
	}
	if c := img.RGBAAt(10, 10); c.A != 0 {
		t.Errorf("untransformed corner = %v, want transparent", c)
	}
}

func TestBackendFillGradient(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 20); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	grad := &highlight.LinearGradient{
		Start: highlight.Pt(0, 0),
		End:   highlight.Pt(100, 0),
		Stops: highlight.GradientStops(highlight.Black, highlight.White, 0.5),
	}
	backend.FillPath("n", square(0, 0, 100, 20), grad)

	img := backend.Image()
	left := img.RGBAAt(2, 10)
	right := img.RGBAAt(97, 10)
	if left.R >= right.R {
		t.Errorf("gradient not increasing: left %v, right %v", left, right)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("gradient fill not opaque: left %v, right %v", left, right)
	}
}

func TestBackendStroke(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	style := highlight.DefaultStroke()
	style.Width = 4
	backend.StrokePath("n", square(20, 20, 80, 80), style)

	img := backend.Image()
	if c := img.RGBAAt(50, 20); c.A != 255 {
		t.Errorf("pixel on edge = %v, want opaque", c)
	}
	if c := img.RGBAAt(50, 50); c.A != 0 {
		t.Errorf("interior pixel = %v, want untouched", c)
	}
	if c := img.RGBAAt(20, 20); c.A == 0 {
		t.Errorf("corner pixel = %v, want covered by join", c)
	}
}

func TestBackendDashedStroke(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	style := highlight.DefaultStroke().WithDashPattern(10, 10)
	style.Width = 2
	backend.StrokePath("n", square(0, 50, 100, 90), style)

	img := backend.Image()
	// Along the top edge starting at x=0: dash [0,10), gap [10,20).
	if c := img.RGBAAt(5, 50); c.A == 0 {
		t.Errorf("dash pixel = %v, want covered", c)
	}
	if c := img.RGBAAt(15, 50); c.A != 0 {
		t.Errorf("gap pixel = %v, want transparent", c)
	}
}

func TestBackendInvisibleStroke(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(50, 50); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	style := highlight.DefaultStroke()
	style.Color = highlight.Transparent
	backend.StrokePath("n", square(10, 10, 40, 40), style)

	if c := backend.Image().RGBAAt(10, 25); c.A != 0 {
		t.Errorf("transparent stroke drew %v", c)
	}
}

func TestBackendBackground(t *testing.T) {
	backend := NewBackend(WithBackground(highlight.White))
	if err := backend.Begin(10, 10); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if c := backend.Image().RGBAAt(5, 5); c.R != 255 || c.A != 255 {
		t.Errorf("background = %v, want white", c)
	}
}

func TestBackendWriteTo(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(20, 20); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.FillPath("n", square(2, 2, 18, 18), recording.SolidPaint{Color: highlight.Green})
	_ = backend.End()

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestBackendSaveToFile(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(10, 10); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := backend.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}

func TestPlaybackFromRecording(t *testing.T) {
	rec := recording.NewRecorder()
	rec.FillSolid("a", square(0, 0, 10, 10), highlight.Red)
	style := highlight.DefaultStroke()
	rec.Stroke("a", square(0, 0, 10, 10), style)
	r := rec.Finish()

	backend := NewBackend()
	view := recording.Fit(r.Bounds(), 64, 64, 4)
	if err := r.Playback(backend, 64, 64, view); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if c := backend.Image().RGBAAt(32, 32); c.R != 255 || c.A != 255 {
		t.Errorf("center pixel = %v, want red fill", c)
	}
}

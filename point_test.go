package highlight

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(3, -4)

	if got := a.Add(b); got != Pt(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Pt(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(2); got != Pt(1.5, -2) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := b.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestPointPerpendiculars(t *testing.T) {
	x := Pt(1, 0)
	if got := x.Perp(); got != Pt(0, 1) {
		t.Errorf("Perp = %v, want (0, 1)", got)
	}
	if got := x.PerpCW(); got != Pt(0, -1) {
		t.Errorf("PerpCW = %v, want (0, -1)", got)
	}
}

func TestPointNormalize(t *testing.T) {
	if got := Pt(3, 4).Normalize(); !got.Approx(Pt(0.6, 0.8), epsilon) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
}

func TestPointRotateAndAngle(t *testing.T) {
	p := Pt(2, 0).Rotate(math.Pi / 2)
	if !p.Approx(Pt(0, 2), epsilon) {
		t.Errorf("Rotate = %v, want (0, 2)", p)
	}
	if got := Pt(-1, 0).Angle(); !almostEqual(got, math.Pi) {
		t.Errorf("Angle = %v, want pi", got)
	}
	if got := Polar(Pt(1, 1), 2, math.Pi/2); !got.Approx(Pt(1, 3), epsilon) {
		t.Errorf("Polar = %v, want (1, 3)", got)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(1)).IsFinite() {
		t.Error("non-finite point reported finite")
	}
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name   string
		p1, d1 Point
		p2, d2 Point
		want   Point
		ok     bool
	}{
		{"crossing", Pt(0, 0), Pt(1, 0), Pt(2, -1), Pt(0, 1), Pt(2, 0), true},
		{"diagonal", Pt(0, 0), Pt(1, 1), Pt(0, 2), Pt(1, -1), Pt(1, 1), true},
		{"parallel", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(2, 0), Point{}, false},
		{"antiparallel", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(-1, 0), Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineIntersection(tt.p1, tt.d1, tt.p2, tt.d2, 1e-9)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Approx(tt.want, epsilon) {
				t.Errorf("intersection = %v, want %v", got, tt.want)
			}
		})
	}
}

package highlight

import (
	"math"
	"testing"
)

// lineAngle compares orientations, which are defined modulo pi.
func lineAngle(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), math.Pi)
	return math.Min(d, math.Pi-d)
}

func TestPrincipalAngle(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float64
	}{
		{"horizontal", []Point{Pt(0, 0), Pt(4, 0.1), Pt(8, -0.1), Pt(12, 0)}, 0},
		{"vertical", []Point{Pt(0, 0), Pt(0.1, 5), Pt(-0.1, 10)}, math.Pi / 2},
		{"diagonal", []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3.1), Pt(4, 3.9)}, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := principalAngle(tt.points)
			if lineAngle(got, tt.want) > 0.05 {
				t.Errorf("principalAngle = %v, want %v (mod pi)", got, tt.want)
			}
		})
	}
}

func TestPrincipalAngleDegenerate(t *testing.T) {
	if got := principalAngle(nil); got != 0 {
		t.Errorf("principalAngle(nil) = %v, want 0", got)
	}
	if got := principalAngle([]Point{Pt(3, 3)}); got != 0 {
		t.Errorf("principalAngle(single) = %v, want 0", got)
	}
}

func TestPrincipalAxes(t *testing.T) {
	// A long thin rectangle rotated by 30 degrees.
	angle := deg(30)
	var pts []Point
	for _, p := range []Point{Pt(-10, -1), Pt(10, -1), Pt(10, 1), Pt(-10, 1)} {
		pts = append(pts, p.Rotate(angle))
	}

	left, right, top, bottom := principalAxes(pts)
	if d := left.Distance(right); math.Abs(d-20) > 1e-6 {
		t.Errorf("long axis length = %v, want 20", d)
	}
	if d := top.Distance(bottom); math.Abs(d-2) > 1e-6 {
		t.Errorf("short axis length = %v, want 2", d)
	}
	if mid := left.Lerp(right, 0.5); !mid.Approx(Point{}, 1e-6) {
		t.Errorf("axis midpoint = %v, want origin", mid)
	}
}

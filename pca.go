package highlight

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// principalAngle returns the angle of the first principal component of the
// point cloud, i.e. the rotation that best aligns the cloud with the X axis.
// Clouds with fewer than two points, or without a defined direction,
// return 0.
func principalAngle(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	data := mat.NewDense(len(points), 2, nil)
	for i, p := range points {
		data.Set(i, 0, p.X)
		data.Set(i, 1, p.Y)
	}

	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		return 0
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	x, y := vecs.At(0, 0), vecs.At(1, 0)
	if math.IsNaN(x) || math.IsNaN(y) || (x == 0 && y == 0) {
		return 0
	}
	return math.Atan2(y, x)
}

// principalAxes returns the four edge midpoints (left, right, top, bottom)
// of the cloud's bounding box taken in its principal frame, mapped back to
// world space.
func principalAxes(points []Point) (left, right, top, bottom Point) {
	angle := principalAngle(points)

	var box BoundingBox
	for _, p := range points {
		box = box.Include(p.Rotate(-angle))
	}
	if box.Empty() {
		return
	}

	c := box.Center()
	left = Pt(box.Min.X, c.Y).Rotate(angle)
	right = Pt(box.Max.X, c.Y).Rotate(angle)
	top = Pt(c.X, box.Min.Y).Rotate(angle)
	bottom = Pt(c.X, box.Max.Y).Rotate(angle)
	return
}

package recording

import "github.com/treeviewer/highlight"

// Paint yields the color of a fill at a world-space point.
// highlight.Gradient values are Paints.
type Paint interface {
	ColorAt(x, y float64) highlight.RGBA
}

// SolidPaint paints every point with one color.
type SolidPaint struct {
	Color highlight.RGBA
}

// ColorAt implements Paint.
func (p SolidPaint) ColorAt(float64, float64) highlight.RGBA {
	return p.Color
}

package highlight

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]; color channels are not
// premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
		A: float64(nrgba.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without
// a leading '#'. Malformed input yields an error wrapping ErrInvalidColor.
func ParseHex(hex string) (RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if s == "" || strings.Trim(s, "0123456789abcdefABCDEF") != "" {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	alpha := 1.0
	switch len(s) {
	case 3, 6:
	case 4:
		a, _ := strconv.ParseUint(s[3:], 16, 8)
		alpha = float64(a) / 15
		s = s[:3]
	case 8:
		a, _ := strconv.ParseUint(s[6:], 16, 8)
		alpha = float64(a) / 255
		s = s[:6]
	default:
		return RGBA{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidColor, hex, len(s))
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, hex, err)
	}
	return fromColorful(c, alpha), nil
}

// Hex is like ParseHex but yields opaque black for malformed input.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, s, l), 1)
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// IsTransparent reports whether the color has no visible coverage.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Lab returns the CIE L*a*b* coordinates of the color (D65 white point).
func (c RGBA) Lab() (l, a, b float64) {
	return c.colorful().Lab()
}

// FromLab converts CIE L*a*b* coordinates back to a clamped sRGB color with
// the given alpha.
func FromLab(l, a, b, alpha float64) RGBA {
	return fromColorful(colorful.Lab(l, a, b), alpha)
}

// LerpLab interpolates between two colors in CIE L*a*b* space; alpha is
// interpolated linearly.
func (c RGBA) LerpLab(other RGBA, t float64) RGBA {
	switch t {
	case 0:
		return c
	case 1:
		return other
	}
	mixed := c.colorful().BlendLab(other.colorful(), t)
	return fromColorful(mixed, c.A+(other.A-c.A)*t)
}

// MidpointLab returns the component-wise average of two colors in
// CIE L*a*b* space together with the arithmetic average of their alphas.
func MidpointLab(c1, c2 RGBA) RGBA {
	l1, a1, b1 := c1.Lab()
	l2, a2, b2 := c2.Lab()
	return FromLab((l1+l2)/2, (a1+a2)/2, (b1+b2)/2, (c1.A+c2.A)/2)
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color, alpha float64) RGBA {
	c = c.Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

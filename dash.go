package highlight

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as absolute values.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// Apply splits a polyline into its "on" pieces. Solid or nil patterns
// return the polyline unchanged as a single piece.
func (d *Dash) Apply(polyline []Point) [][]Point {
	if !d.IsDashed() || len(polyline) < 2 {
		return [][]Point{polyline}
	}

	pattern := d.Array
	if len(pattern)%2 != 0 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	// Locate the starting position inside the pattern.
	idx := 0
	pos := math.Mod(d.Offset, d.PatternLength())
	if pos < 0 {
		pos += d.PatternLength()
	}
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - pos
	on := idx%2 == 0

	var pieces [][]Point
	var cur []Point
	if on {
		cur = []Point{polyline[0]}
	}

	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		segLen := a.Distance(b)
		travelled := 0.0
		for segLen-travelled > remaining {
			travelled += remaining
			pt := a.Lerp(b, travelled/segLen)
			if on {
				cur = append(cur, pt)
				pieces = append(pieces, cur)
				cur = nil
			} else {
				cur = []Point{pt}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - travelled
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		pieces = append(pieces, cur)
	}
	return pieces
}

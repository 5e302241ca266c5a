package highlight

import "errors"

var (
	// ErrInvalidConfig is returned when a Request fails validation.
	// It is the only failure raised before any geometry runs.
	ErrInvalidConfig = errors.New("highlight: invalid configuration")

	// ErrNilNode is returned when a nil node is passed to the Highlighter.
	ErrNilNode = errors.New("highlight: nil node")

	// ErrMissingCoordinate is returned when the highlighted node has no
	// entry in the CoordinateMap.
	ErrMissingCoordinate = errors.New("highlight: node has no coordinate")

	// ErrUnknownLayout is returned when a CoordinateMap carries no layout.
	ErrUnknownLayout = errors.New("highlight: unknown layout")

	// ErrInvalidColor is returned by ParseHex for malformed color strings.
	ErrInvalidColor = errors.New("highlight: invalid color")

	// ErrAmbiguousLayout is returned when a sentinel-keyed dictionary
	// names more than one layout kind.
	ErrAmbiguousLayout = errors.New("highlight: more than one layout sentinel")
)

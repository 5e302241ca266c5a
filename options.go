package highlight

import "log/slog"

// Option configures a Highlighter during creation.
//
// Example:
//
//	h := highlight.New(
//	    highlight.WithLogger(slog.Default()),
//	    highlight.WithAngleEpsilon(1e-3),
//	)
type Option func(*options)

// options holds optional configuration for Highlighter creation.
type options struct {
	logger            *slog.Logger
	parallelTolerance float64
	angleEpsilon      float64
}

// DefaultAngleEpsilon is the start angle used when a circular wedge has to
// be clamped to a full turn.
const DefaultAngleEpsilon = 1e-4

// defaultOptions returns the default Highlighter options.
func defaultOptions() options {
	return options{
		logger:            nil, // falls back to the package logger
		parallelTolerance: DefaultParallelTolerance,
		angleEpsilon:      DefaultAngleEpsilon,
	}
}

// WithLogger sets a logger for this Highlighter only, overriding the
// package-wide logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParallelTolerance sets the normalized cross product below which two
// consecutive offset edges are joined by the parallel-edge fallback instead
// of a miter. Non-positive values keep the default.
func WithParallelTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.parallelTolerance = tol
		}
	}
}

// WithAngleEpsilon sets the minimal start angle of a circular wedge that was
// clamped to a full turn. Non-positive values keep the default.
func WithAngleEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.angleEpsilon = eps
		}
	}
}

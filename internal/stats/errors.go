package stats

import "errors"

var (
	// ErrEmptySample is returned when no values remain to reduce.
	ErrEmptySample = errors.New("empty sample")
	// ErrInvalidRange is returned when [start, stop) does not fit the input.
	ErrInvalidRange = errors.New("invalid index range")
	// ErrInvalidPercent is returned when the trim percentage is outside [0, 100).
	ErrInvalidPercent = errors.New("trim percentage must be in [0, 100)")
	// ErrInvalidAccumulator is returned when running totals cannot come from any sample.
	ErrInvalidAccumulator = errors.New("invalid accumulator state")
)

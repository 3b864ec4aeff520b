package period

import "errors"

// Failure modes of the interval algebra. Call sites wrap these with context
// via github.com/pkg/errors; match with errors.Is.
var (
	// ErrInvalidRange is returned when an interval would start after it ends
	ErrInvalidRange = errors.New("interval start is after its end")

	// ErrOutOfRange is returned when a calendar unit index lies outside its
	// valid range, e.g. month 13 or ISO week 60
	ErrOutOfRange = errors.New("calendar unit index out of range")

	// ErrDisjointIntervals is returned by Intersect and Diff when the
	// operands do not overlap
	ErrDisjointIntervals = errors.New("intervals do not overlap")

	// ErrOverlappingIntervals is returned by Gap when the operands overlap
	// and no gap exists between them
	ErrOverlappingIntervals = errors.New("intervals overlap")

	// ErrOutOfBounds is returned on sequence access outside [0, length)
	ErrOutOfBounds = errors.New("sequence index out of bounds")

	// ErrInvalidInput is returned when a value cannot be interpreted as an
	// instant, duration or boundary type
	ErrInvalidInput = errors.New("value cannot be interpreted")
)

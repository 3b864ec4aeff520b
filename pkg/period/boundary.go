package period

import (
	"github.com/pkg/errors"
)

// BoundaryType selects which of an interval's two endpoint instants are
// themselves members of the interval.
type BoundaryType int

const (
	// IncludeStartExcludeEnd is the default boundary: [start, end)
	IncludeStartExcludeEnd BoundaryType = iota
	// IncludeAll keeps both endpoints: [start, end]
	IncludeAll
	// ExcludeAll drops both endpoints: (start, end)
	ExcludeAll
	// ExcludeStartIncludeEnd keeps only the end: (start, end]
	ExcludeStartIncludeEnd
)

// IncludesStart reports whether the start instant belongs to the interval
func (b BoundaryType) IncludesStart() bool {
	return b == IncludeStartExcludeEnd || b == IncludeAll
}

// IncludesEnd reports whether the end instant belongs to the interval
func (b BoundaryType) IncludesEnd() bool {
	return b == IncludeAll || b == ExcludeStartIncludeEnd
}

// String renders the boundary in bracket notation: [), [], (), (]
func (b BoundaryType) String() string {
	switch b {
	case IncludeAll:
		return "[]"
	case ExcludeAll:
		return "()"
	case ExcludeStartIncludeEnd:
		return "(]"
	default:
		return "[)"
	}
}

// ParseBoundaryType parses bracket notation. The empty string maps to the
// default boundary.
func ParseBoundaryType(s string) (BoundaryType, error) {
	switch s {
	case "[)", "":
		return IncludeStartExcludeEnd, nil
	case "[]":
		return IncludeAll, nil
	case "()":
		return ExcludeAll, nil
	case "(]":
		return ExcludeStartIncludeEnd, nil
	}
	return IncludeStartExcludeEnd, errors.Wrapf(ErrInvalidInput, "unknown boundary type %q", s)
}

func boundaryFromFlags(includeStart, includeEnd bool) BoundaryType {
	switch {
	case includeStart && includeEnd:
		return IncludeAll
	case includeStart:
		return IncludeStartExcludeEnd
	case includeEnd:
		return ExcludeStartIncludeEnd
	default:
		return ExcludeAll
	}
}

// Package period models time intervals as immutable values and provides an
// algebra over them: containment, overlap, gap, intersection, union and
// difference, plus calendar-aligned construction and an ordered Sequence
// collection with bulk set-style queries.
package period

import (
	"time"

	"github.com/pkg/errors"
)

// Interval is an immutable span between two ordered instants. The boundary
// type decides whether each endpoint instant belongs to the interval. A
// degenerate interval (start == end) contains its single instant only under
// the IncludeAll boundary.
//
// Every combinator returns a new Interval; the receiver is never modified.
type Interval struct {
	start    time.Time
	end      time.Time
	boundary BoundaryType
}

// New builds an interval with the default [start, end) boundary
func New(start, end time.Time) (Interval, error) {
	return NewWithBoundary(start, end, IncludeStartExcludeEnd)
}

// NewWithBoundary builds an interval with an explicit boundary type
func NewWithBoundary(start, end time.Time, boundary BoundaryType) (Interval, error) {
	if start.After(end) {
		return Interval{}, errors.Wrapf(ErrInvalidRange,
			"start %s, end %s",
			start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return Interval{start: start, end: end, boundary: boundary}, nil
}

// FromDuration spans d starting at start. A negative d moves the end before
// the start and fails validation.
func FromDuration(start time.Time, d time.Duration) (Interval, error) {
	return New(start, start.Add(d))
}

// FromDurationBeforeEnd spans d ending at end
func FromDurationBeforeEnd(end time.Time, d time.Duration) (Interval, error) {
	return New(end.Add(-d), end)
}

// Instant is the degenerate interval whose start and end are both p. It
// carries the default boundary; combine with WithBoundary(IncludeAll) for an
// interval containing exactly p.
func Instant(p time.Time) Interval {
	return Interval{start: p, end: p}
}

// WithBoundary returns a copy of i with a different boundary type
func (i Interval) WithBoundary(boundary BoundaryType) Interval {
	i.boundary = boundary
	return i
}

// Start returns the starting instant of the interval
func (i Interval) Start() time.Time { return i.start }

// End returns the ending instant of the interval
func (i Interval) End() time.Time { return i.end }

// Boundary returns the interval's boundary type
func (i Interval) Boundary() BoundaryType { return i.boundary }

// Duration is the elapsed time between the endpoints, never negative
func (i Interval) Duration() time.Duration { return i.end.Sub(i.start) }

// Seconds is the interval's duration in seconds
func (i Interval) Seconds() float64 { return i.Duration().Seconds() }

// IsDegenerate reports a zero-length interval
func (i Interval) IsDegenerate() bool { return i.start.Equal(i.end) }

// Equal reports structural equality: same endpoints, same boundary type
func (i Interval) Equal(o Interval) bool {
	return i.start.Equal(o.start) && i.end.Equal(o.end) && i.boundary == o.boundary
}

// ContainsTime reports whether instant t is a member of the interval
func (i Interval) ContainsTime(t time.Time) bool {
	var startOK, endOK bool
	if i.boundary.IncludesStart() {
		startOK = !t.Before(i.start)
	} else {
		startOK = t.After(i.start)
	}
	if i.boundary.IncludesEnd() {
		endOK = !t.After(i.end)
	} else {
		endOK = t.Before(i.end)
	}
	return startOK && endOK
}

// Contains reports whether every instant of o is also a member of i. At a
// shared endpoint an excluded boundary of i cannot contain an included
// boundary of o.
func (i Interval) Contains(o Interval) bool {
	startOK := o.start.After(i.start) ||
		(o.start.Equal(i.start) && (i.boundary.IncludesStart() || !o.boundary.IncludesStart()))
	endOK := o.end.Before(i.end) ||
		(o.end.Equal(i.end) && (i.boundary.IncludesEnd() || !o.boundary.IncludesEnd()))
	return startOK && endOK
}

// IsBeforeTime reports whether the whole interval lies before t
func (i Interval) IsBeforeTime(t time.Time) bool {
	if i.end.Before(t) {
		return true
	}
	return i.end.Equal(t) && !i.boundary.IncludesEnd()
}

// IsAfterTime reports whether the whole interval lies after t
func (i Interval) IsAfterTime(t time.Time) bool {
	if i.start.After(t) {
		return true
	}
	return i.start.Equal(t) && !i.boundary.IncludesStart()
}

// IsBefore reports whether i lies entirely before o. Intervals touching at a
// single endpoint count as before unless both sides include that instant.
func (i Interval) IsBefore(o Interval) bool {
	if i.end.Before(o.start) {
		return true
	}
	return i.end.Equal(o.start) && !(i.boundary.IncludesEnd() && o.boundary.IncludesStart())
}

// IsAfter reports whether i lies entirely after o
func (i Interval) IsAfter(o Interval) bool {
	return o.IsBefore(i)
}

// sharedEndpoint reports whether i and o touch at exactly one boundary
// instant, and whether both sides include that instant.
func (i Interval) sharedEndpoint(o Interval) (touches, bothInclude bool) {
	if i.end.Equal(o.start) {
		return true, i.boundary.IncludesEnd() && o.boundary.IncludesStart()
	}
	if i.start.Equal(o.end) {
		return true, i.boundary.IncludesStart() && o.boundary.IncludesEnd()
	}
	return false, false
}

// Abuts reports whether i and o share exactly one boundary instant without
// overlapping there. A touching endpoint included by both sides is an
// overlap, not an abutment, so Abuts and Overlaps are never both true.
func (i Interval) Abuts(o Interval) bool {
	touches, bothInclude := i.sharedEndpoint(o)
	return touches && !bothInclude
}

// Overlaps reports whether i and o share at least one instant. Intervals
// that merely abut do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	touches, bothInclude := i.sharedEndpoint(o)
	if touches {
		return bothInclude
	}
	return i.start.Before(o.end) && i.end.After(o.start)
}

// CompareDuration orders i and o by duration: -1 when i is shorter, 0 when
// equal, 1 when longer. Implemented by comparing i's end against i's start
// advanced by o's duration, avoiding a second duration computation.
func (i Interval) CompareDuration(o Interval) int {
	pivot := i.start.Add(o.Duration())
	switch {
	case i.end.Before(pivot):
		return -1
	case i.end.After(pivot):
		return 1
	default:
		return 0
	}
}

// Merge folds i with the given intervals into the minimal interval covering
// all of them: minimum start, maximum end. The operands need not overlap and
// Merge never fails. A tied endpoint is included when any operand includes it.
func (i Interval) Merge(others ...Interval) Interval {
	out := i
	for _, o := range others {
		startInc, endInc := out.boundary.IncludesStart(), out.boundary.IncludesEnd()
		switch {
		case o.start.Before(out.start):
			out.start = o.start
			startInc = o.boundary.IncludesStart()
		case o.start.Equal(out.start):
			startInc = startInc || o.boundary.IncludesStart()
		}
		switch {
		case o.end.After(out.end):
			out.end = o.end
			endInc = o.boundary.IncludesEnd()
		case o.end.Equal(out.end):
			endInc = endInc || o.boundary.IncludesEnd()
		}
		out.boundary = boundaryFromFlags(startInc, endInc)
	}
	return out
}

// Intersect returns the interval common to both operands: latest start,
// earliest end. The boundary at each end comes from the operand that
// supplied the winning endpoint; at a tie the endpoint is included only when
// both operands include it.
func (i Interval) Intersect(o Interval) (Interval, error) {
	if !i.Overlaps(o) {
		return Interval{}, errors.Wrapf(ErrDisjointIntervals, "%s, %s", i, o)
	}
	start, startInc := i.start, i.boundary.IncludesStart()
	switch {
	case o.start.After(start):
		start, startInc = o.start, o.boundary.IncludesStart()
	case o.start.Equal(start):
		startInc = startInc && o.boundary.IncludesStart()
	}
	end, endInc := i.end, i.boundary.IncludesEnd()
	switch {
	case o.end.Before(end):
		end, endInc = o.end, o.boundary.IncludesEnd()
	case o.end.Equal(end):
		endInc = endInc && o.boundary.IncludesEnd()
	}
	return Interval{start: start, end: end, boundary: boundaryFromFlags(startInc, endInc)}, nil
}

// Gap returns the interval strictly between i and o. Its boundaries
// complement the facing boundaries of the operands, so the gap never
// includes an instant covered by either of them. Abutting operands yield the
// degenerate empty gap; overlapping operands have no gap and fail.
func (i Interval) Gap(o Interval) (Interval, error) {
	if i.Overlaps(o) {
		return Interval{}, errors.Wrapf(ErrOverlappingIntervals, "%s, %s", i, o)
	}
	earlier, later := i, o
	if !o.end.After(i.start) {
		earlier, later = o, i
	}
	return Interval{
		start:    earlier.end,
		end:      later.start,
		boundary: boundaryFromFlags(!earlier.boundary.IncludesEnd(), !later.boundary.IncludesStart()),
	}, nil
}

// Diff returns the parts of i and o lying outside their intersection,
// earliest first. Equal start or end pairs produce no part, so the result
// holds zero, one or two intervals. Operands that do not overlap have no
// intersection to diff against and fail.
func (i Interval) Diff(o Interval) ([]Interval, error) {
	if !i.Overlaps(o) {
		return nil, errors.Wrapf(ErrDisjointIntervals, "%s, %s", i, o)
	}
	parts := make([]Interval, 0, 2)
	if !i.start.Equal(o.start) {
		outer, inner := i, o
		if o.start.Before(i.start) {
			outer, inner = o, i
		}
		parts = append(parts, Interval{
			start:    outer.start,
			end:      inner.start,
			boundary: boundaryFromFlags(outer.boundary.IncludesStart(), !inner.boundary.IncludesStart()),
		})
	}
	if !i.end.Equal(o.end) {
		inner, outer := i, o
		if o.end.Before(i.end) {
			inner, outer = o, i
		}
		parts = append(parts, Interval{
			start:    inner.end,
			end:      outer.end,
			boundary: boundaryFromFlags(!inner.boundary.IncludesEnd(), outer.boundary.IncludesEnd()),
		})
	}
	return parts, nil
}

// StartingOn returns a copy of i starting at the given instant
func (i Interval) StartingOn(start time.Time) (Interval, error) {
	return NewWithBoundary(start, i.end, i.boundary)
}

// EndingOn returns a copy of i ending at the given instant
func (i Interval) EndingOn(end time.Time) (Interval, error) {
	return NewWithBoundary(i.start, end, i.boundary)
}

// WithDuration keeps the start and places the end d later
func (i Interval) WithDuration(d time.Duration) (Interval, error) {
	return NewWithBoundary(i.start, i.start.Add(d), i.boundary)
}

// WithDurationBeforeEnd keeps the end and places the start d earlier
func (i Interval) WithDurationBeforeEnd(d time.Duration) (Interval, error) {
	return NewWithBoundary(i.end.Add(-d), i.end, i.boundary)
}

// MoveStart shifts only the start by the signed duration d
func (i Interval) MoveStart(d time.Duration) (Interval, error) {
	return NewWithBoundary(i.start.Add(d), i.end, i.boundary)
}

// MoveEnd shifts only the end by the signed duration d
func (i Interval) MoveEnd(d time.Duration) (Interval, error) {
	return NewWithBoundary(i.start, i.end.Add(d), i.boundary)
}

// Move shifts both endpoints by the signed duration d. The endpoint order is
// unaffected, so Move cannot fail.
func (i Interval) Move(d time.Duration) Interval {
	i.start = i.start.Add(d)
	i.end = i.end.Add(d)
	return i
}

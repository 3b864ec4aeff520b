package period

import (
	"sort"

	"github.com/pkg/errors"
)

// Sequence is an ordered, mutable collection of intervals. Insertion order
// is preserved unless explicitly sorted, duplicates are permitted, and every
// index in [0, Len()) always holds a valid interval. A Sequence is not safe
// for concurrent mutation; callers needing that must serialize access
// themselves.
type Sequence struct {
	intervals []Interval
}

// NewSequence builds a sequence holding the given intervals in order
func NewSequence(intervals ...Interval) *Sequence {
	s := &Sequence{intervals: make([]Interval, len(intervals))}
	copy(s.intervals, intervals)
	return s
}

// IsEmpty reports whether the sequence holds no intervals
func (s *Sequence) IsEmpty() bool { return len(s.intervals) == 0 }

// Len returns the number of stored intervals
func (s *Sequence) Len() int { return len(s.intervals) }

// ToSlice returns a snapshot copy of the stored intervals
func (s *Sequence) ToSlice() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Each visits the stored intervals in order until fn returns false
func (s *Sequence) Each(fn func(index int, interval Interval) bool) {
	for idx, iv := range s.intervals {
		if !fn(idx, iv) {
			return
		}
	}
}

func (s *Sequence) checkIndex(index int) error {
	if index < 0 || index >= len(s.intervals) {
		return errors.Wrapf(ErrOutOfBounds, "index %d, length %d", index, len(s.intervals))
	}
	return nil
}

// Get returns the interval at index
func (s *Sequence) Get(index int) (Interval, error) {
	if err := s.checkIndex(index); err != nil {
		return Interval{}, err
	}
	return s.intervals[index], nil
}

// Set replaces the interval at index in place
func (s *Sequence) Set(index int, interval Interval) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.intervals[index] = interval
	return nil
}

// Push appends the given intervals, preserving argument order
func (s *Sequence) Push(intervals ...Interval) {
	s.intervals = append(s.intervals, intervals...)
}

// Remove deletes and returns the interval at index; later elements shift
// down by one
func (s *Sequence) Remove(index int) (Interval, error) {
	if err := s.checkIndex(index); err != nil {
		return Interval{}, err
	}
	removed := s.intervals[index]
	s.intervals = append(s.intervals[:index], s.intervals[index+1:]...)
	return removed, nil
}

// Clear empties the sequence
func (s *Sequence) Clear() {
	s.intervals = s.intervals[:0]
}

// Find returns the index of the first stored interval structurally equal to
// the argument
func (s *Sequence) Find(interval Interval) (int, bool) {
	for idx, iv := range s.intervals {
		if iv.Equal(interval) {
			return idx, true
		}
	}
	return 0, false
}

// Contains reports whether any stored interval is structurally equal to the
// argument
func (s *Sequence) Contains(interval Interval) bool {
	_, ok := s.Find(interval)
	return ok
}

// Filter returns a new sequence holding the intervals that satisfy pred, in
// their original order. The receiver is never mutated.
func (s *Sequence) Filter(pred func(Interval) bool) *Sequence {
	out := &Sequence{}
	for _, iv := range s.intervals {
		if pred(iv) {
			out.intervals = append(out.intervals, iv)
		}
	}
	return out
}

// Sort orders the sequence in place, stably, by the given comparator
func (s *Sequence) Sort(cmp func(a, b Interval) int) {
	sort.SliceStable(s.intervals, func(x, y int) bool {
		return cmp(s.intervals[x], s.intervals[y]) < 0
	})
}

// Sorted returns a sorted copy, leaving the receiver untouched
func (s *Sequence) Sorted(cmp func(a, b Interval) int) *Sequence {
	out := NewSequence(s.intervals...)
	out.Sort(cmp)
	return out
}

// Some reports whether at least one stored interval satisfies pred. It
// short-circuits on the first match and is false on an empty sequence.
func (s *Sequence) Some(pred func(Interval) bool) bool {
	for _, iv := range s.intervals {
		if pred(iv) {
			return true
		}
	}
	return false
}

// Every reports whether all stored intervals satisfy pred. An empty
// sequence satisfies every predicate.
func (s *Sequence) Every(pred func(Interval) bool) bool {
	for _, iv := range s.intervals {
		if !pred(iv) {
			return false
		}
	}
	return true
}

// ByStart orders intervals by start instant, ties broken by end instant
func ByStart(a, b Interval) int {
	switch {
	case a.start.Before(b.start):
		return -1
	case a.start.After(b.start):
		return 1
	case a.end.Before(b.end):
		return -1
	case a.end.After(b.end):
		return 1
	default:
		return 0
	}
}

// Interval returns the minimal interval covering every member, the Merge of
// the whole sequence. ok is false when the sequence is empty.
func (s *Sequence) Interval() (Interval, bool) {
	if s.IsEmpty() {
		return Interval{}, false
	}
	return s.intervals[0].Merge(s.intervals[1:]...), true
}

// Gaps returns the intervals left uncovered between the members. The
// members are folded in start order against a running covered span: a member
// overlapping or abutting the span extends it, anything else closes the span
// and records the gap in between. Nested or unsorted members never produce
// spurious gaps, and the result is empty when the members fully cover their
// bounding span.
func (s *Sequence) Gaps() *Sequence {
	out := &Sequence{}
	if s.Len() < 2 {
		return out
	}
	sorted := s.Sorted(ByStart).intervals
	running := sorted[0]
	for _, next := range sorted[1:] {
		if running.Overlaps(next) || running.Abuts(next) || running.Contains(next) {
			running = running.Merge(next)
			continue
		}
		gap, err := running.Gap(next)
		if err == nil && !gap.IsDegenerate() {
			out.intervals = append(out.intervals, gap)
		}
		running = running.Merge(next)
	}
	return out
}

// Intersections collects the pairwise intersection of every overlapping
// pair of distinct members, visiting pairs by ascending index
func (s *Sequence) Intersections() *Sequence {
	out := &Sequence{}
	for x := 0; x < len(s.intervals); x++ {
		for y := x + 1; y < len(s.intervals); y++ {
			if iv, err := s.intervals[x].Intersect(s.intervals[y]); err == nil {
				out.intervals = append(out.intervals, iv)
			}
		}
	}
	return out
}

// Unions merges the members into maximal covered spans: sorted by start,
// each member either extends the current span (overlap or abutment) or
// closes it and starts the next one. The result is sorted, pairwise disjoint
// and non-abutting, and contains every input member in exactly one span.
func (s *Sequence) Unions() *Sequence {
	out := &Sequence{}
	if s.IsEmpty() {
		return out
	}
	sorted := s.Sorted(ByStart).intervals
	running := sorted[0]
	for _, next := range sorted[1:] {
		if running.Overlaps(next) || running.Abuts(next) {
			running = running.Merge(next)
			continue
		}
		out.intervals = append(out.intervals, running)
		running = next
	}
	out.intervals = append(out.intervals, running)
	return out
}

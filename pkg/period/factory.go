package period

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Bibendus83/period/internal/temporal"
)

// Calendar factories build the interval covering exactly one calendar unit,
// with the default [start, end) boundary: the unit's first instant up to the
// first instant of the next unit. Int-indexed variants work in UTC and
// validate their index; reference-instant variants align to the unit
// containing t, keep t's location and cannot fail.

func unitInterval(t time.Time, u temporal.Unit) Interval {
	start := temporal.StartOf(t, u)
	return Interval{start: start, end: temporal.AddUnits(start, u, 1)}
}

// Year spans calendar year y
func Year(y int) Interval {
	return unitInterval(time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), temporal.Year)
}

// YearOf spans the calendar year containing t
func YearOf(t time.Time) Interval { return unitInterval(t, temporal.Year) }

// ISOYear spans ISO-8601 week-numbering year y, Monday of week 1 up to
// Monday of the next year's week 1
func ISOYear(y int) Interval {
	return Interval{
		start: temporal.ISOYearStart(y, time.UTC),
		end:   temporal.ISOYearStart(y+1, time.UTC),
	}
}

// ISOYearOf spans the ISO week-numbering year containing t
func ISOYearOf(t time.Time) Interval { return unitInterval(t, temporal.ISOYear) }

// Semester spans semester s (1 or 2) of year y
func Semester(y, s int) (Interval, error) {
	if s < 1 || s > 2 {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "semester %d not in 1..2", s)
	}
	start := time.Date(y, time.Month(1+(s-1)*6), 1, 0, 0, 0, 0, time.UTC)
	return unitInterval(start, temporal.Semester), nil
}

// SemesterOf spans the half-year containing t
func SemesterOf(t time.Time) Interval { return unitInterval(t, temporal.Semester) }

// Quarter spans quarter q (1..4) of year y
func Quarter(y, q int) (Interval, error) {
	if q < 1 || q > 4 {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "quarter %d not in 1..4", q)
	}
	start := time.Date(y, time.Month(1+(q-1)*3), 1, 0, 0, 0, 0, time.UTC)
	return unitInterval(start, temporal.Quarter), nil
}

// QuarterOf spans the quarter containing t
func QuarterOf(t time.Time) Interval { return unitInterval(t, temporal.Quarter) }

// Month spans month m (1..12) of year y
func Month(y, m int) (Interval, error) {
	if m < 1 || m > 12 {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "month %d not in 1..12", m)
	}
	return unitInterval(time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), temporal.Month), nil
}

// MonthOf spans the calendar month containing t
func MonthOf(t time.Time) Interval { return unitInterval(t, temporal.Month) }

// ISOWeek spans ISO week w of ISO year y. The upper bound is the actual last
// week of that year, 52 or 53.
func ISOWeek(y, w int) (Interval, error) {
	last := temporal.ISOWeeksInYear(y)
	if w < 1 || w > last {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "ISO week %d not in 1..%d for year %d", w, last, y)
	}
	start := temporal.AddUnits(temporal.ISOYearStart(y, time.UTC), temporal.ISOWeek, w-1)
	return Interval{start: start, end: temporal.AddUnits(start, temporal.ISOWeek, 1)}, nil
}

// ISOWeekOf spans the ISO week containing t, Monday up to Monday
func ISOWeekOf(t time.Time) Interval { return unitInterval(t, temporal.ISOWeek) }

// Day spans day d of month m (1..12) in year y. The day is bounded by the
// month's actual length.
func Day(y, m, d int) (Interval, error) {
	if m < 1 || m > 12 {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "month %d not in 1..12", m)
	}
	if last := temporal.DaysInMonth(y, time.Month(m)); d < 1 || d > last {
		return Interval{}, errors.Wrapf(ErrOutOfRange, "day %d not in 1..%d for %d-%02d", d, last, y, m)
	}
	return unitInterval(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), temporal.Day), nil
}

// DayOf spans the calendar day containing t
func DayOf(t time.Time) Interval { return unitInterval(t, temporal.Day) }

// HourOf spans the clock hour containing t
func HourOf(t time.Time) Interval { return unitInterval(t, temporal.Hour) }

// MinuteOf spans the clock minute containing t
func MinuteOf(t time.Time) Interval { return unitInterval(t, temporal.Minute) }

// SecondOf spans the clock second containing t
func SecondOf(t time.Time) Interval { return unitInterval(t, temporal.Second) }

// Package temporal computes calendar-unit boundaries: the start of the
// year/quarter/month/ISO-week/... that contains a given instant, and
// calendar-correct advancement by whole units.
package temporal

import (
	"errors"
	"fmt"
	"time"
)

// Unit is a calendar unit an instant can be aligned to.
type Unit int

// Calendar units, largest to smallest.
const (
	Year Unit = iota
	ISOYear
	Semester
	Quarter
	Month
	ISOWeek
	Day
	Hour
	Minute
	Second
)

var unitNames = [...]string{
	Year:     "year",
	ISOYear:  "iso-year",
	Semester: "semester",
	Quarter:  "quarter",
	Month:    "month",
	ISOWeek:  "iso-week",
	Day:      "day",
	Hour:     "hour",
	Minute:   "minute",
	Second:   "second",
}

func (u Unit) String() string {
	if u < Year || u > Second {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitNames[u]
}

// ErrUnknownUnit is returned when a unit name cannot be parsed
var ErrUnknownUnit = errors.New("unknown calendar unit")

// ParseUnit maps a unit name like "month" or "iso-week" to its Unit
func ParseUnit(name string) (Unit, error) {
	for u, n := range unitNames {
		if n == name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// StartOf truncates t to the first instant of the unit containing it.
// The result keeps t's location.
func StartOf(t time.Time, u Unit) time.Time {
	switch u {
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	case ISOYear:
		y, _ := t.ISOWeek()
		return ISOYearStart(y, t.Location())
	case Semester:
		m := time.January
		if t.Month() >= time.July {
			m = time.July
		}
		return time.Date(t.Year(), m, 1, 0, 0, 0, 0, t.Location())
	case Quarter:
		m := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), m, 1, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case ISOWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7 // Sunday closes the ISO week
		}
		return day.AddDate(0, 0, 1-wd)
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case Minute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case Second:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
	return t
}

// AddUnits advances t by n whole units. Date-based units use calendar
// arithmetic so month lengths and DST transitions are honored; an ISO year
// step lands on the next ISO year's first Monday.
func AddUnits(t time.Time, u Unit, n int) time.Time {
	switch u {
	case Year:
		return t.AddDate(n, 0, 0)
	case ISOYear:
		y, _ := t.ISOWeek()
		return ISOYearStart(y+n, t.Location())
	case Semester:
		return t.AddDate(0, 6*n, 0)
	case Quarter:
		return t.AddDate(0, 3*n, 0)
	case Month:
		return t.AddDate(0, n, 0)
	case ISOWeek:
		return t.AddDate(0, 0, 7*n)
	case Day:
		return t.AddDate(0, 0, n)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	}
	return t
}

// ISOYearStart returns the first instant of the ISO-8601 week-numbering
// year: the Monday of the week containing January 4th.
func ISOYearStart(year int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return StartOf(jan4, ISOWeek)
}

// ISOWeeksInYear returns the number of ISO weeks (52 or 53) in the given
// ISO year. December 28th always falls in the year's last ISO week.
func ISOWeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// DaysInMonth returns the day count of the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

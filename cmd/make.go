package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Bibendus83/period/internal/temporal"
	"github.com/Bibendus83/period/pkg/period"
)

var makeYear int
var makeIndex int
var makeDay int
var makeAt string
var makeJSON bool

func init() {
	now := time.Now()
	makeCmd.Flags().IntVarP(&makeYear, "year", "y", now.Year(), "Calendar year")
	makeCmd.Flags().IntVarP(&makeIndex, "index", "i", 1, "Unit index within the year (semester 1-2, quarter 1-4, month 1-12, iso-week 1-53)")
	makeCmd.Flags().IntVarP(&makeDay, "day", "d", 1, "Day of month (with month index), bounded by the month's length")
	makeCmd.Flags().StringVarP(&makeAt, "at", "a", "", "Reference instant (RFC3339, date or unix seconds) - overrides year/index")
	makeCmd.Flags().BoolVarP(&makeJSON, "json", "j", false, "Print the interval as JSON")
	rootCmd.AddCommand(makeCmd)
}

var makeCmd = &cobra.Command{
	Use:   "make <unit>",
	Short: "Print the interval covering one calendar unit",
	Long: `Builds the interval spanning exactly one calendar unit: its first
instant up to the first instant of the next unit.

Units: year, iso-year, semester, quarter, month, iso-week, day, hour,
minute, second. Sub-day units require --at.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := temporal.ParseUnit(args[0])
		if err != nil {
			return err
		}
		interval, err := makeInterval(unit)
		if err != nil {
			return err
		}
		return printInterval(interval)
	},
}

func makeInterval(unit temporal.Unit) (period.Interval, error) {
	if makeAt != "" {
		at, err := period.ParseInstant(makeAt)
		if err != nil {
			return period.Interval{}, err
		}
		switch unit {
		case temporal.Year:
			return period.YearOf(at), nil
		case temporal.ISOYear:
			return period.ISOYearOf(at), nil
		case temporal.Semester:
			return period.SemesterOf(at), nil
		case temporal.Quarter:
			return period.QuarterOf(at), nil
		case temporal.Month:
			return period.MonthOf(at), nil
		case temporal.ISOWeek:
			return period.ISOWeekOf(at), nil
		case temporal.Day:
			return period.DayOf(at), nil
		case temporal.Hour:
			return period.HourOf(at), nil
		case temporal.Minute:
			return period.MinuteOf(at), nil
		case temporal.Second:
			return period.SecondOf(at), nil
		}
	}
	switch unit {
	case temporal.Year:
		return period.Year(makeYear), nil
	case temporal.ISOYear:
		return period.ISOYear(makeYear), nil
	case temporal.Semester:
		return period.Semester(makeYear, makeIndex)
	case temporal.Quarter:
		return period.Quarter(makeYear, makeIndex)
	case temporal.Month:
		return period.Month(makeYear, makeIndex)
	case temporal.ISOWeek:
		return period.ISOWeek(makeYear, makeIndex)
	case temporal.Day:
		return period.Day(makeYear, makeIndex, makeDay)
	}
	return period.Interval{}, errors.Errorf("unit %s needs a reference instant, pass --at", unit)
}

func printInterval(interval period.Interval) error {
	if makeJSON {
		buf, err := json.Marshal(interval)
		if err != nil {
			return err
		}
		fmt.Println(string(buf))
		return nil
	}
	fmt.Printf("%s\tduration %s\n", interval, interval.Duration())
	return nil
}

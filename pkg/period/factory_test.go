package period_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/Bibendus83/period/pkg/period"
)

var _ = Describe("Calendar factories", func() {
	Context("Year based", func() {
		It("spans a calendar year", func() {
			iv := Year(2015)
			Expect(iv.Start()).To(Equal(date(2015, time.January, 1)))
			Expect(iv.End()).To(Equal(date(2016, time.January, 1)))
		})

		It("spans the calendar year containing an instant", func() {
			iv := YearOf(date(2015, time.June, 20))
			Expect(iv.Equal(Year(2015))).To(BeTrue())
		})

		It("spans an ISO week-numbering year", func() {
			// ISO year 2015 runs Monday 2014-12-29 .. Monday 2016-01-04
			iv := ISOYear(2015)
			Expect(iv.Start()).To(Equal(date(2014, time.December, 29)))
			Expect(iv.End()).To(Equal(date(2016, time.January, 4)))
			Expect(iv.Duration()).To(Equal(53 * 7 * 24 * time.Hour))
		})

		It("assigns the turn of the year to the right ISO year", func() {
			// 2015-01-01 belongs to ISO week 1 of 2015, which starts in 2014
			iv := ISOYearOf(date(2015, time.January, 1))
			Expect(iv.Equal(ISOYear(2015))).To(BeTrue())
		})
	})

	Context("Semester and quarter", func() {
		It("spans half a year", func() {
			first, err := Semester(2015, 1)
			Expect(err).To(BeNil())
			Expect(first.Start()).To(Equal(date(2015, time.January, 1)))
			Expect(first.End()).To(Equal(date(2015, time.July, 1)))

			second, err := Semester(2015, 2)
			Expect(err).To(BeNil())
			Expect(second.Start()).To(Equal(date(2015, time.July, 1)))
			Expect(second.End()).To(Equal(date(2016, time.January, 1)))

			Expect(first.Abuts(second)).To(BeTrue())
		})

		It("rejects a semester index outside 1..2", func() {
			_, err := Semester(2015, 0)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			_, err = Semester(2015, 3)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})

		It("spans a quarter of a year", func() {
			iv, err := Quarter(2015, 3)
			Expect(err).To(BeNil())
			Expect(iv.Start()).To(Equal(date(2015, time.July, 1)))
			Expect(iv.End()).To(Equal(date(2015, time.October, 1)))
		})

		It("rejects a quarter index outside 1..4", func() {
			_, err := Quarter(2015, 5)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})

		It("aligns an instant to its containing quarter and semester", func() {
			at := date(2018, time.May, 15)
			q, err := Quarter(2018, 2)
			Expect(err).To(BeNil())
			Expect(QuarterOf(at).Equal(q)).To(BeTrue())
			s, err := Semester(2018, 1)
			Expect(err).To(BeNil())
			Expect(SemesterOf(at).Equal(s)).To(BeTrue())
		})
	})

	Context("Month", func() {
		It("spans a calendar month honoring its length", func() {
			iv, err := Month(2018, 2)
			Expect(err).To(BeNil())
			Expect(iv.Start()).To(Equal(date(2018, time.February, 1)))
			Expect(iv.End()).To(Equal(date(2018, time.March, 1)))
			Expect(iv.Duration()).To(Equal(28 * 24 * time.Hour))
		})

		It("handles leap February", func() {
			iv, err := Month(2020, 2)
			Expect(err).To(BeNil())
			Expect(iv.Duration()).To(Equal(29 * 24 * time.Hour))
		})

		It("rejects a month index outside 1..12", func() {
			_, err := Month(2018, 13)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			_, err = Month(2018, 0)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})
	})

	Context("ISO week", func() {
		It("spans Monday up to the next Monday", func() {
			// ISO week 1 of 2018 starts Monday 2018-01-01
			iv, err := ISOWeek(2018, 1)
			Expect(err).To(BeNil())
			Expect(iv.Start()).To(Equal(date(2018, time.January, 1)))
			Expect(iv.End()).To(Equal(date(2018, time.January, 8)))
		})

		It("bounds the week index by the year's actual last week", func() {
			_, err := ISOWeek(2018, 60)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			_, err = ISOWeek(2018, 53) // 2018 has 52 ISO weeks
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())

			iv, err := ISOWeek(2015, 53) // 2015 has 53
			Expect(err).To(BeNil())
			Expect(iv.Start()).To(Equal(date(2015, time.December, 28)))
		})

		It("aligns an instant to its containing ISO week", func() {
			// Thursday 2015-01-01 sits in the week of Monday 2014-12-29
			iv := ISOWeekOf(date(2015, time.January, 1))
			Expect(iv.Start()).To(Equal(date(2014, time.December, 29)))
			Expect(iv.End()).To(Equal(date(2015, time.January, 5)))
		})
	})

	Context("Day and below", func() {
		It("spans a single day", func() {
			iv, err := Day(2020, 2, 29)
			Expect(err).To(BeNil())
			Expect(iv.Start()).To(Equal(date(2020, time.February, 29)))
			Expect(iv.End()).To(Equal(date(2020, time.March, 1)))
		})

		It("bounds the day by the month's length", func() {
			_, err := Day(2019, 2, 29)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			_, err = Day(2019, 4, 31)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			_, err = Day(2019, 13, 1)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})

		It("aligns an instant to its hour, minute and second", func() {
			at := time.Date(2018, time.May, 15, 14, 30, 45, 123456789, time.UTC)
			Expect(HourOf(at).Start()).To(Equal(time.Date(2018, time.May, 15, 14, 0, 0, 0, time.UTC)))
			Expect(HourOf(at).Duration()).To(Equal(time.Hour))
			Expect(MinuteOf(at).Start()).To(Equal(time.Date(2018, time.May, 15, 14, 30, 0, 0, time.UTC)))
			Expect(MinuteOf(at).Duration()).To(Equal(time.Minute))
			Expect(SecondOf(at).Start()).To(Equal(time.Date(2018, time.May, 15, 14, 30, 45, 0, time.UTC)))
			Expect(SecondOf(at).Duration()).To(Equal(time.Second))
		})

		It("keeps the reference instant's location", func() {
			loc := time.FixedZone("UTC+2", 2*3600)
			at := time.Date(2018, time.May, 15, 14, 30, 0, 0, loc)
			Expect(DayOf(at).Start()).To(Equal(time.Date(2018, time.May, 15, 0, 0, 0, 0, loc)))
		})
	})
})

var _ = Describe("Parsing", func() {
	It("parses instants from several notations", func() {
		t, err := ParseInstant("2015-01-01T00:00:00Z")
		Expect(err).To(BeNil())
		Expect(t).To(Equal(date(2015, time.January, 1)))

		t, err = ParseInstant("2015-01-01")
		Expect(err).To(BeNil())
		Expect(t).To(Equal(date(2015, time.January, 1)))

		t, err = ParseInstant("1420070400") // unix seconds
		Expect(err).To(BeNil())
		Expect(t.Equal(date(2015, time.January, 1))).To(BeTrue())
	})

	It("rejects garbage instants", func() {
		_, err := ParseInstant("not-a-time")
		Expect(errors.Is(err, ErrInvalidInput)).To(BeTrue())
	})

	It("parses durations from Go syntax or plain seconds", func() {
		d, err := ParseDuration("90m")
		Expect(err).To(BeNil())
		Expect(d).To(Equal(90 * time.Minute))

		d, err = ParseDuration("5400")
		Expect(err).To(BeNil())
		Expect(d).To(Equal(90 * time.Minute))
	})

	It("rejects garbage durations", func() {
		_, err := ParseDuration("ninety minutes")
		Expect(errors.Is(err, ErrInvalidInput)).To(BeTrue())
	})

	It("parses boundary bracket notation", func() {
		b, err := ParseBoundaryType("(]")
		Expect(err).To(BeNil())
		Expect(b).To(Equal(ExcludeStartIncludeEnd))

		b, err = ParseBoundaryType("")
		Expect(err).To(BeNil())
		Expect(b).To(Equal(IncludeStartExcludeEnd))

		_, err = ParseBoundaryType("[[")
		Expect(errors.Is(err, ErrInvalidInput)).To(BeTrue())
	})
})

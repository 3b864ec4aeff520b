package temporal_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/Bibendus83/period/internal/temporal"
)

var _ = Describe("Calendar units", func() {
	// Tuesday afternoon with sub-second precision
	ref := time.Date(2018, time.May, 15, 14, 30, 45, 123456789, time.UTC)

	Context("StartOf", func() {
		It("truncates to each unit's first instant", func() {
			Expect(StartOf(ref, Year)).To(Equal(time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Semester)).To(Equal(time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Quarter)).To(Equal(time.Date(2018, time.April, 1, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Month)).To(Equal(time.Date(2018, time.May, 1, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, ISOWeek)).To(Equal(time.Date(2018, time.May, 14, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Day)).To(Equal(time.Date(2018, time.May, 15, 0, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Hour)).To(Equal(time.Date(2018, time.May, 15, 14, 0, 0, 0, time.UTC)))
			Expect(StartOf(ref, Minute)).To(Equal(time.Date(2018, time.May, 15, 14, 30, 0, 0, time.UTC)))
			Expect(StartOf(ref, Second)).To(Equal(time.Date(2018, time.May, 15, 14, 30, 45, 0, time.UTC)))
		})

		It("aligns the second half of the year to July", func() {
			aug := time.Date(2018, time.August, 3, 10, 0, 0, 0, time.UTC)
			Expect(StartOf(aug, Semester)).To(Equal(time.Date(2018, time.July, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("pulls a Sunday back to the previous Monday", func() {
			sunday := time.Date(2018, time.May, 20, 23, 0, 0, 0, time.UTC)
			Expect(StartOf(sunday, ISOWeek)).To(Equal(time.Date(2018, time.May, 14, 0, 0, 0, 0, time.UTC)))
		})

		It("keeps a Monday where it is", func() {
			monday := time.Date(2018, time.May, 14, 0, 0, 0, 0, time.UTC)
			Expect(StartOf(monday, ISOWeek)).To(Equal(monday))
		})

		It("aligns early January to the previous year's ISO weeks", func() {
			newYear := time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)
			// 2016-01-01 is a Friday in ISO week 53 of 2015
			Expect(StartOf(newYear, ISOYear)).To(Equal(time.Date(2014, time.December, 29, 0, 0, 0, 0, time.UTC)))
		})
	})

	Context("AddUnits", func() {
		It("advances by whole calendar units", func() {
			feb := time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC)
			Expect(AddUnits(feb, Month, 1)).To(Equal(time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)))
			Expect(AddUnits(feb, Quarter, 1)).To(Equal(time.Date(2018, time.May, 1, 0, 0, 0, 0, time.UTC)))
			Expect(AddUnits(feb, Day, 28)).To(Equal(time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)))
			Expect(AddUnits(feb, Hour, 2)).To(Equal(time.Date(2018, time.February, 1, 2, 0, 0, 0, time.UTC)))
		})

		It("moves backward for negative counts", func() {
			mar := time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC)
			Expect(AddUnits(mar, Month, -1)).To(Equal(time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("steps between ISO year starts", func() {
			start := ISOYearStart(2015, time.UTC)
			Expect(AddUnits(start, ISOYear, 1)).To(Equal(ISOYearStart(2016, time.UTC)))
		})
	})

	Context("Year geometry", func() {
		It("locates the Monday of ISO week 1", func() {
			Expect(ISOYearStart(2015, time.UTC)).To(Equal(time.Date(2014, time.December, 29, 0, 0, 0, 0, time.UTC)))
			Expect(ISOYearStart(2016, time.UTC)).To(Equal(time.Date(2016, time.January, 4, 0, 0, 0, 0, time.UTC)))
			Expect(ISOYearStart(2018, time.UTC)).To(Equal(time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("counts 52 or 53 ISO weeks", func() {
			Expect(ISOWeeksInYear(2015)).To(Equal(53))
			Expect(ISOWeeksInYear(2018)).To(Equal(52))
			Expect(ISOWeeksInYear(2020)).To(Equal(53))
		})

		It("knows month lengths", func() {
			Expect(DaysInMonth(2019, time.February)).To(Equal(28))
			Expect(DaysInMonth(2020, time.February)).To(Equal(29))
			Expect(DaysInMonth(2018, time.December)).To(Equal(31))
			Expect(DaysInMonth(2018, time.April)).To(Equal(30))
		})
	})

	Context("Unit names", func() {
		It("round-trips through ParseUnit", func() {
			for _, u := range []Unit{Year, ISOYear, Semester, Quarter, Month, ISOWeek, Day, Hour, Minute, Second} {
				parsed, err := ParseUnit(u.String())
				Expect(err).To(BeNil())
				Expect(parsed).To(Equal(u))
			}
		})

		It("rejects unknown names", func() {
			_, err := ParseUnit("fortnight")
			Expect(errors.Is(err, ErrUnknownUnit)).To(BeTrue())
		})
	})
})

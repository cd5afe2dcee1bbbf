package calendar

import (
	"fmt"
	"sync"
	"time"
)

// HaabDays is the length of one Haabʼ year.
const HaabDays = 365

const (
	haabMonthDays  = 20
	haabMonthCount = 19 // 18 twenty-day months plus Wayebʼ
	wayeb          = 19 // month index of the five-day closing period
	wayebDays      = 5
)

// HaabDate is an immutable day in the 365-day Haabʼ year: a 0-based day
// number within the month (0..19, or 0..4 in Wayebʼ) and a month index in
// 1..19 (Pop = 1, Wayebʼ = 19). Values are only constructed validated, so
// every HaabDate lies on the year cycle.
type HaabDate struct {
	number int
	name   int
}

// NewHaab builds a Haabʼ date from a day number and a month index.
// Wayebʼ has only the days 0 through 4; anything else in Wayebʼ is not a
// day of the Haabʼ year and is rejected rather than clamped.
func NewHaab(number, name int) (HaabDate, error) {
	if name < 1 || name > haabMonthCount {
		return HaabDate{}, fmt.Errorf("%w: Haabʼ month index %d is not between 1 and 19", ErrInvalidName, name)
	}
	if number < 0 || number >= haabMonthDays {
		return HaabDate{}, fmt.Errorf("%w: Haabʼ day number %d is not between 0 and 19", ErrInvalidNumber, number)
	}
	if name == wayeb && number >= wayebDays {
		return HaabDate{}, fmt.Errorf("%w: Wayebʼ has only the days 0 to 4, got %d", ErrInvalidNumber, number)
	}
	return HaabDate{number: number, name: name}, nil
}

// NewHaabFromName builds a Haabʼ date from a day number and a month name
// such as "Kumkʼu".
func NewHaabFromName(number int, name string) (HaabDate, error) {
	idx, err := HaabNameNumber(name)
	if err != nil {
		return HaabDate{}, err
	}
	return NewHaab(number, idx)
}

// Number returns the 0-based day number within the month.
func (d HaabDate) Number() int { return d.number }

// NameNumber returns the month index, 1..19.
func (d HaabDate) NameNumber() int { return d.name }

// Name returns the month name, e.g. "Kʼankʼin".
func (d HaabDate) Name() string { return haabNames[d.name] }

// String renders the date as "<number> <name>", e.g. "0 Pop".
func (d HaabDate) String() string {
	return fmt.Sprintf("%d %s", d.number, haabNames[d.name])
}

// haabTable is the full year in order, built once by iterating the
// add-one-day rule from 0 Pop. Read-only after construction.
var haabTable = sync.OnceValue(func() []HaabDate {
	table := make([]HaabDate, HaabDays)
	d := HaabDate{number: 0, name: 1}
	for i := range table {
		table[i] = d
		d = d.AddDays(1)
	}
	return table
})

// HaabCalendar returns every day of the year rendered in order, "0 Pop"
// first and "4 Wayebʼ" last.
func HaabCalendar() []string {
	table := haabTable()
	out := make([]string, len(table))
	for i, d := range table {
		out[i] = d.String()
	}
	return out
}

// Pos returns d's position in the Haabʼ year, 0 for 0 Pop through 364 for
// 4 Wayebʼ. Every regular month spans 20 positions; Wayebʼ starts at 360.
func (d HaabDate) Pos() int {
	return (d.name-1)*haabMonthDays + d.number
}

// CycleDay returns the 1-based day of the Haabʼ year: 1 for 0 Pop,
// 365 for 4 Wayebʼ.
func (d HaabDate) CycleDay() int { return d.Pos() + 1 }

// AddDays returns the Haabʼ date n days after d; n may be negative.
// The day number runs through the month before the month advances, and the
// month lengths are uneven because of Wayebʼ, so the sum is carried out on
// the year position and decoded back.
func (d HaabDate) AddDays(n int) HaabDate {
	return haabFromPos(floorMod(d.Pos()+n, HaabDays))
}

func haabFromPos(pos int) HaabDate {
	return HaabDate{number: pos % haabMonthDays, name: pos/haabMonthDays + 1}
}

// HaabFromDate converts a Gregorian date to its Haabʼ date.
func HaabFromDate(date time.Time) HaabDate {
	return haabTable()[haabCycle.posOf(date)]
}

// HaabFromDateString converts a Gregorian date string with the given
// layout to its Haabʼ date.
func HaabFromDateString(dateStr, layout string) (HaabDate, error) {
	date, err := ParseDateLayout(dateStr, layout)
	if err != nil {
		return HaabDate{}, err
	}
	return HaabFromDate(date), nil
}

// HaabDiff returns the number of days to travel forward from start to
// reach end, always in [0, 365); it wraps through the full year when end
// sits earlier on the cycle.
func HaabDiff(start, end HaabDate) int {
	return floorMod(end.Pos()-start.Pos(), HaabDays)
}

// NextHaab returns the first Gregorian date on or after start whose Haabʼ
// date is d.
func NextHaab(d HaabDate, start time.Time) time.Time {
	return haabCycle.next(d.Pos(), start)
}

// LastHaab returns the first Gregorian date on or before start whose
// Haabʼ date is d.
func LastHaab(d HaabDate, start time.Time) time.Time {
	return haabCycle.last(d.Pos(), start)
}

// HaabDates returns count Gregorian dates with Haabʼ date d, searching
// forward or backward from start. Empty for count < 1.
func HaabDates(d HaabDate, start time.Time, count int, forward bool) []time.Time {
	return haabCycle.dates(d.Pos(), start, count, forward)
}

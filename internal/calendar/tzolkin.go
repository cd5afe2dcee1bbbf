package calendar

import (
	"fmt"
	"sync"
	"time"
)

// TzolkinDays is the length of one Tzolkʼin round.
const TzolkinDays = 260

const (
	tzolkinNumbers   = 13
	tzolkinNameCount = 20
)

// TzolkinDate is an immutable day in the 260-day Tzolkʼin round: a day
// number in 1..13 and a day-name index in 1..20 (Imix = 1). The two
// components cycle independently, which is why their combined period is
// lcm(13, 20) = 260. Values are only constructed validated, so every
// TzolkinDate lies on the round.
type TzolkinDate struct {
	number int
	name   int
}

// NewTzolkin builds a Tzolkʼin date from a day number in 1..13 and a
// day-name index in 1..20. Out-of-range components fail, never clamp.
func NewTzolkin(number, name int) (TzolkinDate, error) {
	if number < 1 || number > tzolkinNumbers {
		return TzolkinDate{}, fmt.Errorf("%w: Tzolkʼin day number %d is not between 1 and 13", ErrInvalidNumber, number)
	}
	if name < 1 || name > tzolkinNameCount {
		return TzolkinDate{}, fmt.Errorf("%w: Tzolkʼin day-name index %d is not between 1 and 20", ErrInvalidName, name)
	}
	return TzolkinDate{number: number, name: name}, nil
}

// NewTzolkinFromName builds a Tzolkʼin date from a day number and a day
// name such as "Chikchan".
func NewTzolkinFromName(number int, name string) (TzolkinDate, error) {
	idx, err := TzolkinNameNumber(name)
	if err != nil {
		return TzolkinDate{}, err
	}
	return NewTzolkin(number, idx)
}

// Number returns the day number, 1..13.
func (d TzolkinDate) Number() int { return d.number }

// NameNumber returns the day-name index, 1..20.
func (d TzolkinDate) NameNumber() int { return d.name }

// Name returns the day name, e.g. "Chikchan".
func (d TzolkinDate) Name() string { return tzolkinNames[d.name] }

// String renders the date as "<number> <name>", e.g. "13 Chikchan".
func (d TzolkinDate) String() string {
	return fmt.Sprintf("%d %s", d.number, tzolkinNames[d.name])
}

// tzolkinTable is the full round in order, built once by iterating the
// add-one-day rule from 1 Imix. Read-only after construction, safe to
// share across goroutines.
var tzolkinTable = sync.OnceValue(func() []TzolkinDate {
	table := make([]TzolkinDate, TzolkinDays)
	d := TzolkinDate{number: 1, name: 1}
	for i := range table {
		table[i] = d
		d = d.AddDays(1)
	}
	return table
})

// TzolkinCalendar returns every day of the round rendered in order,
// "1 Imix" first and "13 Ajaw" last.
func TzolkinCalendar() []string {
	table := tzolkinTable()
	out := make([]string, len(table))
	for i, d := range table {
		out[i] = d.String()
	}
	return out
}

// AddDays returns the Tzolkʼin date n days after d; n may be negative.
// Number and name advance independently, mod 13 and mod 20.
func (d TzolkinDate) AddDays(n int) TzolkinDate {
	return TzolkinDate{
		number: floorMod(d.number-1+n, tzolkinNumbers) + 1,
		name:   floorMod(d.name-1+n, tzolkinNameCount) + 1,
	}
}

// Pos returns d's position in the round, 0 for 1 Imix through 259 for
// 13 Ajaw. The position is the unique solution in [0, 260) of
//
//	pos ≡ number-1 (mod 13)
//	pos ≡ name-1   (mod 20)
//
// which exists because 13 and 20 are coprime. Resolved by walking the
// 13 candidates that share the name residue.
func (d TzolkinDate) Pos() int {
	numRes := floorMod(d.number-1, tzolkinNumbers)
	pos := floorMod(d.name-1, tzolkinNameCount)
	for floorMod(pos, tzolkinNumbers) != numRes {
		pos += tzolkinNameCount
	}
	return pos
}

// CycleDay returns the 1-based day within the round: 1 for 1 Imix,
// 260 for 13 Ajaw.
func (d TzolkinDate) CycleDay() int { return d.Pos() + 1 }

// TzolkinFromDate converts a Gregorian date to its Tzolkʼin date.
func TzolkinFromDate(date time.Time) TzolkinDate {
	return tzolkinTable()[tzolkinCycle.posOf(date)]
}

// TzolkinFromDateString converts a Gregorian date string with the given
// layout to its Tzolkʼin date.
func TzolkinFromDateString(dateStr, layout string) (TzolkinDate, error) {
	date, err := ParseDateLayout(dateStr, layout)
	if err != nil {
		return TzolkinDate{}, err
	}
	return TzolkinFromDate(date), nil
}

// TzolkinDiff returns the number of days to travel forward from start to
// reach end, always in [0, 260). If end sits earlier on the round the
// difference wraps through the full round; it is never negative.
func TzolkinDiff(start, end TzolkinDate) int {
	return floorMod(end.Pos()-start.Pos(), TzolkinDays)
}

// NextTzolkin returns the first Gregorian date on or after start whose
// Tzolkʼin date is d.
func NextTzolkin(d TzolkinDate, start time.Time) time.Time {
	return tzolkinCycle.next(d.Pos(), start)
}

// LastTzolkin returns the first Gregorian date on or before start whose
// Tzolkʼin date is d.
func LastTzolkin(d TzolkinDate, start time.Time) time.Time {
	return tzolkinCycle.last(d.Pos(), start)
}

// TzolkinDates returns count Gregorian dates with Tzolkʼin date d,
// searching forward or backward from start. Empty for count < 1.
func TzolkinDates(d TzolkinDate, start time.Time, count int, forward bool) []time.Time {
	return tzolkinCycle.dates(d.Pos(), start, count, forward)
}

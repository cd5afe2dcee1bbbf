// Package calendar converts between the Gregorian calendar and the
// Mesoamerican Haabʼ and Tzolkʼin calendars.
//
// Both systems are fixed-length day cycles: the Haabʼ year is 365 days
// (18 months of 20 days plus the 5-day Wayebʼ), the Tzolkʼin round is
// 260 days (a 13-number cycle running against a 20-name cycle). All
// conversions are offset arithmetic against a fixed Gregorian epoch, so
// the same calendar date recurs exactly every cycle length with no
// leap-rule drift.
package calendar

import (
	"fmt"
	"time"
)

const (
	// epochJDN is the Julian day number of the shared Gregorian anchor
	// for both cycles, 1970-01-01. Under the GMT correlation (Julian
	// day 584283 = 4 Ajaw 8 Kumkʼu) the anchor day is 13 Chikchan in
	// the Tzolkʼin and 3 Kʼankʼin in the Haabʼ.
	epochJDN = 2440588

	// tzolkinEpochPos is the Tzolkʼin cycle position of the epoch,
	// counting from 1 Imix at position 0.
	tzolkinEpochPos = 64

	// haabEpochPos is the Haabʼ cycle position of the epoch,
	// counting from 0 Pop at position 0.
	haabEpochPos = 263
)

// midnightUTC truncates a date to midnight UTC so that offset dates
// come out as plain calendar days.
func midnightUTC(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// julianDayNumber converts a proleptic Gregorian year, month and day
// to a Julian day number (Fliegel & Van Flandern).
func julianDayNumber(y, m, d int) int {
	a := (m - 14) / 12
	jdn := 1461 * (y + 4800 + a) / 4
	jdn += 367 * (m - 2 - 12*a) / 12
	jdn -= 3 * ((y + 4900 + a) / 100) / 4
	return jdn + d - 32075
}

// daysFromEpoch returns the signed day count from the epoch to date.
// Negative for dates before 1970-01-01. Pure integer arithmetic, so
// it holds over the whole proleptic range rather than the ±292-year
// span a time.Duration can represent.
func daysFromEpoch(date time.Time) int {
	y, m, d := date.Date()
	return julianDayNumber(y, int(m), d) - epochJDN
}

// floorMod reduces a modulo n into [0, n), also for negative a.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, dateStr)
	}
	return date, nil
}

// ParseDateLayout parses a date string with a caller-supplied layout,
// e.g. "02.01.2006" for European day-first dates.
func ParseDateLayout(dateStr, layout string) (time.Time, error) {
	date, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrInvalidDate, dateStr, layout)
	}
	return date, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

package calendar

import "time"

// cycle holds the fixed parameters of one calendar round. Both calendars
// share the same search and conversion arithmetic and differ only in
// length and in where the epoch falls on the round.
type cycle struct {
	length   int // days in one full round
	epochPos int // round position of the epoch date
}

var (
	tzolkinCycle = cycle{length: TzolkinDays, epochPos: tzolkinEpochPos}
	haabCycle    = cycle{length: HaabDays, epochPos: haabEpochPos}
)

// posOf returns the round position of a Gregorian date.
func (c cycle) posOf(date time.Time) int {
	return floorMod(daysFromEpoch(date)+c.epochPos, c.length)
}

// next returns the first date on or after start whose round position is pos.
func (c cycle) next(pos int, start time.Time) time.Time {
	delta := floorMod(pos-c.posOf(start), c.length)
	return midnightUTC(start).AddDate(0, 0, delta)
}

// last returns the first date on or before start whose round position is pos.
func (c cycle) last(pos int, start time.Time) time.Time {
	delta := floorMod(c.posOf(start)-pos, c.length)
	return midnightUTC(start).AddDate(0, 0, -delta)
}

// dates returns count occurrences of pos, searching from start in the
// given direction. The first hit may be start itself; after that the same
// calendar date recurs exactly every c.length days, so the remaining
// results step by a full round. Returns nil for count < 1.
func (c cycle) dates(pos int, start time.Time, count int, forward bool) []time.Time {
	if count < 1 {
		return nil
	}

	var first time.Time
	step := c.length
	if forward {
		first = c.next(pos, start)
	} else {
		first = c.last(pos, start)
		step = -step
	}

	out := make([]time.Time, count)
	for i := range out {
		out[i] = first.AddDate(0, 0, i*step)
	}
	return out
}

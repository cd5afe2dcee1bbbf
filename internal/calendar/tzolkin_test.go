package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustTzolkin(t *testing.T, number, name int) TzolkinDate {
	t.Helper()
	d, err := NewTzolkin(number, name)
	if err != nil {
		t.Fatalf("NewTzolkin(%d, %d): %v", number, name, err)
	}
	return d
}

func TestNewTzolkin_Validation(t *testing.T) {
	tests := []struct {
		name    string
		number  int
		nameIdx int
		wantErr error
	}{
		{"valid first day", 1, 1, nil},
		{"valid last day", 13, 20, nil},
		{"number zero", 0, 5, ErrInvalidNumber},
		{"number fourteen", 14, 5, ErrInvalidNumber},
		{"name index zero", 7, 0, ErrInvalidName},
		{"name index twenty-one", 7, 21, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTzolkin(tt.number, tt.nameIdx)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("NewTzolkin(%d, %d) = %v, want nil", tt.number, tt.nameIdx, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTzolkin(%d, %d) = %v, want %v", tt.number, tt.nameIdx, err, tt.wantErr)
			}
		})
	}
}

func TestNewTzolkinFromName(t *testing.T) {
	d, err := NewTzolkinFromName(4, "Ajaw")
	if err != nil {
		t.Fatalf("NewTzolkinFromName(4, Ajaw): %v", err)
	}
	if d.NameNumber() != 20 || d.Number() != 4 {
		t.Errorf("got %s, want 4 Ajaw", d)
	}

	if _, err := NewTzolkinFromName(4, "Pop"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("NewTzolkinFromName with Haabʼ month name = %v, want ErrInvalidName", err)
	}
}

func TestTzolkinTable_Bijection(t *testing.T) {
	table := tzolkinTable()
	if len(table) != TzolkinDays {
		t.Fatalf("table has %d entries, want %d", len(table), TzolkinDays)
	}

	seen := make(map[TzolkinDate]int)
	for i, d := range table {
		if prev, ok := seen[d]; ok {
			t.Fatalf("entry %s appears at offsets %d and %d", d, prev, i)
		}
		seen[d] = i
		if d.Pos() != i {
			t.Errorf("table[%d] = %s has Pos() = %d", i, d, d.Pos())
		}
	}
}

func TestTzolkinAddDays_MatchesTable(t *testing.T) {
	table := tzolkinTable()
	for _, n := range []int{-1000, -261, -260, -1, 0, 1, 13, 20, 259, 260, 1000} {
		for i, d := range table {
			want := table[floorMod(i+n, TzolkinDays)]
			if got := d.AddDays(n); got != want {
				t.Fatalf("AddDays(%s, %d) = %s, want %s", d, n, got, want)
			}
		}
	}
}

func TestTzolkinFromDate_KnownDates(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(1970, time.January, 1), "13 Chikchan"},
		{date(2012, time.December, 21), "4 Ajaw"},
		{date(2019, time.March, 21), "10 Imix"},
		{date(1969, time.April, 13), "10 Ikʼ"},
		{date(1500, time.January, 1), "1 Imix"},
		{date(2400, time.March, 3), "11 Imix"},
	}

	for _, tt := range tests {
		if got := TzolkinFromDate(tt.date).String(); got != tt.want {
			t.Errorf("TzolkinFromDate(%s) = %q, want %q", FormatDate(tt.date), got, tt.want)
		}
	}
}

func TestTzolkinFromDate_SuccessiveDays(t *testing.T) {
	// Consecutive Gregorian days must map to consecutive Tzolkʼin days,
	// also centuries away from the anchor date.
	anchors := []time.Time{
		date(1500, time.January, 1),
		date(1650, time.June, 10),
		date(1970, time.January, 1),
		date(2400, time.March, 3),
	}
	for _, a := range anchors {
		prev := TzolkinFromDate(a)
		for i := 1; i <= 3; i++ {
			got := TzolkinFromDate(a.AddDate(0, 0, i))
			if want := prev.AddDays(1); got != want {
				t.Fatalf("day after %s = %s, want %s", FormatDate(a.AddDate(0, 0, i-1)), got, want)
			}
			prev = got
		}
	}
}

func TestTzolkinDiff_InverseLaw(t *testing.T) {
	table := tzolkinTable()
	for _, a := range table {
		for _, b := range table {
			ab, ba := TzolkinDiff(a, b), TzolkinDiff(b, a)
			if (ab+ba)%TzolkinDays != 0 {
				t.Fatalf("diff(%s, %s) + diff(%s, %s) = %d, not a multiple of %d",
					a, b, b, a, ab+ba, TzolkinDays)
			}
			if (ab == 0) != (a == b) {
				t.Fatalf("diff(%s, %s) = %d", a, b, ab)
			}
		}
	}
}

func TestTzolkinDiff_Wraps(t *testing.T) {
	a := mustTzolkin(t, 13, 5) // epoch day
	b := a.AddDays(10)
	if got := TzolkinDiff(a, b); got != 10 {
		t.Errorf("diff forward = %d, want 10", got)
	}
	if got := TzolkinDiff(b, a); got != TzolkinDays-10 {
		t.Errorf("diff backward = %d, want %d", got, TzolkinDays-10)
	}
}

func TestTzolkinSearch_Direction(t *testing.T) {
	start := date(2021, time.June, 15)
	target := mustTzolkin(t, 7, 4) // 7 Kʼan

	next := NextTzolkin(target, start)
	if next.Before(start) {
		t.Errorf("NextTzolkin = %s, before start %s", FormatDate(next), FormatDate(start))
	}
	last := LastTzolkin(target, start)
	if last.After(start) {
		t.Errorf("LastTzolkin = %s, after start %s", FormatDate(last), FormatDate(start))
	}

	if got := TzolkinFromDate(next); got != target {
		t.Errorf("TzolkinFromDate(next) = %s, want %s", got, target)
	}
	if got := TzolkinFromDate(last); got != target {
		t.Errorf("TzolkinFromDate(last) = %s, want %s", got, target)
	}

	// Forward and backward search must not skip a matching start date.
	same := TzolkinFromDate(start)
	if got := NextTzolkin(same, start); !got.Equal(start) {
		t.Errorf("NextTzolkin on matching start = %s, want %s", FormatDate(got), FormatDate(start))
	}
	if got := LastTzolkin(same, start); !got.Equal(start) {
		t.Errorf("LastTzolkin on matching start = %s, want %s", FormatDate(got), FormatDate(start))
	}
}

func TestTzolkinSearch_RoundTrip(t *testing.T) {
	// Converting a date and searching from the same date must return it,
	// in both directions, also before the epoch.
	dates := []time.Time{
		date(1500, time.January, 1),
		date(1904, time.February, 29),
		date(1969, time.December, 31),
		date(1970, time.January, 1),
		date(2012, time.December, 21),
		date(2100, time.July, 4),
		date(2400, time.March, 3),
	}
	for _, d := range dates {
		td := TzolkinFromDate(d)
		if got := NextTzolkin(td, d); !got.Equal(d) {
			t.Errorf("NextTzolkin round trip for %s = %s", FormatDate(d), FormatDate(got))
		}
		if got := LastTzolkin(td, d); !got.Equal(d) {
			t.Errorf("LastTzolkin round trip for %s = %s", FormatDate(d), FormatDate(got))
		}
	}
}

func TestTzolkinDates_Recurrence(t *testing.T) {
	start := date(2020, time.January, 1)
	target := mustTzolkin(t, 1, 1)

	forward := TzolkinDates(target, start, 3, true)
	if len(forward) != 3 {
		t.Fatalf("got %d results, want 3", len(forward))
	}
	for i, d := range forward {
		if got := TzolkinFromDate(d); got != target {
			t.Errorf("result %d = %s is %s, want %s", i, FormatDate(d), got, target)
		}
		if i > 0 {
			gap := int(d.Sub(forward[i-1]).Hours() / 24)
			if gap != TzolkinDays {
				t.Errorf("gap between results %d and %d is %d days, want %d", i-1, i, gap, TzolkinDays)
			}
		}
	}

	backward := TzolkinDates(target, start, 2, false)
	if len(backward) != 2 {
		t.Fatalf("got %d backward results, want 2", len(backward))
	}
	if backward[0].After(start) {
		t.Errorf("first backward result %s is after start", FormatDate(backward[0]))
	}
	if got := int(backward[0].Sub(backward[1]).Hours() / 24); got != TzolkinDays {
		t.Errorf("backward gap is %d days, want %d", got, TzolkinDays)
	}

	if got := TzolkinDates(target, start, 0, true); len(got) != 0 {
		t.Errorf("count 0 returned %d results", len(got))
	}
}

func TestTzolkinCycleDay(t *testing.T) {
	if got := mustTzolkin(t, 1, 1).CycleDay(); got != 1 {
		t.Errorf("CycleDay(1 Imix) = %d, want 1", got)
	}
	if got := mustTzolkin(t, 13, 20).CycleDay(); got != TzolkinDays {
		t.Errorf("CycleDay(13 Ajaw) = %d, want %d", got, TzolkinDays)
	}
}

func TestTzolkinCalendar(t *testing.T) {
	cal := TzolkinCalendar()
	if len(cal) != TzolkinDays {
		t.Fatalf("calendar has %d entries, want %d", len(cal), TzolkinDays)
	}
	if cal[0] != "1 Imix" {
		t.Errorf("first entry = %q, want \"1 Imix\"", cal[0])
	}
	if cal[TzolkinDays-1] != "13 Ajaw" {
		t.Errorf("last entry = %q, want \"13 Ajaw\"", cal[TzolkinDays-1])
	}
}

func TestTzolkinFromDateString(t *testing.T) {
	d, err := TzolkinFromDateString("21.03.2019", "02.01.2006")
	if err != nil {
		t.Fatalf("TzolkinFromDateString: %v", err)
	}
	if d.String() != "10 Imix" {
		t.Errorf("got %s, want 10 Imix", d)
	}

	if _, err := TzolkinFromDateString("not-a-date", "02.01.2006"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("malformed input = %v, want ErrInvalidDate", err)
	}
}

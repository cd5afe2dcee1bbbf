package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Day-name tables. Index 0 is unused so that the stored name index matches
// the conventional 1-based numbering. The names carry U+02BC modifier
// apostrophes for the glottal stops.
var tzolkinNames = [...]string{"",
	"Imix", "Ikʼ", "Akʼbʼal", "Kʼan", "Chikchan", "Kimi", "Manikʼ",
	"Lamat", "Muluk", "Ok", "Chuwen", "Ebʼ", "Bʼen", "Ix", "Men",
	"Kʼibʼ", "Kabʼan", "Etzʼnabʼ", "Kawak", "Ajaw",
}

var haabNames = [...]string{"",
	"Pop", "Woʼ", "Sip", "Sotzʼ", "Tzek", "Xul", "Yaxkʼin", "Mol",
	"Chʼen", "Yax", "Sakʼ", "Keh", "Mak", "Kʼankʼin", "Muwanʼ", "Pax",
	"Kʼayab", "Kumkʼu", "Wayebʼ",
}

// TzolkinDayNames returns the 20 Tzolkʼin day names in order, Imix first.
func TzolkinDayNames() []string {
	return append([]string(nil), tzolkinNames[1:]...)
}

// HaabMonthNames returns the 19 Haabʼ month names in order, Pop first.
func HaabMonthNames() []string {
	return append([]string(nil), haabNames[1:]...)
}

// nameFolder reduces a name for tolerant comparison: decompose (NFKD),
// then drop every rune that is not an ASCII letter or digit. This strips
// the modifier apostrophes, so user input like "kan" matches "Kʼan".
var nameFolder = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
})))

func foldName(s string) string {
	folded, _, err := transform.String(nameFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(folded)
}

// ParseTzolkinName parses a string to a Tzolkʼin day-name index, ignoring
// case and all non-alphanumeric or non-ASCII characters. Returns 0 when no
// day name matches; it never fails, to support tolerant input scanning.
func ParseTzolkinName(s string) int {
	return parseName(tzolkinNames[:], s)
}

// ParseHaabName parses a string to a Haabʼ month index the same way.
// Returns 0 when no month name matches.
func ParseHaabName(s string) int {
	return parseName(haabNames[:], s)
}

func parseName(table []string, s string) int {
	want := foldName(s)
	if want == "" {
		return 0
	}
	for i := 1; i < len(table); i++ {
		if foldName(table[i]) == want {
			return i
		}
	}
	return 0
}

// TzolkinNameNumber resolves a Tzolkʼin day name to its index, 1 for Imix
// through 20 for Ajaw. The match ignores case but is otherwise exact.
func TzolkinNameNumber(name string) (int, error) {
	for i := 1; i < len(tzolkinNames); i++ {
		if strings.EqualFold(tzolkinNames[i], name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a Tzolkʼin day name", ErrInvalidName, name)
}

// HaabNameNumber resolves a Haabʼ month name to its index, 1 for Pop
// through 19 for Wayebʼ.
func HaabNameNumber(name string) (int, error) {
	for i := 1; i < len(haabNames); i++ {
		if strings.EqualFold(haabNames[i], name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a Haabʼ month name", ErrInvalidName, name)
}

// ParseTzolkinDay parses a "<number> <name>" day string such as "7 Kʼan".
// The name match is tolerant, so "7 kan" parses too.
func ParseTzolkinDay(s string) (TzolkinDate, error) {
	number, name, err := splitDay(s)
	if err != nil {
		return TzolkinDate{}, err
	}
	idx := ParseTzolkinName(name)
	if idx == 0 {
		return TzolkinDate{}, fmt.Errorf("%w: no Tzolkʼin day name matches %q", ErrInvalidName, name)
	}
	return NewTzolkin(number, idx)
}

// ParseHaabDay parses a "<number> <name>" day string such as "0 Pop".
func ParseHaabDay(s string) (HaabDate, error) {
	number, name, err := splitDay(s)
	if err != nil {
		return HaabDate{}, err
	}
	idx := ParseHaabName(name)
	if idx == 0 {
		return HaabDate{}, fmt.Errorf("%w: no Haabʼ month name matches %q", ErrInvalidName, name)
	}
	return NewHaab(number, idx)
}

func splitDay(s string) (number int, name string, err error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, "", fmt.Errorf("%w: %q is not a \"<number> <name>\" day", ErrInvalidDate, s)
	}
	number, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: day number %q is not an integer", ErrInvalidNumber, fields[0])
	}
	return number, strings.Join(fields[1:], " "), nil
}

package calendar

import (
	"errors"
	"testing"
)

func TestParseTzolkinName_Tolerant(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Imix", 1},
		{"imix", 1},
		{"Kʼan", 4},
		{"kan", 4},
		{"K'AN", 4},
		{"Etzʼnabʼ", 18},
		{"etznab", 18},
		{"ajaw", 20},
		{"", 0},
		{"ʼʼ", 0},
		{"Pop", 0},
		{"nosuchday", 0},
	}

	for _, tt := range tests {
		if got := ParseTzolkinName(tt.input); got != tt.want {
			t.Errorf("ParseTzolkinName(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseHaabName_Tolerant(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Pop", 1},
		{"wayeb", 19},
		{"Wayebʼ", 19},
		{"WAYEB'", 19},
		{"sotz", 4},
		{"Kʼankʼin", 14},
		{"kankin", 14},
		{"Imix", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ParseHaabName(tt.input); got != tt.want {
			t.Errorf("ParseHaabName(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestNameNumber_Strict(t *testing.T) {
	if got, err := TzolkinNameNumber("Chikchan"); err != nil || got != 5 {
		t.Errorf("TzolkinNameNumber(Chikchan) = %d, %v", got, err)
	}
	if got, err := TzolkinNameNumber("chikchan"); err != nil || got != 5 {
		t.Errorf("TzolkinNameNumber(chikchan) = %d, %v", got, err)
	}
	// The strict resolver does not strip punctuation.
	if _, err := TzolkinNameNumber("kan"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("TzolkinNameNumber(kan) = %v, want ErrInvalidName", err)
	}

	if got, err := HaabNameNumber("Wayebʼ"); err != nil || got != 19 {
		t.Errorf("HaabNameNumber(Wayebʼ) = %d, %v", got, err)
	}
	if _, err := HaabNameNumber("wayeb"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("HaabNameNumber(wayeb) = %v, want ErrInvalidName", err)
	}
}

func TestParseTzolkinDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"7 Kʼan", "7 Kʼan", nil},
		{"7 kan", "7 Kʼan", nil},
		{"  13   Ajaw ", "13 Ajaw", nil},
		{"0 Imix", "", ErrInvalidNumber},
		{"7 Pop", "", ErrInvalidName},
		{"seven Kʼan", "", ErrInvalidNumber},
		{"Kʼan", "", ErrInvalidDate},
		{"", "", ErrInvalidDate},
	}

	for _, tt := range tests {
		got, err := ParseTzolkinDay(tt.input)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTzolkinDay(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTzolkinDay(%q): %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseTzolkinDay(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseHaabDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"0 Pop", "0 Pop", nil},
		{"4 wayeb", "4 Wayebʼ", nil},
		{"5 wayeb", "", ErrInvalidNumber},
		{"0 Imix", "", ErrInvalidName},
		{"Pop", "", ErrInvalidDate},
	}

	for _, tt := range tests {
		got, err := ParseHaabDay(tt.input)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseHaabDay(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHaabDay(%q): %v", tt.input, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseHaabDay(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNameTables(t *testing.T) {
	tz := TzolkinDayNames()
	if len(tz) != 20 || tz[0] != "Imix" || tz[19] != "Ajaw" {
		t.Errorf("TzolkinDayNames() = %v", tz)
	}
	haab := HaabMonthNames()
	if len(haab) != 19 || haab[0] != "Pop" || haab[18] != "Wayebʼ" {
		t.Errorf("HaabMonthNames() = %v", haab)
	}
}

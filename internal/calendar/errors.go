package calendar

import "errors"

// Error kinds reported by date construction and parsing. Call sites wrap
// these with fmt.Errorf and %w, so callers can match with errors.Is.
var (
	// ErrInvalidNumber reports a day number outside its cycle's valid range.
	ErrInvalidNumber = errors.New("invalid day number")

	// ErrInvalidName reports a day name or name index not in the fixed table.
	ErrInvalidName = errors.New("invalid day name")

	// ErrInvalidDate reports a malformed Gregorian or calendar-day input.
	ErrInvalidDate = errors.New("invalid date")
)

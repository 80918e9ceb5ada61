package schedule

import "errors"

var (
	// ErrInvalidTimeFormat is returned when a time string matches none of the
	// accepted forms ("24:xx", "HH:MM", "h:mm AM/PM").
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidDateFormat is returned when a date string is not "YYYY-MM-DD".
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrMissingDate is returned when a request that needs a date omits it.
	ErrMissingDate = errors.New("missing date")

	// ErrInvalidMonth is returned for a month outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidInterval is returned when a parsed interval has end before start.
	ErrInvalidInterval = errors.New("interval end precedes start")
)

package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"slotwise/models"
)

// ParseTimeOfDay normalizes a time-of-day string to minutes since midnight.
//
// Accepted forms, tried in order:
//  1. a literal "24:" prefix, which clamps to 23:59 regardless of the minutes;
//  2. 24-hour "H:MM" or "HH:MM";
//  3. 12-hour "h:mm AM"/"h:mm PM" (meridiem case-insensitive).
//
// Anything else fails with ErrInvalidTimeFormat.
func ParseTimeOfDay(s string) (models.TimeOfDay, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "24:") {
		return models.DayEnd, nil
	}

	if hour, minute, ok := parse24Hour(s); ok {
		return hour*60 + minute, nil
	}

	if t, err := time.Parse("3:04 PM", strings.ToUpper(s)); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

func parse24Hour(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// FormatTimeOfDay renders minutes since midnight as zero-padded "HH:MM".
func FormatTimeOfDay(t models.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// ParseDate validates a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return d, nil
}

// parseTimeRange parses a start/end pair into a busy-or-free interval.
func parseTimeRange(tr models.TimeRange) (models.Interval, error) {
	start, err := ParseTimeOfDay(tr.StartTime)
	if err != nil {
		return models.Interval{}, err
	}
	end, err := ParseTimeOfDay(tr.EndTime)
	if err != nil {
		return models.Interval{}, err
	}
	if end < start {
		return models.Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, tr.StartTime, tr.EndTime)
	}
	return models.Interval{Start: start, End: end}, nil
}

package schedule

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
)

// ResolveMonth resolves every date of a calendar month from asOf (inclusive)
// through the month's last day and returns, in ascending order, the dates with
// at least one free slot. Dates before asOf are skipped outright.
//
// The month's rules are fetched up front, one query per kind, instead of one
// override lookup per date.
func (s *DefaultScheduleService) ResolveMonth(ctx context.Context, userID string, year, month int, asOf time.Time) (*models.MonthAvailability, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	result := &models.MonthAvailability{
		Year:          year,
		Month:         month,
		AvailableDays: []string{},
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, asOf.Location())
	last := first.AddDate(0, 1, -1)
	today := asOf.Format(dateLayout)

	recurring, err := s.Repo.ListRecurring(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recurring rules: %w", err)
	}
	busyByWeekday := make(map[string][]models.Interval, len(recurring))
	for _, rule := range recurring {
		busyByWeekday[rule.Weekday] = rule.Intervals
	}

	overrides, err := s.Repo.ListOverridesInMonth(ctx, userID, first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	overrideByDate := make(map[string][]models.Interval, len(overrides))
	for _, rule := range overrides {
		overrideByDate[rule.Date] = rule.Intervals
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)
		if date < today {
			continue
		}

		busy, open := overrideByDate[date]
		if !open {
			busy, open = busyByWeekday[WeekdayName(day)]
		}
		if !open {
			continue
		}
		if len(InvertDay(MergeIntervals(busy))) > 0 {
			result.AvailableDays = append(result.AvailableDays, date)
		}
	}
	return result, nil
}

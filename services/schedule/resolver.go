package schedule

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
)

// ResolveDay computes the availability of one date.
//
// Precedence, highest first: dates before asOf are never bookable; an override
// for the date is authoritative; otherwise the recurring rule for the date's
// weekday supplies the busy set. A weekday with no recurring rule is fully
// busy — a day not explicitly opened stays closed.
func (s *DefaultScheduleService) ResolveDay(ctx context.Context, userID, date string, asOf time.Time) (*models.ResolvedDay, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	resolved := &models.ResolvedDay{
		Date:      day.Format(dateLayout),
		Weekday:   WeekdayName(day),
		FreeSlots: []models.TimeSlot{},
	}

	today := asOf.Format(dateLayout)
	if resolved.Date < today {
		return resolved, nil
	}

	busy, open, err := s.busyIntervalsFor(ctx, userID, resolved.Date, resolved.Weekday)
	if err != nil {
		return nil, err
	}
	if !open {
		return resolved, nil
	}

	for _, slot := range InvertDay(MergeIntervals(busy)) {
		resolved.FreeSlots = append(resolved.FreeSlots, models.TimeSlot{
			StartTime: FormatTimeOfDay(slot.Start),
			EndTime:   FormatTimeOfDay(slot.End),
		})
	}
	resolved.Available = len(resolved.FreeSlots) > 0
	return resolved, nil
}

// busyIntervalsFor returns the authoritative busy set for a date, and whether
// the date is opened by any rule at all.
func (s *DefaultScheduleService) busyIntervalsFor(ctx context.Context, userID, date, weekday string) ([]models.Interval, bool, error) {
	override, err := s.Repo.FindOverride(ctx, userID, date)
	if err != nil {
		return nil, false, fmt.Errorf("find override for %s: %w", date, err)
	}
	if override != nil {
		return override.Intervals, true, nil
	}

	rule, err := s.Repo.FindRecurring(ctx, userID, weekday)
	if err != nil {
		return nil, false, fmt.Errorf("find recurring rule for %s: %w", weekday, err)
	}
	if rule == nil {
		return nil, false, nil
	}
	return rule.Intervals, true, nil
}

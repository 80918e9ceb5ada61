package schedule

import (
	"context"
	"fmt"

	"slotwise/models"
)

// The mutators all follow the same shape: parse and normalize the whole
// request into a plan first, then write each affected rule with one atomic
// replace. A malformed time string therefore fails the request before any
// write lands; entries missing a date are skipped, never silently coerced.

type plannedOverride struct {
	date string
	busy []models.Interval
}

type plannedPunch struct {
	date string
	busy []models.Interval
}

type writePlan struct {
	recurring map[string][]models.Interval // weekday -> busy set, all seven present
	overrides []plannedOverride
	punches   []plannedPunch
}

// ApplySchedule applies a batch write request. The recurring section replaces
// all recurring rules only when present; the remaining sections are applied in
// order after it.
func (s *DefaultScheduleService) ApplySchedule(ctx context.Context, userID string, req models.ScheduleWriteRequest) error {
	plan, err := buildWritePlan(req)
	if err != nil {
		return err
	}

	if len(req.RecurringDays) > 0 {
		if err := s.writeRecurring(ctx, userID, plan.recurring); err != nil {
			return err
		}
	}
	if err := s.writeOverrides(ctx, userID, plan.overrides); err != nil {
		return err
	}
	for _, p := range plan.punches {
		if err := s.punchBusy(ctx, userID, p.date, p.busy); err != nil {
			return err
		}
	}
	return nil
}

func buildWritePlan(req models.ScheduleWriteRequest) (*writePlan, error) {
	plan := &writePlan{}

	var err error
	if plan.recurring, err = planRecurring(req.RecurringDays); err != nil {
		return nil, err
	}

	overrides, err := planSpecific(req.SpecificDays)
	if err != nil {
		return nil, err
	}
	unavailable, err := planUnavailableDates(req.UnavailableDates)
	if err != nil {
		return nil, err
	}
	plan.overrides = append(overrides, unavailable...)

	if plan.punches, err = planPunches(req.SpecificUnavailable); err != nil {
		return nil, err
	}
	return plan, nil
}

// planRecurring inverts each weekday's available window into the busy set to
// store. Weekdays without a window are fully busy; entries that do not name a
// weekday are ignored.
func planRecurring(days []models.RecurringDayRequest) (map[string][]models.Interval, error) {
	available := make(map[string]models.Interval)
	for _, d := range days {
		weekday, ok := canonicalWeekday(d.Day)
		if !ok {
			continue
		}
		iv, err := parseTimeRange(models.TimeRange{StartTime: d.StartTime, EndTime: d.EndTime})
		if err != nil {
			return nil, fmt.Errorf("recurring day %s: %w", weekday, err)
		}
		available[weekday] = iv
	}

	busyByDay := make(map[string][]models.Interval, len(Weekdays))
	for _, weekday := range Weekdays {
		if iv, ok := available[weekday]; ok {
			busyByDay[weekday] = InvertDay(MergeIntervals([]models.Interval{iv}))
		} else {
			busyByDay[weekday] = []models.Interval{models.FullDayBusy()}
		}
	}
	return busyByDay, nil
}

func planSpecific(days []models.SpecificDayRequest) ([]plannedOverride, error) {
	var planned []plannedOverride
	for _, d := range days {
		if d.Date == "" {
			continue
		}
		day, err := ParseDate(d.Date)
		if err != nil {
			return nil, err
		}
		date := day.Format(dateLayout)

		if d.Unavailable {
			planned = append(planned, plannedOverride{date: date, busy: []models.Interval{models.FullDayBusy()}})
			continue
		}

		available := make([]models.Interval, 0, len(d.Times))
		for _, tr := range d.Times {
			iv, err := parseTimeRange(tr)
			if err != nil {
				return nil, fmt.Errorf("specific day %s: %w", date, err)
			}
			available = append(available, iv)
		}
		planned = append(planned, plannedOverride{date: date, busy: InvertDay(MergeIntervals(available))})
	}
	return planned, nil
}

func planUnavailableDates(dates []string) ([]plannedOverride, error) {
	var planned []plannedOverride
	for _, ds := range dates {
		if ds == "" {
			continue
		}
		day, err := ParseDate(ds)
		if err != nil {
			return nil, err
		}
		planned = append(planned, plannedOverride{
			date: day.Format(dateLayout),
			busy: []models.Interval{models.FullDayBusy()},
		})
	}
	return planned, nil
}

func planPunches(entries []models.SpecificUnavailableRequest) ([]plannedPunch, error) {
	var planned []plannedPunch
	for _, e := range entries {
		if e.Date == "" {
			continue
		}
		day, err := ParseDate(e.Date)
		if err != nil {
			return nil, err
		}
		busy := make([]models.Interval, 0, len(e.Times))
		for _, tr := range e.Times {
			iv, err := parseTimeRange(tr)
			if err != nil {
				return nil, fmt.Errorf("unavailable times for %s: %w", e.Date, err)
			}
			busy = append(busy, iv)
		}
		planned = append(planned, plannedPunch{date: day.Format(dateLayout), busy: busy})
	}
	return planned, nil
}

// SetRecurring replaces all seven recurring rules for the user. Each request
// entry opens one weekday with an available window; the stored intervals are
// the window's complement. Absent weekdays become fully busy.
func (s *DefaultScheduleService) SetRecurring(ctx context.Context, userID string, days []models.RecurringDayRequest) error {
	busyByDay, err := planRecurring(days)
	if err != nil {
		return err
	}
	return s.writeRecurring(ctx, userID, busyByDay)
}

func (s *DefaultScheduleService) writeRecurring(ctx context.Context, userID string, busyByDay map[string][]models.Interval) error {
	for _, weekday := range Weekdays {
		rule := models.DayRule{
			UserID:    userID,
			Kind:      models.RuleRecurring,
			Weekday:   weekday,
			Intervals: busyByDay[weekday],
		}
		if _, err := s.Repo.UpsertRule(ctx, rule); err != nil {
			return fmt.Errorf("upsert recurring rule for %s: %w", weekday, err)
		}
	}
	return nil
}

// SetSpecific replaces the override for each listed date: a full-day busy span
// when the date is marked unavailable, otherwise the complement of the stated
// available windows.
func (s *DefaultScheduleService) SetSpecific(ctx context.Context, userID string, days []models.SpecificDayRequest) error {
	planned, err := planSpecific(days)
	if err != nil {
		return err
	}
	return s.writeOverrides(ctx, userID, planned)
}

// MarkDatesUnavailable marks each date fully busy via its override.
func (s *DefaultScheduleService) MarkDatesUnavailable(ctx context.Context, userID string, dates []string) error {
	planned, err := planUnavailableDates(dates)
	if err != nil {
		return err
	}
	return s.writeOverrides(ctx, userID, planned)
}

func (s *DefaultScheduleService) writeOverrides(ctx context.Context, userID string, planned []plannedOverride) error {
	for _, p := range planned {
		rule := models.DayRule{
			UserID:    userID,
			Kind:      models.RuleOverride,
			Date:      p.date,
			Intervals: p.busy,
		}
		if _, err := s.Repo.UpsertRule(ctx, rule); err != nil {
			return fmt.Errorf("upsert override for %s: %w", p.date, err)
		}
	}
	return nil
}

// AddBusyIntervals merges busy spans into a date's override, promoting the
// matching recurring rule into a fresh override first when none exists. An
// override that already exists is amended as-is, even when it holds zero
// intervals: an explicitly emptied override means "fully available" and is
// not re-seeded.
func (s *DefaultScheduleService) AddBusyIntervals(ctx context.Context, userID, date string, busy []models.Interval) error {
	if date == "" {
		return ErrMissingDate
	}
	day, err := ParseDate(date)
	if err != nil {
		return err
	}
	date = day.Format(dateLayout)

	return s.punchBusy(ctx, userID, date, busy)
}

func (s *DefaultScheduleService) punchBusy(ctx context.Context, userID, date string, busy []models.Interval) error {
	override, err := s.Repo.FindOverride(ctx, userID, date)
	if err != nil {
		return fmt.Errorf("find override for %s: %w", date, err)
	}

	if override == nil {
		seed, err := s.recurringSeed(ctx, userID, date)
		if err != nil {
			return err
		}
		rule := models.DayRule{
			UserID:    userID,
			Kind:      models.RuleOverride,
			Date:      date,
			Intervals: MergeIntervals(append(seed, busy...)),
		}
		if _, err := s.Repo.UpsertRule(ctx, rule); err != nil {
			return fmt.Errorf("seed override for %s: %w", date, err)
		}
		return nil
	}

	combined := make([]models.Interval, 0, len(override.Intervals)+len(busy))
	combined = append(combined, override.Intervals...)
	combined = append(combined, busy...)
	if err := s.Repo.ReplaceIntervals(ctx, override.ID, MergeIntervals(combined)); err != nil {
		return fmt.Errorf("amend override for %s: %w", date, err)
	}
	return nil
}

// recurringSeed copies the busy set of the recurring rule matching the date's
// weekday, or returns an empty set when no rule matches.
func (s *DefaultScheduleService) recurringSeed(ctx context.Context, userID, date string) ([]models.Interval, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	rule, err := s.Repo.FindRecurring(ctx, userID, WeekdayName(day))
	if err != nil {
		return nil, fmt.Errorf("find recurring rule for %s: %w", date, err)
	}
	if rule == nil {
		return nil, nil
	}
	seed := make([]models.Interval, len(rule.Intervals))
	copy(seed, rule.Intervals)
	return seed, nil
}

// DeleteAll removes every recurring rule and override owned by the user.
func (s *DefaultScheduleService) DeleteAll(ctx context.Context, userID string) error {
	if err := s.Repo.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("delete schedule for user %s: %w", userID, err)
	}
	return nil
}

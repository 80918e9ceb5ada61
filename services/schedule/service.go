package schedule

import (
	"context"
	"strings"
	"time"

	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
)

const dateLayout = "2006-01-02"

// Weekdays are the canonical lowercase weekday names, Monday first.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayName returns the canonical lowercase weekday name of a date.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// canonicalWeekday maps arbitrary-case input to a canonical weekday name,
// reporting whether it named a weekday at all.
func canonicalWeekday(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range Weekdays {
		if s == w {
			return w, true
		}
	}
	return "", false
}

// ScheduleService resolves and mutates a user's availability.
//
// Read operations take an explicit asOf reference date so that "past" is
// deterministic; callers pass time.Now(). The service performs no locking of
// its own: concurrent writes to the same user's rules must be serialized by
// the caller, and each repository write is atomic at single-rule granularity.
type ScheduleService interface {
	// ResolveDay computes the free slots of one date, applying
	// override-over-recurring precedence and the default-closed policy.
	ResolveDay(ctx context.Context, userID, date string, asOf time.Time) (*models.ResolvedDay, error)

	// ResolveMonth lists the dates of a month, from asOf onward, that have at
	// least one free slot.
	ResolveMonth(ctx context.Context, userID string, year, month int, asOf time.Time) (*models.MonthAvailability, error)

	// ApplySchedule applies a batch write request: recurring replacement,
	// specific-day overrides, blanket unavailable dates, and incremental busy
	// additions, in that order.
	ApplySchedule(ctx context.Context, userID string, req models.ScheduleWriteRequest) error

	// SetRecurring replaces all seven recurring rules. Weekdays without an
	// available window become fully busy.
	SetRecurring(ctx context.Context, userID string, days []models.RecurringDayRequest) error

	// SetSpecific replaces the overrides for the listed dates.
	SetSpecific(ctx context.Context, userID string, days []models.SpecificDayRequest) error

	// MarkDatesUnavailable marks each date fully busy.
	MarkDatesUnavailable(ctx context.Context, userID string, dates []string) error

	// AddBusyIntervals merges busy spans into a date's override, seeding the
	// override from the matching recurring rule when no override exists yet.
	AddBusyIntervals(ctx context.Context, userID, date string, busy []models.Interval) error

	// DeleteAll removes every rule owned by the user.
	DeleteAll(ctx context.Context, userID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// NewScheduleService constructs a ScheduleService backed by the given repository.
func NewScheduleService(repo scheduleRepo.ScheduleRepository) *DefaultScheduleService {
	return &DefaultScheduleService{Repo: repo}
}

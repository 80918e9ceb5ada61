package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func TestAddBusyIntervals_PromotesRecurringThenPunches(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	// Tuesday recurring busy set [00:00, 09:00).
	_, err := repo.UpsertRule(ctx, models.DayRule{
		UserID: "u1", Kind: models.RuleRecurring, Weekday: "tuesday",
		Intervals: []models.Interval{iv(0, 540)},
	})
	require.NoError(t, err)

	// 2024-06-11 is a Tuesday with no override yet.
	require.NoError(t, svc.AddBusyIntervals(ctx, "u1", "2024-06-11", []models.Interval{iv(600, 630)}))

	override, err := repo.FindOverride(ctx, "u1", "2024-06-11")
	require.NoError(t, err)
	require.NotNil(t, override)
	// Non-adjacent spans stay separate after the merge.
	assert.Equal(t, []models.Interval{iv(0, 540), iv(600, 630)}, override.Intervals)

	// The recurring rule itself is untouched.
	rule, err := repo.FindRecurring(ctx, "u1", "tuesday")
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{iv(0, 540)}, rule.Intervals)
}

func TestAddBusyIntervals_MergesIntoExistingOverride(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	require.NoError(t, svc.AddBusyIntervals(ctx, "u1", "2024-06-12", []models.Interval{iv(600, 660)}))
	require.NoError(t, svc.AddBusyIntervals(ctx, "u1", "2024-06-12", []models.Interval{iv(630, 720)}))

	override, err := repo.FindOverride(ctx, "u1", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{iv(600, 720)}, override.Intervals)
}

func TestAddBusyIntervals_DoesNotReseedEmptyOverride(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	_, err := repo.UpsertRule(ctx, models.DayRule{
		UserID: "u1", Kind: models.RuleRecurring, Weekday: "wednesday",
		Intervals: []models.Interval{iv(0, 540)},
	})
	require.NoError(t, err)

	// An explicitly fully-available override (zero intervals) on a Wednesday.
	_, err = repo.UpsertRule(ctx, models.DayRule{
		UserID: "u1", Kind: models.RuleOverride, Date: "2024-06-12",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddBusyIntervals(ctx, "u1", "2024-06-12", []models.Interval{iv(600, 630)}))

	override, err := repo.FindOverride(ctx, "u1", "2024-06-12")
	require.NoError(t, err)
	// Only the punched span; the recurring busy set was not copied back in.
	assert.Equal(t, []models.Interval{iv(600, 630)}, override.Intervals)
}

func TestApplySchedule_FullBatch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	req := models.ScheduleWriteRequest{
		RecurringDays: []models.RecurringDayRequest{
			{Day: "monday", StartTime: "9:00 AM", EndTime: "5:00 PM"},
			{Day: "tuesday", StartTime: "10:00", EndTime: "24:00"},
		},
		SpecificDays: []models.SpecificDayRequest{
			{Date: "2024-06-12", Times: []models.TimeRange{{StartTime: "13:00", EndTime: "15:00"}}},
			{Date: ""}, // missing date entries are skipped
		},
		UnavailableDates: []string{"2024-06-13"},
		SpecificUnavailable: []models.SpecificUnavailableRequest{
			{Date: "2024-06-10", Times: []models.TimeRange{{StartTime: "10:00", EndTime: "10:30"}}},
		},
	}
	require.NoError(t, svc.ApplySchedule(ctx, "u1", req))

	// Recurring: monday open 09:00-17:00, wednesday untouched by the request
	// becomes fully busy.
	mon, _ := repo.FindRecurring(ctx, "u1", "monday")
	assert.Equal(t, []models.Interval{iv(0, 540), iv(1020, 1439)}, mon.Intervals)
	wed, _ := repo.FindRecurring(ctx, "u1", "wednesday")
	assert.Equal(t, []models.Interval{iv(0, 1439)}, wed.Intervals)

	// Tuesday end "24:00" clamps to the sentinel, leaving no trailing busy span.
	tue, _ := repo.FindRecurring(ctx, "u1", "tuesday")
	assert.Equal(t, []models.Interval{iv(0, 600)}, tue.Intervals)

	// Specific day stores the complement of its available window.
	specific, _ := repo.FindOverride(ctx, "u1", "2024-06-12")
	assert.Equal(t, []models.Interval{iv(0, 780), iv(900, 1439)}, specific.Intervals)

	// Blanket unavailable date is a single full-day busy span.
	blocked, _ := repo.FindOverride(ctx, "u1", "2024-06-13")
	assert.Equal(t, []models.Interval{models.FullDayBusy()}, blocked.Intervals)

	// The punch on Monday 2024-06-10 seeded from the recurring busy set.
	punched, _ := repo.FindOverride(ctx, "u1", "2024-06-10")
	assert.Equal(t, []models.Interval{iv(0, 540), iv(600, 630), iv(1020, 1439)}, punched.Intervals)
}

func TestApplySchedule_MalformedTimeFailsBeforeAnyWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	req := models.ScheduleWriteRequest{
		RecurringDays: []models.RecurringDayRequest{
			{Day: "monday", StartTime: "09:00", EndTime: "17:00"},
		},
		SpecificDays: []models.SpecificDayRequest{
			{Date: "2024-06-12", Times: []models.TimeRange{{StartTime: "13:61", EndTime: "15:00"}}},
		},
	}
	err := svc.ApplySchedule(ctx, "u1", req)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	// Nothing was written, not even the valid recurring section.
	rule, _ := repo.FindRecurring(ctx, "u1", "monday")
	assert.Nil(t, rule)
}

func TestSetRecurring_RejectsInvertedWindow(t *testing.T) {
	svc := NewScheduleService(newFakeRepo())
	err := svc.SetRecurring(context.Background(), "u1", []models.RecurringDayRequest{
		{Day: "monday", StartTime: "17:00", EndTime: "09:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestDeleteAll(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetRecurring(ctx, "u1", []models.RecurringDayRequest{
		{Day: "monday", StartTime: "09:00", EndTime: "17:00"},
	}))
	require.NoError(t, svc.MarkDatesUnavailable(ctx, "u1", []string{"2024-06-13"}))
	require.NoError(t, svc.MarkDatesUnavailable(ctx, "u2", []string{"2024-06-13"}))

	require.NoError(t, svc.DeleteAll(ctx, "u1"))

	gone, _ := repo.FindRecurring(ctx, "u1", "monday")
	assert.Nil(t, gone)
	kept, _ := repo.FindOverride(ctx, "u2", "2024-06-13")
	assert.NotNil(t, kept)
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

// 2024-06-10 is a Monday.
var asOf = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestResolveDay_NoRulesMeansClosed(t *testing.T) {
	svc := NewScheduleService(newFakeRepo())

	resolved, err := svc.ResolveDay(context.Background(), "u1", "2024-06-10", asOf)
	require.NoError(t, err)
	assert.False(t, resolved.Available)
	assert.Empty(t, resolved.FreeSlots)
	assert.Equal(t, "monday", resolved.Weekday)
}

func TestResolveDay_RecurringWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	err := svc.SetRecurring(ctx, "u1", []models.RecurringDayRequest{
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	})
	require.NoError(t, err)

	// Stored busy set is the complement of the available window.
	rule, err := repo.FindRecurring(ctx, "u1", "monday")
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Equal(t, []models.Interval{iv(0, 540), iv(1020, 1439)}, rule.Intervals)

	resolved, err := svc.ResolveDay(ctx, "u1", "2024-06-10", asOf)
	require.NoError(t, err)
	assert.True(t, resolved.Available)
	assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, resolved.FreeSlots)

	// Tuesday was absent from the request, so it is fully busy.
	tue, err := svc.ResolveDay(ctx, "u1", "2024-06-11", asOf)
	require.NoError(t, err)
	assert.False(t, tue.Available)
	assert.Empty(t, tue.FreeSlots)
}

func TestResolveDay_OverrideBeatsRecurring(t *testing.T) {
	svc := NewScheduleService(newFakeRepo())
	ctx := context.Background()

	require.NoError(t, svc.SetRecurring(ctx, "u1", []models.RecurringDayRequest{
		{Day: "monday", StartTime: "09:00", EndTime: "17:00"},
	}))
	require.NoError(t, svc.SetSpecific(ctx, "u1", []models.SpecificDayRequest{
		{Date: "2024-06-10", Unavailable: true},
	}))

	resolved, err := svc.ResolveDay(ctx, "u1", "2024-06-10", asOf)
	require.NoError(t, err)
	assert.False(t, resolved.Available)
	assert.Empty(t, resolved.FreeSlots)

	// Other Mondays keep the recurring window.
	next, err := svc.ResolveDay(ctx, "u1", "2024-06-17", asOf)
	require.NoError(t, err)
	assert.True(t, next.Available)
}

func TestResolveDay_PastDateIsNeverBookable(t *testing.T) {
	svc := NewScheduleService(newFakeRepo())
	ctx := context.Background()

	require.NoError(t, svc.SetRecurring(ctx, "u1", []models.RecurringDayRequest{
		{Day: "friday", StartTime: "00:00", EndTime: "23:59"},
	}))

	// 2024-05-31 is a Friday before asOf.
	resolved, err := svc.ResolveDay(ctx, "u1", "2024-05-31", asOf)
	require.NoError(t, err)
	assert.False(t, resolved.Available)
	assert.Empty(t, resolved.FreeSlots)
}

func TestResolveDay_EmptyOverrideMeansFullyAvailable(t *testing.T) {
	repo := newFakeRepo()
	svc := NewScheduleService(repo)
	ctx := context.Background()

	_, err := repo.UpsertRule(ctx, models.DayRule{
		UserID: "u1", Kind: models.RuleOverride, Date: "2024-06-10",
	})
	require.NoError(t, err)

	resolved, err := svc.ResolveDay(ctx, "u1", "2024-06-10", asOf)
	require.NoError(t, err)
	assert.True(t, resolved.Available)
	assert.Equal(t, []models.TimeSlot{{StartTime: "00:00", EndTime: "23:59"}}, resolved.FreeSlots)
}

func TestResolveDay_RejectsBadDate(t *testing.T) {
	svc := NewScheduleService(newFakeRepo())
	_, err := svc.ResolveDay(context.Background(), "u1", "June 10th", asOf)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

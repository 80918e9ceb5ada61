package schedule

import (
	"context"
	"fmt"

	"slotwise/models"
)

// fakeScheduleRepo is an in-memory ScheduleRepository for engine tests. Read
// calls are counted so tests can assert on query patterns.
type fakeScheduleRepo struct {
	rules  []models.DayRule
	nextID int

	findOverrideCalls  int
	listOverridesCalls int
}

func newFakeRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{}
}

func (f *fakeScheduleRepo) FindRecurring(_ context.Context, userID, weekday string) (*models.DayRule, error) {
	for i := range f.rules {
		r := &f.rules[i]
		if r.UserID == userID && r.Kind == models.RuleRecurring && r.Weekday == weekday {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindOverride(_ context.Context, userID, date string) (*models.DayRule, error) {
	f.findOverrideCalls++
	for i := range f.rules {
		r := &f.rules[i]
		if r.UserID == userID && r.Kind == models.RuleOverride && r.Date == date {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) ListRecurring(_ context.Context, userID string) ([]models.DayRule, error) {
	var out []models.DayRule
	for _, r := range f.rules {
		if r.UserID == userID && r.Kind == models.RuleRecurring {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListOverridesInMonth(_ context.Context, userID, from, to string) ([]models.DayRule, error) {
	f.listOverridesCalls++
	var out []models.DayRule
	for _, r := range f.rules {
		if r.UserID == userID && r.Kind == models.RuleOverride && r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpsertRule(_ context.Context, rule models.DayRule) (*models.DayRule, error) {
	for i := range f.rules {
		r := &f.rules[i]
		if r.UserID != rule.UserID || r.Kind != rule.Kind {
			continue
		}
		if (rule.Kind == models.RuleRecurring && r.Weekday == rule.Weekday) ||
			(rule.Kind == models.RuleOverride && r.Date == rule.Date) {
			r.Intervals = rule.Intervals
			cp := *r
			return &cp, nil
		}
	}
	f.nextID++
	rule.ID = fmt.Sprintf("rule-%d", f.nextID)
	f.rules = append(f.rules, rule)
	cp := rule
	return &cp, nil
}

func (f *fakeScheduleRepo) ReplaceIntervals(_ context.Context, ruleID string, intervals []models.Interval) error {
	for i := range f.rules {
		if f.rules[i].ID == ruleID {
			f.rules[i].Intervals = intervals
			return nil
		}
	}
	return fmt.Errorf("rule %s not found", ruleID)
}

func (f *fakeScheduleRepo) DeleteAllForUser(_ context.Context, userID string) error {
	kept := f.rules[:0]
	for _, r := range f.rules {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.rules = kept
	return nil
}

// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"fmt"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists DayRule records. Lookups that find nothing return
// (nil, nil) rather than an error; writes are atomic at single-rule granularity,
// which is the mutual-exclusion boundary the engine relies on.
type ScheduleRepository interface {
	FindRecurring(ctx context.Context, userID, weekday string) (*models.DayRule, error)
	FindOverride(ctx context.Context, userID, date string) (*models.DayRule, error)
	ListRecurring(ctx context.Context, userID string) ([]models.DayRule, error)

	// ListOverridesInMonth returns the overrides whose date falls in
	// [from, to], both "YYYY-MM-DD" inclusive.
	ListOverridesInMonth(ctx context.Context, userID, from, to string) ([]models.DayRule, error)

	// UpsertRule creates or replaces the rule identified by
	// (userID, kind, weekday|date), including its interval set, in one write.
	UpsertRule(ctx context.Context, rule models.DayRule) (*models.DayRule, error)

	// ReplaceIntervals swaps a rule's interval set in a single update.
	ReplaceIntervals(ctx context.Context, ruleID string, intervals []models.Interval) error

	DeleteAllForUser(ctx context.Context, userID string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoScheduleRepo{
		coll: db.Collection("day_rules"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/models"
)

func (r *mongoScheduleRepo) FindRecurring(ctx context.Context, userID, weekday string) (*models.DayRule, error) {
	return r.findOne(ctx, bson.M{
		"userId":  userID,
		"kind":    models.RuleRecurring,
		"weekday": weekday,
	})
}

func (r *mongoScheduleRepo) FindOverride(ctx context.Context, userID, date string) (*models.DayRule, error) {
	return r.findOne(ctx, bson.M{
		"userId": userID,
		"kind":   models.RuleOverride,
		"date":   date,
	})
}

func (r *mongoScheduleRepo) findOne(ctx context.Context, filter bson.M) (*models.DayRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.DayRule
	err := r.coll.FindOne(ctx, filter).Decode(&rule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoScheduleRepo) ListRecurring(ctx context.Context, userID string) ([]models.DayRule, error) {
	return r.findMany(ctx, bson.M{"userId": userID, "kind": models.RuleRecurring})
}

func (r *mongoScheduleRepo) ListOverridesInMonth(ctx context.Context, userID, from, to string) ([]models.DayRule, error) {
	return r.findMany(ctx, bson.M{
		"userId": userID,
		"kind":   models.RuleOverride,
		"date":   bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoScheduleRepo) findMany(ctx context.Context, filter bson.M) ([]models.DayRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.DayRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

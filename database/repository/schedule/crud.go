// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

func (r *mongoScheduleRepo) UpsertRule(ctx context.Context, rule models.DayRule) (*models.DayRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.Intervals == nil {
		rule.Intervals = []models.Interval{}
	}

	filter := ruleKeyFilter(rule)
	update := bson.M{
		"$set": bson.M{
			"intervals": rule.Intervals,
		},
		"$setOnInsert": bson.M{
			"id":      rule.ID,
			"userId":  rule.UserID,
			"kind":    rule.Kind,
			"weekday": rule.Weekday,
			"date":    rule.Date,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.DayRule
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *mongoScheduleRepo) ReplaceIntervals(ctx context.Context, ruleID string, intervals []models.Interval) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if intervals == nil {
		intervals = []models.Interval{}
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": ruleID},
		bson.M{"$set": bson.M{"intervals": intervals}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// ruleKeyFilter is the identity of a rule: one recurring rule per weekday, one
// override per date, per user.
func ruleKeyFilter(rule models.DayRule) bson.M {
	filter := bson.M{
		"userId": rule.UserID,
		"kind":   rule.Kind,
	}
	if rule.Kind == models.RuleRecurring {
		filter["weekday"] = rule.Weekday
	} else {
		filter["date"] = rule.Date
	}
	return filter
}

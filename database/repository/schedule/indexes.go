// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes on the day_rules collection. The partial
// unique indexes enforce the one-recurring-rule-per-weekday and
// one-override-per-date invariants at the storage layer.
func (r *mongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "weekday", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_user_weekday").
				SetPartialFilterExpression(bson.M{"kind": "recurring"}),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_user_date").
				SetPartialFilterExpression(bson.M{"kind": "override"}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create day_rules indexes: %w", err)
	}
	return nil
}

// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MeetingRepository persists meeting requests.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, userID, id string) (*models.Meeting, error)
	ListForUser(ctx context.Context, userID string) ([]models.Meeting, error)
	SetAccepted(ctx context.Context, userID, id string, accepted bool) error
	SetActive(ctx context.Context, userID, id string, active bool) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type mongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo constructs a new MongoDB MeetingRepository.
func NewMongoMeetingRepo() MeetingRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoMeetingRepo{
		coll: db.Collection("meetings"),
	}
}

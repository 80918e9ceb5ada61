// File: database/repository/contact/interface.go
package contactRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, userID, id string) (*models.Contact, error)
	ListForUser(ctx context.Context, userID string) ([]models.Contact, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a new MongoDB ContactRepository.
func NewMongoContactRepo() ContactRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoContactRepo{
		coll: db.Collection("contacts"),
	}
}

// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"dhara/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no slot matches the professional and id.
var ErrNotFound = errors.New("availability slot not found")

type Repository interface {
	Create(ctx context.Context, slot *models.AvailabilitySlot) error
	ListByProfessional(ctx context.Context, professionalID string) ([]models.AvailabilitySlot, error)
	GetByID(ctx context.Context, professionalID, slotID string) (*models.AvailabilitySlot, error)
	Update(ctx context.Context, slot *models.AvailabilitySlot) error
	Delete(ctx context.Context, professionalID, slotID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed Repository.
func NewMongoAvailabilityRepo(db *mongo.Database) Repository {
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_slots"),
	}
}

// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"dhara/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the professional and id.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error)
	ListByProfessionalInRange(ctx context.Context, professionalID, from, to string) ([]models.Appointment, error)
	GetByID(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, professionalID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)
	DistinctProfessionalIDs(ctx context.Context, from, to string) ([]string, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed Repository.
func NewMongoAppointmentRepo(db *mongo.Database) Repository {
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

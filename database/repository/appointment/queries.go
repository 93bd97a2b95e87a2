// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dhara/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var byDateAndStart = bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}, {Key: "id", Value: 1}}

func (r *mongoAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"professional_id": professionalID})
}

// ListByProfessionalInRange returns appointments whose date lies in [from, to].
// Dates are stored as YYYY-MM-DD so lexical comparison matches calendar order.
func (r *mongoAppointmentRepo) ListByProfessionalInRange(ctx context.Context, professionalID, from, to string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"professional_id": professionalID,
		"date":            bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(byDateAndStart))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": appointmentID, "professional_id": professionalID}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, professionalID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !status.Valid() {
		return nil, fmt.Errorf("unknown appointment status %q", status)
	}

	filter := bson.M{"id": appointmentID, "professional_id": professionalID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return &appt, nil
}

// DistinctProfessionalIDs lists professionals with at least one appointment in [from, to].
func (r *mongoAppointmentRepo) DistinctProfessionalIDs(ctx context.Context, from, to string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "professional_id", bson.M{"date": bson.M{"$gte": from, "$lte": to}})
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

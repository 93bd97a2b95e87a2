package models

import "time"

// AppointmentStatus is the lifecycle state of a booked session.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a concrete booked session between a professional and a client.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	ProfessionalID string            `bson:"professional_id" json:"professionalId"`
	ClientID       string            `bson:"client_id" json:"clientId"`
	Date           string            `bson:"date" json:"date"`             // "2006-01-02"
	StartTime      string            `bson:"start_time" json:"startTime"` // "HH:MM"
	EndTime        string            `bson:"end_time" json:"endTime"`     // "HH:MM"
	Status         AppointmentStatus `bson:"status" json:"status"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// UpdateAppointmentStatusRequest is the body of a status change.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}

package calendar

import (
	"context"

	"dhara/models"
)

// Service loads a professional's slots and appointments and serves calendar views.
type Service interface {
	GetCalendar(ctx context.Context, professionalID string, rng models.VisibleRange, opts models.CalendarOptions) (*models.CalendarView, error)
	ExportCalendar(ctx context.Context, professionalID string, rng models.VisibleRange, opts models.CalendarOptions) (string, error)

	ListSlots(ctx context.Context, professionalID string) ([]models.AvailabilitySlot, error)
	CreateSlot(ctx context.Context, professionalID string, in models.AvailabilitySlotInput) (*models.AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, professionalID, slotID string, in models.AvailabilitySlotInput) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, professionalID, slotID string) error

	ListAppointments(ctx context.Context, professionalID, from, to string) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, professionalID, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)

	Lint(ctx context.Context, professionalID string) ([]models.Diagnostic, error)
}

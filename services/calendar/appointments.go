package calendar

import (
	"context"
	"fmt"

	"dhara/models"
)

// ListAppointments returns a professional's appointments dated within [from, to].
func (s *DefaultCalendarService) ListAppointments(ctx context.Context, professionalID, from, to string) ([]models.Appointment, error) {
	start, err := ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, to, from)
	}
	appts, err := s.Appointments.ListByProfessionalInRange(ctx, professionalID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return appts, nil
}

func (s *DefaultCalendarService) UpdateAppointmentStatus(
	ctx context.Context,
	professionalID, appointmentID string,
	status models.AppointmentStatus,
) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, malformed(appointmentID, "unknown status %q", status)
	}
	appt, err := s.Appointments.UpdateStatus(ctx, professionalID, appointmentID, status)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, professionalID)
	return appt, nil
}
